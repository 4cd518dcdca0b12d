package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPKR_GroupsDigits(t *testing.T) {
	assert.Equal(t, "PKR 0", PKR(0))
	assert.Equal(t, "PKR 950", PKR(950))
	assert.Equal(t, "PKR 6,500", PKR(6500))
	assert.Equal(t, "PKR 13,000", PKR(13000))
	assert.Equal(t, "PKR 1,234,567", PKR(1234567))
}
