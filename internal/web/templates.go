// Package web holds the server-rendered storefront pages. Templates are
// embedded so the binary and the tests render identically regardless of the
// working directory.
package web

import (
	"embed"
	"html/template"

	"github.com/pehchaan/storefront-backend/pkg/currency"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the page templates with the storefront helper functions.
func Templates() *template.Template {
	return template.Must(
		template.New("").
			Funcs(template.FuncMap{
				"pkr": currency.PKR,
			}).
			ParseFS(templateFS, "templates/*.html"),
	)
}
