package repository

import (
	"context"
	"errors"
	"time"

	"github.com/pehchaan/storefront-backend/internal/app/model"
	"github.com/pehchaan/storefront-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormCartStore keeps one cart_snapshots row per cart id.
type gormCartStore struct {
	db *gorm.DB
}

func NewGormCartStore(db *gorm.DB) CartStore {
	return &gormCartStore{db: db}
}

func (s *gormCartStore) Load(ctx context.Context, cartID string) (model.Cart, error) {
	var snapshot model.CartSnapshot
	err := s.db.WithContext(ctx).First(&snapshot, "cart_id = ?", cartID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Cart{}, nil
		}
		logger.Error("Failed to load cart snapshot from database", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return nil, err
	}

	return decodeCart(cartID, []byte(snapshot.Payload)), nil
}

func (s *gormCartStore) Save(ctx context.Context, cartID string, cart model.Cart) error {
	payload, err := encodeCart(cart)
	if err != nil {
		logger.Error("Failed to encode cart snapshot", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return err
	}

	snapshot := model.CartSnapshot{
		CartID:    cartID,
		Payload:   string(payload),
		UpdatedAt: time.Now(),
	}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cart_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&snapshot).Error
	if err != nil {
		logger.Error("Failed to save cart snapshot to database", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return err
	}

	logger.Debug("Cart snapshot saved to database", map[string]interface{}{
		"cart_id": cartID,
		"items":   len(cart),
	})
	return nil
}

func (s *gormCartStore) Clear(ctx context.Context, cartID string) error {
	err := s.db.WithContext(ctx).
		Delete(&model.CartSnapshot{}, "cart_id = ?", cartID).Error
	if err != nil {
		logger.Error("Failed to clear cart snapshot in database", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return err
	}
	return nil
}

func (s *gormCartStore) PurgeStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	result := s.db.WithContext(ctx).
		Where("updated_at < ?", cutoff).
		Delete(&model.CartSnapshot{})
	if result.Error != nil {
		logger.Error("Failed to purge stale cart snapshots", result.Error, map[string]interface{}{
			"cutoff": cutoff,
		})
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
