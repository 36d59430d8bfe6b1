package postgres

import (
	"context"
	"errors"
	"fmt"

	"giveLocal/business/match"
	"giveLocal/domain"

	"gorm.io/gorm"
)

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{
		DB: db,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uint64) (domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return domain.Item{}, fmt.Errorf("context error: %w", err)
	}

	var item domain.Item

	err := r.DB.WithContext(ctx).First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Item{}, errors.New("item not found")
		}
		return domain.Item{}, fmt.Errorf("failed to find item: %w", err)
	}

	return item, nil
}

// FindAll lists items with optional category / item type filters and
// offset pagination, returning the unpaginated total alongside the page.
func (r *ItemRepository) FindAll(ctx context.Context, category, itemType string, page, limit int) ([]domain.Item, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, fmt.Errorf("context error: %w", err)
	}

	tx := r.DB.WithContext(ctx).Model(&domain.Item{})
	if category != "" {
		tx = tx.Where("category = ?", category)
	}
	if itemType != "" {
		tx = tx.Where("item_type = ?", itemType)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count items: %w", err)
	}

	var items []domain.Item
	err := tx.Offset((page - 1) * limit).Limit(limit).Order("id").Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find items: %w", err)
	}

	return items, total, nil
}

// FindDonationsNear returns unclaimed-or-not donation items within
// radiusKm of point, nearest first, capped at limit rows. The haversine
// runs in SQL so the database does the radius cut.
func (r *ItemRepository) FindDonationsNear(ctx context.Context, point match.Point, radiusKm float64, limit int) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	const query = `
		SELECT * FROM (
			SELECT items.*,
				2 * 6371 * asin(sqrt(
					pow(sin(radians(latitude - ?) / 2), 2) +
					cos(radians(?)) * cos(radians(latitude)) *
					pow(sin(radians(longitude - ?) / 2), 2)
				)) AS dist_km
			FROM items
			WHERE item_type = ?
		) nearby
		WHERE dist_km <= ?
		ORDER BY dist_km
		LIMIT ?`

	var items []domain.Item
	err := r.DB.WithContext(ctx).
		Raw(query, point.Lat, point.Lat, point.Lon, domain.ItemTypeDonation, radiusKm, limit).
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby donations: %w", err)
	}

	return items, nil
}

// ClaimItem marks an item claimed by userID. The WHERE clause is the
// compare-and-set: a second concurrent claim sees zero affected rows.
func (r *ItemRepository) ClaimItem(ctx context.Context, itemID, userID uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.Item{}).
		Where("id = ? AND is_claimed = false", itemID).
		Updates(map[string]interface{}{
			"is_claimed": true,
			"claimed_by": userID,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to claim item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("item already claimed")
	}

	return nil
}
