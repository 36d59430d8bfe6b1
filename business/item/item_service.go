package item

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"giveLocal/domain"
)

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	FindByID(ctx context.Context, id uint64) (domain.Item, error)
	FindAll(ctx context.Context, category, itemType string, page, limit int) ([]domain.Item, int64, error)
}

type ItemService struct {
	itemRepo ItemRepository
}

func NewItemService(itemRepo ItemRepository) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
	}
}

// ItemPage is one page of a filtered listing.
type ItemPage struct {
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Total int64         `json:"total"`
	Items []domain.Item `json:"items"`
}

func (s *ItemService) CreateItem(ctx context.Context, item *domain.Item, images []string) (*domain.Item, error) {
	if item.ItemName == "" {
		return nil, errors.New("item name is required")
	}
	if item.ItemType != domain.ItemTypeDonation && item.ItemType != domain.ItemTypeRequest {
		return nil, errors.New("item type must be donation or request")
	}
	if len(images) != 2 {
		return nil, errors.New("exactly 2 images are required")
	}
	if math.IsNaN(item.Latitude) || math.IsInf(item.Latitude, 0) ||
		math.IsNaN(item.Longitude) || math.IsInf(item.Longitude, 0) {
		return nil, errors.New("location is required")
	}

	switch item.Gender {
	case "":
		item.Gender = domain.GenderOther
	case domain.GenderMale, domain.GenderFemale, domain.GenderOther:
	default:
		return nil, errors.New("gender must be male, female or other")
	}

	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("failed to encode images: %w", err)
	}
	item.Images = imagesJSON

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *ItemService) GetItems(ctx context.Context, category, itemType string, page, limit int) (ItemPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	items, total, err := s.itemRepo.FindAll(ctx, category, itemType, page, limit)
	if err != nil {
		return ItemPage{}, err
	}
	if items == nil {
		items = []domain.Item{}
	}

	return ItemPage{
		Page:  page,
		Limit: limit,
		Total: total,
		Items: items,
	}, nil
}

func (s *ItemService) GetItemByID(ctx context.Context, id uint64) (domain.Item, error) {
	return s.itemRepo.FindByID(ctx, id)
}
