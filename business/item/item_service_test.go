package item

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"giveLocal/domain"
)

type fakeItemRepo struct {
	created  []*domain.Item
	items    []domain.Item
	total    int64
	lastPage int
	lastLim  int
	err      error
}

func (f *fakeItemRepo) Create(ctx context.Context, item *domain.Item) error {
	if f.err != nil {
		return f.err
	}
	item.ID = uint64(len(f.created) + 1)
	f.created = append(f.created, item)
	return nil
}

func (f *fakeItemRepo) FindByID(ctx context.Context, id uint64) (domain.Item, error) {
	for _, item := range f.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.Item{}, errors.New("item not found")
}

func (f *fakeItemRepo) FindAll(ctx context.Context, category, itemType string, page, limit int) ([]domain.Item, int64, error) {
	f.lastPage = page
	f.lastLim = limit
	return f.items, f.total, f.err
}

func validItem() *domain.Item {
	return &domain.Item{
		OwnerID:   1,
		ItemType:  domain.ItemTypeDonation,
		ItemName:  "Winter Jacket",
		Category:  "clothes",
		Latitude:  28.61,
		Longitude: 77.20,
	}
}

func TestCreateItemEncodesImages(t *testing.T) {
	repo := &fakeItemRepo{}
	svc := NewItemService(repo)

	created, err := svc.CreateItem(context.Background(), validItem(), []string{"a.jpg", "b.jpg"})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == 0 {
		t.Fatal("created item should carry the assigned id")
	}

	var images []string
	if err := json.Unmarshal(created.Images, &images); err != nil {
		t.Fatal(err)
	}
	if len(images) != 2 || images[0] != "a.jpg" {
		t.Fatalf("images round-trip wrong: %v", images)
	}
}

func TestCreateItemValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Item)
		images []string
	}{
		{"missing name", func(i *domain.Item) { i.ItemName = "" }, []string{"a.jpg", "b.jpg"}},
		{"bad type", func(i *domain.Item) { i.ItemType = "loan" }, []string{"a.jpg", "b.jpg"}},
		{"one image", func(i *domain.Item) {}, []string{"a.jpg"}},
		{"three images", func(i *domain.Item) {}, []string{"a.jpg", "b.jpg", "c.jpg"}},
		{"nan latitude", func(i *domain.Item) { i.Latitude = math.NaN() }, []string{"a.jpg", "b.jpg"}},
		{"inf longitude", func(i *domain.Item) { i.Longitude = math.Inf(1) }, []string{"a.jpg", "b.jpg"}},
		{"bad gender", func(i *domain.Item) { i.Gender = "unknown" }, []string{"a.jpg", "b.jpg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeItemRepo{}
			svc := NewItemService(repo)
			item := validItem()
			tt.mutate(item)
			if _, err := svc.CreateItem(context.Background(), item, tt.images); err == nil {
				t.Fatal("expected a validation error")
			}
			if len(repo.created) != 0 {
				t.Fatal("invalid item must not reach the store")
			}
		})
	}
}

func TestCreateItemDefaultsGender(t *testing.T) {
	svc := NewItemService(&fakeItemRepo{})

	item := validItem()
	item.Gender = ""
	created, err := svc.CreateItem(context.Background(), item, []string{"a.jpg", "b.jpg"})
	if err != nil {
		t.Fatal(err)
	}
	if created.Gender != domain.GenderOther {
		t.Fatalf("expected gender to default to %q, got %q", domain.GenderOther, created.Gender)
	}
}

func TestGetItemsClampsPaging(t *testing.T) {
	repo := &fakeItemRepo{total: 7}
	svc := NewItemService(repo)

	page, err := svc.GetItems(context.Background(), "", "", -3, 500)
	if err != nil {
		t.Fatal(err)
	}
	if repo.lastPage != 1 || repo.lastLim != 20 {
		t.Fatalf("expected clamped page 1 limit 20, store saw page %d limit %d", repo.lastPage, repo.lastLim)
	}
	if page.Total != 7 {
		t.Fatalf("expected total 7, got %d", page.Total)
	}
	if page.Items == nil {
		t.Fatal("empty page should marshal as [], not null")
	}
}
