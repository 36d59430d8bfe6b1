package match

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"giveLocal/domain"
)

type fakeItemRepo struct {
	items []domain.Item
	err   error

	calls     int
	gotPoint  Point
	gotRadius float64
	gotLimit  int
}

func (f *fakeItemRepo) FindDonationsNear(ctx context.Context, point Point, radiusKm float64, limit int) ([]domain.Item, error) {
	f.calls++
	f.gotPoint = point
	f.gotRadius = radiusKm
	f.gotLimit = limit

	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func floatPtr(v float64) *float64 { return &v }

// itemAt builds a minimal donation item; lat/lon land in the stored
// (longitude, latitude) field pair.
func itemAt(id uint64, lat, lon float64) domain.Item {
	return domain.Item{
		ID:        id,
		ItemType:  domain.ItemTypeDonation,
		Latitude:  lat,
		Longitude: lon,
	}
}

func baseQuery() domain.MatchQuery {
	return domain.MatchQuery{
		ItemName: "Winter Jacket",
		Category: "Clothing",
		Gender:   "other",
		Location: domain.QueryLocation{Lat: floatPtr(28.61), Lon: floatPtr(77.20)},
	}
}

func TestFindMatchesMissingLocation(t *testing.T) {
	repo := &fakeItemRepo{}
	svc := NewMatchService(repo, DefaultConfig())

	query := baseQuery()
	query.Location.Lat = nil

	_, err := svc.FindMatches(context.Background(), query)
	if !errors.Is(err, ErrLocationRequired) {
		t.Fatalf("expected ErrLocationRequired, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("store must not be queried on invalid input, got %d calls", repo.calls)
	}
}

func TestFindMatchesNonFiniteLocation(t *testing.T) {
	repo := &fakeItemRepo{}
	svc := NewMatchService(repo, DefaultConfig())

	query := baseQuery()
	query.Location.Lat = floatPtr(math.NaN())

	if _, err := svc.FindMatches(context.Background(), query); !errors.Is(err, ErrLocationRequired) {
		t.Fatalf("expected ErrLocationRequired for NaN latitude, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("store must not be queried, got %d calls", repo.calls)
	}
}

func TestFindMatchesStoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := NewMatchService(&fakeItemRepo{err: storeErr}, DefaultConfig())

	_, err := svc.FindMatches(context.Background(), baseQuery())
	if !errors.Is(err, storeErr) {
		t.Fatalf("store failure should propagate wrapped, got %v", err)
	}
}

func TestFindMatchesEmptyCandidateSet(t *testing.T) {
	svc := NewMatchService(&fakeItemRepo{}, DefaultConfig())

	result, err := svc.FindMatches(context.Background(), baseQuery())
	if err != nil {
		t.Fatalf("empty candidate set is not an error: %v", err)
	}
	if result.TotalCandidates != 0 || len(result.Results) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

func TestFindMatchesPassesRetrievalParams(t *testing.T) {
	repo := &fakeItemRepo{}
	svc := NewMatchService(repo, Config{RadiusKm: 50, CandidateCap: 500, MaxResults: 50})

	if _, err := svc.FindMatches(context.Background(), baseQuery()); err != nil {
		t.Fatal(err)
	}

	if repo.gotPoint != (Point{Lat: 28.61, Lon: 77.20}) {
		t.Fatalf("query point not canonicalized: %+v", repo.gotPoint)
	}
	if repo.gotRadius != 50 || repo.gotLimit != 500 {
		t.Fatalf("unexpected retrieval params: radius %v limit %d", repo.gotRadius, repo.gotLimit)
	}
}

func TestFindMatchesColocatedIdenticalCandidate(t *testing.T) {
	donor := itemAt(1, 28.61, 77.20)
	donor.ItemName = "Winter Jacket"
	donor.Category = "Clothing"
	donor.Gender = "other"

	svc := NewMatchService(&fakeItemRepo{items: []domain.Item{donor}}, DefaultConfig())

	result, err := svc.FindMatches(context.Background(), baseQuery())
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(result.Results))
	}

	got := result.Results[0]

	// Category, gender and co-location earn 3 of the fixed 5 rule points;
	// profession and age are absent, so the rule score tops out at 0.6.
	if math.Abs(got.Breakdown.RuleScore-0.6) > 1e-12 {
		t.Fatalf("expected rule score 0.6, got %v", got.Breakdown.RuleScore)
	}
	if got.Breakdown.NameScore != 1 {
		t.Fatalf("identical name should score 1, got %v", got.Breakdown.NameScore)
	}
	if got.Breakdown.KnnScore != 1 {
		t.Fatalf("identical vector should score 1, got %v", got.Breakdown.KnnScore)
	}
	if got.Breakdown.DistKm != 0 {
		t.Fatalf("co-located distance should be 0, got %v", got.Breakdown.DistKm)
	}
	if math.Abs(got.CombinedScore-0.78) > 1e-12 {
		t.Fatalf("expected combined 0.78, got %v", got.CombinedScore)
	}
}

func TestFindMatchesDistantCandidateScoresLowerButNonzero(t *testing.T) {
	near := itemAt(1, 28.61, 77.20)
	near.ItemName = "Winter Jacket"
	near.Category = "Clothing"
	near.Gender = "other"

	far := near
	far.ID = 2
	far.Latitude = 30.11 // ~167 km north, outside every distance tier

	svc := NewMatchService(&fakeItemRepo{items: []domain.Item{near, far}}, DefaultConfig())

	result, err := svc.FindMatches(context.Background(), baseQuery())
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(result.Results))
	}

	first, second := result.Results[0], result.Results[1]
	if first.Donor.ID != 1 || second.Donor.ID != 2 {
		t.Fatalf("near candidate should rank first, got %d then %d", first.Donor.ID, second.Donor.ID)
	}

	if second.Breakdown.DistKm <= 150 {
		t.Fatalf("test setup: far candidate should be >150 km away, got %v", second.Breakdown.DistKm)
	}
	// The distance tier contributes nothing, but category, gender and name
	// still do.
	if math.Abs(second.Breakdown.RuleScore-0.4) > 1e-12 {
		t.Fatalf("expected far rule score 0.4, got %v", second.Breakdown.RuleScore)
	}
	if second.CombinedScore <= 0 {
		t.Fatal("far candidate should still score above zero")
	}
	if first.CombinedScore-second.CombinedScore < 0.1 {
		t.Fatalf("far candidate should score materially lower: %v vs %v",
			first.CombinedScore, second.CombinedScore)
	}
}

func TestFindMatchesPriorityBonusIsExact(t *testing.T) {
	plain := itemAt(1, 28.61, 77.20)
	plain.ItemName = "Winter Jacket"
	plain.Category = "Clothing"
	plain.Gender = "other"

	urgent := plain
	urgent.ID = 2
	urgent.Priority = true

	svc := NewMatchService(&fakeItemRepo{items: []domain.Item{plain, urgent}}, DefaultConfig())

	result, err := svc.FindMatches(context.Background(), baseQuery())
	if err != nil {
		t.Fatal(err)
	}

	if result.Results[0].Donor.ID != 2 {
		t.Fatalf("priority candidate should rank first, got item %d", result.Results[0].Donor.ID)
	}
	diff := result.Results[0].CombinedScore - result.Results[1].CombinedScore
	if math.Abs(diff-priorityBonus) > 1e-12 {
		t.Fatalf("expected exact %v gap, got %v", priorityBonus, diff)
	}
}

func TestFindMatchesTruncatesToMaxResults(t *testing.T) {
	items := make([]domain.Item, 0, 60)
	for i := 1; i <= 60; i++ {
		item := itemAt(uint64(i), 28.61, 77.20)
		item.ItemName = "Blanket"
		items = append(items, item)
	}

	svc := NewMatchService(&fakeItemRepo{items: items}, DefaultConfig())

	result, err := svc.FindMatches(context.Background(), baseQuery())
	if err != nil {
		t.Fatal(err)
	}

	if result.TotalCandidates != 60 {
		t.Fatalf("totalCandidates must count the full set, got %d", result.TotalCandidates)
	}
	if len(result.Results) != 50 {
		t.Fatalf("results must truncate to 50, got %d", len(result.Results))
	}
	for i := 1; i < len(result.Results); i++ {
		if result.Results[i].CombinedScore > result.Results[i-1].CombinedScore {
			t.Fatalf("results not sorted non-increasing at %d", i)
		}
	}
	for _, r := range result.Results {
		if r.CombinedScore < 0 || r.CombinedScore > 1 {
			t.Fatalf("combined score out of [0,1]: %v", r.CombinedScore)
		}
	}
}

func TestFindMatchesIdempotent(t *testing.T) {
	items := []domain.Item{}
	for i := 1; i <= 10; i++ {
		item := itemAt(uint64(i), 28.61+float64(i)*0.01, 77.20)
		item.ItemName = "Blanket"
		item.Category = "Bedding"
		items = append(items, item)
	}

	svc := NewMatchService(&fakeItemRepo{items: items}, DefaultConfig())

	first, err := svc.FindMatches(context.Background(), baseQuery())
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.FindMatches(context.Background(), baseQuery())
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical query and candidate set must produce identical output")
	}
}

func TestFindMatchesTieBreakByItemID(t *testing.T) {
	// Reverse retrieval order; equal scores must still come back sorted
	// by item ID ascending.
	items := []domain.Item{}
	for i := 5; i >= 1; i-- {
		item := itemAt(uint64(i), 28.61, 77.20)
		item.ItemName = "Blanket"
		items = append(items, item)
	}

	svc := NewMatchService(&fakeItemRepo{items: items}, DefaultConfig())

	result, err := svc.FindMatches(context.Background(), baseQuery())
	if err != nil {
		t.Fatal(err)
	}

	for i, r := range result.Results {
		if r.Donor.ID != uint64(i+1) {
			t.Fatalf("position %d: expected item %d, got %d", i, i+1, r.Donor.ID)
		}
	}
}
