package match

import (
	"context"
	"errors"
	"fmt"

	"giveLocal/domain"
	"giveLocal/pkg/logger"
)

// ErrLocationRequired marks a query without a usable coordinate pair.
// Handlers translate it to a 400 response before any store query runs.
var ErrLocationRequired = errors.New("location is required for matching")

// ItemRepository is the geo-filter contract: all donation items within
// radiusKm of point, unordered beyond a nearest-first cap of limit rows.
type ItemRepository interface {
	FindDonationsNear(ctx context.Context, point Point, radiusKm float64, limit int) ([]domain.Item, error)
}

// Config tunes candidate retrieval and result truncation.
type Config struct {
	RadiusKm     float64
	CandidateCap int
	MaxResults   int
}

func DefaultConfig() Config {
	return Config{
		RadiusKm:     50,
		CandidateCap: 500,
		MaxResults:   50,
	}
}

type MatchService struct {
	itemRepo ItemRepository
	cfg      Config
}

func NewMatchService(itemRepo ItemRepository, cfg Config) *MatchService {
	def := DefaultConfig()
	if cfg.RadiusKm <= 0 {
		cfg.RadiusKm = def.RadiusKm
	}
	if cfg.CandidateCap <= 0 {
		cfg.CandidateCap = def.CandidateCap
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = def.MaxResults
	}

	return &MatchService{
		itemRepo: itemRepo,
		cfg:      cfg,
	}
}

// FindMatches runs the full pipeline: geo filter, the three scorers and
// the combiner. The whole call is stateless; the symbol maps live only
// for its duration.
func (s *MatchService) FindMatches(ctx context.Context, query domain.MatchQuery) (domain.MatchResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.MatchResult{}, fmt.Errorf("context error: %w", err)
	}

	if query.Location.Lat == nil || query.Location.Lon == nil {
		return domain.MatchResult{}, ErrLocationRequired
	}

	lat, lon := *query.Location.Lat, *query.Location.Lon
	if !isFinite(lat) || !isFinite(lon) {
		return domain.MatchResult{}, ErrLocationRequired
	}

	queryPoint := pointFromQuery(lat, lon)

	donors, err := s.itemRepo.FindDonationsNear(ctx, queryPoint, s.cfg.RadiusKm, s.cfg.CandidateCap)
	if err != nil {
		return domain.MatchResult{}, fmt.Errorf("find nearby donations: %w", err)
	}

	// Candidate vectors are built before the query vector so the shared
	// symbol maps assign ids in the same first-seen order on every call
	// with the same candidate set.
	maps := NewSymbolMaps()

	donorVecs := make([][featureDim]float64, len(donors))
	for i, donor := range donors {
		donorVecs[i] = buildVector(vectorAttrs{
			Category:   donor.Category,
			Profession: donor.Profession,
			Gender:     donor.Gender,
			Age:        donor.Age,
			Point:      pointFromItem(donor),
		}, maps)
	}

	receiver := party{
		Category:   query.Category,
		Gender:     query.Gender,
		Profession: query.Profession,
		Age:        query.Age,
	}
	queryVec := buildVector(vectorAttrs{
		Category:   query.Category,
		Profession: query.Profession,
		Gender:     query.Gender,
		Age:        query.Age,
		Point:      queryPoint,
	}, maps)

	results := make([]domain.ScoredCandidate, 0, len(donors))
	for i, donor := range donors {
		donorPoint := pointFromItem(donor)

		knnDist := euclidean(queryVec, donorVecs[i])
		nameDist := nameDistance(query.ItemName, donor.ItemName)
		distKm := Haversine(queryPoint, donorPoint)

		candidate := party{
			Category:   donor.Category,
			Gender:     donor.Gender,
			Profession: donor.Profession,
			Age:        donor.Age,
		}

		breakdown := domain.ScoreBreakdown{
			RuleScore: ruleScore(rulePoints(receiver, candidate, distKm)),
			NameScore: 1 - nameDist,
			KnnScore:  1 / (1 + knnDist),
			DistKm:    distKm,
		}

		combined := combine(breakdown.RuleScore, breakdown.NameScore, breakdown.KnnScore, donor.Priority)
		if !isFinite(combined) {
			return domain.MatchResult{}, fmt.Errorf("non-finite score for item %d", donor.ID)
		}

		results = append(results, domain.ScoredCandidate{
			Donor:         donor,
			CombinedScore: combined,
			Breakdown:     breakdown,
		})
	}

	rankCandidates(results)

	total := len(results)
	if len(results) > s.cfg.MaxResults {
		results = results[:s.cfg.MaxResults]
	}

	logger.Info("match pipeline completed",
		"trace_id", TraceIDFromContext(ctx),
		"candidates", total,
		"returned", len(results),
	)

	return domain.MatchResult{
		Query:           query,
		TotalCandidates: total,
		Results:         results,
	}, nil
}
