package match

import (
	"math"
	"strings"
)

const featureDim = 6

// SymbolMaps assigns dense integer ids to categorical string values.
// One instance is allocated per matching call and threaded through every
// vector build within it, so the same category string always maps to the
// same id inside that call. The ids are first-seen order starting at 1
// and are never stable across calls, so they must not be persisted.
type SymbolMaps struct {
	Category   map[string]int
	Profession map[string]int
	Gender     map[string]int
}

func NewSymbolMaps() *SymbolMaps {
	return &SymbolMaps{
		Category:   make(map[string]int),
		Profession: make(map[string]int),
		Gender:     make(map[string]int),
	}
}

// assign returns the id for key, allocating the next one on first sight.
// The empty key always maps to 0.
func (m *SymbolMaps) assign(table map[string]int, key string) int {
	if key == "" {
		return 0
	}
	if id, ok := table[key]; ok {
		return id
	}
	id := len(table) + 1
	table[key] = id
	return id
}

// vectorAttrs are the item attributes that feed the feature vector,
// already reduced to canonical coordinates.
type vectorAttrs struct {
	Category   string
	Profession string
	Gender     string
	Age        int
	Point      Point
}

// buildVector produces the fixed 6-dim feature vector
// [categoryID, professionID, genderID, age/100, lat, lon].
// Age is divided by 100 to keep its magnitude comparable with the id
// dimensions, an intentional scale choice.
func buildVector(a vectorAttrs, maps *SymbolMaps) [featureDim]float64 {
	gender := a.Gender
	if gender == "" {
		gender = "other"
	}

	return [featureDim]float64{
		float64(maps.assign(maps.Category, strings.ToLower(a.Category))),
		float64(maps.assign(maps.Profession, strings.ToLower(a.Profession))),
		float64(maps.assign(maps.Gender, strings.ToLower(gender))),
		float64(a.Age) / 100,
		a.Point.Lat,
		a.Point.Lon,
	}
}

// euclidean is the L2 distance between two feature vectors.
func euclidean(a, b [featureDim]float64) float64 {
	sumOfSquares := 0.0
	for i := range featureDim {
		d := a[i] - b[i]
		sumOfSquares += d * d
	}
	return math.Sqrt(sumOfSquares)
}
