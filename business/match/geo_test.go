package match

import (
	"math"
	"testing"
)

func TestHaversineZeroDistance(t *testing.T) {
	p := Point{Lat: 28.61, Lon: 77.20}
	if d := Haversine(p, p); d != 0 {
		t.Fatalf("expected 0 km for identical points, got %v", d)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// One degree of latitude is ~111.19 km on a 6371 km sphere.
	a := Point{Lat: 28.61, Lon: 77.20}
	b := Point{Lat: 29.61, Lon: 77.20}

	d := Haversine(a, b)
	if math.Abs(d-111.195) > 0.1 {
		t.Fatalf("expected ~111.195 km, got %v", d)
	}
}

func TestHaversineSymmetry(t *testing.T) {
	pairs := []struct {
		a, b Point
	}{
		{Point{28.61, 77.20}, Point{28.70, 77.10}},
		{Point{-33.87, 151.21}, Point{51.51, -0.13}},
		{Point{0, 0}, Point{0, 180}},
	}

	for _, p := range pairs {
		ab := Haversine(p.a, p.b)
		ba := Haversine(p.b, p.a)
		if math.Abs(ab-ba) > 1e-9 {
			t.Fatalf("haversine not symmetric: %v vs %v", ab, ba)
		}
	}
}

func TestPointConversions(t *testing.T) {
	// Stored items are (longitude, latitude); queries are (lat, lon).
	// Both must land on the same canonical form.
	item := itemAt(1, 28.61, 77.20)
	fromItem := pointFromItem(item)
	fromQuery := pointFromQuery(28.61, 77.20)

	if fromItem != fromQuery {
		t.Fatalf("canonical points differ: %+v vs %+v", fromItem, fromQuery)
	}
	if fromItem.Lat != 28.61 || fromItem.Lon != 77.20 {
		t.Fatalf("unexpected canonical point: %+v", fromItem)
	}
}
