package match

import "strings"

// ruleMaxPoints is the fixed normalization ceiling. It stays at 5 even
// when profession or age are absent and only 3 points are achievable;
// callers depend on that scoring behavior, so it is kept as-is rather
// than normalizing per evaluable criterion.
const ruleMaxPoints = 5.0

// party holds the discrete attributes either side exposes to the rule
// scorer.
type party struct {
	Category   string
	Gender     string
	Profession string
	Age        int
}

// rulePoints sums the weighted compatibility criteria between receiver
// and candidate. distKm is the great-circle distance between the two.
func rulePoints(receiver, candidate party, distKm float64) float64 {
	points := 0.0

	if receiver.Category != "" && candidate.Category != "" &&
		strings.EqualFold(receiver.Category, candidate.Category) {
		points++
	}

	rGender := normalizeGender(receiver.Gender)
	cGender := normalizeGender(candidate.Gender)
	if rGender == "other" || cGender == "other" || rGender == cGender {
		points++
	}

	if receiver.Profession != "" && candidate.Profession != "" &&
		strings.EqualFold(receiver.Profession, candidate.Profession) {
		points++
	}

	// Age tiers only apply when both sides state an age.
	if receiver.Age != 0 && candidate.Age != 0 {
		diff := receiver.Age - candidate.Age
		if diff < 0 {
			diff = -diff
		}
		switch {
		case diff <= 3:
			points += 1
		case diff <= 8:
			points += 0.6
		case diff <= 20:
			points += 0.2
		}
	}

	switch {
	case distKm <= 5:
		points += 1
	case distKm <= 25:
		points += 0.7
	case distKm <= 100:
		points += 0.3
	}

	return points
}

// ruleScore normalizes rule points into [0, 1].
func ruleScore(points float64) float64 {
	score := points / ruleMaxPoints
	if score > 1 {
		score = 1
	}
	return score
}

func normalizeGender(gender string) string {
	if gender == "" {
		return "other"
	}
	return strings.ToLower(gender)
}
