package domain

import (
	"math"
	"sort"
)

// CategoryEliminate is the fallback bucket when no category rule matches.
const CategoryEliminate = "Eliminirati"

// categoryRule pairs a category name with its minimum score thresholds.
type categoryRule struct {
	name         string
	minAdequacy  float64
	minPotential float64
}

// categoryRules is evaluated top-to-bottom; the first rule whose thresholds
// both hold wins. The rules overlap (all-fives matches "Primjer" and
// "Adekvatan"), so the order is part of the contract.
var categoryRules = []categoryRule{
	{"Primjer", 4.0, 4.0},
	{"Potencijal", 3.0, 4.0},
	{"Adekvatan", 3.0, 2.5},
	{"Neadekvatan s potencijalom", 2.5, 3.0},
}

// Scores holds the derived fields of an assessment.
type Scores struct {
	Adequacy  float64
	Potential float64
	Category  string
}

// CalculateScores derives the adequacy and potential means and the category
// from a complete dimension map. Both means are rounded to two decimals
// before they are compared against the category thresholds, so threshold
// boundaries are evaluated on the rounded values.
func CalculateScores(dimensions map[string]int) Scores {
	adequacy := round2(groupMean(dimensions, AdequacyDimensions))
	potential := round2(groupMean(dimensions, PotentialDimensions))

	category := CategoryEliminate
	for _, rule := range categoryRules {
		if adequacy >= rule.minAdequacy && potential >= rule.minPotential {
			category = rule.name
			break
		}
	}

	return Scores{Adequacy: adequacy, Potential: potential, Category: category}
}

// CategorySummary is one row of the per-category breakdown.
type CategorySummary struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SummarizeByCategory groups assessments by category and returns counts and
// percentages (rounded to two decimals), sorted by category name. An empty
// input yields an empty slice.
func SummarizeByCategory(assessments []Assessment) []CategorySummary {
	total := len(assessments)
	counts := make(map[string]int)
	for _, a := range assessments {
		category := a.Category
		if category == "" {
			category = CategoryEliminate
		}
		counts[category]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	summary := make([]CategorySummary, 0, len(names))
	for _, name := range names {
		percentage := 0.0
		if total > 0 {
			percentage = round2(float64(counts[name]) / float64(total) * 100)
		}
		summary = append(summary, CategorySummary{
			Category:   name,
			Count:      counts[name],
			Percentage: percentage,
		})
	}
	return summary
}

func groupMean(dimensions map[string]int, codes []string) float64 {
	sum := 0
	for _, code := range codes {
		sum += dimensions[code]
	}
	return float64(sum) / float64(len(codes))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
