package outfit

import (
	"math"
	"strings"

	"styleLoop/domain"
)

type formalityKeyword struct {
	keyword string
	score   int
}

// Ordered casual-to-formal keyword table. A product takes its FIRST
// matching keyword, so ordering is part of the semantics: keep this a
// slice, not a map.
var formalityKeywords = []formalityKeyword{
	// very casual
	{"joggers", 1}, {"sweatpants", 1}, {"hoodie", 2}, {"sneakers", 2}, {"t-shirt", 2},
	{"shorts", 2}, {"flip-flops", 1}, {"tank", 2}, {"athletic", 1},
	// casual
	{"jeans", 4}, {"casual", 4}, {"polo", 5}, {"chinos", 5}, {"loafers", 5},
	{"sweater", 5}, {"cardigan", 5}, {"boots", 5},
	// smart casual
	{"blazer", 7}, {"dress shirt", 7}, {"blouse", 6}, {"oxford", 6}, {"derby", 7},
	{"slacks", 6}, {"pencil skirt", 7}, {"midi dress", 6},
	// formal
	{"suit", 9}, {"tuxedo", 10}, {"gown", 9}, {"evening", 9}, {"formal", 9},
	{"dress shoes", 8}, {"heels", 7}, {"tie", 8}, {"bow tie", 9},
}

// CalculateFormalityScore estimates how dressy an outfit is on a 1-10
// scale: each product contributes its first keyword match, or a per-slot
// default when nothing matches, and the outfit takes the rounded mean.
func CalculateFormalityScore(products []domain.Product) int {
	if len(products) == 0 {
		return defaultFormality
	}

	total := 0
	for _, p := range products {
		total += productFormality(p)
	}

	return int(math.Round(float64(total) / float64(len(products))))
}

func productFormality(p domain.Product) int {
	searchText := strings.ToLower(p.Name + " " + p.Category + " " + p.Style)

	for _, entry := range formalityKeywords {
		if strings.Contains(searchText, entry.keyword) {
			return entry.score
		}
	}

	category := strings.ToLower(p.Category)
	switch {
	case strings.Contains(category, "bottom") || strings.Contains(category, "pants"):
		return 4
	case strings.Contains(category, "top") || strings.Contains(category, "shirt"):
		return 4
	default:
		return 5
	}
}

var complexityKeywords = map[string][]string{
	domain.PatternMinimal:  {"solid", "plain", "simple", "monochrome", "clean", "basic"},
	domain.PatternDetailed: {"print", "pattern", "floral", "striped", "checkered", "graphic", "embroidered", "textured"},
}

// assessPatternComplexity buckets the outfit's visual busyness by keyword
// counting over names, styles and tags.
func assessPatternComplexity(products []domain.Product) string {
	minimalCount := 0
	detailedCount := 0

	for _, p := range products {
		searchText := strings.ToLower(p.Name + " " + p.Style + " " + strings.Join(p.Tags, " "))

		for _, keyword := range complexityKeywords[domain.PatternMinimal] {
			if strings.Contains(searchText, keyword) {
				minimalCount++
			}
		}
		for _, keyword := range complexityKeywords[domain.PatternDetailed] {
			if strings.Contains(searchText, keyword) {
				detailedCount++
			}
		}
	}

	if detailedCount > minimalCount*2 {
		return domain.PatternDetailed
	}
	if minimalCount > detailedCount*2 {
		return domain.PatternMinimal
	}
	return domain.PatternModerate
}
