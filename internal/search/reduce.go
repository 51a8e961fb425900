package search

import "bitbucket.org/crgw/flexrates/internal/schema"

// Cheapest returns the quote with the lowest total. The first quote in
// response order wins ties. It reports false for an empty list.
func Cheapest(quotes []schema.VehicleQuote) (schema.VehicleQuote, bool) {
	var best *schema.VehicleQuote

	for i := range quotes {
		if best == nil || quotes[i].Total.LessThan(best.Total) {
			best = &quotes[i]
		}
	}

	if best == nil {
		return schema.VehicleQuote{}, false
	}

	return *best, true
}

// SummarizeByClass keeps one total per vehicle class in first-seen class
// order. A later quote for the same class replaces the earlier total.
func SummarizeByClass(quotes []schema.VehicleQuote) []schema.VehicleQuote {
	index := map[string]int{}
	summary := []schema.VehicleQuote{}

	for _, q := range quotes {
		if i, ok := index[q.ClassName]; ok {
			summary[i] = q
			continue
		}

		index[q.ClassName] = len(summary)
		summary = append(summary, q)
	}

	return summary
}
