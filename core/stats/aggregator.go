// ABOUTME: Stats aggregator computes descriptive statistics over a snapshot
// ABOUTME: Pure, single-pass function; unparseable prices never cause a failure

package stats

import (
	"math"

	"catalog-app-api/core/domain"
)

// uncategorized is the bucket for items with no category
const uncategorized = "uncategorized"

// Compute derives statistics from the item collection in one pass.
// Every item counts toward TotalItems and Categories; only items with a
// parseable price contribute to the price figures. Empty input yields the
// zero-value stats with an empty category map.
func Compute(items []domain.Item) domain.Stats {
	stats := domain.Stats{
		TotalItems: len(items),
		Categories: make(map[string]int),
	}

	var sum, min, max float64
	priced := 0

	for i := range items {
		category := items[i].Category
		if category == "" {
			category = uncategorized
		}
		stats.Categories[category]++

		price, ok := items[i].PriceValue()
		if !ok {
			continue
		}

		if priced == 0 {
			min, max = price, price
		} else {
			if price < min {
				min = price
			}
			if price > max {
				max = price
			}
		}
		sum += price
		priced++
	}

	if priced > 0 {
		stats.AveragePrice = math.Round(sum/float64(priced)*100) / 100
		stats.MinPrice = min
		stats.MaxPrice = max
	}

	return stats
}
