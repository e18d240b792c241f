// Package reservation picks tables for a party: an exact single-table match for
// small parties and a search over table combinations for large ones.
package reservation

import (
	"sort"

	"github.com/yeremiapane/coffee-shop/models"
)

const (
	// SingleTableThreshold is the largest party seated at one table.
	SingleTableThreshold = 6
	// MaxCombinations caps how many combinations are suggested.
	MaxCombinations = 3
)

// Combination is a set of tables jointly assigned to one party.
type Combination struct {
	Tables        []models.Table `json:"tables"`
	TotalCapacity int            `json:"total_capacity"`
}

// TableIDs returns the ids of the tables in the combination, in order.
func (c Combination) TableIDs() []uint {
	ids := make([]uint, len(c.Tables))
	for i, t := range c.Tables {
		ids[i] = t.ID
	}
	return ids
}

// ClampPartySize treats anything below one guest as a party of one.
func ClampPartySize(partySize int) int {
	if partySize < 1 {
		return 1
	}
	return partySize
}

// FindSingleTables returns the available tables whose capacity equals partySize.
func FindSingleTables(tables []models.Table, partySize int) []models.Table {
	matches := make([]models.Table, 0)
	for _, t := range tables {
		if t.IsAvailable && t.Capacity == partySize {
			matches = append(matches, t)
		}
	}
	return matches
}

// FindCombinations returns up to MaxCombinations sets of available tables whose
// capacities add up to at least partySize, tightest fit first. Parties that fit
// a single table get an empty result, as does an unsatisfiable request.
//
// The search enumerates subsets depth first over tables sorted by descending
// capacity and stops growing a subset as soon as it seats the party. It is
// exponential in the number of tables and meant for floor plans of a few dozen.
//
// Ranking is by total capacity only, so a smaller total made of more tables
// beats a larger total made of fewer.
func FindCombinations(tables []models.Table, partySize int) []Combination {
	if partySize <= SingleTableThreshold {
		return []Combination{}
	}

	available := make([]models.Table, 0, len(tables))
	for _, t := range tables {
		if t.IsAvailable && t.Capacity > 0 {
			available = append(available, t)
		}
	}
	sort.SliceStable(available, func(i, j int) bool {
		return available[i].Capacity > available[j].Capacity
	})

	var candidates []Combination
	current := make([]models.Table, 0, len(available))

	var search func(start, seats int)
	search = func(start, seats int) {
		if seats >= partySize {
			picked := make([]models.Table, len(current))
			copy(picked, current)
			candidates = append(candidates, Combination{Tables: picked, TotalCapacity: seats})
			return
		}
		for i := start; i < len(available); i++ {
			current = append(current, available[i])
			search(i+1, seats+available[i].Capacity)
			current = current[:len(current)-1]
		}
	}
	search(0, 0)

	result := make([]Combination, 0, len(candidates))
	for _, c := range candidates {
		if c.TotalCapacity >= partySize {
			result = append(result, c)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalCapacity < result[j].TotalCapacity
	})
	if len(result) > MaxCombinations {
		result = result[:MaxCombinations]
	}
	return result
}
