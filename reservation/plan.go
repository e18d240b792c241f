package reservation

import "github.com/yeremiapane/coffee-shop/models"

const (
	// MsgNoCombination is reported when no set of tables seats a large party.
	MsgNoCombination = "no combination available"
	// MsgNoSingleTable is reported when no free table matches a small party exactly.
	MsgNoSingleTable = "no single table available"
)

// Suggestion is what the availability endpoint returns for one party size.
type Suggestion struct {
	PartySize    int            `json:"party_size"`
	SingleTables []models.Table `json:"single_tables"`
	Combinations []Combination  `json:"combinations"`
	Message      string         `json:"message,omitempty"`
}

// Plan clamps the party size and runs whichever path applies: an exact
// single-table match up to SingleTableThreshold, combinations above it.
func Plan(tables []models.Table, partySize int) Suggestion {
	partySize = ClampPartySize(partySize)
	s := Suggestion{
		PartySize:    partySize,
		SingleTables: []models.Table{},
		Combinations: []Combination{},
	}

	if partySize <= SingleTableThreshold {
		s.SingleTables = FindSingleTables(tables, partySize)
		if len(s.SingleTables) == 0 {
			s.Message = MsgNoSingleTable
		}
		return s
	}

	s.Combinations = FindCombinations(tables, partySize)
	if len(s.Combinations) == 0 {
		s.Message = MsgNoCombination
	}
	return s
}

// Seats adds up the capacity of the given tables.
func Seats(tables []models.Table) int {
	total := 0
	for _, t := range tables {
		total += t.Capacity
	}
	return total
}
