package domain

import "github.com/shopspring/decimal"

// Denomination weights in base units (nickel is the base unit).
const (
	NickelWeight int64 = 1
	CopperWeight int64 = 10
	SilverWeight int64 = 100
	GoldWeight   int64 = 1000
)

// Money is a four-denomination coin purse. Fields may hold any integer during
// intermediate states; canonical form keeps silver, copper and nickel in
// [0,9] with gold absorbing all overflow (there is no denomination above it).
// Missing JSON fields decode as 0.
type Money struct {
	Gold   int64 `json:"gold"`
	Silver int64 `json:"silver"`
	Copper int64 `json:"copper"`
	Nickel int64 `json:"nickel"`
}

// ToBaseUnits collapses the record into a single base-unit count.
func (m Money) ToBaseUnits() int64 {
	return m.Gold*GoldWeight + m.Silver*SilverWeight + m.Copper*CopperWeight + m.Nickel*NickelWeight
}

// FromBaseUnits decomposes a base-unit total into a coin record, highest
// denomination first. Floor division keeps every remainder non-negative, so
// for a negative total gold alone carries the sign. The normal flow never
// passes a negative total here (negatives are clamped to the zero record
// upstream), but the decomposition stays consistent if called directly.
func FromBaseUnits(total int64) Money {
	gold := floorDiv(total, GoldWeight)
	rem := total - gold*GoldWeight
	silver := rem / SilverWeight
	rem -= silver * SilverWeight
	copper := rem / CopperWeight
	nickel := rem - copper*CopperWeight
	return Money{Gold: gold, Silver: silver, Copper: copper, Nickel: nickel}
}

// Optimize returns the canonical encoding of the same base-unit total.
// Idempotent.
func (m Money) Optimize() Money {
	return FromBaseUnits(m.ToBaseUnits())
}

// NeedsOptimization reports whether the record is out of canonical form:
// any sub-gold denomination holding ten or more coins, or any denomination
// holding a negative count.
func (m Money) NeedsOptimization() bool {
	if m.Nickel >= 10 || m.Copper >= 10 || m.Silver >= 10 {
		return true
	}
	return m.Nickel < 0 || m.Copper < 0 || m.Silver < 0 || m.Gold < 0
}

// TotalWorth expresses the purse as a decimal amount of gold, for display.
func (m Money) TotalWorth() decimal.Decimal {
	return decimal.NewFromInt(m.ToBaseUnits()).Div(decimal.NewFromInt(GoldWeight))
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
