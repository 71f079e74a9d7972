package utils

import (
	"fmt"

	"github.com/vttkeeper/coin_purse_app/internal/core/domain"
)

// FormatPurse renders a purse as a compact denomination string.
// Example: {Gold:2, Silver:3, Copper:0, Nickel:1} returns "2gp 3sp 0cp 1np".
func FormatPurse(m domain.Money) string {
	return fmt.Sprintf("%dgp %dsp %dcp %dnp", m.Gold, m.Silver, m.Copper, m.Nickel)
}

// FormatWorth renders the purse's total value in gold with two decimal
// places, for display alongside the raw denomination counts.
// Example: 23 nickel returns "0.02".
func FormatWorth(m domain.Money) string {
	return m.TotalWorth().Round(2).String()
}
