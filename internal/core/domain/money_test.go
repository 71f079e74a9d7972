package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vttkeeper/coin_purse_app/internal/core/domain"
)

func TestMoney_RoundTrip(t *testing.T) {
	// toBaseUnits(fromBaseUnits(n)) == n across negative, zero and large totals
	totals := []int64{-123456, -2500, -1001, -1000, -999, -5, -1, 0, 1, 9, 10, 99, 100, 999, 1000, 1001, 2200, 123456789}
	for _, n := range totals {
		m := domain.FromBaseUnits(n)
		assert.Equal(t, n, m.ToBaseUnits(), "round trip failed for total %d (got record %+v)", n, m)
	}
}

func TestFromBaseUnits_CanonicalRange(t *testing.T) {
	for _, n := range []int64{0, 1, 9, 10, 55, 99, 100, 999, 1000, 1234, 99999, 1234567} {
		m := domain.FromBaseUnits(n)
		assert.GreaterOrEqual(t, m.Gold, int64(0), "gold negative for %d", n)
		for name, v := range map[string]int64{"silver": m.Silver, "copper": m.Copper, "nickel": m.Nickel} {
			assert.GreaterOrEqual(t, v, int64(0), "%s negative for %d", name, n)
			assert.LessOrEqual(t, v, int64(9), "%s out of range for %d", name, n)
		}
	}
}

func TestFromBaseUnits_NegativeFloorDivision(t *testing.T) {
	// Gold absorbs the sign; all lower denominations stay non-negative.
	m := domain.FromBaseUnits(-5)
	assert.Equal(t, domain.Money{Gold: -1, Silver: 9, Copper: 9, Nickel: 5}, m)
	assert.Equal(t, int64(-5), m.ToBaseUnits())

	m = domain.FromBaseUnits(-1000)
	assert.Equal(t, domain.Money{Gold: -1, Silver: 0, Copper: 0, Nickel: 0}, m)
}

func TestMoney_Optimize(t *testing.T) {
	tests := []struct {
		name  string
		money domain.Money
		want  domain.Money
	}{
		{
			name:  "23 nickel carries into copper",
			money: domain.Money{Nickel: 23},
			want:  domain.Money{Copper: 2, Nickel: 3},
		},
		{
			name:  "12 silver carries into gold",
			money: domain.Money{Gold: 1, Silver: 12},
			want:  domain.Money{Gold: 2, Silver: 2},
		},
		{
			name:  "already canonical is unchanged",
			money: domain.Money{Gold: 3, Silver: 9, Copper: 0, Nickel: 1},
			want:  domain.Money{Gold: 3, Silver: 9, Copper: 0, Nickel: 1},
		},
		{
			name:  "mixed overflow across all denominations",
			money: domain.Money{Gold: 0, Silver: 10, Copper: 10, Nickel: 10},
			want:  domain.Money{Gold: 1, Silver: 1, Copper: 1, Nickel: 0},
		},
		{
			name:  "negative copper borrows from silver",
			money: domain.Money{Silver: 1, Copper: -1},
			want:  domain.Money{Copper: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.money.Optimize()
			assert.Equal(t, tt.want, got)
			// Idempotence: optimizing twice changes nothing further
			assert.Equal(t, got, got.Optimize())
		})
	}
}

func TestMoney_NeedsOptimization(t *testing.T) {
	tests := []struct {
		name  string
		money domain.Money
		want  bool
	}{
		{name: "ten nickel", money: domain.Money{Nickel: 10}, want: true},
		{name: "ten copper", money: domain.Money{Copper: 10}, want: true},
		{name: "ten silver", money: domain.Money{Silver: 10}, want: true},
		{name: "canonical single gold", money: domain.Money{Gold: 1}, want: false},
		{name: "zero record", money: domain.Money{}, want: false},
		{name: "negative copper", money: domain.Money{Copper: -1}, want: true},
		{name: "negative gold", money: domain.Money{Gold: -1}, want: true},
		{name: "nines everywhere", money: domain.Money{Gold: 9, Silver: 9, Copper: 9, Nickel: 9}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.money.NeedsOptimization())
		})
	}
}

func TestMoney_TotalWorth(t *testing.T) {
	assert.Equal(t, "0.023", domain.Money{Nickel: 23}.TotalWorth().String())
	assert.Equal(t, "2.2", domain.Money{Gold: 1, Silver: 12}.TotalWorth().String())
	assert.Equal(t, "0", domain.Money{}.TotalWorth().String())
}
