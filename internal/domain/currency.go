package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// USD is the reference currency for cross conversions.
const USD = "USD"

// ExchangeRate is a directional quote between two currencies.
// The inverse rate is derived as 1/Rate, never assumed stored.
type ExchangeRate struct {
	From      string
	To        string
	Rate      decimal.Decimal
	UpdatedAt time.Time
}

// RateTable maps from -> to -> latest exchange rate.
type RateTable struct {
	rates       map[string]map[string]ExchangeRate
	lastUpdated time.Time
}

// NewRateTable builds a lookup table from a rate snapshot.
// When the snapshot carries multiple rates for the same pair, the
// one with the latest UpdatedAt wins.
func NewRateTable(rates []ExchangeRate) *RateTable {
	t := &RateTable{rates: make(map[string]map[string]ExchangeRate)}
	for _, r := range rates {
		if r.Rate.LessThanOrEqual(decimal.Zero) {
			continue
		}
		byTo, ok := t.rates[r.From]
		if !ok {
			byTo = make(map[string]ExchangeRate)
			t.rates[r.From] = byTo
		}
		if existing, ok := byTo[r.To]; ok && existing.UpdatedAt.After(r.UpdatedAt) {
			continue
		}
		byTo[r.To] = r
		if r.UpdatedAt.After(t.lastUpdated) {
			t.lastUpdated = r.UpdatedAt
		}
	}
	return t
}

// LastUpdated returns the newest UpdatedAt across the table.
func (t *RateTable) LastUpdated() time.Time {
	return t.lastUpdated
}

// Rates returns the retained rates as a flat slice.
func (t *RateTable) Rates() []ExchangeRate {
	out := make([]ExchangeRate, 0, len(t.rates))
	for _, byTo := range t.rates {
		for _, r := range byTo {
			out = append(out, r)
		}
	}
	return out
}

// direct returns the stored quote for from->to, if any.
func (t *RateTable) direct(from, to string) (decimal.Decimal, bool) {
	byTo, ok := t.rates[from]
	if !ok {
		return decimal.Decimal{}, false
	}
	r, ok := byTo[to]
	if !ok {
		return decimal.Decimal{}, false
	}
	return r.Rate, true
}

// pairFactor resolves a conversion factor using the direct quote,
// falling back to the inverse of the reverse quote.
func (t *RateTable) pairFactor(from, to string) (decimal.Decimal, bool) {
	if rate, ok := t.direct(from, to); ok {
		return rate, true
	}
	if rate, ok := t.direct(to, from); ok && !rate.IsZero() {
		return decimal.NewFromInt(1).Div(rate), true
	}
	return decimal.Decimal{}, false
}

// Factor resolves the unrounded conversion factor between two currencies:
// identity, then direct, then inverse, then cross via USD.
func (t *RateTable) Factor(from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	if f, ok := t.pairFactor(from, to); ok {
		return f, nil
	}
	toUSD, ok := t.pairFactor(from, USD)
	if !ok {
		return decimal.Decimal{}, ErrRateNotFound
	}
	fromUSD, ok := t.pairFactor(USD, to)
	if !ok {
		return decimal.Decimal{}, ErrRateNotFound
	}
	return toUSD.Mul(fromUSD), nil
}

// Convert applies the resolved factor to amount, rounding to 2 decimal
// places only at the final step. Identity conversions return the amount
// unchanged without rounding.
func (t *RateTable) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	factor, err := t.Factor(from, to)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return RoundMoney(amount.Mul(factor)), nil
}

// RoundMoney rounds to 2 decimal places, half away from zero.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// PriceSet carries the convertible monetary fields of a product.
// Nil fields are absent and skipped by conversion.
type PriceSet struct {
	Price     *decimal.Decimal
	MRP       *decimal.Decimal
	SalePrice *decimal.Decimal
}

// ConvertPriceSet converts every present field of ps from one currency
// to another. The whole set fails with ErrRateNotFound when no path
// exists, so callers can skip that target currency as a unit.
func (t *RateTable) ConvertPriceSet(ps PriceSet, from, to string) (PriceSet, error) {
	if _, err := t.Factor(from, to); err != nil {
		return PriceSet{}, err
	}
	out := PriceSet{}
	fields := []struct {
		src *decimal.Decimal
		dst **decimal.Decimal
	}{
		{ps.Price, &out.Price},
		{ps.MRP, &out.MRP},
		{ps.SalePrice, &out.SalePrice},
	}
	for _, f := range fields {
		if f.src == nil {
			continue
		}
		converted, err := t.Convert(*f.src, from, to)
		if err != nil {
			return PriceSet{}, err
		}
		*f.dst = &converted
	}
	return out, nil
}
