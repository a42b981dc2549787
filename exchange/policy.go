package exchange

import (
	"go-balance-rates/domain"
	"go-balance-rates/numeric"
)

// Policy decides which currencies a balance is converted into and how.
type Policy struct {
	// Base local currency, rates are quoted in it
	Base domain.Currency
	// ForeignA and ForeignB reference foreign currencies quoted against Base
	ForeignA domain.Currency
	ForeignB domain.Currency
	// Cross the ForeignB/ForeignA pair
	Cross domain.Currency
	// Decimals precision of converted amounts
	Decimals int
}

// DefaultPolicy converts between BYN, USD and EUR.
func DefaultPolicy() Policy {
	return Policy{
		Base:     "BYN",
		ForeignA: "USD",
		ForeignB: "EUR",
		Cross:    "EUR/USD",
		Decimals: numeric.DefaultDecimals,
	}
}

// Convert converts balance held in source into the related currencies.
// A conversion whose rate is missing from rates is skipped.
func (p Policy) Convert(source domain.Currency, balance string, rates domain.Rates) []domain.Conversion {
	style := numeric.Infer(balance)
	amount := numeric.ParseStyle(balance, style)

	var out []domain.Conversion
	for _, rate := range p.targets(source, rates) {
		converted := amount / rate.Cell
		out = append(out, domain.Conversion{
			Currency: rate.Currency,
			Amount:   converted,
			Text:     numeric.FormatStyle(converted, p.Decimals, style),
		})
	}
	return out
}

// targets lists the rates a source balance is divided by.
func (p Policy) targets(source domain.Currency, rates domain.Rates) []domain.Rate {
	var out []domain.Rate
	add := func(rate domain.Rate, ok bool) {
		if ok {
			out = append(out, rate)
		}
	}

	switch source {
	case p.Base:
		add(p.quoted(rates, p.ForeignA))
		add(p.quoted(rates, p.ForeignB))
	case p.ForeignA:
		add(p.toBase(rates, p.ForeignA))
		add(p.cross(rates, p.ForeignB, true))
	case p.ForeignB:
		add(p.toBase(rates, p.ForeignB))
		add(p.cross(rates, p.ForeignA, false))
	}
	return out
}

func (p Policy) quoted(rates domain.Rates, currency domain.Currency) (domain.Rate, bool) {
	rate, ok := rates[currency]
	if !ok {
		return domain.Rate{}, false
	}
	rate.Currency = currency
	return rate, true
}

// toBase inverts the quote of a foreign currency into a rate towards Base.
func (p Policy) toBase(rates domain.Rates, currency domain.Currency) (domain.Rate, bool) {
	rate, ok := rates[currency]
	if !ok {
		return domain.Rate{}, false
	}
	return domain.Rate{
		Currency: p.Base,
		Buy:      1 / rate.Cell,
		Cell:     1 / rate.Buy,
	}, true
}

// cross derives a rate towards target from the cross pair, swapping sides when swap is set.
func (p Policy) cross(rates domain.Rates, target domain.Currency, swap bool) (domain.Rate, bool) {
	rate, ok := rates[p.Cross]
	if !ok {
		return domain.Rate{}, false
	}
	if swap {
		rate.Buy, rate.Cell = rate.Cell, rate.Buy
	}
	rate.Currency = target
	return rate, true
}

// ParseRates builds the rate table from displayed quotes. A later quote for
// the same currency replaces an earlier one.
func ParseRates(quotes []domain.RateQuote) domain.Rates {
	rates := make(domain.Rates, len(quotes))
	for _, q := range quotes {
		rates[q.Currency] = domain.Rate{
			Currency: q.Currency,
			Buy:      numeric.ParseInferred(q.Buy),
			Cell:     numeric.ParseInferred(q.Cell),
		}
	}
	return rates
}
