package exchange

import (
	"context"
	"fmt"
	"go-balance-rates/domain"
	"go-balance-rates/page"
	"io"
)

//go:generate mockgen -package=http -destination=../http/mock_service_test.go -source=service.go Service

// Service interface for converting displayed balances into related currencies
type Service interface {
	// Convert converts one balance with the given rates
	Convert(ctx context.Context, source domain.Currency, balance string, rates domain.Rates) ([]domain.Conversion, error)

	// Augment reads a banking page from r, adds conversion rows to every card and writes the page to w
	Augment(ctx context.Context, r io.Reader, w io.Writer) (Summary, error)
}

// Summary what a single Augment pass did
type Summary struct {
	Cards int
	Rates int
	Rows  int
}

// service converts balances with a fixed Policy
type service struct {
	policy Policy
	mode   page.RowMode
}

// NewService constructs a valid Service
func NewService(policy Policy, mode page.RowMode) Service {
	return &service{
		policy: policy,
		mode:   mode,
	}
}

// Convert never fails on bad numbers or missing rates, those conversions are skipped or render as zero.
func (s *service) Convert(ctx context.Context, source domain.Currency, balance string, rates domain.Rates) ([]domain.Conversion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.policy.Convert(source, balance, rates), nil
}

// Augment fails when the page lacks the rate table or a card is malformed.
func (s *service) Augment(ctx context.Context, r io.Reader, w io.Writer) (Summary, error) {
	doc, err := page.Parse(r)
	if err != nil {
		return Summary{}, fmt.Errorf("augment: %w", err)
	}

	quotes, err := doc.Rates()
	if err != nil {
		return Summary{}, fmt.Errorf("reading rates: %w", err)
	}
	rates := ParseRates(quotes)

	cards, err := doc.Cards()
	if err != nil {
		return Summary{}, fmt.Errorf("reading cards: %w", err)
	}

	summary := Summary{Cards: len(cards), Rates: len(rates)}
	for _, card := range cards {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		conversions := s.policy.Convert(card.Currency, card.Balance, rates)
		doc.Insert(card, conversions, s.mode)
		summary.Rows += len(conversions)
	}

	if err := doc.Write(w); err != nil {
		return summary, fmt.Errorf("augment: %w", err)
	}
	return summary, nil
}
