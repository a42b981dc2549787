package exchange

import (
	"context"
	"github.com/go-kit/log"
	"go-balance-rates/domain"
	"io"
	"time"
)

// loggingService decorates an exchange.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(ctx context.Context, source domain.Currency, balance string, rates domain.Rates) (conversions []domain.Conversion, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "convert",
			"currency", source,
			"balance", balance,
			"rates", len(rates),
			"conversions", len(conversions),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, source, balance, rates)
}

func (s *loggingService) Augment(ctx context.Context, r io.Reader, w io.Writer) (summary Summary, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "augment",
			"cards", summary.Cards,
			"rates", summary.Rates,
			"rows", summary.Rows,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Augment(ctx, r, w)
}
