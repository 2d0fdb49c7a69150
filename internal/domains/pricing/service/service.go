package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"voyago/config"
	"voyago/infras/otel"
	"voyago/internal/domains/pricing/model"
	"voyago/internal/domains/pricing/model/dto"
	"voyago/shared/constant"
)

// Pricing composes display prices from fare inputs. Commission and VAT
// percentages are sourced from the commission service configuration, not
// fetched here.
type Pricing interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
	Compose(ctx context.Context, baseFare, tax float64) model.Breakdown
}

type serviceImpl struct {
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Pricing {
	return &serviceImpl{
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()

	breakdown := s.Compose(ctx, req.BaseFare, req.Tax)

	res.FromBreakdown(breakdown, s.cfg.Pricing.CommissionPercent, s.cfg.Pricing.VATPercent)

	return res, nil
}

func (s *serviceImpl) Compose(ctx context.Context, baseFare, tax float64) model.Breakdown {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Compose")
	defer scope.End()

	return model.Compose(baseFare, tax, s.cfg.Pricing.CommissionPercent, s.cfg.Pricing.VATPercent)
}
