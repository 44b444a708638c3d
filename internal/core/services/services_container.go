package services

import (
	portsrepo "github.com/SscSPs/erp_fx_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_fx_service/internal/core/ports/services"
	"github.com/SscSPs/erp_fx_service/internal/platform/config"
	"github.com/SscSPs/erp_fx_service/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, m *metrics.ConversionMetrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	currencySvc := NewCurrencyService(repos.CurrencyRepo)
	container.Currency = currencySvc
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, currencySvc)

	// Every conversion path shares one resolver over the rate store.
	container.RateResolver = NewRateResolver(repos.ExchangeRateRepo, WithResolverMetrics(m))
	container.Conversion = NewConversionService(container.RateResolver, WithConversionMetrics(m))
	container.PriceProjector = NewPriceProjector(container.RateResolver,
		WithProjectorMetrics(m),
		WithDefaultBaseCurrency(cfg.DefaultBaseCurrency),
		WithTaxRate(cfg.TaxRate),
		WithProjectionConcurrency(cfg.ProjectionConcurrency),
	)

	return container
}
