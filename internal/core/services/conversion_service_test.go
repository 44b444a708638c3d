package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/erp_fx_service/internal/apperrors"
	"github.com/SscSPs/erp_fx_service/internal/core/domain"
	portssvc "github.com/SscSPs/erp_fx_service/internal/core/ports/services"
	"github.com/SscSPs/erp_fx_service/internal/core/services"
	"github.com/SscSPs/erp_fx_service/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ConversionServiceTestSuite struct {
	suite.Suite
	mockResolver *MockRateResolver
	metrics      *metrics.ConversionMetrics
	service      portssvc.ConversionSvc
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.mockResolver = new(MockRateResolver)
	suite.metrics = metrics.NewConversionMetrics(prometheus.NewRegistry())
	suite.service = services.NewConversionService(suite.mockResolver,
		services.WithConversionClock(func() time.Time { return testAsOf }),
		services.WithConversionMetrics(suite.metrics))
}

func resolution(from, to, rate string, provenance domain.Provenance) *domain.RateResolution {
	return &domain.RateResolution{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		AsOf:             testAsOf,
		Rate:             decimal.RequireFromString(rate),
		Provenance:       provenance,
	}
}

func (suite *ConversionServiceTestSuite) TestSameCurrencyIsIdentity() {
	amount := decimal.RequireFromString("123.456")

	result, err := suite.service.Convert(context.Background(), "GHS", "ghs", amount, nil)

	suite.Require().NoError(err)
	suite.Equal(domain.ProvenanceSameCurrency, result.Provenance)
	suite.True(result.ConvertedAmount.Equal(amount))
	suite.True(result.RateUsed.Equal(decimal.NewFromInt(1)))
	suite.mockResolver.AssertNotCalled(suite.T(), "ResolveRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestDirectConversion() {
	ctx := context.Background()
	suite.mockResolver.On("ResolveRate", ctx, "GHS", "USD", mock.Anything).
		Return(resolution("GHS", "USD", "0.081", domain.ProvenanceDirect), nil).Once()

	result, err := suite.service.Convert(ctx, "GHS", "USD", decimal.NewFromInt(1000), nil)

	suite.Require().NoError(err)
	suite.Equal(domain.ProvenanceDirect, result.Provenance)
	suite.Equal("81", result.ConvertedAmount.String())
	suite.Equal("81.00", result.ConvertedAmount.StringFixed(2))
	suite.Equal(float64(1), testutil.ToFloat64(suite.metrics.ConversionsTotal.WithLabelValues("DIRECT")))
}

func (suite *ConversionServiceTestSuite) TestInverseConversionRoundsHalfUp() {
	ctx := context.Background()
	suite.mockResolver.On("ResolveRate", ctx, "USD", "GHS", mock.Anything).
		Return(resolution("USD", "GHS", "12.3457", domain.ProvenanceInverse), nil).Once()

	result, err := suite.service.Convert(ctx, "USD", "GHS", decimal.NewFromInt(10), nil)

	suite.Require().NoError(err)
	suite.Equal(domain.ProvenanceInverse, result.Provenance)
	suite.Equal("123.46", result.ConvertedAmount.String())
	suite.Equal("12.3457", result.RateUsed.String())
}

func (suite *ConversionServiceTestSuite) TestAsOfDefaultsToClock() {
	ctx := context.Background()
	suite.mockResolver.On("ResolveRate", ctx, "GHS", "USD", mock.MatchedBy(func(asOf *time.Time) bool {
		return asOf != nil && asOf.Equal(testAsOf)
	})).Return(resolution("GHS", "USD", "0.081", domain.ProvenanceDirect), nil).Once()

	_, err := suite.service.Convert(ctx, "GHS", "USD", decimal.NewFromInt(1), nil)

	suite.Require().NoError(err)
	suite.mockResolver.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestUnresolvedRateFallsBack() {
	ctx := context.Background()
	amount := decimal.RequireFromString("5000")
	suite.mockResolver.On("ResolveRate", ctx, "NGN", "JPY", mock.Anything).
		Return(nil, apperrors.NewUnresolvedRateError("NGN", "JPY", apperrors.ErrNoInverseRate)).Once()

	result, err := suite.service.Convert(ctx, "NGN", "JPY", amount, nil)

	suite.Require().NoError(err)
	suite.True(result.IsFallback())
	suite.True(result.ConvertedAmount.Equal(amount))
	suite.True(result.RateUsed.Equal(decimal.NewFromInt(1)))
	suite.Equal("NGN", result.FromCurrencyCode)
	suite.Equal(float64(1), testutil.ToFloat64(suite.metrics.FallbacksTotal.WithLabelValues("no_rate")))
}

func (suite *ConversionServiceTestSuite) TestStoreFailureFallsBack() {
	ctx := context.Background()
	suite.mockResolver.On("ResolveRate", ctx, "GHS", "USD", mock.Anything).
		Return(nil, apperrors.ErrStoreUnavailable).Once()

	result, err := suite.service.Convert(ctx, "GHS", "USD", decimal.NewFromInt(42), nil)

	suite.Require().NoError(err)
	suite.True(result.IsFallback())
	suite.Equal("42", result.ConvertedAmount.String())
	suite.Equal(float64(1), testutil.ToFloat64(suite.metrics.FallbacksTotal.WithLabelValues("store_unavailable")))
}

func (suite *ConversionServiceTestSuite) TestMalformedCodeIsError() {
	_, err := suite.service.Convert(context.Background(), "GHS", "US", decimal.NewFromInt(1), nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ConversionServiceTestSuite) TestZeroAndNegativeAmounts() {
	ctx := context.Background()
	suite.mockResolver.On("ResolveRate", ctx, "GHS", "USD", mock.Anything).
		Return(resolution("GHS", "USD", "0.081", domain.ProvenanceDirect), nil)

	zero, err := suite.service.Convert(ctx, "GHS", "USD", decimal.Zero, nil)
	suite.Require().NoError(err)
	suite.True(zero.ConvertedAmount.IsZero())

	refund, err := suite.service.Convert(ctx, "GHS", "USD", decimal.NewFromInt(-100), nil)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "-8.1", refund.ConvertedAmount.String())
}

func TestConversionService(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}
