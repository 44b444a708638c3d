package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/erp_fx_service/internal/apperrors"
	"github.com/SscSPs/erp_fx_service/internal/core/domain"
	portssvc "github.com/SscSPs/erp_fx_service/internal/core/ports/services"
	"github.com/SscSPs/erp_fx_service/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var testAsOf = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func rateRow(id, from, to, rate string, effectiveFrom time.Time) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:   id,
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             decimal.RequireFromString(rate),
		Source:           domain.DefaultRateSource,
		EffectiveFrom:    effectiveFrom,
		IsActive:         true,
	}
}

type RateResolverTestSuite struct {
	suite.Suite
	mockRateRepo *MockExchangeRateRepository
	resolver     portssvc.RateResolverSvc
}

func (suite *RateResolverTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.resolver = services.NewRateResolver(suite.mockRateRepo,
		services.WithResolverClock(func() time.Time { return testAsOf }))
}

func (suite *RateResolverTestSuite) TestSameCurrency_NoStoreLookup() {
	resolution, err := suite.resolver.ResolveRate(context.Background(), "usd", "USD", nil)

	suite.Require().NoError(err)
	suite.Equal(domain.ProvenanceSameCurrency, resolution.Provenance)
	suite.True(resolution.Rate.Equal(decimal.NewFromInt(1)))
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateResolverTestSuite) TestDirectRate() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindRates", ctx, "GHS", "USD", testAsOf).
		Return([]domain.ExchangeRate{rateRow("r1", "GHS", "USD", "0.081", testAsOf.AddDate(0, -1, 0))}, nil).Once()

	resolution, err := suite.resolver.ResolveRate(ctx, "GHS", "USD", &testAsOf)

	suite.Require().NoError(err)
	suite.Equal(domain.ProvenanceDirect, resolution.Provenance)
	suite.Equal("0.081", resolution.Rate.String())
	suite.Equal("r1", resolution.ExchangeRateID)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *RateResolverTestSuite) TestInverseRate_RoundedToFourPlaces() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindRates", ctx, "USD", "GHS", testAsOf).Return([]domain.ExchangeRate{}, nil).Once()
	suite.mockRateRepo.On("FindRates", ctx, "GHS", "USD", testAsOf).
		Return([]domain.ExchangeRate{rateRow("r1", "GHS", "USD", "0.081", testAsOf.AddDate(0, -1, 0))}, nil).Once()

	resolution, err := suite.resolver.ResolveRate(ctx, "USD", "GHS", nil)

	suite.Require().NoError(err)
	suite.Equal(domain.ProvenanceInverse, resolution.Provenance)
	suite.Equal("12.3457", resolution.Rate.String())
	suite.Equal("USD", resolution.FromCurrencyCode)
	suite.Equal("GHS", resolution.ToCurrencyCode)
	suite.True(resolution.AsOf.Equal(testAsOf))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *RateResolverTestSuite) TestDirectPreferredOverInverse() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindRates", ctx, "EUR", "USD", testAsOf).
		Return([]domain.ExchangeRate{rateRow("r1", "EUR", "USD", "1.1", testAsOf.AddDate(0, 0, -1))}, nil).Once()

	resolution, err := suite.resolver.ResolveRate(ctx, "EUR", "USD", &testAsOf)

	suite.Require().NoError(err)
	suite.Equal(domain.ProvenanceDirect, resolution.Provenance)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRates", ctx, "USD", "EUR", testAsOf)
}

func (suite *RateResolverTestSuite) TestMostRecentlyEffectiveWins() {
	ctx := context.Background()
	rows := []domain.ExchangeRate{
		rateRow("older", "GHS", "USD", "0.080", testAsOf.AddDate(0, -2, 0)),
		rateRow("newer", "GHS", "USD", "0.082", testAsOf.AddDate(0, 0, -3)),
		// Not yet effective at asOf.
		rateRow("future", "GHS", "USD", "0.090", testAsOf.AddDate(0, 0, 1)),
	}
	suite.mockRateRepo.On("FindRates", ctx, "GHS", "USD", testAsOf).Return(rows, nil).Once()

	resolution, err := suite.resolver.ResolveRate(ctx, "GHS", "USD", &testAsOf)

	suite.Require().NoError(err)
	suite.Equal("newer", resolution.ExchangeRateID)
	suite.Equal("0.082", resolution.Rate.String())
}

func (suite *RateResolverTestSuite) TestEqualEffectiveFrom_FirstInStoreOrderWins() {
	ctx := context.Background()
	effective := testAsOf.AddDate(0, 0, -1)
	rows := []domain.ExchangeRate{
		rateRow("latest-created", "GHS", "USD", "0.083", effective),
		rateRow("earlier-created", "GHS", "USD", "0.081", effective),
	}
	suite.mockRateRepo.On("FindRates", ctx, "GHS", "USD", testAsOf).Return(rows, nil).Once()

	resolution, err := suite.resolver.ResolveRate(ctx, "GHS", "USD", &testAsOf)

	suite.Require().NoError(err)
	suite.Equal("latest-created", resolution.ExchangeRateID)
}

func (suite *RateResolverTestSuite) TestExpiredAndInactiveRowsIgnored() {
	ctx := context.Background()
	expiredAt := testAsOf.AddDate(0, 0, -1)
	expired := rateRow("expired", "GHS", "USD", "0.07", testAsOf.AddDate(0, -3, 0))
	expired.EffectiveTo = &expiredAt
	inactive := rateRow("inactive", "GHS", "USD", "0.09", testAsOf.AddDate(0, 0, -2))
	inactive.IsActive = false

	suite.mockRateRepo.On("FindRates", ctx, "GHS", "USD", testAsOf).Return([]domain.ExchangeRate{expired, inactive}, nil).Once()
	suite.mockRateRepo.On("FindRates", ctx, "USD", "GHS", testAsOf).Return([]domain.ExchangeRate{}, nil).Once()

	resolution, err := suite.resolver.ResolveRate(ctx, "GHS", "USD", &testAsOf)

	suite.Require().Error(err)
	suite.Nil(resolution)
	suite.ErrorIs(err, apperrors.ErrRateUnresolved)
}

func (suite *RateResolverTestSuite) TestZeroRateTreatedAsMissing() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindRates", ctx, "GHS", "USD", testAsOf).
		Return([]domain.ExchangeRate{rateRow("zero", "GHS", "USD", "0", testAsOf.AddDate(0, 0, -1))}, nil).Once()
	suite.mockRateRepo.On("FindRates", ctx, "USD", "GHS", testAsOf).
		Return([]domain.ExchangeRate{rateRow("zero-inv", "USD", "GHS", "0", testAsOf.AddDate(0, 0, -1))}, nil).Once()

	resolution, err := suite.resolver.ResolveRate(ctx, "GHS", "USD", &testAsOf)

	suite.Require().Error(err)
	suite.Nil(resolution)
	suite.ErrorIs(err, apperrors.ErrRateUnresolved)
	suite.ErrorIs(err, apperrors.ErrInvalidStoredRate)
}

func (suite *RateResolverTestSuite) TestZeroDirectFallsThroughToInverse() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindRates", ctx, "GHS", "USD", testAsOf).
		Return([]domain.ExchangeRate{rateRow("zero", "GHS", "USD", "0", testAsOf.AddDate(0, 0, -1))}, nil).Once()
	suite.mockRateRepo.On("FindRates", ctx, "USD", "GHS", testAsOf).
		Return([]domain.ExchangeRate{rateRow("inv", "USD", "GHS", "12.5", testAsOf.AddDate(0, 0, -1))}, nil).Once()

	resolution, err := suite.resolver.ResolveRate(ctx, "GHS", "USD", &testAsOf)

	suite.Require().NoError(err)
	suite.Equal(domain.ProvenanceInverse, resolution.Provenance)
	suite.Equal("0.08", resolution.Rate.String())
}

func (suite *RateResolverTestSuite) TestNoRateEitherDirection() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindRates", ctx, "GHS", "JPY", testAsOf).Return([]domain.ExchangeRate{}, nil).Once()
	suite.mockRateRepo.On("FindRates", ctx, "JPY", "GHS", testAsOf).Return(nil, nil).Once()

	resolution, err := suite.resolver.ResolveRate(ctx, "GHS", "JPY", &testAsOf)

	suite.Require().Error(err)
	suite.Nil(resolution)
	suite.ErrorIs(err, apperrors.ErrRateUnresolved)
	suite.ErrorIs(err, apperrors.ErrNoDirectRate)
	suite.ErrorIs(err, apperrors.ErrNoInverseRate)
	suite.NotErrorIs(err, apperrors.ErrInvalidStoredRate)
}

func (suite *RateResolverTestSuite) TestStoreError() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindRates", ctx, "GHS", "USD", testAsOf).Return(nil, assert.AnError).Once()

	resolution, err := suite.resolver.ResolveRate(ctx, "GHS", "USD", &testAsOf)

	suite.Require().Error(err)
	suite.Nil(resolution)
	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *RateResolverTestSuite) TestMalformedCode() {
	resolution, err := suite.resolver.ResolveRate(context.Background(), "GH", "USD", nil)

	suite.Require().Error(err)
	suite.Nil(resolution)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestRateResolver(t *testing.T) {
	suite.Run(t, new(RateResolverTestSuite))
}
