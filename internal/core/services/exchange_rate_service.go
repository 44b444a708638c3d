package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/erp_fx_service/internal/apperrors"
	"github.com/SscSPs/erp_fx_service/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_fx_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_fx_service/internal/core/ports/services"
	"github.com/SscSPs/erp_fx_service/internal/dto"
	"github.com/SscSPs/erp_fx_service/internal/utils"
	"github.com/SscSPs/erp_fx_service/internal/utils/pagination"
	"github.com/google/uuid"
)

// ExchangeRateService administers stored exchange rate rows.
type ExchangeRateService struct {
	BaseService
	rateRepo        portsrepo.ExchangeRateRepositoryFacade
	currencyService portssvc.CurrencyReaderSvc
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyService portssvc.CurrencyReaderSvc) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo:        rateRepo,
		currencyService: currencyService,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)

const (
	defaultListLimit = 20
	maxListLimit     = 200
)

// CreateExchangeRate records a new quote. Existing rows are never modified.
func (s *ExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	from, err := domain.NormalizeCurrencyCode(req.FromCurrencyCode)
	if err != nil {
		return nil, err
	}
	to, err := domain.NormalizeCurrencyCode(req.ToCurrencyCode)
	if err != nil {
		return nil, err
	}
	if !req.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if from == to {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}
	if req.EffectiveTo != nil && req.EffectiveTo.Before(req.EffectiveFrom) {
		return nil, fmt.Errorf("%w: effectiveTo must not be before effectiveFrom", apperrors.ErrValidation)
	}

	if err := s.requireActiveCurrency(ctx, from, "from"); err != nil {
		return nil, err
	}
	if err := s.requireActiveCurrency(ctx, to, "to"); err != nil {
		return nil, err
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = domain.DefaultRateSource
	}

	now := time.Now()
	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             req.Rate,
		Source:           source,
		EffectiveFrom:    req.EffectiveFrom,
		EffectiveTo:      req.EffectiveTo,
		IsActive:         true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate",
			slog.String("from", from), slog.String("to", to))
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate created",
		slog.String("rate_id", rate.ExchangeRateID),
		slog.String("from", from),
		slog.String("to", to),
		slog.String("rate", rate.Rate.String()))
	return &rate, nil
}

func (s *ExchangeRateService) requireActiveCurrency(ctx context.Context, code, side string) error {
	currency, err := s.currencyService.GetCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: '%s' currency code '%s' not found", apperrors.ErrValidation, side, code)
		}
		return fmt.Errorf("failed to validate '%s' currency '%s': %w", side, code, err)
	}
	if !currency.IsActive {
		return fmt.Errorf("%w: '%s' currency code '%s' is inactive", apperrors.ErrValidation, side, code)
	}
	return nil
}

func (s *ExchangeRateService) GetExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	rate, err := s.rateRepo.FindExchangeRateByID(ctx, rateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	return rate, nil
}

// ListExchangeRates returns one page of rows. NextToken is set only when more rows exist.
// A non-positive limit falls back to the default page size.
func (s *ExchangeRateService) ListExchangeRates(ctx context.Context, params dto.ListExchangeRatesParams) (*dto.ListExchangeRatesResponse, error) {
	limit := params.Limit
	if limit < 1 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	filter := portsrepo.ExchangeRateFilter{Limit: limit + 1}

	if params.FromCurrencyCode != "" {
		from, err := domain.NormalizeCurrencyCode(params.FromCurrencyCode)
		if err != nil {
			return nil, err
		}
		filter.FromCurrencyCode = &from
	}
	if params.ToCurrencyCode != "" {
		to, err := domain.NormalizeCurrencyCode(params.ToCurrencyCode)
		if err != nil {
			return nil, err
		}
		filter.ToCurrencyCode = &to
	}
	if params.ActiveOnly {
		active := true
		filter.IsActive = &active
	}
	asOf, err := utils.ParseAsOf(params.AsOf)
	if err != nil {
		return nil, err
	}
	filter.EffectiveAt = asOf

	if params.NextToken != "" {
		cursor, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		filter.AfterEffectiveFrom = &cursor.SortKey
		filter.AfterCreatedAt = &cursor.TieBreak
		filter.AfterExchangeRateID = &cursor.ID
	}

	rates, err := s.rateRepo.ListExchangeRates(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates")
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}

	var nextToken *string
	if len(rates) > limit {
		rates = rates[:limit]
		last := rates[len(rates)-1]
		token := pagination.EncodeToken(pagination.Cursor{
			SortKey:  last.EffectiveFrom,
			TieBreak: last.CreatedAt,
			ID:       last.ExchangeRateID,
		})
		nextToken = &token
	}

	resp := dto.ListExchangeRatesResponse{
		ExchangeRates: dto.ToListExchangeRateResponse(rates),
		NextToken:     nextToken,
	}
	return &resp, nil
}

// CloseExchangeRate bounds a row's validity window. A window can only be shortened.
func (s *ExchangeRateService) CloseExchangeRate(ctx context.Context, rateID string, req dto.CloseExchangeRateRequest, userID string) (*domain.ExchangeRate, error) {
	rate, err := s.GetExchangeRateByID(ctx, rateID)
	if err != nil {
		return nil, err
	}
	if req.EffectiveTo.Before(rate.EffectiveFrom) {
		return nil, fmt.Errorf("%w: effectiveTo must not be before effectiveFrom", apperrors.ErrValidation)
	}
	if rate.EffectiveTo != nil && req.EffectiveTo.After(*rate.EffectiveTo) {
		return nil, fmt.Errorf("%w: effectiveTo can only be moved earlier", apperrors.ErrValidation)
	}

	if err := s.rateRepo.CloseExchangeRate(ctx, rateID, req.EffectiveTo, userID); err != nil {
		s.LogError(ctx, err, "Failed to close exchange rate", slog.String("rate_id", rateID))
		return nil, fmt.Errorf("failed to close exchange rate: %w", err)
	}

	effectiveTo := req.EffectiveTo
	rate.EffectiveTo = &effectiveTo
	rate.LastUpdatedAt = time.Now()
	rate.LastUpdatedBy = userID
	s.LogInfo(ctx, "Exchange rate closed", slog.String("rate_id", rateID), slog.Time("effective_to", effectiveTo))
	return rate, nil
}

func (s *ExchangeRateService) DeactivateExchangeRate(ctx context.Context, rateID string, userID string) error {
	rate, err := s.GetExchangeRateByID(ctx, rateID)
	if err != nil {
		return err
	}
	if !rate.IsActive {
		return nil
	}
	if err := s.rateRepo.DeactivateExchangeRate(ctx, rateID, userID); err != nil {
		s.LogError(ctx, err, "Failed to deactivate exchange rate", slog.String("rate_id", rateID))
		return fmt.Errorf("failed to deactivate exchange rate: %w", err)
	}
	s.LogInfo(ctx, "Exchange rate deactivated", slog.String("rate_id", rateID), slog.String("user_id", userID))
	return nil
}
