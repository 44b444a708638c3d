package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_fx_service/internal/apperrors"
	"github.com/SscSPs/erp_fx_service/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_fx_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_fx_service/internal/core/ports/services"
	"github.com/SscSPs/erp_fx_service/internal/dto"
)

// CurrencyService manages the currency reference table.
type CurrencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	code, err := domain.NormalizeCurrencyCode(req.CurrencyCode)
	if err != nil {
		return nil, err
	}

	existing, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing currency", slog.String("currency_code", code))
		return nil, fmt.Errorf("failed to check existing currency: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: currency %s", apperrors.ErrDuplicate, code)
	}

	now := time.Now()
	currency := domain.Currency{
		CurrencyCode: code,
		Symbol:       req.Symbol,
		Name:         req.Name,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to save currency", slog.String("currency_code", code))
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	s.LogInfo(ctx, "Currency created", slog.String("currency_code", code), slog.String("user_id", creatorUserID))
	return &currency, nil
}

func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code, err := domain.NormalizeCurrencyCode(currencyCode)
	if err != nil {
		return nil, err
	}
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *CurrencyService) ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListActiveCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active currencies")
		return nil, fmt.Errorf("failed to list active currencies in service: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *CurrencyService) DeactivateCurrency(ctx context.Context, currencyCode string, userID string) error {
	currency, err := s.GetCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return err
	}
	if !currency.IsActive {
		return nil
	}
	if err := s.currencyRepo.DeactivateCurrency(ctx, currency.CurrencyCode, userID); err != nil {
		s.LogError(ctx, err, "Failed to deactivate currency", slog.String("currency_code", currency.CurrencyCode))
		return fmt.Errorf("failed to deactivate currency: %w", err)
	}
	s.LogInfo(ctx, "Currency deactivated", slog.String("currency_code", currency.CurrencyCode), slog.String("user_id", userID))
	return nil
}
