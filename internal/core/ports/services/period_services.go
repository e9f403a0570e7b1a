package services

import (
	"context"

	"github.com/jgbarallobre/Contable/internal/core/domain"
	"github.com/jgbarallobre/Contable/internal/dto"
)

// PeriodSvcFacade defines operations on the period registry.
type PeriodSvcFacade interface {
	// GetPeriod retrieves a period by id.
	GetPeriod(ctx context.Context, caller domain.AuthUser, periodID string) (*domain.Period, error)

	// FindOpenPeriod retrieves the company's earliest OPEN period.
	FindOpenPeriod(ctx context.Context, caller domain.AuthUser) (*domain.Period, error)

	// ListPeriods retrieves the company's periods with optional filters.
	ListPeriods(ctx context.Context, caller domain.AuthUser, params dto.ListPeriodsParams) ([]domain.Period, error)

	// ClosePeriod closes an OPEN period after verifying its approved entries
	// balance exactly.
	ClosePeriod(ctx context.Context, caller domain.AuthUser, periodID string, note *string) (*domain.Period, error)

	// ReopenPeriod reopens a CLOSED period unless the following month's
	// period is currently open.
	ReopenPeriod(ctx context.Context, caller domain.AuthUser, periodID string, note *string) (*domain.Period, error)

	// CreateYear creates the twelve OPEN monthly periods of a year.
	CreateYear(ctx context.Context, caller domain.AuthUser, year int) ([]domain.Period, error)
}
