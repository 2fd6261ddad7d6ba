package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/insightlab/research-assistant/internal/core/domain"
	"github.com/insightlab/research-assistant/internal/core/ports"
)

type ReportUseCase struct {
	repo       ports.ReportRepository
	ledger     ports.CreditLedger
	creditCost int
}

func NewReportUseCase(repo ports.ReportRepository, ledger ports.CreditLedger, creditCost int) *ReportUseCase {
	return &ReportUseCase{
		repo:       repo,
		ledger:     ledger,
		creditCost: creditCost,
	}
}

// Create persists a report from reviewed search results. The only
// validation is a non-empty query; an absent title gets a default.
func (uc *ReportUseCase) Create(
	ctx context.Context,
	title, query string,
	results []domain.SearchResult,
) (*domain.Report, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "create report", errors.New("query is required"))
	}
	if strings.TrimSpace(title) == "" {
		title = "Research Report: " + truncate(query, 60)
	}
	if results == nil {
		results = []domain.SearchResult{}
	}

	report := &domain.Report{
		Title:       title,
		Query:       query,
		Results:     results,
		GeneratedAt: time.Now().UTC(),
		Status:      domain.ReportStatusCompleted,
	}
	if err := uc.repo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	if uc.ledger != nil && uc.creditCost > 0 {
		if _, err := uc.ledger.Charge(ctx, uc.creditCost, "Report: "+truncate(title, 80)); err != nil {
			slog.Warn("credit_charge_failed", "operation", "report", "error", err)
		}
	}
	return report, nil
}

// List returns reports newest first.
func (uc *ReportUseCase) List(ctx context.Context) ([]domain.Report, error) {
	return uc.repo.List(ctx)
}
