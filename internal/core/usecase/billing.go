package usecase

import (
	"context"
	"errors"

	"github.com/insightlab/research-assistant/internal/core/domain"
	"github.com/insightlab/research-assistant/internal/core/ports"
)

// BillingUseCase fronts the credit ledger for the API surface.
type BillingUseCase struct {
	ledger ports.CreditLedger
}

func NewBillingUseCase(ledger ports.CreditLedger) *BillingUseCase {
	return &BillingUseCase{ledger: ledger}
}

func (uc *BillingUseCase) Balance(ctx context.Context) (int, error) {
	return uc.ledger.Balance(ctx)
}

func (uc *BillingUseCase) Purchase(ctx context.Context, credits int, amountUSD float64, description string) (int, error) {
	if credits <= 0 {
		return 0, domain.WrapError(domain.ErrInvalidInput, "purchase credits", errors.New("credits must be positive"))
	}
	return uc.ledger.Purchase(ctx, credits, amountUSD, description)
}

func (uc *BillingUseCase) History(ctx context.Context) ([]domain.CreditTransaction, error) {
	return uc.ledger.History(ctx)
}
