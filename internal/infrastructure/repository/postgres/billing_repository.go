package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/insightlab/research-assistant/internal/core/domain"
)

// BillingRepository keeps the append-only credit ledger. The balance is
// the sum of signed credits; charges clamp so it never goes below zero.
type BillingRepository struct {
	db *sql.DB
}

func NewBillingRepository(db *sql.DB) *BillingRepository {
	return &BillingRepository{db: db}
}

func (r *BillingRepository) Charge(ctx context.Context, credits int, description string) (int, error) {
	if credits <= 0 {
		return 0, fmt.Errorf("charge must be positive, got %d", credits)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin charge tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	balance, err := balanceTx(ctx, tx)
	if err != nil {
		return 0, err
	}

	debit := credits
	if debit > balance {
		debit = balance
	}
	if debit > 0 {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO credit_transactions (occurred_at, description, credits, amount_usd, status)
VALUES ($1,$2,$3,$4,$5)
`, time.Now().UTC(), description, -debit, 0.0, "completed"); err != nil {
			return 0, fmt.Errorf("insert charge: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit charge tx: %w", err)
	}
	return balance - debit, nil
}

func (r *BillingRepository) Purchase(ctx context.Context, credits int, amountUSD float64, description string) (int, error) {
	if credits <= 0 {
		return 0, fmt.Errorf("purchase must be positive, got %d", credits)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin purchase tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO credit_transactions (occurred_at, description, credits, amount_usd, status)
VALUES ($1,$2,$3,$4,$5)
`, time.Now().UTC(), description, credits, amountUSD, "completed"); err != nil {
		return 0, fmt.Errorf("insert purchase: %w", err)
	}

	balance, err := balanceTx(ctx, tx)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit purchase tx: %w", err)
	}
	return balance, nil
}

func (r *BillingRepository) Balance(ctx context.Context) (int, error) {
	var balance int
	err := r.db.QueryRowContext(ctx, `
SELECT COALESCE(SUM(credits), 0) FROM credit_transactions
`).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("query balance: %w", err)
	}
	return balance, nil
}

func (r *BillingRepository) History(ctx context.Context) ([]domain.CreditTransaction, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, occurred_at, description, credits, amount_usd, status
FROM credit_transactions
ORDER BY occurred_at DESC, id DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]domain.CreditTransaction, 0)
	for rows.Next() {
		var txn domain.CreditTransaction
		if err := rows.Scan(&txn.ID, &txn.OccurredAt, &txn.Description, &txn.Credits, &txn.AmountUSD, &txn.Status); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return transactions, nil
}

func balanceTx(ctx context.Context, tx *sql.Tx) (int, error) {
	var balance int
	err := tx.QueryRowContext(ctx, `
SELECT COALESCE(SUM(credits), 0) FROM credit_transactions
`).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("query balance: %w", err)
	}
	return balance, nil
}
