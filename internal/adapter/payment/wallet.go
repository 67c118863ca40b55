// Package payment holds the marketplace payment channel: an in-memory wallet
// that buyers pay into and sellers are paid out of.
package payment

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/ticket_marketplace/internal/core/domain"
	"github.com/srgjo27/ticket_marketplace/internal/core/ports"
)

var _ ports.PaymentChannel = (*Wallet)(nil)

type Wallet struct {
	mu       sync.Mutex
	balances map[uuid.UUID]decimal.Decimal
	// escrow is what has been collected from buyers and not yet paid out.
	escrow decimal.Decimal
}

func NewWallet() *Wallet {
	return &Wallet{
		balances: make(map[uuid.UUID]decimal.Decimal),
	}
}

func (w *Wallet) Deposit(ctx context.Context, account uuid.UUID, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: deposit must be positive", domain.ErrInvalidArgument)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.balances[account] = w.balances[account].Add(amount)

	return nil
}

func (w *Wallet) Balance(ctx context.Context, account uuid.UUID) decimal.Decimal {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.balances[account]
}

func (w *Wallet) Escrow() decimal.Decimal {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.escrow
}

// Collect moves amount from the account into escrow.
func (w *Wallet) Collect(ctx context.Context, from uuid.UUID, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", domain.ErrInvalidArgument)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	balance := w.balances[from]
	if balance.LessThan(amount) {
		return fmt.Errorf("%w: account holds %s, payment %s", domain.ErrInsufficientBalance, balance, amount)
	}

	w.balances[from] = balance.Sub(amount)
	w.escrow = w.escrow.Add(amount)

	return nil
}

// Payout moves amount out of escrow to the account.
func (w *Wallet) Payout(ctx context.Context, to uuid.UUID, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", domain.ErrInvalidArgument)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.escrow.LessThan(amount) {
		return fmt.Errorf("%w: escrow holds %s, payout %s", domain.ErrInsufficientBalance, w.escrow, amount)
	}

	w.escrow = w.escrow.Sub(amount)
	w.balances[to] = w.balances[to].Add(amount)

	return nil
}
