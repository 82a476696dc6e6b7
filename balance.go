package fornance

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrNegativeBalance is returned by SetBalance for a negative amount.
	ErrNegativeBalance = errors.New("balance cannot be negative")
	// ErrInvalidAmount is returned by AddFunds for a zero or negative amount.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// SetBalance replaces the cash balance and records an update activity
// describing the old and new amounts.
func (s *Store) SetBalance(balance Money) error {
	if balance.IsNegative() {
		return ErrNegativeBalance
	}
	return s.mutate(func(st *State) error {
		old := st.CashBalance
		st.CashBalance = balance
		a := s.newActivity(ActivityUpdate, fmt.Sprintf("Updated balance from %s %s to %s %s",
			old.Currency(), old.Amount(), balance.Currency(), balance.Amount()))
		a.Amount = balance.Amount()
		a.Currency = balance.Currency()
		record(st, a)
		return nil
	})
}

// AddFunds increments the cash balance by amount, preserving the currency,
// and records an add activity with the delta.
func (s *Store) AddFunds(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return s.mutate(func(st *State) error {
		currency := st.CashBalance.Currency()
		st.CashBalance = st.CashBalance.Add(M(amount, currency))
		a := s.newActivity(ActivityAdd, fmt.Sprintf("Added %s %s to balance", currency, amount))
		a.Amount = amount
		a.Currency = currency
		record(st, a)
		return nil
	})
}
