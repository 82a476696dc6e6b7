package fornance

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// ErrNoRateProvider is returned by ConvertCurrency when the store was built
// without a rate provider.
var ErrNoRateProvider = errors.New("no rate provider configured")

// ConvertCurrency converts the cash balance, every fixed-amount expense,
// every percentage expense's base amount and every budget plan into
// newCurrency, all as one atomic state transition paired with a single
// convert activity.
//
// The rate provider is consulted exactly once, for the old currency. While
// the call is in flight the loading flag is true and every other mutating
// operation is rejected with ErrConversionInFlight, so no partially
// converted state can ever be observed. On provider failure the financial
// state is left untouched and the loading flag is cleared.
//
// Converting to the currency already in use skips the provider and the
// arithmetic, leaving every amount bit-for-bit unchanged, and still records
// one convert activity.
func (s *Store) ConvertCurrency(ctx context.Context, newCurrency string) error {
	// Flag the conversion, rejecting a concurrent one.
	s.mu.Lock()
	if s.state.IsLoading {
		s.mu.Unlock()
		return ErrConversionInFlight
	}
	oldCurrency := s.state.CashBalance.Currency()
	s.state.IsLoading = true
	snap := s.state.clone()
	subs := slices.Clone(s.subs)
	s.mu.Unlock()
	s.notify(snap, subs)

	rate, err := s.rate(ctx, oldCurrency, newCurrency)
	if err != nil {
		s.mu.Lock()
		s.state.IsLoading = false
		snap = s.state.clone()
		subs = slices.Clone(s.subs)
		s.mu.Unlock()
		s.notify(snap, subs)
		return fmt.Errorf("cannot convert %s to %s: %w", oldCurrency, newCurrency, err)
	}

	// Apply. The loading flag kept every other mutation out, so the state
	// read here is the one the rate was fetched for.
	s.mu.Lock()
	next := s.state.clone()
	next.IsLoading = false

	// A same-currency conversion must not touch the amounts at all: applying
	// a rate of 1 would still round away sub-fraction precision.
	if oldCurrency != newCurrency {
		next.CashBalance = next.CashBalance.Convert(rate, newCurrency)

		for i, e := range next.Expenses {
			if e.IsPercentage {
				// The percentage itself is currency-agnostic, but its base is not.
				next.Expenses[i].BaseAmount = M(e.BaseAmount, oldCurrency).Convert(rate, newCurrency).Amount()
			} else {
				next.Expenses[i].Amount = M(e.Amount, oldCurrency).Convert(rate, newCurrency).Amount()
			}
		}

		for i, p := range next.BudgetPlans {
			p.TotalAmount = p.TotalAmount.Convert(rate, newCurrency)
			p.Categories = DeriveCategoryAmounts(p.TotalAmount, p.Categories)
			p.UpdatedAt = s.now()
			next.BudgetPlans[i] = p
		}
	}

	a := s.newActivity(ActivityConvert, fmt.Sprintf("Converted currency from %s to %s", oldCurrency, newCurrency))
	a.Amount = next.CashBalance.Amount()
	a.Currency = newCurrency
	record(&next, a)

	s.state = next
	snap = next.clone()
	subs = slices.Clone(s.subs)
	s.mu.Unlock()
	s.notify(snap, subs)
	return nil
}

// rate resolves the multiplicative rate from base to target with a single
// provider call. A same-currency conversion is a rate of 1 and no call.
func (s *Store) rate(ctx context.Context, base, target string) (decimal.Decimal, error) {
	if base == target {
		return decimal.NewFromInt(1), nil
	}
	if s.rates == nil {
		return decimal.Decimal{}, ErrNoRateProvider
	}
	rates, err := s.rates.Rates(ctx, base)
	if err != nil {
		return decimal.Decimal{}, err
	}
	rate, ok := rates[target]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("no conversion rate from %s to %s", base, target)
	}
	return rate, nil
}
