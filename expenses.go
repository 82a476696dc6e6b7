package fornance

import (
	"errors"
	"fmt"
)

// ErrInvalidBaseAmount is returned when a percentage expense misses a
// non-negative base amount.
var ErrInvalidBaseAmount = errors.New("percentage expense requires a non-negative base amount")

// errNoChange signals a silent no-op from inside a mutation: nothing is
// published, nothing is recorded, and the caller gets no error.
var errNoChange = errors.New("no change")

// describeExpense renders the amount context of an expense input, branching
// on its percentage form.
func describeExpense(in ExpenseInput, currency string) string {
	if in.IsPercentage {
		return fmt.Sprintf("%s%% of %s %s", in.Amount, currency, in.BaseAmount)
	}
	return fmt.Sprintf("%s %s", currency, in.Amount)
}

// AddExpense creates an expense from the input, assigning it a fresh id and
// the current time, prepends it to the collection and records an add
// activity. It returns the created expense.
func (s *Store) AddExpense(in ExpenseInput) (Expense, error) {
	if in.IsPercentage && in.BaseAmount.IsNegative() {
		return Expense{}, ErrInvalidBaseAmount
	}
	var created Expense
	err := s.mutate(func(st *State) error {
		created = Expense{
			ID:           s.newID(),
			Title:        in.Title,
			Amount:       in.Amount,
			Category:     in.Category,
			Date:         s.now(),
			IsPercentage: in.IsPercentage,
			BaseAmount:   in.BaseAmount,
		}
		st.Expenses = append([]Expense{created}, st.Expenses...)

		a := s.newActivity(ActivityAdd, fmt.Sprintf("Added expense: %s - %s",
			in.Title, describeExpense(in, st.CashBalance.Currency())))
		a.Amount = in.Amount
		a.IsPercentage = in.IsPercentage
		if !in.IsPercentage {
			a.Currency = st.CashBalance.Currency()
		}
		record(st, a)
		return nil
	})
	return created, err
}

// RemoveExpense removes the expense with the given id and records a delete
// activity summarizing it. An unknown id is a silent no-op.
func (s *Store) RemoveExpense(id string) error {
	return s.mutate(func(st *State) error {
		i := indexExpense(st.Expenses, id)
		if i < 0 {
			return errNoChange
		}
		e := st.Expenses[i]
		st.Expenses = append(st.Expenses[:i:i], st.Expenses[i+1:]...)

		in := ExpenseInput{Title: e.Title, Amount: e.Amount, IsPercentage: e.IsPercentage, BaseAmount: e.BaseAmount}
		a := s.newActivity(ActivityDelete, fmt.Sprintf("Removed expense: %s (%s)",
			e.Title, describeExpense(in, st.CashBalance.Currency())))
		a.Amount = e.Amount
		a.IsPercentage = e.IsPercentage
		if !e.IsPercentage {
			a.Currency = st.CashBalance.Currency()
		}
		record(st, a)
		return nil
	})
}

// UpdateExpense replaces all mutable fields of the matching expense,
// preserving its id and date, and records an update activity. An unknown id
// is a silent no-op.
func (s *Store) UpdateExpense(id string, in ExpenseInput) error {
	if in.IsPercentage && in.BaseAmount.IsNegative() {
		return ErrInvalidBaseAmount
	}
	return s.mutate(func(st *State) error {
		i := indexExpense(st.Expenses, id)
		if i < 0 {
			return errNoChange
		}
		old := st.Expenses[i]
		st.Expenses[i] = Expense{
			ID:           old.ID,
			Title:        in.Title,
			Amount:       in.Amount,
			Category:     in.Category,
			Date:         old.Date,
			IsPercentage: in.IsPercentage,
			BaseAmount:   in.BaseAmount,
		}

		a := s.newActivity(ActivityUpdate, fmt.Sprintf("Updated expense: %s → %s (%s)",
			old.Title, in.Title, describeExpense(in, st.CashBalance.Currency())))
		a.Amount = in.Amount
		a.IsPercentage = in.IsPercentage
		if !in.IsPercentage {
			a.Currency = st.CashBalance.Currency()
		}
		record(st, a)
		return nil
	})
}

// ClearExpenses empties the expense collection, recording a single delete
// activity rather than one per removed expense.
func (s *Store) ClearExpenses() error {
	return s.mutate(func(st *State) error {
		st.Expenses = []Expense{}
		record(st, s.newActivity(ActivityDelete, "Cleared all expenses"))
		return nil
	})
}

func indexExpense(expenses []Expense, id string) int {
	for i, e := range expenses {
		if e.ID == id {
			return i
		}
	}
	return -1
}
