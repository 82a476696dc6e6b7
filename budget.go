package fornance

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// percentTolerance is the accepted deviation of a plan's category
// percentages from 100.
var percentTolerance = decimal.NewFromFloat(0.01)

var (
	// ErrEmptyPlanName is returned when a plan is created without a name.
	ErrEmptyPlanName = errors.New("plan name cannot be empty")
	// ErrInvalidPlanTotal is returned when a plan total is zero or negative.
	ErrInvalidPlanTotal = errors.New("plan total amount must be positive")
	// ErrNoCategories is returned when a plan is created without categories.
	ErrNoCategories = errors.New("plan requires at least one category")
	// ErrBadPercentages is returned when category percentages do not sum to 100.
	ErrBadPercentages = errors.New("category percentages must sum to 100")
)

// DeriveCategoryAmounts recomputes every category's derived amount from the
// plan total and the category percentages. Each amount is rounded to the
// total's currency fraction; the last category absorbs the rounding
// remainder so the amounts always sum to the total exactly.
//
// This is the single derivation point: every operation that changes a plan's
// total or categories goes through it.
func DeriveCategoryAmounts(total Money, categories []BudgetCategory) []BudgetCategory {
	out := slices.Clone(categories)
	if len(out) == 0 {
		return out
	}
	remainder := total
	for i := range out[:len(out)-1] {
		amount := total.Percentage(out[i].Percentage)
		out[i].Amount = amount.Amount()
		remainder = remainder.Sub(amount)
	}
	out[len(out)-1].Amount = remainder.Amount()
	return out
}

// validPercentages reports whether the percentages sum to 100 within
// tolerance.
func validPercentages(categories []BudgetCategory) bool {
	sum := decimal.Zero
	for _, c := range categories {
		sum = sum.Add(c.Percentage)
	}
	return sum.Sub(decimal.NewFromInt(100)).Abs().LessThanOrEqual(percentTolerance)
}

// CreatePlan creates a budget plan named name, allocating totalAmount across
// the given categories. The plan is denominated in the current balance
// currency, prepended to the collection and made the active plan. Categories
// without a color get one from the default palette. It returns the created
// plan.
func (s *Store) CreatePlan(name string, totalAmount decimal.Decimal, categories []CategoryInput) (BudgetPlan, error) {
	if name == "" {
		return BudgetPlan{}, ErrEmptyPlanName
	}
	if !totalAmount.IsPositive() {
		return BudgetPlan{}, ErrInvalidPlanTotal
	}
	if len(categories) == 0 {
		return BudgetPlan{}, ErrNoCategories
	}
	var created BudgetPlan
	err := s.mutate(func(st *State) error {
		currency := st.CashBalance.Currency()
		total := M(totalAmount, currency)

		cats := make([]BudgetCategory, len(categories))
		for i, in := range categories {
			color := in.Color
			if color == "" {
				color = defaultBudgetColors[i%len(defaultBudgetColors)]
			}
			cats[i] = BudgetCategory{
				ID:         s.newID(),
				Name:       in.Name,
				Percentage: in.Percentage,
				Color:      color,
			}
		}
		if !validPercentages(cats) {
			return ErrBadPercentages
		}

		now := s.now()
		created = BudgetPlan{
			ID:          s.newID(),
			Name:        name,
			TotalAmount: total,
			Categories:  DeriveCategoryAmounts(total, cats),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		st.BudgetPlans = append([]BudgetPlan{created.clone()}, st.BudgetPlans...)
		st.ActivePlanID = created.ID

		a := s.newActivity(ActivityAdd, fmt.Sprintf("Created budget plan: %s with %s %s", name, currency, totalAmount))
		a.Amount = totalAmount
		a.Currency = currency
		record(st, a)
		return nil
	})
	return created, err
}

// UpdatePlan merges the partial update into the matching plan, refreshing
// its updatedAt stamp. When the total or the categories change, every
// category amount is re-derived. An unknown id is a silent no-op.
func (s *Store) UpdatePlan(id string, update PlanUpdate) error {
	return s.mutate(func(st *State) error {
		i := indexPlan(st.BudgetPlans, id)
		if i < 0 {
			return errNoChange
		}
		plan := st.BudgetPlans[i]
		if update.Name != nil {
			plan.Name = *update.Name
		}
		if update.TotalAmount != nil {
			if !update.TotalAmount.IsPositive() {
				return ErrInvalidPlanTotal
			}
			plan.TotalAmount = M(*update.TotalAmount, plan.Currency())
		}
		if update.Categories != nil {
			if !validPercentages(update.Categories) {
				return ErrBadPercentages
			}
			cats := slices.Clone(update.Categories)
			for j := range cats {
				if cats[j].ID == "" {
					cats[j].ID = s.newID()
				}
				if cats[j].Color == "" {
					cats[j].Color = defaultBudgetColors[j%len(defaultBudgetColors)]
				}
			}
			plan.Categories = cats
		}
		if update.TotalAmount != nil || update.Categories != nil {
			plan.Categories = DeriveCategoryAmounts(plan.TotalAmount, plan.Categories)
		}
		plan.UpdatedAt = s.now()
		st.BudgetPlans[i] = plan

		record(st, s.newActivity(ActivityUpdate, fmt.Sprintf("Updated budget plan: %s", plan.Name)))
		return nil
	})
}

// DeletePlan removes the plan with the given id, clearing the active
// reference if it pointed at it. An unknown id is a silent no-op.
func (s *Store) DeletePlan(id string) error {
	return s.mutate(func(st *State) error {
		i := indexPlan(st.BudgetPlans, id)
		if i < 0 {
			return errNoChange
		}
		plan := st.BudgetPlans[i]
		st.BudgetPlans = append(st.BudgetPlans[:i:i], st.BudgetPlans[i+1:]...)
		if st.ActivePlanID == id {
			st.ActivePlanID = ""
		}

		record(st, s.newActivity(ActivityDelete, fmt.Sprintf("Deleted budget plan: %s", plan.Name)))
		return nil
	})
}

// SetActivePlan resolves id against the plan collection and stores the
// reference. An empty or unknown id clears the reference; it is never an
// error. No activity is recorded.
func (s *Store) SetActivePlan(id string) error {
	return s.mutate(func(st *State) error {
		if id == "" || indexPlan(st.BudgetPlans, id) < 0 {
			st.ActivePlanID = ""
			return nil
		}
		st.ActivePlanID = id
		return nil
	})
}

func indexPlan(plans []BudgetPlan, id string) int {
	for i, p := range plans {
		if p.ID == id {
			return i
		}
	}
	return -1
}
