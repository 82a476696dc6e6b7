package fornance

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// ActivityType is a typed string classifying an entry of the activity log.
type ActivityType string

// Activity types recorded in the activity log.
const (
	ActivityAdd     ActivityType = "add"
	ActivityUpdate  ActivityType = "update"
	ActivityDelete  ActivityType = "delete"
	ActivityConvert ActivityType = "convert"
)

// Expense represents a single expense, either a fixed amount in the cash
// balance's currency, or a percentage applied to a recorded base amount.
type Expense struct {
	ID           string
	Title        string
	Amount       decimal.Decimal // absolute amount, or a percentage when IsPercentage
	Category     string
	Date         time.Time
	IsPercentage bool
	BaseAmount   decimal.Decimal // base the percentage applies to; zero otherwise
}

// ExpenseInput carries the caller-provided fields of an expense. The store
// assigns the id and the date.
type ExpenseInput struct {
	Title        string
	Amount       decimal.Decimal
	Category     string
	IsPercentage bool
	BaseAmount   decimal.Decimal
}

// Spend returns the actual amount this expense represents, resolving
// percentage expenses against their base amount.
func (e Expense) Spend(currency string) Money {
	if e.IsPercentage {
		return M(e.BaseAmount, currency).Percentage(e.Amount)
	}
	return M(e.Amount, currency)
}

// MarshalJSON implements the json.Marshaler interface for Expense.
func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("title", e.Title)
	w.Append("amount", e.Amount)
	w.Append("category", e.Category)
	w.Append("date", e.Date.Format(time.RFC3339))
	w.Append("isPercentage", e.IsPercentage)
	if e.IsPercentage {
		w.Append("baseAmount", e.BaseAmount)
	}
	return w.MarshalJSON()
}

// BudgetCategory is a named share of a budget plan. Amount is always derived
// from the owning plan's total and the category's percentage, never set
// independently.
type BudgetCategory struct {
	ID         string
	Name       string
	Percentage decimal.Decimal // 0-100
	Color      string
	Amount     decimal.Decimal // derived: total * percentage / 100
}

// CategoryInput carries the caller-provided fields of a budget category.
type CategoryInput struct {
	Name       string
	Percentage decimal.Decimal
	Color      string
}

// MarshalJSON implements the json.Marshaler interface for BudgetCategory.
func (c BudgetCategory) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", c.ID)
	w.Append("name", c.Name)
	w.Append("percentage", c.Percentage)
	w.Append("color", c.Color)
	w.Append("amount", c.Amount)
	return w.MarshalJSON()
}

// BudgetPlan is a named allocation of a total amount across categories by
// percentage.
type BudgetPlan struct {
	ID          string
	Name        string
	TotalAmount Money
	Categories  []BudgetCategory
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Currency returns the currency the plan's total is denominated in.
func (p BudgetPlan) Currency() string { return p.TotalAmount.Currency() }

// MarshalJSON implements the json.Marshaler interface for BudgetPlan.
func (p BudgetPlan) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("name", p.Name)
	w.EmbedFrom(p.TotalAmount) // amount and currency as top level fields
	w.Append("categories", p.Categories)
	w.Append("createdAt", p.CreatedAt.Format(time.RFC3339))
	w.Append("updatedAt", p.UpdatedAt.Format(time.RFC3339))
	return w.MarshalJSON()
}

func (p BudgetPlan) clone() BudgetPlan {
	p.Categories = slices.Clone(p.Categories)
	return p
}

// PlanUpdate carries a partial update of a budget plan. Nil fields are left
// unchanged.
type PlanUpdate struct {
	Name        *string
	TotalAmount *decimal.Decimal
	Categories  []BudgetCategory // nil means unchanged
}

// ActivityItem is one entry of the append-only audit trail. Entries are
// generated by the store as a side effect of every mutating operation, never
// created by a collaborator.
type ActivityItem struct {
	ID           string
	Type         ActivityType
	Description  string
	Timestamp    time.Time
	Amount       decimal.Decimal
	Currency     string
	IsPercentage bool
}

// MarshalJSON implements the json.Marshaler interface for ActivityItem.
func (a ActivityItem) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("type", a.Type)
	w.Append("description", a.Description)
	w.Append("timestamp", a.Timestamp.Format(time.RFC3339))
	if !a.Amount.IsZero() {
		w.Append("amount", a.Amount)
	}
	w.Optional("currency", a.Currency)
	if a.IsPercentage {
		w.Append("isPercentage", true)
	}
	return w.MarshalJSON()
}

// State is a snapshot of the whole store. Collaborators receive deep copies
// and must call store operations to mutate.
type State struct {
	CashBalance     Money
	Expenses        []Expense      // newest first
	BudgetPlans     []BudgetPlan
	ActivePlanID    string         // weak reference, resolved against BudgetPlans
	ActivityHistory []ActivityItem // newest first
	IsDarkMode      bool
	IsLoading       bool
}

// ActivePlan resolves the active plan reference against the plan collection.
// It returns nil when no plan is active or the reference is dangling.
func (s State) ActivePlan() *BudgetPlan {
	if s.ActivePlanID == "" {
		return nil
	}
	for _, p := range s.BudgetPlans {
		if p.ID == s.ActivePlanID {
			p := p.clone()
			return &p
		}
	}
	return nil
}

func (s State) clone() State {
	s.Expenses = slices.Clone(s.Expenses)
	s.ActivityHistory = slices.Clone(s.ActivityHistory)
	plans := make([]BudgetPlan, len(s.BudgetPlans))
	for i, p := range s.BudgetPlans {
		plans[i] = p.clone()
	}
	s.BudgetPlans = plans
	return s
}

// defaultBudgetColors is the palette assigned to categories created without
// an explicit color.
var defaultBudgetColors = []string{
	"#10B981", // emerald
	"#F59E0B", // amber
	"#EF4444", // red
	"#3B82F6", // blue
	"#8B5CF6", // violet
	"#EC4899", // pink
	"#06B6D4", // cyan
	"#84CC16", // lime
	"#F97316", // orange
	"#6366F1", // indigo
}
