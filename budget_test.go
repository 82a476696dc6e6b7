package fornance

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func pct(p float64) decimal.Decimal { return decimal.NewFromFloat(p) }

func TestDeriveCategoryAmounts(t *testing.T) {
	tests := []struct {
		name        string
		total       Money
		percentages []float64
		want        []string
	}{
		{
			name:        "even split",
			total:       M(1000, "USD"),
			percentages: []float64{30, 40, 15, 15},
			want:        []string{"300", "400", "150", "150"},
		},
		{
			name:        "thirds, last absorbs the remainder",
			total:       M(100, "USD"),
			percentages: []float64{33.33, 33.33, 33.34},
			want:        []string{"33.33", "33.33", "33.34"},
		},
		{
			name:        "zero-fraction currency",
			total:       M(1000, "JPY"),
			percentages: []float64{33.33, 33.33, 33.34},
			want:        []string{"333", "333", "334"},
		},
		{
			name:        "single category",
			total:       M(250, "EUR"),
			percentages: []float64{100},
			want:        []string{"250"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cats := make([]BudgetCategory, len(tt.percentages))
			for i, p := range tt.percentages {
				cats[i] = BudgetCategory{Percentage: pct(p)}
			}
			got := DeriveCategoryAmounts(tt.total, cats)

			sum := decimal.Zero
			for i, c := range got {
				if c.Amount.String() != tt.want[i] {
					t.Errorf("category %d amount = %s, want %s", i, c.Amount, tt.want[i])
				}
				sum = sum.Add(c.Amount)
			}
			if !sum.Equal(tt.total.Amount()) {
				t.Errorf("amounts sum to %s, want %s", sum, tt.total.Amount())
			}
		})
	}
}

func TestCreatePlan(t *testing.T) {
	s := newTestStore(WithState(State{CashBalance: M(0, "USD")}))

	plan, err := s.CreatePlan("Monthly", decimal.NewFromInt(1000), []CategoryInput{
		{Name: "Needs", Percentage: pct(30)},
		{Name: "Wants", Percentage: pct(40)},
		{Name: "Savings", Percentage: pct(15)},
		{Name: "Fun", Percentage: pct(15), Color: "#000000"},
	})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	if want := M(1000, "USD"); !plan.TotalAmount.Equal(want) {
		t.Errorf("total = %v, want %v", plan.TotalAmount, want)
	}
	for i, want := range []string{"300", "400", "150", "150"} {
		if got := plan.Categories[i].Amount.String(); got != want {
			t.Errorf("category %d amount = %s, want %s", i, got, want)
		}
	}
	// explicit color kept, missing colors assigned from the palette
	if plan.Categories[3].Color != "#000000" {
		t.Errorf("explicit color = %q, want #000000", plan.Categories[3].Color)
	}
	if plan.Categories[0].Color != defaultBudgetColors[0] {
		t.Errorf("default color = %q, want %q", plan.Categories[0].Color, defaultBudgetColors[0])
	}

	st := s.State()
	if st.ActivePlanID != plan.ID {
		t.Errorf("active plan = %q, want %q", st.ActivePlanID, plan.ID)
	}
	if active := st.ActivePlan(); active == nil || active.ID != plan.ID {
		t.Errorf("ActivePlan() = %v, want plan %q", active, plan.ID)
	}
	if st.ActivityHistory[0].Type != ActivityAdd {
		t.Errorf("activity type = %q, want %q", st.ActivityHistory[0].Type, ActivityAdd)
	}
}

func TestCreatePlanValidation(t *testing.T) {
	s := newTestStore()
	one := []CategoryInput{{Name: "All", Percentage: pct(100)}}

	tests := []struct {
		name       string
		planName   string
		total      decimal.Decimal
		categories []CategoryInput
		want       error
	}{
		{"empty name", "", decimal.NewFromInt(100), one, ErrEmptyPlanName},
		{"zero total", "P", decimal.Zero, one, ErrInvalidPlanTotal},
		{"negative total", "P", decimal.NewFromInt(-1), one, ErrInvalidPlanTotal},
		{"no categories", "P", decimal.NewFromInt(100), nil, ErrNoCategories},
		{"percentages under 100", "P", decimal.NewFromInt(100),
			[]CategoryInput{{Name: "Half", Percentage: pct(50)}}, ErrBadPercentages},
		{"percentages over 100", "P", decimal.NewFromInt(100),
			[]CategoryInput{{Name: "A", Percentage: pct(60)}, {Name: "B", Percentage: pct(60)}}, ErrBadPercentages},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.CreatePlan(tt.planName, tt.total, tt.categories); !errors.Is(err, tt.want) {
				t.Errorf("CreatePlan = %v, want %v", err, tt.want)
			}
		})
	}
	if got := len(s.State().BudgetPlans); got != 0 {
		t.Errorf("plans created by rejected operations, count = %d", got)
	}
}

func TestUpdatePlan(t *testing.T) {
	s := newTestStore()
	plan, _ := s.CreatePlan("Monthly", decimal.NewFromInt(1000), []CategoryInput{
		{Name: "Needs", Percentage: pct(50)},
		{Name: "Wants", Percentage: pct(50)},
	})

	// rename only: amounts untouched
	name := "Weekly"
	if err := s.UpdatePlan(plan.ID, PlanUpdate{Name: &name}); err != nil {
		t.Fatalf("UpdatePlan(rename): %v", err)
	}
	got := s.State().BudgetPlans[0]
	if got.Name != "Weekly" {
		t.Errorf("name = %q, want Weekly", got.Name)
	}
	if !got.Categories[0].Amount.Equal(decimal.NewFromInt(500)) {
		t.Errorf("amount changed by a rename: %s", got.Categories[0].Amount)
	}

	// new total: amounts re-derived
	total := decimal.NewFromInt(2000)
	if err := s.UpdatePlan(plan.ID, PlanUpdate{TotalAmount: &total}); err != nil {
		t.Fatalf("UpdatePlan(total): %v", err)
	}
	got = s.State().BudgetPlans[0]
	if !got.Categories[0].Amount.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("amount = %s, want 1000", got.Categories[0].Amount)
	}

	// invalid partial updates are rejected
	bad := decimal.Zero
	if err := s.UpdatePlan(plan.ID, PlanUpdate{TotalAmount: &bad}); !errors.Is(err, ErrInvalidPlanTotal) {
		t.Errorf("UpdatePlan(zero total) = %v, want ErrInvalidPlanTotal", err)
	}
	if err := s.UpdatePlan(plan.ID, PlanUpdate{Categories: []BudgetCategory{{Name: "Half", Percentage: pct(50)}}}); !errors.Is(err, ErrBadPercentages) {
		t.Errorf("UpdatePlan(bad percentages) = %v, want ErrBadPercentages", err)
	}

	// unknown id is a silent no-op
	if err := s.UpdatePlan("nope", PlanUpdate{Name: &name}); err != nil {
		t.Errorf("UpdatePlan(unknown) = %v, want nil", err)
	}
}

func TestUpdatePlanNewCategories(t *testing.T) {
	s := newTestStore()
	plan, _ := s.CreatePlan("Monthly", decimal.NewFromInt(1000), []CategoryInput{
		{Name: "All", Percentage: pct(100)},
	})

	err := s.UpdatePlan(plan.ID, PlanUpdate{Categories: []BudgetCategory{
		{Name: "Needs", Percentage: pct(60)},
		{Name: "Wants", Percentage: pct(40)},
	}})
	if err != nil {
		t.Fatalf("UpdatePlan: %v", err)
	}
	got := s.State().BudgetPlans[0]
	for i, c := range got.Categories {
		if c.ID == "" {
			t.Errorf("category %d has no id", i)
		}
		if c.Color == "" {
			t.Errorf("category %d has no color", i)
		}
	}
	if !got.Categories[0].Amount.Equal(decimal.NewFromInt(600)) {
		t.Errorf("amount = %s, want 600", got.Categories[0].Amount)
	}
}

func TestDeletePlanClearsActiveReference(t *testing.T) {
	s := newTestStore()
	p1, _ := s.CreatePlan("First", decimal.NewFromInt(100), []CategoryInput{{Name: "All", Percentage: pct(100)}})
	p2, _ := s.CreatePlan("Second", decimal.NewFromInt(200), []CategoryInput{{Name: "All", Percentage: pct(100)}})

	// the most recently created plan is active
	if got := s.State().ActivePlanID; got != p2.ID {
		t.Fatalf("active plan = %q, want %q", got, p2.ID)
	}

	if err := s.DeletePlan(p2.ID); err != nil {
		t.Fatalf("DeletePlan: %v", err)
	}
	st := s.State()
	if st.ActivePlanID != "" {
		t.Errorf("active plan = %q after deleting it, want empty", st.ActivePlanID)
	}
	if st.ActivePlan() != nil {
		t.Error("ActivePlan() != nil after deleting the active plan")
	}
	if got := len(st.BudgetPlans); got != 1 {
		t.Fatalf("plan count = %d, want 1", got)
	}

	// deleting a non-active plan leaves the reference alone
	s.SetActivePlan(p1.ID)
	if err := s.DeletePlan("nope"); err != nil {
		t.Fatalf("DeletePlan(unknown): %v", err)
	}
	if got := s.State().ActivePlanID; got != p1.ID {
		t.Errorf("active plan = %q, want %q", got, p1.ID)
	}
}

func TestSetActivePlan(t *testing.T) {
	s := newTestStore()
	p, _ := s.CreatePlan("Monthly", decimal.NewFromInt(100), []CategoryInput{{Name: "All", Percentage: pct(100)}})
	before := len(s.State().ActivityHistory)

	// unknown id clears the reference, it is never an error
	if err := s.SetActivePlan("nope"); err != nil {
		t.Fatalf("SetActivePlan(unknown): %v", err)
	}
	if got := s.State().ActivePlanID; got != "" {
		t.Errorf("active plan = %q, want empty", got)
	}

	if err := s.SetActivePlan(p.ID); err != nil {
		t.Fatalf("SetActivePlan: %v", err)
	}
	if got := s.State().ActivePlanID; got != p.ID {
		t.Errorf("active plan = %q, want %q", got, p.ID)
	}

	// switching plans is not an activity
	if got := len(s.State().ActivityHistory); got != before {
		t.Errorf("activity count = %d, want %d", got, before)
	}
}
