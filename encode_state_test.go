package fornance

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s := newTestStore(WithState(State{CashBalance: M(1000, "EUR"), IsDarkMode: true}))
	s.AddExpense(ExpenseInput{Title: "Rent", Amount: decimal.NewFromInt(800), Category: "Housing"})
	s.AddExpense(ExpenseInput{Title: "Savings", Amount: decimal.NewFromInt(10), IsPercentage: true, BaseAmount: decimal.NewFromInt(1000)})
	s.CreatePlan("Monthly", decimal.NewFromInt(1000), []CategoryInput{
		{Name: "Needs", Percentage: pct(60)},
		{Name: "Wants", Percentage: pct(40)},
	})
	want := s.State()

	var buf bytes.Buffer
	if err := EncodeState(&buf, want); err != nil {
		t.Fatalf("EncodeState: %v", err)
	}
	got, err := DecodeState(&buf)
	if err != nil {
		t.Fatalf("DecodeState: %v", err)
	}

	if !got.CashBalance.Equal(want.CashBalance) {
		t.Errorf("balance = %v, want %v", got.CashBalance, want.CashBalance)
	}
	if len(got.Expenses) != len(want.Expenses) {
		t.Fatalf("expense count = %d, want %d", len(got.Expenses), len(want.Expenses))
	}
	for i := range want.Expenses {
		w, g := want.Expenses[i], got.Expenses[i]
		if g.ID != w.ID || g.Title != w.Title || !g.Amount.Equal(w.Amount) ||
			g.Category != w.Category || g.IsPercentage != w.IsPercentage ||
			!g.BaseAmount.Equal(w.BaseAmount) || !g.Date.Equal(w.Date) {
			t.Errorf("expense %d = %+v, want %+v", i, g, w)
		}
	}
	if len(got.BudgetPlans) != 1 {
		t.Fatalf("plan count = %d, want 1", len(got.BudgetPlans))
	}
	wp, gp := want.BudgetPlans[0], got.BudgetPlans[0]
	if gp.ID != wp.ID || gp.Name != wp.Name || !gp.TotalAmount.Equal(wp.TotalAmount) {
		t.Errorf("plan = %+v, want %+v", gp, wp)
	}
	for i := range wp.Categories {
		w, g := wp.Categories[i], gp.Categories[i]
		if g.ID != w.ID || g.Name != w.Name || !g.Percentage.Equal(w.Percentage) ||
			g.Color != w.Color || !g.Amount.Equal(w.Amount) {
			t.Errorf("category %d = %+v, want %+v", i, g, w)
		}
	}
	if got.ActivePlanID != want.ActivePlanID {
		t.Errorf("active plan = %q, want %q", got.ActivePlanID, want.ActivePlanID)
	}
	if len(got.ActivityHistory) != len(want.ActivityHistory) {
		t.Fatalf("activity count = %d, want %d", len(got.ActivityHistory), len(want.ActivityHistory))
	}
	for i := range want.ActivityHistory {
		w, g := want.ActivityHistory[i], got.ActivityHistory[i]
		if g.ID != w.ID || g.Type != w.Type || g.Description != w.Description ||
			!g.Timestamp.Equal(w.Timestamp) {
			t.Errorf("activity %d = %+v, want %+v", i, g, w)
		}
	}
	if got.IsDarkMode != want.IsDarkMode {
		t.Errorf("isDarkMode = %v, want %v", got.IsDarkMode, want.IsDarkMode)
	}
}

func TestEncodeStableFieldOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeState(&buf, defaultState()); err != nil {
		t.Fatalf("EncodeState: %v", err)
	}
	doc := buf.String()
	fields := []string{`"version"`, `"cashBalance"`, `"expenses"`, `"isDarkMode"`, `"activityHistory"`, `"budgetPlans"`}
	last := -1
	for _, f := range fields {
		i := strings.Index(doc, f)
		if i < 0 {
			t.Fatalf("field %s missing from document:\n%s", f, doc)
		}
		if i < last {
			t.Errorf("field %s out of order in document:\n%s", f, doc)
		}
		last = i
	}
}

func TestDecodeRepairsMissingFields(t *testing.T) {
	got, err := DecodeState(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("DecodeState({}): %v", err)
	}
	if want := M(0, "USD"); !got.CashBalance.Equal(want) {
		t.Errorf("balance = %v, want %v", got.CashBalance, want)
	}
	if got.Expenses == nil || got.ActivityHistory == nil || got.BudgetPlans == nil {
		t.Error("missing collections not repaired to empty slices")
	}
	if !got.IsDarkMode {
		t.Error("isDarkMode = false, want the dark default")
	}
}

func TestDecodeClearsDanglingActivePlan(t *testing.T) {
	doc := `{"version": 1, "budgetPlans": [], "activeBudgetPlan": "gone"}`
	got, err := DecodeState(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeState: %v", err)
	}
	if got.ActivePlanID != "" {
		t.Errorf("active plan = %q, want empty", got.ActivePlanID)
	}
}

func TestDecodeRepairsMalformedTimestamp(t *testing.T) {
	doc := `{"version": 1, "expenses": [{"id": "e1", "title": "X", "amount": 1, "date": "not-a-date"}]}`
	got, err := DecodeState(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeState: %v", err)
	}
	if len(got.Expenses) != 1 {
		t.Fatalf("expense count = %d, want 1", len(got.Expenses))
	}
	if !got.Expenses[0].Date.Equal(time.Time{}) {
		t.Errorf("date = %v, want zero time", got.Expenses[0].Date)
	}
}

func TestDecodeRejectsNewerVersion(t *testing.T) {
	if _, err := DecodeState(strings.NewReader(`{"version": 2}`)); err == nil {
		t.Fatal("DecodeState(version 2) = nil, want error")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := DecodeState(strings.NewReader(`not json`)); err == nil {
		t.Fatal("DecodeState(garbage) = nil, want error")
	}
}

func TestLoadStateMissingFile(t *testing.T) {
	got, err := LoadState(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadState(missing) = %v, want nil", err)
	}
	if want := M(0, "USD"); !got.CashBalance.Equal(want) {
		t.Errorf("balance = %v, want %v", got.CashBalance, want)
	}
}

func TestSaveLoadState(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "deep", "state.json")

	s := newTestStore()
	s.SetBalance(M(42, "EUR"))
	want := s.State()

	if err := SaveState(filename, want); err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	got, err := LoadState(filename)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if !got.CashBalance.Equal(want.CashBalance) {
		t.Errorf("balance = %v, want %v", got.CashBalance, want.CashBalance)
	}
	if len(got.ActivityHistory) != 1 {
		t.Errorf("activity count = %d, want 1", len(got.ActivityHistory))
	}
}

func TestFilePersister(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "state.json")
	s := newTestStore(WithPersister(&FilePersister{Filename: filename}))

	if err := s.AddFunds(decimal.NewFromInt(10)); err != nil {
		t.Fatalf("AddFunds: %v", err)
	}
	got, err := LoadState(filename)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if want := M(10, "USD"); !got.CashBalance.Equal(want) {
		t.Errorf("persisted balance = %v, want %v", got.CashBalance, want)
	}
}
