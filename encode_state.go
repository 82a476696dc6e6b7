package fornance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// StateVersion is the current version of the persisted state document.
const StateVersion = 1

// EncodeState writes the persisted subset of the state as a single versioned
// JSON document, with a stable field order so the file stays diffable.
func EncodeState(w io.Writer, st State) error {
	if st.Expenses == nil {
		st.Expenses = []Expense{}
	}
	if st.ActivityHistory == nil {
		st.ActivityHistory = []ActivityItem{}
	}
	if st.BudgetPlans == nil {
		st.BudgetPlans = []BudgetPlan{}
	}

	var jw jsonObjectWriter
	jw.Append("version", StateVersion)
	jw.Append("cashBalance", st.CashBalance)
	jw.Append("expenses", st.Expenses)
	jw.Append("isDarkMode", st.IsDarkMode)
	jw.Append("activityHistory", st.ActivityHistory)
	jw.Append("budgetPlans", st.BudgetPlans)
	jw.Optional("activeBudgetPlan", st.ActivePlanID)
	data, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode state: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

// defaultState is the state a fresh client starts from.
func defaultState() State {
	return State{
		CashBalance:     M(0, "USD"),
		Expenses:        []Expense{},
		ActivityHistory: []ActivityItem{},
		BudgetPlans:     []BudgetPlan{},
		IsDarkMode:      true,
	}
}

// to parse json, we use dedicated local structs with tag annotations.

type jmoney struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (j jmoney) Money() Money { return M(j.Amount, j.Currency) }

type jexpense struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	Date         string          `json:"date"`
	IsPercentage bool            `json:"isPercentage"`
	BaseAmount   decimal.Decimal `json:"baseAmount"`
}

type jcategory struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
	Color      string          `json:"color"`
	Amount     decimal.Decimal `json:"amount"`
}

type jplan struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Categories []jcategory     `json:"categories"`
	CreatedAt  string          `json:"createdAt"`
	UpdatedAt  string          `json:"updatedAt"`
}

type jactivity struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Description  string          `json:"description"`
	Timestamp    string          `json:"timestamp"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	IsPercentage bool            `json:"isPercentage"`
}

// parseTime parses an RFC3339 timestamp, repairing a malformed one to the
// zero time instead of failing the load.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DecodeState reads a persisted state document and rehydrates it. Missing or
// malformed fields are repaired to safe defaults rather than failing the
// load: a missing balance becomes 0 USD, missing collections become empty,
// and a dangling active-plan reference is cleared. Only an unreadable
// document or a version newer than StateVersion is an error.
func DecodeState(r io.Reader) (State, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return State{}, fmt.Errorf("could not read state: %w", err)
	}

	// Each top level field is decoded independently, so one malformed field
	// does not fail the whole load.
	var raw struct {
		Version          json.RawMessage `json:"version"`
		CashBalance      json.RawMessage `json:"cashBalance"`
		Expenses         json.RawMessage `json:"expenses"`
		IsDarkMode       json.RawMessage `json:"isDarkMode"`
		ActivityHistory  json.RawMessage `json:"activityHistory"`
		BudgetPlans      json.RawMessage `json:"budgetPlans"`
		ActiveBudgetPlan json.RawMessage `json:"activeBudgetPlan"`
	}
	if err := json.Unmarshal(content, &raw); err != nil {
		return State{}, fmt.Errorf("could not parse state document: %w", err)
	}

	var version int
	if raw.Version != nil {
		if err := json.Unmarshal(raw.Version, &version); err != nil {
			return State{}, fmt.Errorf("could not parse state version: %w", err)
		}
	}
	if version > StateVersion {
		return State{}, fmt.Errorf("state version %d is newer than supported version %d", version, StateVersion)
	}

	st := defaultState()

	var jm jmoney
	if raw.CashBalance != nil && json.Unmarshal(raw.CashBalance, &jm) == nil && jm.Currency != "" {
		st.CashBalance = jm.Money()
	}

	var jexpenses []jexpense
	if raw.Expenses != nil && json.Unmarshal(raw.Expenses, &jexpenses) == nil {
		for _, je := range jexpenses {
			st.Expenses = append(st.Expenses, Expense{
				ID:           je.ID,
				Title:        je.Title,
				Amount:       je.Amount,
				Category:     je.Category,
				Date:         parseTime(je.Date),
				IsPercentage: je.IsPercentage,
				BaseAmount:   je.BaseAmount,
			})
		}
	}

	if raw.IsDarkMode != nil {
		var dark bool
		if json.Unmarshal(raw.IsDarkMode, &dark) == nil {
			st.IsDarkMode = dark
		}
	}

	var jactivities []jactivity
	if raw.ActivityHistory != nil && json.Unmarshal(raw.ActivityHistory, &jactivities) == nil {
		for _, ja := range jactivities {
			st.ActivityHistory = append(st.ActivityHistory, ActivityItem{
				ID:           ja.ID,
				Type:         ActivityType(ja.Type),
				Description:  ja.Description,
				Timestamp:    parseTime(ja.Timestamp),
				Amount:       ja.Amount,
				Currency:     ja.Currency,
				IsPercentage: ja.IsPercentage,
			})
		}
	}

	var jplans []jplan
	if raw.BudgetPlans != nil && json.Unmarshal(raw.BudgetPlans, &jplans) == nil {
		for _, jp := range jplans {
			cats := make([]BudgetCategory, len(jp.Categories))
			for i, jc := range jp.Categories {
				cats[i] = BudgetCategory{
					ID:         jc.ID,
					Name:       jc.Name,
					Percentage: jc.Percentage,
					Color:      jc.Color,
					Amount:     jc.Amount,
				}
			}
			st.BudgetPlans = append(st.BudgetPlans, BudgetPlan{
				ID:          jp.ID,
				Name:        jp.Name,
				TotalAmount: M(jp.Amount, jp.Currency),
				Categories:  cats,
				CreatedAt:   parseTime(jp.CreatedAt),
				UpdatedAt:   parseTime(jp.UpdatedAt),
			})
		}
	}

	var active string
	if raw.ActiveBudgetPlan != nil && json.Unmarshal(raw.ActiveBudgetPlan, &active) == nil {
		if indexPlan(st.BudgetPlans, active) >= 0 {
			st.ActivePlanID = active
		}
	}

	return st, nil
}
