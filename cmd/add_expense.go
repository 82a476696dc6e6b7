package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fornance/fornance"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addExpenseCmd struct {
	title      string
	amount     string
	category   string
	percentage bool
	base       string
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record a new expense" }
func (*addExpenseCmd) Usage() string {
	return `fnc add-expense -t <title> -a <amount> [-c <category>] [-pct -base <amount>]

  Records a fixed-amount expense in the balance currency, or, with -pct, a
  percentage expense applied to the given base amount.
`
}

func (p *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.title, "t", "", "Title of the expense.")
	f.StringVar(&p.amount, "a", "", "Amount, or percentage with -pct.")
	f.StringVar(&p.category, "c", "", "Category of the expense.")
	f.BoolVar(&p.percentage, "pct", false, "Treat the amount as a percentage of the base amount.")
	f.StringVar(&p.base, "base", "", "Base amount the percentage applies to.")
}

// parseInput builds the expense input from the flags, shared with update-expense.
func parseInput(title, amount, category string, percentage bool, base string) (fornance.ExpenseInput, error) {
	in := fornance.ExpenseInput{Title: title, Category: category, IsPercentage: percentage}
	if title == "" {
		return in, fmt.Errorf("a title is required")
	}
	a, err := decimal.NewFromString(amount)
	if err != nil {
		return in, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if !a.IsPositive() {
		return in, fmt.Errorf("amount must be positive")
	}
	in.Amount = a
	if percentage {
		b, err := decimal.NewFromString(base)
		if err != nil {
			return in, fmt.Errorf("invalid base amount %q: %w", base, err)
		}
		in.BaseAmount = b
	}
	return in, nil
}

func (p *addExpenseCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := parseInput(p.title, p.amount, p.category, p.percentage, p.base)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	expense, err := store.AddExpense(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added expense %s (%s)\n", expense.Title, expense.ID)
	return subcommands.ExitSuccess
}
