package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fornance/fornance"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type createBudgetCmd struct {
	name  string
	total string
}

func (*createBudgetCmd) Name() string     { return "create-budget" }
func (*createBudgetCmd) Synopsis() string { return "create a budget plan and make it active" }
func (*createBudgetCmd) Usage() string {
	return `fnc create-budget -n <name> -total <amount> <category>...

  Creates a budget plan allocating the total across categories and makes it
  the active plan. Each category is written as name:percentage[:color], and
  the percentages must sum to 100.

Usage Examples:
# A 50/30/20 plan over 2000 in the balance currency.
$ fnc create-budget -n "monthly" -total 2000 needs:50 wants:30 savings:20

`
}

func (p *createBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "n", "", "Name of the plan.")
	f.StringVar(&p.total, "total", "", "Total amount to allocate.")
}

// parseCategories parses name:percentage[:color] arguments.
func parseCategories(args []string) ([]fornance.CategoryInput, error) {
	categories := make([]fornance.CategoryInput, 0, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, ":", 3)
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid category %q: expected name:percentage[:color]", arg)
		}
		pct, err := decimal.NewFromString(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid percentage in %q: %w", arg, err)
		}
		c := fornance.CategoryInput{Name: parts[0], Percentage: pct}
		if len(parts) == 3 {
			c.Color = parts[2]
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (p *createBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	total, err := decimal.NewFromString(p.total)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing total %q: %v\n", p.total, err)
		return subcommands.ExitUsageError
	}
	categories, err := parseCategories(f.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	plan, err := store.CreatePlan(p.name, total, categories)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created budget plan %s (%s)\n", plan.Name, plan.ID)
	return subcommands.ExitSuccess
}
