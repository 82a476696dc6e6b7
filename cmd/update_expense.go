package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type updateExpenseCmd struct {
	id         string
	title      string
	amount     string
	category   string
	percentage bool
	base       string
}

func (*updateExpenseCmd) Name() string     { return "update-expense" }
func (*updateExpenseCmd) Synopsis() string { return "replace the fields of an expense" }
func (*updateExpenseCmd) Usage() string {
	return `fnc update-expense -id <id> -t <title> -a <amount> [-c <category>] [-pct -base <amount>]

  Replaces all fields of the expense with the given id, preserving its id
  and original date.
`
}

func (p *updateExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the expense to update.")
	f.StringVar(&p.title, "t", "", "New title of the expense.")
	f.StringVar(&p.amount, "a", "", "New amount, or percentage with -pct.")
	f.StringVar(&p.category, "c", "", "New category of the expense.")
	f.BoolVar(&p.percentage, "pct", false, "Treat the amount as a percentage of the base amount.")
	f.StringVar(&p.base, "base", "", "Base amount the percentage applies to.")
}

func (p *updateExpenseCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
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
	if err := store.UpdateExpense(p.id, in); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
