package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type convertCmd struct{}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert all amounts to another currency" }
func (*convertCmd) Usage() string {
	return `fnc convert <currency>

  Converts the cash balance, all fixed expenses and all budget plans to the
  given currency, using the exchange rate service. Nothing is changed when
  the rate cannot be obtained.
`
}

func (*convertCmd) SetFlags(_ *flag.FlagSet) {}

func (p *convertCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: convert expects exactly one currency code.")
		return subcommands.ExitUsageError
	}
	currency := strings.ToUpper(f.Arg(0))

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.ConvertCurrency(ctx, currency); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Balance is now %s\n", store.State().CashBalance)
	return subcommands.ExitSuccess
}
