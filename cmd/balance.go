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

type balanceCmd struct {
	set      string
	currency string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show or set the cash balance" }
func (*balanceCmd) Usage() string {
	return `fnc balance [-set <amount> [-c <currency>]]

  Shows the current cash balance. With -set, replaces it; the currency
  defaults to the current one.
`
}

func (p *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.set, "set", "", "New balance amount.")
	f.StringVar(&p.currency, "c", "", "Currency of the new balance. Defaults to the current currency.")
}

func (p *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.set == "" {
		st := store.State()
		fmt.Printf("%s\n", st.CashBalance)
		return subcommands.ExitSuccess
	}

	amount, err := decimal.NewFromString(p.set)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", p.set, err)
		return subcommands.ExitUsageError
	}
	currency := p.currency
	if currency == "" {
		currency = store.State().CashBalance.Currency()
	}

	if err := store.SetBalance(fornance.M(amount, currency)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Balance set to %s\n", store.State().CashBalance)
	return subcommands.ExitSuccess
}
