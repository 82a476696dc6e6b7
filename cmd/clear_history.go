package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearHistoryCmd struct{}

func (*clearHistoryCmd) Name() string     { return "clear-history" }
func (*clearHistoryCmd) Synopsis() string { return "empty the activity history" }
func (*clearHistoryCmd) Usage() string {
	return `fnc clear-history

  Empties the activity history. This action is not itself recorded.
`
}

func (*clearHistoryCmd) SetFlags(_ *flag.FlagSet) {}

func (p *clearHistoryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.ClearHistory(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Activity history cleared.")
	return subcommands.ExitSuccess
}
