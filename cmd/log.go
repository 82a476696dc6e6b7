package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fornance/fornance/renderer"
	"github.com/google/subcommands"
)

type logCmd struct {
	head int
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "display the activity history" }
func (*logCmd) Usage() string {
	return `fnc log [-head <n>]

  Displays the activity history, newest first: every mutation of the
  balance, the expenses or the budget plans leaves one entry here.
`
}

func (p *logCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.head, "head", 0, "Show only the first N entries.")
}

func (p *logCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	items := store.State().ActivityHistory
	if p.head > 0 && p.head < len(items) {
		items = items[:p.head]
	}
	printMarkdown(renderer.HistoryMarkdown(items))
	return subcommands.ExitSuccess
}
