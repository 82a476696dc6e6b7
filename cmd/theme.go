package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type themeCmd struct{}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "toggle between dark and light theme" }
func (*themeCmd) Usage() string {
	return `fnc theme

  Flips the persisted theme flag between dark and light.
`
}

func (*themeCmd) SetFlags(_ *flag.FlagSet) {}

func (p *themeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.ToggleDarkMode(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if store.State().IsDarkMode {
		fmt.Println("Theme is now dark.")
	} else {
		fmt.Println("Theme is now light.")
	}
	return subcommands.ExitSuccess
}
