// Package cmd implements the CLI application to manage the finance tracker.
package cmd

import (
	"flag"

	"github.com/fornance/fornance"
	"github.com/fornance/fornance/config"
	"github.com/fornance/fornance/exchangerate"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var stateFileFlag = flag.String("state-file", "", "Path to the state file (JSON format). Defaults to the configured location.")

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&balanceCmd{},
	&depositCmd{},
	&convertCmd{},
	&addExpenseCmd{},
	&removeExpenseCmd{},
	&updateExpenseCmd{},
	&clearExpensesCmd{},
	&expensesCmd{},
	&createBudgetCmd{},
	&updateBudgetCmd{},
	&deleteBudgetCmd{},
	&useBudgetCmd{},
	&budgetCmd{},
	&logCmd{},
	&clearHistoryCmd{},
	&themeCmd{},
	&topicCmd{},
	&assistCmd{},
}

// openStore loads the persisted state and wires a store with its persister
// and the exchange rate provider, so every mutation is saved back to the
// state file.
func openStore() (*fornance.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	path := *stateFileFlag
	if path == "" {
		path = cfg.General.StateFile
	}

	st, err := fornance.LoadState(path)
	if err != nil {
		return nil, err
	}

	key := exchangerate.APIKey()
	if key == "" {
		key = cfg.Provider.APIKey
	}
	client := exchangerate.NewClient(key)
	if cfg.Provider.BaseURL != "" {
		client.BaseURL = cfg.Provider.BaseURL
	}

	return fornance.NewStore(
		fornance.WithState(st),
		fornance.WithPersister(&fornance.FilePersister{Filename: path}),
		fornance.WithRateProvider(client),
	), nil
}
