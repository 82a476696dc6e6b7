package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fornance/fornance/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI assistant about your finances" }
func (*assistCmd) Usage() string {
	return `fnc assist [question]

  Sends your current balance, expenses and budget allocation to Gemini and
  prints its commentary. A question narrows the analysis; without one the
  assistant reviews spending against the active budget plan.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	question := "Review my spending against the active budget plan and point out anything notable."
	if f.NArg() > 0 {
		question = strings.Join(f.Args(), " ")
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	st := store.State()

	var prompt strings.Builder
	prompt.WriteString("You are a personal finance assistant. Here is the current state of my finances, in markdown:\n\n")
	prompt.WriteString(renderer.SummaryMarkdown(st))
	prompt.WriteString("\n")
	prompt.WriteString(renderer.ExpensesMarkdown(st))
	prompt.WriteString("\n")
	prompt.WriteString(question)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	resp, err := client.Models.GenerateContent(ctx, "gemini-2.5-flash", genai.Text(prompt.String()), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating commentary:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(resp.Text())

	return subcommands.ExitSuccess
}
