package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/catervpillar/jbudget"
	"github.com/catervpillar/jbudget/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	on string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show account balances and net worth" }
func (*summaryCmd) Usage() string {
	return `jb summary [-on <date>]

  Shows the balance of every account on the given day, today by default.
  Movements dated after that day do not count.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "on", "", "Day of the report, defaults to today.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := jbudget.Today()
	if c.on != "" {
		var err error
		if on, err = jbudget.ParseDate(c.on); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	ctl, err := loadController()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(ctl.Accounts(nil), on))
	return subcommands.ExitSuccess
}
