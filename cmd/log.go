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

type logCmd struct {
	from string
	to   string
	tag  string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list transactions" }
func (*logCmd) Usage() string {
	return `jb log [-from <date>] [-to <date>] [-tag <name>]

  Lists transactions, optionally restricted to a date range or a tag.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Only transactions on or after this date.")
	f.StringVar(&c.to, "to", "", "Only transactions on or before this date.")
	f.StringVar(&c.tag, "tag", "", "Only transactions carrying this tag.")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctl, err := loadController()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var from, to jbudget.Date
	if c.from != "" {
		if from, err = jbudget.ParseDate(c.from); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	if c.to != "" {
		if to, err = jbudget.ParseDate(c.to); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	var tag *jbudget.Tag
	if c.tag != "" {
		if tag, err = findTag(ctl, c.tag); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	transactions := ctl.Transactions(func(t *jbudget.Transaction) bool {
		if !from.IsZero() && t.Date().Before(from) {
			return false
		}
		if !to.IsZero() && t.Date().After(to) {
			return false
		}
		if tag != nil && !t.HasTag(tag) {
			return false
		}
		return true
	})

	printMarkdown(renderer.LogMarkdown(transactions))
	return subcommands.ExitSuccess
}
