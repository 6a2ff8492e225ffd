package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/catervpillar/jbudget"
	"github.com/google/subcommands"
)

type txCmd struct {
	date string
	tags string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "record a new transaction" }
func (*txCmd) Usage() string {
	return `jb tx [-date <date>] [-tags <tag,...>] <type:account:amount> ...

  Records a transaction with one movement per argument. Each movement is
  written as type:account:amount, where type is increment or decrement
  and account is the account name.

Usage Examples:
$ jb tx -date 2025-03-14 -tags food decrement:conto:42.50
$ jb tx decrement:conto:500 decrement:mutuo:500
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Transaction date, defaults to today.")
	f.StringVar(&c.tags, "tags", "", "Comma-separated tag names applied to the transaction.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a transaction needs at least one movement.")
		return subcommands.ExitUsageError
	}

	date := jbudget.Today()
	if c.date != "" {
		var err error
		if date, err = jbudget.ParseDate(c.date); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	ctl, err := loadController()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	tags, err := findTags(ctl, c.tags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	t, err := ctl.NewTransaction(date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, arg := range f.Args() {
		m, err := parseMovement(ctl, arg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		if err := t.AddMovement(m); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	for _, tag := range tags {
		if err := t.AddTag(tag); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	if err := ctl.AddTransaction(t); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveController(ctl); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded transaction #%d on %s, total %s\n", t.ID(), t.Date(), t.TotalAmount().SignedString())
	return subcommands.ExitSuccess
}

// parseMovement builds a movement from its type:account:amount form.
func parseMovement(ctl *jbudget.Controller, arg string) (*jbudget.Movement, error) {
	parts := strings.SplitN(arg, ":", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("movement %q is not of the form type:account:amount", arg)
	}
	typ, err := jbudget.ParseMovementType(parts[0])
	if err != nil {
		return nil, err
	}
	account, err := findAccount(ctl, parts[1])
	if err != nil {
		return nil, err
	}
	amount, err := jbudget.ParseMoney(parts[2])
	if err != nil {
		return nil, err
	}
	return ctl.NewMovement(typ, amount, account)
}

type rmTxCmd struct {
	id int
}

func (*rmTxCmd) Name() string     { return "rm-tx" }
func (*rmTxCmd) Synopsis() string { return "remove a transaction" }
func (*rmTxCmd) Usage() string {
	return `jb rm-tx -id <id>

  Removes a transaction. Its movements are detached from their accounts,
  so balances roll back.
`
}

func (c *rmTxCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Identifier of the transaction to remove.")
}

func (c *rmTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id < 1 {
		fmt.Fprintln(os.Stderr, "Error: -id must be a positive identifier, got "+strconv.Itoa(c.id))
		return subcommands.ExitUsageError
	}
	ctl, err := loadController()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	t, err := findTransaction(ctl, c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ctl.RemoveTransaction(t); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveController(ctl); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed transaction #%d\n", t.ID())
	return subcommands.ExitSuccess
}
