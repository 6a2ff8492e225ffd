package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/catervpillar/jbudget"
	"github.com/google/subcommands"
)

type addAccountCmd struct {
	typ     string
	name    string
	initial string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "create a new account" }
func (*addAccountCmd) Usage() string {
	return `jb add-account -type <asset|liability> -name <name> [-initial <amount>]

  Creates an account. The name must not collide with an existing account.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", "asset", "Account type, asset or liability.")
	f.StringVar(&c.name, "name", "", "Account name, unique in the ledger.")
	f.StringVar(&c.initial, "initial", "0", "Initial balance.")
}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := jbudget.ParseAccountType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	initial, err := jbudget.ParseMoney(c.initial)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ctl, err := loadController()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	a, err := ctl.AddAccount(typ, c.name, initial)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveController(ctl); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created account %s (#%d)\n", a.Name(), a.ID())
	return subcommands.ExitSuccess
}

type editAccountCmd struct {
	name    string
	newName string
	typ     string
	initial string
}

func (*editAccountCmd) Name() string     { return "edit-account" }
func (*editAccountCmd) Synopsis() string { return "modify an existing account" }
func (*editAccountCmd) Usage() string {
	return `jb edit-account -name <name> [-new-name <name>] [-type <asset|liability>] [-initial <amount>]

  Modifies an account. Omitted flags keep the current values.
`
}

func (c *editAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the account to edit.")
	f.StringVar(&c.newName, "new-name", "", "New account name.")
	f.StringVar(&c.typ, "type", "", "New account type.")
	f.StringVar(&c.initial, "initial", "", "New initial balance.")
}

func (c *editAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctl, err := loadController()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	a, err := findAccount(ctl, c.name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	typ, name, initial := a.Type(), a.Name(), a.InitialBalance()
	if c.typ != "" {
		if typ, err = jbudget.ParseAccountType(c.typ); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	if c.newName != "" {
		name = c.newName
	}
	if c.initial != "" {
		if initial, err = jbudget.ParseMoney(c.initial); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	if err := ctl.ModifyAccount(a, typ, name, initial); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveController(ctl); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated account %s (#%d)\n", a.Name(), a.ID())
	return subcommands.ExitSuccess
}

type rmAccountCmd struct {
	name string
}

func (*rmAccountCmd) Name() string     { return "rm-account" }
func (*rmAccountCmd) Synopsis() string { return "remove an account" }
func (*rmAccountCmd) Usage() string {
	return `jb rm-account -name <name>

  Removes an account. Transactions that moved money on it are kept.
`
}

func (c *rmAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the account to remove.")
}

func (c *rmAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctl, err := loadController()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	a, err := findAccount(ctl, c.name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ctl.RemoveAccount(a); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveController(ctl); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed account %s (#%d)\n", a.Name(), a.ID())
	return subcommands.ExitSuccess
}

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list all accounts" }
func (*accountsCmd) Usage() string {
	return `jb accounts

  Lists every account with its type and initial balance.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctl, err := loadController()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, a := range ctl.Accounts(nil) {
		fmt.Printf("#%d\t%s\t%s\t%s\n", a.ID(), a.Type(), a.Name(), a.InitialBalance())
	}
	return subcommands.ExitSuccess
}
