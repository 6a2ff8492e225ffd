package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/catervpillar/jbudget"
	"github.com/catervpillar/jbudget/sqlitestore"
	"github.com/google/subcommands"
)

// backendManagers returns the persistence collaborators for an explicit
// backend name, for moving a ledger between stores.
func backendManagers(c *jbudget.Controller, backend string) (jbudget.ExportManager, jbudget.ImportManager, error) {
	switch backend {
	case "text":
		return jbudget.NewTextExporter(c), jbudget.NewTextImporter(c), nil
	case "sqlite":
		return sqlitestore.NewExporter(c), sqlitestore.NewImporter(c), nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", backend)
}

type exportCmd struct {
	to    string
	store string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger to another location" }
func (*exportCmd) Usage() string {
	return `jb export -to <path> [-as <text|sqlite>]

  Writes the whole ledger to the given location, a directory for the text
  backend or a database file for sqlite. The working store is not changed.

Usage Examples:
$ jb export -to backup/
$ jb export -as sqlite -to backup.db
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.to, "to", "", "Destination path.")
	f.StringVar(&c.store, "as", "text", "Backend used for the destination.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.to == "" {
		fmt.Fprintln(os.Stderr, "Error: -to is required.")
		return subcommands.ExitUsageError
	}
	ctl, err := loadController()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	exporter, _, err := backendManagers(ctl, c.store)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if err := exporter.ExportAll(c.to); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported ledger to %s\n", c.to)
	return subcommands.ExitSuccess
}

type importCmd struct {
	from  string
	store string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a ledger, replacing the current one" }
func (*importCmd) Usage() string {
	return `jb import -from <path> [-as <text|sqlite>]

  Replaces the working ledger with the one at the given location and
  writes it to the working store.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Source path.")
	f.StringVar(&c.store, "as", "text", "Backend used for the source.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" {
		fmt.Fprintln(os.Stderr, "Error: -from is required.")
		return subcommands.ExitUsageError
	}
	ctl := jbudget.NewController()
	_, importer, err := backendManagers(ctl, c.store)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if err := importer.ImportAll(c.from); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := configureStore(ctl); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveController(ctl); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported ledger from %s\n", c.from)
	return subcommands.ExitSuccess
}

type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "erase the whole ledger" }
func (*resetCmd) Usage() string {
	return `jb reset -force

  Erases every account, tag, transaction and movement, and restarts
  identifier allocation at 1. Requires -force.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Confirm the destructive reset.")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintln(os.Stderr, "Error: reset erases the whole ledger, pass -force to confirm.")
		return subcommands.ExitUsageError
	}
	ctl, err := loadController()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ctl.Reset()
	if err := saveController(ctl); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Ledger erased.")
	return subcommands.ExitSuccess
}
