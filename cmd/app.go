// Package cmd implements the CLI application to manage a personal ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/catervpillar/jbudget"
	"github.com/catervpillar/jbudget/sqlitestore"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package calls Register() to allow subcommands, and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addAccountCmd{}, "accounts")
	c.Register(&editAccountCmd{}, "accounts")
	c.Register(&rmAccountCmd{}, "accounts")
	c.Register(&accountsCmd{}, "accounts")

	c.Register(&addTagCmd{}, "tags")
	c.Register(&editTagCmd{}, "tags")
	c.Register(&rmTagCmd{}, "tags")
	c.Register(&tagsCmd{}, "tags")

	c.Register(&txCmd{}, "transactions")
	c.Register(&rmTxCmd{}, "transactions")

	c.Register(&logCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&exportCmd{}, "storage")
	c.Register(&importCmd{}, "storage")
	c.Register(&resetCmd{}, "storage")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataDirFlag = flag.String("data-dir", "", "Directory holding the ledger files (defaults to $JB_DATA_DIR, the config file, then \".\")")
var storeFlag = flag.String("store", "", "Storage backend, \"text\" or \"sqlite\" (defaults to the config file, then \"text\")")
var configFlag = flag.String("config", "", "Path to the YAML config file (defaults to $HOME/.jbudget.yaml)")

var logger = newLogger()

func newLogger() zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).With().Timestamp().Logger()
}

// dataDir resolves the working data directory: flag, then environment,
// then config file, then the current directory.
func dataDir() string {
	if *dataDirFlag != "" {
		return *dataDirFlag
	}
	if dir := os.Getenv("JB_DATA_DIR"); dir != "" {
		return dir
	}
	if cfg := loadConfig(); cfg.DataDir != "" {
		return cfg.DataDir
	}
	return "."
}

// storeBackend resolves the storage backend: flag, then config file, then
// the flat text files.
func storeBackend() string {
	if *storeFlag != "" {
		return *storeFlag
	}
	if cfg := loadConfig(); cfg.Store != "" {
		return cfg.Store
	}
	return "text"
}

// sqliteFile is the database file name used inside the data directory by
// the sqlite backend.
const sqliteFile = "ledger.db"

// storePath returns the location the resolved backend reads and writes.
func storePath() string {
	if storeBackend() == "sqlite" {
		return filepath.Join(dataDir(), sqliteFile)
	}
	return dataDir()
}

// configureStore injects the persistence collaborators matching the
// resolved backend.
func configureStore(c *jbudget.Controller) error {
	switch storeBackend() {
	case "text":
		// The controller's defaults already are the text managers.
	case "sqlite":
		c.SetExportManager(sqlitestore.NewExporter(c))
		c.SetImportManager(sqlitestore.NewImporter(c))
	default:
		return fmt.Errorf("unknown store backend %q", storeBackend())
	}
	return nil
}

// loadController loads the ledger from the working store. A store that
// does not exist yet yields an empty ledger with a warning.
func loadController() (*jbudget.Controller, error) {
	c := jbudget.NewController()
	if err := configureStore(c); err != nil {
		return nil, err
	}

	probe := storePath()
	if storeBackend() == "text" {
		probe = filepath.Join(dataDir(), jbudget.AccountsFile)
	}
	if _, err := os.Stat(probe); os.IsNotExist(err) {
		logger.Warn().Str("path", probe).Msg("no ledger found, starting empty")
		return c, nil
	}

	if err := c.Import(storePath()); err != nil {
		return nil, err
	}
	return c, nil
}

// saveController writes the ledger back to the working store.
func saveController(c *jbudget.Controller) error {
	return c.Export(storePath())
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// findAccount resolves an account by name.
func findAccount(c *jbudget.Controller, name string) (*jbudget.Account, error) {
	want := strings.ToUpper(name)
	matches := c.Accounts(func(a *jbudget.Account) bool { return a.Name() == want })
	if len(matches) != 1 {
		return nil, fmt.Errorf("account %q matches %d accounts", name, len(matches))
	}
	return matches[0], nil
}

// findTag resolves a tag by name.
func findTag(c *jbudget.Controller, name string) (*jbudget.Tag, error) {
	want := strings.ToUpper(name)
	for _, t := range c.Tags() {
		if t.Name() == want {
			return t, nil
		}
	}
	return nil, fmt.Errorf("tag %q not found", name)
}

// findTags resolves a comma-separated list of tag names.
func findTags(c *jbudget.Controller, names string) ([]*jbudget.Tag, error) {
	if names == "" {
		return nil, nil
	}
	var tags []*jbudget.Tag
	for _, name := range strings.Split(names, ",") {
		t, err := findTag(c, strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

// findTransaction resolves a transaction by its identifier.
func findTransaction(c *jbudget.Controller, id int) (*jbudget.Transaction, error) {
	matches := c.Transactions(func(t *jbudget.Transaction) bool { return t.ID() == id })
	if len(matches) != 1 {
		return nil, fmt.Errorf("transaction %d not found", id)
	}
	return matches[0], nil
}
