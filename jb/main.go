// Command jb manages a personal ledger of accounts, tags and
// transactions.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/catervpillar/jbudget/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// A .env in the working directory may carry JB_DATA_DIR.
	godotenv.Load()

	// Shell completion: returns immediately unless invoked by the shell.
	completion().Complete("jb")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	sub := make(map[string]*complete.Command)
	for _, name := range []string{
		"add-account", "edit-account", "rm-account", "accounts",
		"add-tag", "edit-tag", "rm-tag", "tags",
		"tx", "rm-tx", "log", "summary",
		"export", "import", "reset", "topic",
	} {
		sub[name] = &complete.Command{}
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
			"store":    predict.Set{"text", "sqlite"},
			"config":   predict.Files("*.yaml"),
		},
	}
}
