package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addTagCmd struct {
	name        string
	description string
}

func (*addTagCmd) Name() string     { return "add-tag" }
func (*addTagCmd) Synopsis() string { return "create a new tag" }
func (*addTagCmd) Usage() string {
	return `jb add-tag -name <name> [-description <text>]

  Creates a tag. The name must not collide with an existing tag.
`
}

func (c *addTagCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Tag name, unique in the ledger.")
	f.StringVar(&c.description, "description", "", "Free-form description.")
}

func (c *addTagCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctl, err := loadController()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	t, err := ctl.AddTag(c.name, c.description)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveController(ctl); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created tag %s (#%d)\n", t.Name(), t.ID())
	return subcommands.ExitSuccess
}

type editTagCmd struct {
	name        string
	newName     string
	description string
}

func (*editTagCmd) Name() string     { return "edit-tag" }
func (*editTagCmd) Synopsis() string { return "modify an existing tag" }
func (*editTagCmd) Usage() string {
	return `jb edit-tag -name <name> [-new-name <name>] [-description <text>]

  Modifies a tag. Omitted flags keep the current values.
`
}

func (c *editTagCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the tag to edit.")
	f.StringVar(&c.newName, "new-name", "", "New tag name.")
	f.StringVar(&c.description, "description", "", "New description.")
}

func (c *editTagCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctl, err := loadController()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	t, err := findTag(ctl, c.name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	name, description := t.Name(), t.Description()
	if c.newName != "" {
		name = c.newName
	}
	if c.description != "" {
		description = c.description
	}
	if err := ctl.ModifyTag(t, name, description); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveController(ctl); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated tag %s (#%d)\n", t.Name(), t.ID())
	return subcommands.ExitSuccess
}

type rmTagCmd struct {
	name string
}

func (*rmTagCmd) Name() string     { return "rm-tag" }
func (*rmTagCmd) Synopsis() string { return "remove a tag" }
func (*rmTagCmd) Usage() string {
	return `jb rm-tag -name <name>

  Removes a tag from the ledger.
`
}

func (c *rmTagCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the tag to remove.")
}

func (c *rmTagCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctl, err := loadController()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	t, err := findTag(ctl, c.name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ctl.RemoveTag(t); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveController(ctl); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed tag %s (#%d)\n", t.Name(), t.ID())
	return subcommands.ExitSuccess
}

type tagsCmd struct{}

func (*tagsCmd) Name() string     { return "tags" }
func (*tagsCmd) Synopsis() string { return "list all tags" }
func (*tagsCmd) Usage() string {
	return `jb tags

  Lists every tag with its description.
`
}

func (c *tagsCmd) SetFlags(f *flag.FlagSet) {}

func (c *tagsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctl, err := loadController()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, t := range ctl.Tags() {
		fmt.Printf("#%d\t%s\t%s\n", t.ID(), t.Name(), t.Description())
	}
	return subcommands.ExitSuccess
}
