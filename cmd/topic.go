package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/budget/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "print documentation topics" }
func (*topicCmd) Usage() string {
	return `bcs topic [<name>...]

  Prints the given documentation topics, "readme" by default.
  Use "*" to print them all.
`
}

func (*topicCmd) SetFlags(*flag.FlagSet) {}

func (*topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	content, err := docs.GetTopics(topics...)
	if err != nil {
		all, lerr := docs.AllTopics()
		if lerr == nil {
			fmt.Fprintf(os.Stderr, "%v\navailable topics: %s\n", err, strings.Join(all, ", "))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return subcommands.ExitFailure
	}

	printMarkdown(content)
	return subcommands.ExitSuccess
}
