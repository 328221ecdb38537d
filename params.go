package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/microut/microut-go/framework"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	filters  framework.RegexFilters
	debug    bool
	debugAll bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand builds a shell command that reruns exactly the failed tests,
// or returns "" if the failures cannot be pinned to individual tests (for
// example a suite whose startup hook failed).
func rerunCommand(program string, results framework.Results) string {
	if len(results.Failures) == 0 {
		return ""
	}
	var b commandBuilder
	b.add(program)
	for _, f := range results.Failures {
		b.add("-run", "^"+regexp.QuoteMeta(f.SuiteName+"/"+f.Name)+"$")
	}
	return b.String()
}
