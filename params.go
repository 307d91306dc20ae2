package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/testplan-go/testplan/framework"
)

const defaultEnvFile = ".env"

type commandParams struct {
	filters     framework.RegexFilters
	flipped     []string
	noColor     bool
	debug       bool
	debugAll    bool
	indentWidth int
	outputPath  string
	envFile     string
}

func (c *commandParams) addFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select cases to run")
	flags.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select cases not to run")
	flags.StringArrayVar(&c.flipped, "fail", nil, "name of a case whose assertion should fail (repeatable)")
	flags.BoolVar(&c.noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&c.debug, "debug", false, "show debug output of failed cases and log registrations to stderr")
	flags.BoolVar(&c.debugAll, "debug-all", false, "like --debug, and also show debug output of passing cases")
	flags.IntVar(&c.indentWidth, "indent", 0, "number of spaces per hierarchy level (default 4)")
	flags.StringVarP(&c.outputPath, "output", "o", "", "write the report to a file instead of stdout")
	flags.StringVar(&c.envFile, "env-file", defaultEnvFile, "file with TESTPLAN_* defaults, ignored if missing")
}

// applyEnvironment loads the env file and uses TESTPLAN_* variables for flags that were not given
// on the command line.
func (c *commandParams) applyEnvironment(cmd *cobra.Command) error {
	if c.envFile != "" {
		if err := godotenv.Load(c.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", c.envFile, err)
		}
	}
	flags := cmd.Flags()
	if err := envBool(flags.Changed("no-color"), "TESTPLAN_NO_COLOR", &c.noColor); err != nil {
		return err
	}
	if err := envBool(flags.Changed("debug"), "TESTPLAN_DEBUG", &c.debug); err != nil {
		return err
	}
	if v := os.Getenv("TESTPLAN_INDENT"); v != "" && !flags.Changed("indent") {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid TESTPLAN_INDENT %q: %w", v, err)
		}
		c.indentWidth = n
	}
	return nil
}

func envBool(changed bool, name string, target *bool) error {
	v := os.Getenv(name)
	if changed || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	*target = b
	return nil
}

func (c *commandParams) indent(cmd *cobra.Command) ldvalue.OptionalInt {
	if cmd.Flags().Changed("indent") || os.Getenv("TESTPLAN_INDENT") != "" {
		return ldvalue.NewOptionalInt(c.indentWidth)
	}
	return ldvalue.OptionalInt{}
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

// rerunCommand builds a command line that runs only the given cases, keeping their flipped
// assertions so that they fail the same way.
func rerunCommand(failed []string, flipped []string) string {
	isFlipped := make(map[string]bool)
	for _, name := range flipped {
		isFlipped[name] = true
	}
	cmd := commandBuilder{}
	cmd.add("testplan", "run")
	for _, name := range failed {
		cmd.add("--run", "^"+regexp.QuoteMeta(name)+"$")
	}
	for _, name := range failed {
		if isFlipped[name] {
			cmd.add("--fail", name)
		}
	}
	return cmd.String()
}
