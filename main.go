package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/testplan-go/testplan/bridge"
	"github.com/testplan-go/testplan/framework"
	"github.com/testplan-go/testplan/hierarchy"
	"github.com/testplan-go/testplan/logging"
	"github.com/testplan-go/testplan/plans"
	"github.com/testplan-go/testplan/report"
)

var errTestsFailed = errors.New("some test cases failed")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, errTestsFailed) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "testplan",
		Short:         "Run hierarchical test plans",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCommand(), newListCommand())
	return root
}

func newRunCommand() *cobra.Command {
	params := &commandParams{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the reference plans and print the hierarchical report",
		Long: `Run the reference test plans (3 plans, 9 suites, 22 cases) through the flat engine and print
each case under its plan and suite. Use --fail to make the assertion of a case fail.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := params.applyEnvironment(cmd); err != nil {
				return err
			}
			return runPlans(cmd, params)
		},
	}
	params.addFlags(cmd)
	return cmd
}

func runPlans(cmd *cobra.Command, params *commandParams) error {
	tree, err := plans.Build(params.flipped...)
	if err != nil {
		return err
	}

	if params.outputPath == "" {
		return runPlansTo(cmd, params, tree, cmd.OutOrStdout(), params.noColor || color.NoColor)
	}
	file, err := os.Create(params.outputPath)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(file)
	runErr := runPlansTo(cmd, params, tree, w, true)
	if err := closeOutput(w, file); err != nil {
		return fmt.Errorf("writing %s: %w", params.outputPath, err)
	}
	return runErr
}

// closeOutput flushes w and closes the underlying file. Errors of both steps are returned.
func closeOutput(w *bufio.Writer, c io.Closer) error {
	return errors.Join(w.Flush(), c.Close())
}

func runPlansTo(cmd *cobra.Command, params *commandParams, tree *hierarchy.Tree, out io.Writer, noColor bool) error {
	debugLogger := logging.NullLogger()
	if params.debug || params.debugAll {
		debugLogger = log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
	}

	framework.PrintFilterDescription(out, params.filters)

	engine := framework.NewEngine(framework.Options{
		Filter: params.filters.AsFilter,
		TestLogger: &framework.ConsoleTestLogger{
			Out:                  out,
			NoColor:              noColor,
			DebugOutputOnFailure: params.debug || params.debugAll,
			DebugOutputOnSuccess: params.debugAll,
		},
	})
	run, err := bridge.Register(engine, tree, bridge.Options{
		Out: out,
		Renderer: report.RendererOptions{
			IndentWidth: params.indent(cmd),
			NoColor:     noColor,
		},
		Logger: logging.WithPrefix(debugLogger, "[bridge] "),
	})
	if err != nil {
		return err
	}

	results := engine.Run()
	if results.OK() {
		return nil
	}

	var failed []string
	for _, f := range results.Failures {
		failed = append(failed, f.Name)
	}
	debugLogger.Printf("%d passed, %d failed in the hierarchy report", run.State().Passed(), run.State().Failed())
	fmt.Fprintf(cmd.ErrOrStderr(), "\nTo re-run the failed cases:\n  %s\n", rerunCommand(failed, params.flipped))
	return errTestsFailed
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the reference plans, suites and cases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := plans.Build()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range tree.Plans() {
				printNode(out, p, 0)
			}
			fmt.Fprintf(out, "\n%d cases\n", tree.CountCases())
			return nil
		},
	}
}

func printNode(out io.Writer, node hierarchy.Node, depth int) {
	indent := strings.Repeat(" ", report.DefaultIndentWidth*depth)
	s, ok := node.(*hierarchy.Suite)
	if !ok {
		fmt.Fprintf(out, "%s%s\n", indent, node.Name())
		return
	}
	fmt.Fprintf(out, "%s%s (%d cases)\n", indent, s.Name(), s.CountCases())
	for _, child := range s.Children() {
		printNode(out, child, depth+1)
	}
}
