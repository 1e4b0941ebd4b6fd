package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"patternshell/internal/catalog"
	"patternshell/internal/data/embedded"
	"patternshell/internal/golden"
	"patternshell/internal/logger"
	"patternshell/internal/output"
)

const docWordWrap = 80

// addDemoCommands adds the commands that list, run and describe demos.
func (app *App) addDemoCommands(rootCmd *cobra.Command) {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the available demos",
		Long:  `List every demo with its category and a one-line summary.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			category, _ := cmd.Flags().GetString("category")
			return app.list(category)
		},
	}
	listCmd.Flags().String("category", "", "Only list demos of this category (behavioral|creational|structural)")

	runCmd := &cobra.Command{
		Use:   "run [demo...]",
		Short: "Run one or more demos",
		Long: `Run the named demos in order and print their output. Use --all to run
every demo, grouped by category.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			demos, err := app.selectDemos(args, all)
			if err != nil {
				return err
			}
			return app.run(cmd, demos)
		},
	}
	runCmd.Flags().Bool("all", false, "Run every demo")

	describeCmd := &cobra.Command{
		Use:   "describe <demo>",
		Short: "Show the documentation of a demo",
		Long:  `Render the documentation page of a demo as formatted markdown.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.describe(args[0])
		},
	}

	rootCmd.AddCommand(listCmd, runCmd, describeCmd)
}

// addGoldenCommands adds the transcript verification commands.
func (app *App) addGoldenCommands(rootCmd *cobra.Command) {
	verifyCmd := &cobra.Command{
		Use:   "verify [demo...]",
		Short: "Check demos against their recorded transcripts",
		Long: `Run demos without delays and compare their output with the transcripts
built into the binary. With no arguments every demo is verified.
Returns a non-zero exit code if any demo differs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			demos, err := app.selectDemos(args, len(args) == 0)
			if err != nil {
				return err
			}
			return app.verify(cmd, demos)
		},
	}

	recordCmd := &cobra.Command{
		Use:   "record [demo...]",
		Short: "Write fresh transcripts to a directory",
		Long: `Run demos without delays and save their normalized output as
<dir>/<demo>.expected. With no arguments every demo is recorded.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			demos, err := app.selectDemos(args, len(args) == 0)
			if err != nil {
				return err
			}
			return app.record(cmd, dir, demos)
		},
	}
	recordCmd.Flags().String("dir", filepath.Join("testdata", "golden"), "Directory to write transcripts to")

	rootCmd.AddCommand(verifyCmd, recordCmd)
}

func (app *App) selectDemos(names []string, all bool) ([]catalog.Demo, error) {
	switch {
	case all && len(names) > 0:
		return nil, fmt.Errorf("--all cannot be combined with demo names")
	case all:
		return app.Registry.All(), nil
	case len(names) == 0:
		return nil, fmt.Errorf("specify demo names or --all (see 'patterns list')")
	default:
		return app.Registry.Lookup(names...)
	}
}

func (app *App) list(category string) error {
	demos := app.Registry.All()
	if category != "" {
		c, err := catalog.ParseCategory(category)
		if err != nil {
			return err
		}
		demos = app.Registry.ByCategory(c)
	}

	rows := make([][]string, 0, len(demos))
	for _, demo := range demos {
		rows = append(rows, []string{demo.Name(), string(demo.Category()), demo.Summary()})
	}

	stylable := app.printer.IsStylable()
	cell := lipgloss.NewStyle().Padding(0, 1)
	header := cell.Bold(stylable)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("DEMO", "CATEGORY", "SUMMARY").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	app.printer.Println(t.String())
	app.printer.Comment(fmt.Sprintf("%d demos", len(demos)))
	return nil
}

func (app *App) run(cmd *cobra.Command, demos []catalog.Demo) error {
	for i, demo := range demos {
		if i > 0 {
			app.printer.Println("")
		}
		app.printer.Heading(demo.Name())
		logger.DemoRun(demo.Name(), string(demo.Category()))

		if err := demo.Run(cmd.Context(), app.newEnv(demo)); err != nil {
			if errors.Is(err, context.Canceled) {
				app.printer.Warning("Interrupted during " + demo.Name())
			}
			return fmt.Errorf("demo %s failed: %w", demo.Name(), err)
		}
	}
	return nil
}

func (app *App) describe(name string) error {
	if _, ok := app.Registry.Get(name); !ok {
		return fmt.Errorf("unknown demo: %s", name)
	}

	doc, err := embedded.LoadDoc(name)
	if err != nil {
		return err
	}

	renderer := output.NewMarkdownRenderer(app.printer.StyleProvider(), docWordWrap)
	app.printer.Print(renderer.Render(doc))
	return nil
}

func (app *App) verify(cmd *cobra.Command, demos []catalog.Demo) error {
	runner := golden.NewRunner(golden.WithLogger(logger.NewStyledLogger("Golden")))
	results, err := runner.VerifyAll(cmd.Context(), demos)
	if err != nil {
		return err
	}

	differ := golden.NewDiffer(app.printer)
	for _, result := range results {
		if result.Passed() {
			app.printer.Success("PASS " + result.Name)
			continue
		}
		app.printer.Error(fmt.Sprintf("FAIL %s: %v", result.Name, result.Err))
		if result.Expected != "" || result.Actual != "" {
			differ.ShowDetailedDiff(result.Name, result.Expected, result.Actual)
		}
	}

	failed := golden.Failed(results)
	app.printer.Info(fmt.Sprintf("Results: %d passed, %d failed", len(results)-len(failed), len(failed)))
	if len(failed) > 0 {
		return fmt.Errorf("demos failed: %v", failed)
	}
	return nil
}

func (app *App) record(cmd *cobra.Command, dir string, demos []catalog.Demo) error {
	recorder := golden.NewRecorder(dir, golden.NewRunner(golden.WithLogger(logger.NewStyledLogger("Golden"))))
	for _, demo := range demos {
		path, err := recorder.Record(cmd.Context(), demo)
		if err != nil {
			return err
		}
		app.printer.Success("Recorded " + path)
	}
	return nil
}
