// Package cli provides command-line interface setup for patterns.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"patternshell/internal/catalog"
	"patternshell/internal/config"
	"patternshell/internal/logger"
	"patternshell/internal/output"
	"patternshell/internal/theme"
	"patternshell/internal/version"

	// Registers every demo with the global catalog.
	_ "patternshell/internal/patterns/all"
)

// DotEnvFile is loaded from the working directory before configuration.
const DotEnvFile = ".env"

// App represents the patterns CLI application.
type App struct {
	Viper    *viper.Viper
	Registry *catalog.Registry
	Config   *config.Config

	configFile string
	printer    *output.Printer
}

// NewApp creates a new patterns CLI application over the global registry.
func NewApp() *App {
	return &App{
		Viper:    viper.New(),
		Registry: catalog.GetGlobalRegistry(),
	}
}

// CreateRootCommand creates and configures the root command.
func (app *App) CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "patterns",
		Short: "A console tour of classic design patterns",
		Long: `patterns runs small, scripted demonstrations of the classic object-oriented
design patterns and prints what each one does. It can also describe a
pattern and verify every demo against its recorded transcript.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.initConfig,
	}

	flags := rootCmd.PersistentFlags()
	flags.String(config.KeyLogLevel, "", "Set log level (debug|info|warn|error) [default: info]")
	flags.String(config.KeyLogFile, "", "Write logs to file instead of stderr")
	flags.Bool(config.KeyTestMode, false, "Run in deterministic test mode (no delays, plain output)")
	flags.Bool(config.KeyPlain, false, "Disable colours and styling")
	flags.Bool(config.KeyJSON, false, "Write output as one JSON record per line")
	flags.String(config.KeyTheme, "default", fmt.Sprintf("Colour theme %v", theme.Names()))
	flags.StringVar(&app.configFile, "config", "", "Config file (default ./patterns.yaml)")

	for _, name := range []string{config.KeyLogLevel, config.KeyLogFile, config.KeyTestMode, config.KeyPlain, config.KeyJSON, config.KeyTheme} {
		if err := app.Viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind %s flag: %v", name, err))
		}
	}

	app.addDemoCommands(rootCmd)
	app.addGoldenCommands(rootCmd)
	app.addVersionCommand(rootCmd)

	return rootCmd
}

// initConfig resolves configuration and sets up logging and output before any
// command runs.
func (app *App) initConfig(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(DotEnvFile); err != nil {
		return err
	}

	cfg, err := config.Load(app.Viper, app.configFile)
	if err != nil {
		return err
	}
	app.Config = cfg

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile, cfg.TestMode); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}

	if err := checkMinVersion(cfg.MinVersion); err != nil {
		return err
	}

	opts := []output.Option{output.WithWriter(cmd.OutOrStdout())}
	switch {
	case cfg.JSON:
		opts = append(opts, output.JSON())
	case cfg.Plain:
		opts = append(opts, output.PlainText())
	default:
		opts = append(opts, output.WithStyles(theme.NewProvider(cfg.Theme)))
	}
	app.printer = output.NewPrinter(opts...)

	logger.Debug("Configuration loaded", "theme", cfg.Theme, "plain", cfg.Plain, "json", cfg.JSON, "test_mode", cfg.TestMode)
	return nil
}

// checkMinVersion warns when this build is older than the configured minimum.
func checkMinVersion(minVersion string) error {
	if minVersion == "" {
		return nil
	}
	cmp, err := version.CompareVersions(version.GetVersion(), minVersion)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", config.KeyMinVersion, err)
	}
	if cmp < 0 {
		logger.Warn("patterns is older than the configured minimum", "version", version.GetVersion(), config.KeyMinVersion, minVersion)
	}
	return nil
}

// newEnv builds the environment a demo runs in.
func (app *App) newEnv(demo catalog.Demo) *catalog.Env {
	return &catalog.Env{
		Out:        app.printer,
		Log:        logger.Logger.WithPrefix(demo.Name()),
		StepDelay:  app.Config.StepDelay,
		ProxyDelay: app.Config.ProxyDelay,
	}
}
