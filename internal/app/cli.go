package app

import (
	"context"
	"fmt"
	"io"

	"github.com/VladPetriv/fathom_migrator/config"
	"github.com/VladPetriv/fathom_migrator/internal/migrations"
	"github.com/VladPetriv/fathom_migrator/pkg/errs"
	"github.com/VladPetriv/fathom_migrator/pkg/logger"
	"github.com/spf13/cobra"
)

// CLI wires the command line to the runner.
type CLI struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Connect ConnectFunc

	configPath string
}

// Execute runs the command line and returns the process exit code.
func (c *CLI) Execute(ctx context.Context, args []string) int {
	if args == nil {
		args = []string{}
	}

	cmd := c.rootCommand()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(c.Stderr, "Error: %v\n", err)
	}

	return errs.ExitCode(err)
}

func (c *CLI) rootCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Add the fathom_teams column to sales_reps",
		Long: `Add the fathom_teams column, its GIN index and comment to the sales_reps table
in one transaction, then verify the column through information_schema.`,
		Args: cobra.NoArgs,
		RunE: c.runMigrate,
	}

	rootCmd := &cobra.Command{
		Use:           "fathom-migrate",
		Short:         migrateCmd.Short,
		Long:          migrateCmd.Long,
		Args:          cobra.NoArgs,
		RunE:          c.runMigrate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(c.Stdout)
	rootCmd.SetErr(c.Stderr)
	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "", "Path to a config file (overrides "+config.PathEnv+")")

	rootCmd.AddCommand(
		migrateCmd,
		&cobra.Command{
			Use:   "verify",
			Short: "Check that fathom_teams exists without changing the schema",
			Args:  cobra.NoArgs,
			RunE:  c.runVerify,
		},
		&cobra.Command{
			Use:   "sql",
			Short: "Print the migration SQL for manual execution",
			Args:  cobra.NoArgs,
			RunE:  c.runSQL,
		},
	)

	return rootCmd
}

func (c *CLI) runMigrate(cmd *cobra.Command, _ []string) error {
	runner, cfg, err := c.newRunner()
	if err != nil {
		return err
	}

	return runner.Migrate(cmd.Context(), cfg)
}

func (c *CLI) runVerify(cmd *cobra.Command, _ []string) error {
	runner, cfg, err := c.newRunner()
	if err != nil {
		return err
	}

	return runner.Verify(cmd.Context(), cfg)
}

func (c *CLI) runSQL(cmd *cobra.Command, _ []string) error {
	for _, migration := range migrations.Migrations {
		fmt.Fprint(cmd.OutOrStdout(), migration.SQL())
	}

	return nil
}

func (c *CLI) newRunner() (*Runner, *config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(logger.LoggerOptions{
		LogLevel:        cfg.Logger.LogLevel,
		LogFile:         cfg.Logger.LogFilename,
		PrettyLogOutput: cfg.Logger.PrettyLogOutput,
		Out:             c.Stderr,
	})
	if err != nil {
		return nil, nil, errs.Wrap(errs.ErrConfiguration, fmt.Errorf("create logger: %w", err))
	}

	return NewRunner(log, c.Stdout, c.Connect), cfg, nil
}
