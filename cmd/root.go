package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"task-report/internal/report"
	"task-report/internal/repository"
	"task-report/internal/service"
	"task-report/pkg/config"
	"task-report/pkg/middleware"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	envFiles []string
	driver   string
	dsn      string
	format   string
}

func newRootCmd(out io.Writer, level *slog.LevelVar) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "task-report",
		Short: "Print users with their assigned tasks",
		Long: `Connects read-only to the task tracker's database and prints:

  - every user with the number of non-deleted tasks assigned to them
  - the total number of non-deleted tasks and one line per task

Connection settings come from the environment (or a .env file); see
REPORT_DB_DRIVER, DATABASE_DSN and POSTGRES_*.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd.Context(), out, opts, level)
		},
	}

	cmd.Flags().StringSliceVar(&opts.envFiles, "env-file", nil, "env file(s) to load before reading the environment")
	cmd.Flags().StringVar(&opts.driver, "driver", "", "database driver: postgres, mysql or sqlite (overrides REPORT_DB_DRIVER)")
	cmd.Flags().StringVar(&opts.dsn, "dsn", "", "database DSN (overrides DATABASE_DSN)")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format: text or json (overrides REPORT_FORMAT)")

	return cmd
}

func runReport(ctx context.Context, out io.Writer, opts *rootOptions, level *slog.LevelVar) error {
	// Load configuration
	cfg, err := config.Load(opts.envFiles...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.driver != "" {
		cfg.Driver = opts.driver
	}
	if opts.dsn != "" {
		cfg.DSN = opts.dsn
	}
	if opts.format != "" {
		cfg.Format = opts.format
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if level != nil {
		level.Set(cfg.SlogLevel())
	}

	// zero means no deadline
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	tables := repository.Tables{Users: cfg.UsersTable, Tasks: cfg.TasksTable}

	// Connect to database and initialize repositories
	var (
		userRepo service.UserRepository
		taskRepo service.TaskRepository
	)
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := config.InitPostgres(ctx, *cfg, middleware.NewQueryLogger(slog.Default()))
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		userRepo = repository.NewUserRepository(pool, tables)
		taskRepo = repository.NewTaskRepository(pool, tables)
	default:
		db, err := config.InitSQL(ctx, *cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		userRepo = repository.NewSQLUserRepository(db, tables)
		taskRepo = repository.NewSQLTaskRepository(db, tables)
	}

	slog.Debug("successfully connected to database", "driver", cfg.Driver)

	reportService := service.NewReportService(userRepo, taskRepo)

	rep, err := reportService.BuildReport(ctx)
	if err != nil {
		return err
	}

	return report.Write(out, cfg.Format, rep)
}
