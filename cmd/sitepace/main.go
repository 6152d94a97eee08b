package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/sitepace/internal/cli"
	"github.com/alexanderramin/sitepace/internal/cli/formatter"
	"github.com/alexanderramin/sitepace/internal/config"
	"github.com/alexanderramin/sitepace/internal/db"
	"github.com/alexanderramin/sitepace/internal/repository"
	"github.com/alexanderramin/sitepace/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.NoColor {
		formatter.NoColor()
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	itemRepo := repository.NewSQLiteWorkItemRepo(database)
	entryRepo := repository.NewSQLiteProgressEntryRepo(database)

	// Use-case logging goes to a file when configured.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	var logFile io.Closer
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logFile = f
		observer = service.NewLogUseCaseObserver(f)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	calendar := cfg.Calendar()

	app := &cli.App{
		Projects:  service.NewProjectService(projectRepo),
		Items:     service.NewWorkItemService(itemRepo),
		Entries:   service.NewEntryService(entryRepo),
		Reports:   service.NewReportService(projectRepo, itemRepo, entryRepo, observer),
		LookAhead: service.NewLookAheadService(projectRepo, itemRepo, entryRepo, calendar, observer),
		Forecast:  service.NewForecastService(projectRepo, itemRepo, entryRepo, calendar, observer),
		Import:    service.NewImportService(projectRepo, itemRepo, entryRepo, observer),

		DefaultGranularity: cfg.DefaultGranularity,
		ForecastHorizon:    cfg.ForecastHorizon,
	}

	// Detect interactive terminal for forms and the report browser.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
