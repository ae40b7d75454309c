package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/concierge/internal/catalog"
	"github.com/alexanderramin/concierge/internal/cli"
	"github.com/alexanderramin/concierge/internal/config"
	"github.com/alexanderramin/concierge/internal/db"
	"github.com/alexanderramin/concierge/internal/logging"
	"github.com/alexanderramin/concierge/internal/repository"
	"github.com/alexanderramin/concierge/internal/selection"
	"github.com/alexanderramin/concierge/internal/service"
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

	logger, err := logging.Setup(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Catalog tables are read lazily, once per category.
	cache := catalog.NewCache(os.DirFS(cfg.CatalogDir),
		catalog.WithDelimiter(cfg.DelimiterRune()),
		catalog.WithLogger(logger),
	)
	queries := selection.New(cache)

	programRepo := repository.NewSQLiteProgramRepo(database)
	exclusionRepo := repository.NewSQLiteExclusionRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		// Use-case records are informational; they bypass the configured level.
		useCaseLogger, err := logging.New(cfg.LogFormat, "info", os.Stderr)
		if err != nil {
			return err
		}
		observer = service.NewLogUseCaseObserver(useCaseLogger)
	}

	app := &cli.App{
		Programs: service.NewProgramService(programRepo, exclusionRepo, queries, uow,
			service.WithRequestDefaults(cfg.RequestDefaults()),
			service.WithObserver(observer),
		),
		Mutations:  service.NewMutationService(queries, uow, nil, observer),
		Exclusions: service.NewExclusionService(exclusionRepo),
		Catalog:    service.NewCatalogService(cache, observer),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
