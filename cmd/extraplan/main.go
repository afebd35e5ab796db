package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/martagraells/extraplan/internal/catalog"
	"github.com/martagraells/extraplan/internal/cli"
	"github.com/martagraells/extraplan/internal/db"
	"github.com/martagraells/extraplan/internal/repository"
	"github.com/martagraells/extraplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional config: ~/.extraplan/.env can set the EXTRAPLAN_* variables.
	if home, err := os.UserHomeDir(); err == nil {
		_ = godotenv.Load(filepath.Join(home, ".extraplan", ".env"))
	}

	// Determine DB path: env var or default ~/.extraplan/extraplan.db
	dbPath := os.Getenv("EXTRAPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".extraplan", "extraplan.db")
	}

	// Catalog: the embedded school offer, or an override file.
	var cat *catalog.Catalog
	var err error
	if path := os.Getenv("EXTRAPLAN_CATALOG"); path != "" {
		cat, err = catalog.LoadFile(path)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	childRepo := repository.NewSQLiteChildRepo(database)
	assignRepo := repository.NewSQLiteAssignmentRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	planSvc := service.NewPlanService(cat, childRepo, assignRepo)

	app := &cli.App{
		Catalog:  cat,
		Roster:   service.NewRosterService(childRepo),
		Plan:     planSvc,
		Reports:  service.NewReportService(cat, planSvc),
		Transfer: service.NewTransferService(planSvc, uow),
	}

	// Detect interactive terminal for forms and the board.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
