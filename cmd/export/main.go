package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"medharvest/internal/catalog"
	"medharvest/internal/config"
	"medharvest/internal/db"
	"medharvest/internal/model"
	"medharvest/internal/sqlgen"
	"medharvest/internal/store"
)

// go run cmd/export/main.go -load
//
// Builds the lookup catalogs from the raw store, writes them as CSV and SQL
// files under the data directory and, with -load, inserts them into the
// database at DATABASE_URL.
func main() {
	load := flag.Bool("load", false, "execute the generated SQL against DATABASE_URL")
	flag.Parse()

	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	raw := store.New[model.Medicine](cfg.RawDataFile, logger)
	meds := raw.Load()
	if len(meds) == 0 {
		logger.Error("raw store is empty, nothing to export", "path", cfg.RawDataFile)
		os.Exit(1)
	}
	logger.Info("building catalogs", "medicines", len(meds))

	manufacturers, companyIDs := catalog.Manufacturers(meds)
	generics, genericIDs := catalog.Generics(meds)
	strengths, strengthIDs := catalog.Strengths(meds)
	medicines := catalog.Medicines(meds, companyIDs, genericIDs, strengthIDs)

	lookups := []catalog.Table{manufacturers, generics, strengths}
	for _, t := range append(append([]catalog.Table{}, lookups...), medicines) {
		csvPath, err := catalog.WriteCSV(cfg.DataDir, t)
		if err != nil {
			logger.Error("failed to write catalog CSV", "table", t.Name, "error", err)
			os.Exit(1)
		}

		// Round-trip through the CSV so the .sql output reflects exactly
		// what was exported.
		fromDisk, err := sqlgen.FromCSV(csvPath)
		if err != nil {
			logger.Error("failed to read catalog CSV back", "path", csvPath, "error", err)
			os.Exit(1)
		}
		sqlPath, err := sqlgen.WriteFile(cfg.DataDir, fromDisk)
		if err != nil {
			logger.Error("failed to write SQL file", "table", t.Name, "error", err)
			os.Exit(1)
		}
		logger.Info("catalog exported", "table", t.Name, "rows", len(t.Rows), "csv", csvPath, "sql", sqlPath)
	}

	if !*load {
		return
	}
	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is required with -load")
		os.Exit(1)
	}

	sqlDB, err := db.New(cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	for _, t := range lookups {
		if err := sqlgen.Execute(sqlDB, sqlgen.Statements(t)); err != nil {
			logger.Error("failed to load lookup table", "table", t.Name, "error", err)
			os.Exit(1)
		}
		logger.Info("lookup table loaded", "table", t.Name, "rows", len(t.Rows))
	}

	ctx := context.Background()
	conn, err := db.NewPgx(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect with pgx", "error", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	if err := sqlgen.LoadTable(ctx, conn, medicines); err != nil {
		logger.Error("failed to load medicines table", "error", err)
		os.Exit(1)
	}
	logger.Info("medicines table loaded", "rows", len(medicines.Rows))
}
