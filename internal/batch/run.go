package batch

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/lukaszgryglicki/photonics/internal/store"
)

// Run loads the job file, evaluates every job and reports the results. When
// configured it also writes the raw dump and stores the run in SQLite.
func Run(ctx context.Context, cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	evals, err := cfg.Build()
	if err != nil {
		return err
	}

	rlog := newResultLog()
	start := time.Now()
	results := EvaluateAll(evals, cfg.Workers, rlog)
	DebugLog("Evaluations: %d, time: %s", len(results), time.Since(start))

	if Debug {
		rlog.Stats()
	}

	if err := Report(Stdout, results, cfg.Digits); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if cfg.RawOut != "" {
		if err := SaveRawResults(cfg.RawOut, results); err != nil {
			return fmt.Errorf("raw results: %w", err)
		}
		DebugLog("Saved raw results: %s", cfg.RawOut)
	}

	if cfg.DB != "" {
		id, err := saveRun(ctx, cfg, results)
		if err != nil {
			return fmt.Errorf("store: %w", err)
		}
		slog.Info("run stored", "db", cfg.DB, "run", id, "results", len(results))
	}
	return nil
}

func saveRun(ctx context.Context, cfg *Config, results []Result) (string, error) {
	db, err := store.Open(cfg.DB)
	if err != nil {
		return "", err
	}
	defer db.Close()

	run := store.NewRun(string(cfg.raw), len(results))
	if err := db.SaveRun(ctx, run, toRows(results)); err != nil {
		return "", err
	}
	return run.ID, nil
}

func toRows(results []Result) []store.ResultRow {
	rows := make([]store.ResultRow, len(results))
	for i, r := range results {
		re, im := real(r.Value), imag(r.Value)
		rows[i] = store.ResultRow{
			Idx:      i,
			Name:     r.Name,
			Op:       string(r.Op),
			Re:       sql.NullFloat64{Float64: re, Valid: isFinite(re)},
			Im:       sql.NullFloat64{Float64: im, Valid: isFinite(im)},
			Category: r.Category.String(),
		}
		if r.Err != nil {
			rows[i].Err = r.Err.Error()
		}
	}
	return rows
}
