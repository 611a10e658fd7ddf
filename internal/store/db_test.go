package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if a == b {
		t.Fatal("run ids should differ")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Fatalf("not a uuid: %q", a)
	}
}

func TestSaveRunAndLoad(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()

	run := NewRun(`{"jobs":[]}`, 3)
	rows := []ResultRow{
		{Idx: 0, Name: "kappa", Op: "transverseWavevector", Re: sql.NullFloat64{Float64: 1.118, Valid: true}, Im: sql.NullFloat64{Valid: true}, Category: "ok"},
		{Idx: 1, Name: "gamma", Op: "attenuationCoefficient", Re: sql.NullFloat64{Valid: true}, Im: sql.NullFloat64{Valid: true}, Category: "domain", Err: "refused"},
		{Idx: 2, Name: "z", Op: "impedance", Category: "non-finite"},
	}
	if err := db.SaveRun(ctx, run, rows); err != nil {
		t.Fatalf("save: %v", err)
	}

	runs, err := db.Runs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0] != run {
		t.Fatalf("runs mismatch: %+v vs %+v", runs, run)
	}

	got, err := db.Results(ctx, run.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(rows) {
		t.Fatalf("want %d rows, got %d", len(rows), len(got))
	}
	for i := range rows {
		if got[i] != rows[i] {
			t.Fatalf("row %d mismatch:\n got %+v\nwant %+v", i, got[i], rows[i])
		}
	}
	if got[2].Re.Valid {
		t.Fatal("non-finite value should load as NULL")
	}
}

func TestSaveRunDuplicateRollsBack(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()
	run := NewRun("{}", 2)
	rows := []ResultRow{{Idx: 0, Name: "a", Op: "impedance", Category: "ok"}, {Idx: 0, Name: "b", Op: "impedance", Category: "ok"}}
	if err := db.SaveRun(ctx, run, rows); err == nil {
		t.Fatal("expected primary key violation")
	}
	runs, err := db.Runs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Fatalf("failed save must not leave a run behind: %+v", runs)
	}
}

func TestResultsUnknownRun(t *testing.T) {
	db := openTemp(t)
	rows, err := db.Results(context.Background(), NewRunID())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
