package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"ventspec/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS jobs (
  id TEXT PRIMARY KEY,
  filename TEXT NOT NULL,
  status TEXT NOT NULL,
  equipment INTEGER NOT NULL DEFAULT 0,
  fittings INTEGER NOT NULL DEFAULT 0,
  round_sizes INTEGER NOT NULL DEFAULT 0,
  rect_sizes INTEGER NOT NULL DEFAULT 0,
  notes TEXT NOT NULL DEFAULT '',
  result_path TEXT NOT NULL DEFAULT '',
  error TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs(status);
CREATE INDEX IF NOT EXISTS idx_jobs_created ON jobs(created_at);
`
	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) InsertJob(id, filename string) error {
	_, err := d.conn.Exec(
		`INSERT INTO jobs (id, filename, status) VALUES (?, ?, ?)`,
		id, filename, string(internal.JobReceived),
	)
	return err
}

func (d *DB) MarkJobProcessed(id string, counts internal.Counts, notes []string, resultPath string) error {
	res, err := d.conn.Exec(
		`UPDATE jobs
		 SET status = ?, equipment = ?, fittings = ?, round_sizes = ?, rect_sizes = ?,
		     notes = ?, result_path = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		string(internal.JobProcessed),
		counts.Equipment, counts.Fittings, counts.RoundSizes, counts.RectSizes,
		strings.Join(notes, ", "), resultPath, id,
	)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

func (d *DB) MarkJobFailed(id, reason string) error {
	res, err := d.conn.Exec(
		`UPDATE jobs SET status = ?, error = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		string(internal.JobFailed), reason, id,
	)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

func (d *DB) GetJob(id string) (internal.JobRecord, error) {
	row := d.conn.QueryRow(
		`SELECT id, filename, status, equipment, fittings, round_sizes, rect_sizes,
		        notes, result_path, error, created_at, updated_at
		 FROM jobs WHERE id = ?`, id,
	)
	return scanJob(row)
}

func (d *DB) ListJobs(limit int) ([]internal.JobRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := d.conn.Query(
		`SELECT id, filename, status, equipment, fittings, round_sizes, rect_sizes,
		        notes, result_path, error, created_at, updated_at
		 FROM jobs ORDER BY created_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]internal.JobRecord, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanJob(row scannable) (internal.JobRecord, error) {
	var job internal.JobRecord
	var status string
	err := row.Scan(
		&job.ID, &job.Filename, &status,
		&job.Counts.Equipment, &job.Counts.Fittings, &job.Counts.RoundSizes, &job.Counts.RectSizes,
		&job.Notes, &job.ResultPath, &job.Error, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return internal.JobRecord{}, err
	}
	job.Status = internal.JobStatus(status)
	return job, nil
}

func requireRow(res sql.Result, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("job not found: %s", id)
	}
	return nil
}
