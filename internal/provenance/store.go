// Package provenance persists guard decisions in SQLite so episodes can be
// audited and replayed after the fact. The guard itself stays stateless;
// this is an audit log of calls, not guard state.
package provenance

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS check_log (
	check_id              TEXT PRIMARY KEY,
	episode_id            TEXT,
	step                  INTEGER,
	cart_position         REAL NOT NULL,
	cart_velocity         REAL NOT NULL,
	pole_angle            REAL NOT NULL,
	pole_angular_velocity REAL NOT NULL,
	force                 REAL NOT NULL,
	allowed               INTEGER NOT NULL,
	reason                TEXT,
	violations_json       TEXT,
	spec_hash             TEXT NOT NULL,
	created_at            TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_check_log_episode ON check_log(episode_id, step);
`

// #endregion schema

// #region store-struct
// Store manages the check log in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region record
// Record appends one check to the log. A missing CheckID or CreatedAt is
// filled in here.
func (s *Store) Record(rec CheckRecord) (CheckRecord, error) {
	if rec.CheckID == "" {
		rec.CheckID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO check_log (check_id, episode_id, step, cart_position, cart_velocity,
		 pole_angle, pole_angular_velocity, force, allowed, reason, violations_json, spec_hash, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.CheckID,
		nullIfEmpty(rec.EpisodeID),
		rec.Step,
		rec.State.CartPosition,
		rec.State.CartVelocity,
		rec.State.PoleAngle,
		rec.State.PoleAngularVelocity,
		rec.Force,
		boolToInt(rec.Allowed),
		nullIfEmpty(rec.Reason),
		nullIfEmpty(rec.ViolationsJSON),
		rec.SpecHash,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return CheckRecord{}, fmt.Errorf("record check: %w", err)
	}
	return rec, nil
}

// #endregion record

// #region queries
// Recent returns the most recent checks, newest first.
func (s *Store) Recent(limit int) ([]CheckRecord, error) {
	rows, err := s.db.Query(
		`SELECT check_id, episode_id, step, cart_position, cart_velocity, pole_angle,
		 pole_angular_velocity, force, allowed, reason, violations_json, spec_hash, created_at
		 FROM check_log ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list checks: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Episode returns all checks for one episode in step order.
func (s *Store) Episode(episodeID string) ([]CheckRecord, error) {
	rows, err := s.db.Query(
		`SELECT check_id, episode_id, step, cart_position, cart_velocity, pole_angle,
		 pole_angular_velocity, force, allowed, reason, violations_json, spec_hash, created_at
		 FROM check_log WHERE episode_id = ? ORDER BY step ASC`, episodeID,
	)
	if err != nil {
		return nil, fmt.Errorf("episode %s: %w", episodeID, err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// ViolationCount returns how many logged checks were rejected.
func (s *Store) ViolationCount() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM check_log WHERE allowed = 0`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("violation count: %w", err)
	}
	return n, nil
}

// SummarizeEpisode aggregates one episode's checks.
func (s *Store) SummarizeEpisode(episodeID string) (EpisodeSummary, error) {
	var sum EpisodeSummary
	sum.EpisodeID = episodeID
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(allowed = 0), 0), COALESCE(MIN(step), 0), COALESCE(MAX(step), 0)
		 FROM check_log WHERE episode_id = ?`, episodeID,
	).Scan(&sum.Checks, &sum.Violations, &sum.FirstStep, &sum.LastStep)
	if err != nil {
		return EpisodeSummary{}, fmt.Errorf("summarize episode %s: %w", episodeID, err)
	}
	return sum, nil
}

// #endregion queries

// #region helpers
func scanRecords(rows *sql.Rows) ([]CheckRecord, error) {
	var records []CheckRecord
	for rows.Next() {
		var rec CheckRecord
		var episodeID, reason, violations sql.NullString
		var allowed int
		var createdStr string

		err := rows.Scan(
			&rec.CheckID, &episodeID, &rec.Step,
			&rec.State.CartPosition, &rec.State.CartVelocity,
			&rec.State.PoleAngle, &rec.State.PoleAngularVelocity,
			&rec.Force, &allowed, &reason, &violations, &rec.SpecHash, &createdStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if episodeID.Valid {
			rec.EpisodeID = episodeID.String
		}
		if reason.Valid {
			rec.Reason = reason.String
		}
		if violations.Valid {
			rec.ViolationsJSON = violations.String
		}
		rec.Allowed = allowed != 0
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion helpers
