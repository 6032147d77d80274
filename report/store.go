package report

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go-ml.dev/pkg/zorros"

	"github.com/davidchyou/RF-Classifier/validate"
)

/*
Store keeps validation runs in a SQLite database: one row per run, the merged
score table and the ROC points keyed by run id. It is an optional artifact
sink next to the CSV writers.
*/
type Store struct {
	db *sql.DB
}

const storeSchema = `
CREATE TABLE IF NOT EXISTS runs (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	name    TEXT NOT NULL,
	created TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS scores (
	run_id    INTEGER NOT NULL REFERENCES runs(id),
	record_id TEXT NOT NULL,
	class     TEXT NOT NULL,
	prob      REAL NOT NULL,
	label     TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS curves (
	run_id INTEGER NOT NULL REFERENCES runs(id),
	class  TEXT NOT NULL,
	auc    REAL NOT NULL,
	label  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS points (
	run_id INTEGER NOT NULL REFERENCES runs(id),
	class  TEXT NOT NULL,
	fpr    REAL NOT NULL,
	tpr    REAL NOT NULL
);`

// Open opens (creating if needed) a run store at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	if _, err = db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, zorros.Trace(err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// SaveRun stores one validation result under the given run name and returns
// the run id. Everything goes in one transaction.
func (s *Store) SaveRun(name string, r *validate.Result) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, zorros.Trace(err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO runs (name, created) VALUES (?, ?)`, name, time.Now())
	if err != nil {
		return 0, zorros.Trace(err)
	}
	run, err := res.LastInsertId()
	if err != nil {
		return 0, zorros.Trace(err)
	}
	for _, score := range r.Scores {
		for _, class := range r.Classes {
			_, err = tx.Exec(`INSERT INTO scores (run_id, record_id, class, prob, label) VALUES (?, ?, ?, ?, ?)`,
				run, score.ID, class, score.Probs[class], score.Label)
			if err != nil {
				return 0, zorros.Trace(err)
			}
		}
	}
	for _, c := range r.Curves {
		if _, err = tx.Exec(`INSERT INTO curves (run_id, class, auc, label) VALUES (?, ?, ?, ?)`,
			run, c.Class, c.AUC, c.Label); err != nil {
			return 0, zorros.Trace(err)
		}
		for i := range c.X {
			if _, err = tx.Exec(`INSERT INTO points (run_id, class, fpr, tpr) VALUES (?, ?, ?, ?)`,
				run, c.Class, c.X[i], c.Y[i]); err != nil {
				return 0, zorros.Trace(err)
			}
		}
	}
	if err = tx.Commit(); err != nil {
		return 0, zorros.Trace(err)
	}
	return run, nil
}

// AUC reads one class's area back from a stored run.
func (s *Store) AUC(run int64, class string) (float64, error) {
	var auc float64
	err := s.db.QueryRow(`SELECT auc FROM curves WHERE run_id = ? AND class = ?`, run, class).Scan(&auc)
	if err != nil {
		return 0, zorros.Trace(err)
	}
	return auc, nil
}
