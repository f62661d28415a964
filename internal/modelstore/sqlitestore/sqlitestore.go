// Package sqlitestore persists a trained model to a SQLite database,
// using the pure-Go modernc.org/sqlite driver rather than a file format
// of our own. spec.md leaves the persisted-model encoding
// implementation-defined; this package exercises that freedom with a
// real embeddable database instead of a bespoke binary layout, the same
// way the teacher project reaches for a SQL engine whenever state needs
// to outlive a process.
package sqlitestore

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/lexsleuth/lexsleuth/internal/lexerr"
	"github.com/lexsleuth/lexsleuth/internal/modelstore"
)

const schema = `
CREATE TABLE IF NOT EXISTS class_labels (
	class_index INTEGER PRIMARY KEY,
	label TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS weights (
	feature_index INTEGER NOT NULL,
	class_index INTEGER NOT NULL,
	weight REAL NOT NULL,
	PRIMARY KEY (feature_index, class_index)
);
`

// Save writes b to a fresh SQLite database at path, overwriting any
// existing tables of the same name. The row-major weight matrix is
// stored as (feature_index, class_index, weight) triples rather than one
// wide row, so a partially-written file is still a syntactically valid
// (if incomplete) table instead of a corrupt blob.
func Save(path string, b modelstore.Baked) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &lexerr.ConfigurationError{Reason: fmt.Sprintf("opening model database: %v", err)}
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return &lexerr.ConfigurationError{Reason: fmt.Sprintf("creating model schema: %v", err)}
	}

	tx, err := db.Begin()
	if err != nil {
		return &lexerr.ConfigurationError{Reason: fmt.Sprintf("opening model transaction: %v", err)}
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM class_labels"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM weights"); err != nil {
		return err
	}

	for i, label := range b.ClassLabels {
		if _, err := tx.Exec("INSERT INTO class_labels (class_index, label) VALUES (?, ?)", i, label); err != nil {
			return err
		}
	}

	classCount := len(b.ClassLabels)
	for i, w := range b.WeightMatrix {
		featureIdx := i / classCount
		classIdx := i % classCount
		if _, err := tx.Exec(
			"INSERT INTO weights (feature_index, class_index, weight) VALUES (?, ?, ?)",
			featureIdx, classIdx, w,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Load reads back a model previously written by Save.
func Load(path string) (modelstore.Baked, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return modelstore.Baked{}, &lexerr.ConfigurationError{Reason: fmt.Sprintf("opening model database: %v", err)}
	}
	defer db.Close()

	labelRows, err := db.Query("SELECT class_index, label FROM class_labels ORDER BY class_index")
	if err != nil {
		return modelstore.Baked{}, &lexerr.ConfigurationError{Reason: fmt.Sprintf("reading class labels: %v", err)}
	}
	defer labelRows.Close()

	var labels []string
	for labelRows.Next() {
		var idx int
		var label string
		if err := labelRows.Scan(&idx, &label); err != nil {
			return modelstore.Baked{}, err
		}
		labels = append(labels, label)
	}
	if err := labelRows.Err(); err != nil {
		return modelstore.Baked{}, err
	}

	classCount := len(labels)
	weightRows, err := db.Query("SELECT feature_index, class_index, weight FROM weights ORDER BY feature_index, class_index")
	if err != nil {
		return modelstore.Baked{}, &lexerr.ConfigurationError{Reason: fmt.Sprintf("reading weights: %v", err)}
	}
	defer weightRows.Close()

	var flat []float64
	for weightRows.Next() {
		var featureIdx, classIdx int
		var w float64
		if err := weightRows.Scan(&featureIdx, &classIdx, &w); err != nil {
			return modelstore.Baked{}, err
		}
		needed := featureIdx*classCount + classIdx + 1
		for len(flat) < needed {
			flat = append(flat, 0)
		}
		flat[featureIdx*classCount+classIdx] = w
	}
	if err := weightRows.Err(); err != nil {
		return modelstore.Baked{}, err
	}

	return modelstore.Baked{ClassLabels: labels, WeightMatrix: flat}, nil
}
