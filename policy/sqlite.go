package policy

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const (
	createTableSQL = `CREATE TABLE policy (
	key TEXT PRIMARY KEY,
	move INTEGER NOT NULL
)`
	insertSQL = `INSERT INTO policy (key, move) VALUES (?, ?)`
	selectSQL = `SELECT key, move FROM policy`
)

func saveSQLite(path string, p Policy) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DROP TABLE IF EXISTS policy`); err != nil {
		return err
	}
	if _, err := tx.Exec(createTableSQL); err != nil {
		return err
	}
	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, k := range p.SortedKeys() {
		if _, err := stmt.Exec(k, p[k]); err != nil {
			return fmt.Errorf("inserting %s: %w", k, err)
		}
	}
	return tx.Commit()
}

func loadSQLite(path string) (Policy, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(selectSQL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, path, err)
	}
	defer rows.Close()

	p := Policy{}
	for rows.Next() {
		var key string
		var move int
		if err := rows.Scan(&key, &move); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, path, err)
		}
		p[key] = move
	}
	return p, rows.Err()
}
