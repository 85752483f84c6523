package db

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// WithTx runs fn inside a single transaction: every write commits
// together or none of them land. Any error from fn rolls the whole
// unit back and is returned unchanged.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// IsDuplicateEntry reports whether err is a MySQL unique-key violation.
func IsDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
