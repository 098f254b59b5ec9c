package database

import (
	"log"

	"gorm.io/gorm"
)

// The gateway helpers run parameterized SQL against either the shared pool
// handle or a transaction handle obtained from WithinTransaction; the caller
// always passes the execution context explicitly (nil means the pool).
// Errors from the driver propagate unchanged, nothing here retries.

// Exec runs a statement and reports the number of affected rows.
func Exec(db *gorm.DB, query string, args ...interface{}) (int64, error) {
	if db == nil {
		db = GetDB()
	}
	res := db.Exec(query, args...)
	return res.RowsAffected, res.Error
}

// GetOne scans the first matching row into dest and reports whether a row
// matched at all. A query that unexpectedly matches more than one row logs a
// warning and keeps the first; callers needing a deterministic row must
// supply ORDER BY.
func GetOne(db *gorm.DB, dest interface{}, query string, args ...interface{}) (bool, error) {
	if db == nil {
		db = GetDB()
	}

	rows, err := db.Raw(query, args...).Rows()
	if err != nil {
		return false, err
	}
	defer rows.Close()

	found := false
	extra := 0
	for rows.Next() {
		if !found {
			if err := db.ScanRows(rows, dest); err != nil {
				return false, err
			}
			found = true
			continue
		}
		extra++
	}
	if err := rows.Err(); err != nil {
		return false, err
	}

	if extra > 0 {
		log.Printf("Query returned %d rows but expected only one, keeping the first: %s", extra+1, query)
	}
	return found, nil
}

// GetAll scans every matching row into dest (a pointer to a slice). An empty
// result leaves dest as an empty slice, not an error.
func GetAll(db *gorm.DB, dest interface{}, query string, args ...interface{}) error {
	if db == nil {
		db = GetDB()
	}
	return db.Raw(query, args...).Scan(dest).Error
}
