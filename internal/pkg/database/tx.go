package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// WithinTransaction runs work inside a single database transaction and
// guarantees the underlying connection goes back to the pool exactly once,
// whatever path the work takes.
//
// When db already carries an open transaction (the caller is composing a
// larger unit of work) that transaction is reused instead of nesting a
// second one. Passing nil uses the shared pool handle.
//
// On failure the transaction is rolled back and the work's error is
// returned; a rollback failure is logged but never substituted for the
// original error.
func WithinTransaction(db *gorm.DB, work func(tx *gorm.DB) error) error {
	if db == nil {
		db = GetDB()
	}

	if inTransaction(db) {
		return work(db)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			rollback(tx)
			panic(r)
		}
	}()

	if err := work(tx); err != nil {
		rollback(tx)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// inTransaction reports whether the handle is already bound to an open
// transaction rather than the pool.
func inTransaction(db *gorm.DB) bool {
	_, ok := db.Statement.ConnPool.(gorm.TxCommitter)
	return ok
}

func rollback(tx *gorm.DB) {
	if err := tx.Rollback().Error; err != nil {
		log.Printf("Error trying to rollback the transaction: %v", err)
	}
}
