package common

import (
	"errors"
	"strings"

	mysqlerr "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"parlayLeague/common/apperrors"
)

const maxTxAttempts = 3

// RunInTx runs fn in a transaction, retrying a bounded number of times on
// lock contention before surfacing ErrConflict. Domain errors pass through
// untouched so callers can map them.
func RunInTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err = db.Transaction(fn)
		if err == nil || !isRetryable(err) {
			return err
		}
	}
	return apperrors.ErrConflict
}

// isRetryable reports MySQL deadlock (1213) and lock wait timeout (1205),
// plus sqlite's busy error string seen in tests.
func isRetryable(err error) bool {
	var me *mysqlerr.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1213 || me.Number == 1205
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "database table is locked")
}
