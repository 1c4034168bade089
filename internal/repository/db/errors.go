package db

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// MySQL server error numbers.
const (
	mysqlErrDupEntry      = 1062
	mysqlErrNoReferenced  = 1216
	mysqlErrNoReferenced2 = 1452
)

const (
	sqliteUniqueMessage     = "UNIQUE constraint failed"
	sqliteForeignKeyMessage = "FOREIGN KEY constraint failed"
)

// IsUniqueViolation reports whether err is a unique/primary key violation from
// either supported driver.
func IsUniqueViolation(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == mysqlErrDupEntry
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
		return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
			strings.Contains(se.Error(), sqliteUniqueMessage)
	}
	return false
}

// IsForeignKeyViolation reports whether err means a referenced row is missing.
func IsForeignKeyViolation(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == mysqlErrNoReferenced || me.Number == mysqlErrNoReferenced2
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		if se.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
			return true
		}
		return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
			strings.Contains(se.Error(), sqliteForeignKeyMessage)
	}
	return false
}
