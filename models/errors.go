package models

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

type ErrorKind uint8

const (
	ErrorKindQuery      ErrorKind = iota // syntax errors and anything not classified below
	ErrorKindConnection                  // the database could not be reached
	ErrorKindConstraint                  // duplicate key, missing reference, NOT NULL, etc
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindConnection:
		return "connection"
	case ErrorKindConstraint:
		return "constraint"
	}
	return "query"
}

// StoreError is returned by every PostStore method that fails.
// The driver error is kept as is and reachable with errors.As / errors.Is.
type StoreError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *StoreError) Error() string {
	return "post store " + e.Op + " (" + e.Kind.String() + "): " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeError(op string, err error) *StoreError {
	return &StoreError{Op: op, Kind: classify(err), Err: err}
}

// MySQL server error numbers
const (
	mysqlDuplicateEntry  = 1062
	mysqlNoReferencedRow = 1452
	mysqlBadNull         = 1048
)

// database/sql does not export the error returned after DB.Close
const errDatabaseClosed = "sql: database is closed"

func classify(err error) ErrorKind {
	var mysqlErr *mysql.MySQLError
	var sqliteErr sqlite3.Error
	var opErr *net.OpError
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrorKindConstraint
	case errors.As(err, &mysqlErr):
		switch mysqlErr.Number {
		case mysqlDuplicateEntry, mysqlNoReferencedRow, mysqlBadNull:
			return ErrorKindConstraint
		}
		return ErrorKindQuery
	case errors.As(err, &sqliteErr):
		switch sqliteErr.Code {
		case sqlite3.ErrConstraint:
			return ErrorKindConstraint
		case sqlite3.ErrCantOpen, sqlite3.ErrNotADB:
			return ErrorKindConnection
		}
		return ErrorKindQuery
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, mysql.ErrInvalidConn),
		errors.As(err, &opErr),
		strings.Contains(err.Error(), errDatabaseClosed):
		return ErrorKindConnection
	}
	return ErrorKindQuery
}
