package store

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
)

// ErrNotFound covers both a missing note and a note owned by someone else.
// The two cases are deliberately indistinguishable so that a slug's existence
// is never confirmed to a non-owner.
var ErrNotFound = errors.New("note not found")

// ErrUserNotFound is returned when no user matches the given username.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameTaken is returned when registering an already used username.
var ErrUsernameTaken = errors.New("username already taken")

// DuplicateSlugError is returned when a create collides with an existing slug,
// regardless of who owns the existing note.
type DuplicateSlugError struct {
	Slug string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("slug %q already exists", e.Slug)
}

// isDuplicateErr reports whether err is a unique-constraint violation from
// either supported driver.
func isDuplicateErr(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}
