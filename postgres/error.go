package postgres

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/xy-planning-network/waypoint"
	"gorm.io/gorm"
)

// These error codes originate from PostgreSQL itself.
//
// Cf., https://www.postgresql.org/docs/current/errcodes-appendix.html
var (
	// errSQLSyntax is a very loose aggregation of error codes
	// that are some sort of syntax issue in the statement or datatype mismatch.
	errSQLSyntax = regexp.MustCompile(`SQLSTATE (42601|22P02)`)

	errCheckViolation    = regexp.MustCompile(`SQLSTATE (23514)`)
	errNotNullViolation  = regexp.MustCompile(`SQLSTATE (23502)`)
	errUniqViolation     = regexp.MustCompile(`SQLSTATE (23505)`)
	errUndefinedRelation = regexp.MustCompile(`SQLSTATE (42P01)`)
)

// translate converts errors bubbling up from GORM or PostgreSQL
// into this module's sentinel errors so callers can match with errors.Is.
//
// Notably, a check constraint violation maps to waypoint.ErrNotValid:
// an enum column's CHECK is the database-side mirror of the Field's choice set,
// so tripping it is a data validation failure, not an unexpected one.
func translate(err error) error {
	switch {
	case err == nil:
		return nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w", waypoint.ErrNotFound)

	case errUniqViolation.MatchString(err.Error()):
		return fmt.Errorf("%w: %s", waypoint.ErrExists, err)

	case errCheckViolation.MatchString(err.Error()), errNotNullViolation.MatchString(err.Error()):
		return fmt.Errorf("%w: %s", waypoint.ErrNotValid, err)

	case errSQLSyntax.MatchString(err.Error()):
		return fmt.Errorf("%w: %s", waypoint.ErrNotValid, err)

	case errUndefinedRelation.MatchString(err.Error()):
		return fmt.Errorf("%w: %s", waypoint.ErrMissingData, err)

	default:
		return fmt.Errorf("%w: %s", waypoint.ErrUnexpected, err)
	}
}
