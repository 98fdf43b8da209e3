package repository

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
)

// errCritical stops repeater retries, matched by criticalError
var errCritical = errors.New("critical database error")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error { return e.err }

// Is makes every critical error match errCritical
func (e *criticalError) Is(target error) bool { return target == errCritical }

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// retryable returns lock errors as is and wraps everything else as critical
func retryable(err error) error {
	if err == nil || isLockError(err) {
		return err
	}
	return &criticalError{err: err}
}

// unwrapCritical strips criticalError after retries are over
func unwrapCritical(err error) error {
	var ce *criticalError
	if errors.As(err, &ce) {
		return ce.err
	}
	return err
}

// stringList is a JSON array of strings for SQL operations
type stringList []string

// Value implements driver.Valuer for database storage
func (l stringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (l *stringList) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*l = stringList{}
		return nil
	}
	res := stringList{}
	if err := json.Unmarshal(data, &res); err != nil {
		return err
	}
	*l = res
	return nil
}
