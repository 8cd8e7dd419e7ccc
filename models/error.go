package models

import "fmt"

// ErrorResponse is the body returned by the JSON API on failure
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationError is returned when a required field is missing or empty
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// StorageError wraps a failed read or write of one of the flat files
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
