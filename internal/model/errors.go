package model

import "fmt"

// ValidationError reports malformed input to a mutating registry operation.
// It is raised at the call that detected it and never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + e.Reason
}

// NotFoundError reports a reference to an unregistered scope name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("scope %q is not registered", e.Name)
}

// StateError reports a query that requires a current scope before any
// selection has occurred.
type StateError struct {
	Op string
}

func (e *StateError) Error() string {
	return e.Op + ": no current scope is set"
}
