package engine

import (
	"errors"
	"fmt"
)

// OpError represents a rejected engine operation.
//
// All operation errors are recoverable: they surface to the caller for
// user-facing messaging and never terminate the process. The engine never
// silently drops an invalid mutation.
type OpError struct {
	// Code identifies the error category.
	Code OpErrorCode

	// Message is a human-readable description.
	Message string

	// Ritual identifies the affected ritual, if any.
	Ritual string

	// IdeaID identifies the affected idea, if any.
	IdeaID string
}

// OpErrorCode categorizes operation errors.
type OpErrorCode string

const (
	// ErrCodeEmptyName indicates a ritual name that is empty after
	// normalization.
	ErrCodeEmptyName OpErrorCode = "EMPTY_NAME"

	// ErrCodeEmptyText indicates idea text that is empty after trimming.
	ErrCodeEmptyText OpErrorCode = "EMPTY_TEXT"

	// ErrCodeDuplicateRitual indicates the normalized name already exists.
	ErrCodeDuplicateRitual OpErrorCode = "DUPLICATE_RITUAL"

	// ErrCodeNotFound indicates the referenced ritual or idea doesn't exist.
	ErrCodeNotFound OpErrorCode = "NOT_FOUND"

	// ErrCodeCapacityExceeded indicates the ritual store is at its
	// configured maximum.
	ErrCodeCapacityExceeded OpErrorCode = "CAPACITY_EXCEEDED"
)

// Error implements the error interface.
func (e *OpError) Error() string {
	switch {
	case e.Ritual != "":
		return fmt.Sprintf("%s: %s (ritual=%s)", e.Code, e.Message, e.Ritual)
	case e.IdeaID != "":
		return fmt.Sprintf("%s: %s (idea=%s)", e.Code, e.Message, e.IdeaID)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// IsNotFound returns true if the error is a NOT_FOUND operation error.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsDuplicate returns true if the error is a DUPLICATE_RITUAL operation error.
func IsDuplicate(err error) bool {
	return hasCode(err, ErrCodeDuplicateRitual)
}

// IsCapacityExceeded returns true if the error is a CAPACITY_EXCEEDED
// operation error.
func IsCapacityExceeded(err error) bool {
	return hasCode(err, ErrCodeCapacityExceeded)
}

func hasCode(err error, code OpErrorCode) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Code == code
	}
	return false
}

func newEmptyNameError() *OpError {
	return &OpError{Code: ErrCodeEmptyName, Message: "ritual name is empty after normalization"}
}

func newEmptyTextError() *OpError {
	return &OpError{Code: ErrCodeEmptyText, Message: "idea text is empty"}
}

func newDuplicateError(name string) *OpError {
	return &OpError{Code: ErrCodeDuplicateRitual, Message: "ritual already exists", Ritual: name}
}

func newRitualNotFoundError(name string) *OpError {
	return &OpError{Code: ErrCodeNotFound, Message: "no such ritual", Ritual: name}
}

func newIdeaNotFoundError(id string) *OpError {
	return &OpError{Code: ErrCodeNotFound, Message: "no such idea", IdeaID: id}
}

func newCapacityError(name string, max int) *OpError {
	return &OpError{
		Code:    ErrCodeCapacityExceeded,
		Message: fmt.Sprintf("ritual store is full (max %d)", max),
		Ritual:  name,
	}
}
