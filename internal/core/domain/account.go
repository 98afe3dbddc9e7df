package domain

import (
	"errors"
	"time"
)

var ErrAccountNotFound = errors.New("account not found")
var ErrEmailTaken = errors.New("email already taken")
var ErrUnauthenticated = errors.New("unauthenticated")
var ErrTokenNotFound = errors.New("token not found")

// Account models a registered user. The password hash never leaves the
// server: it is excluded from JSON and only compared through bcrypt.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidationError carries per-field failures in declaration order. A field
// accumulates one message per violated rule, so callers can distinguish
// "required" from "wrong format" without parsing text.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add appends a message under field.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// Empty reports whether no field has failed yet.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
