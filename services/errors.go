package services

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var forUpdate = clause.Locking{Strength: "UPDATE"}

// ErrorKind classifies a failed domain operation so handlers can map it to an
// HTTP status without parsing messages.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindForbidden
	KindInvalidState
	KindValidation
	KindConflict
	KindDependency
)

type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func NotFound(msg string) error     { return &DomainError{Kind: KindNotFound, Message: msg} }
func Forbidden(msg string) error    { return &DomainError{Kind: KindForbidden, Message: msg} }
func InvalidState(msg string) error { return &DomainError{Kind: KindInvalidState, Message: msg} }
func Validation(msg string) error   { return &DomainError{Kind: KindValidation, Message: msg} }
func Conflict(msg string) error     { return &DomainError{Kind: KindConflict, Message: msg} }
func Dependency(msg string) error   { return &DomainError{Kind: KindDependency, Message: msg} }

func IsKind(err error, kind ErrorKind) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Kind == kind
}

// HTTPStatus maps a domain error to the fiber status code handlers respond with.
func HTTPStatus(err error) int {
	var de *DomainError
	if !errors.As(err, &de) {
		return fiber.StatusInternalServerError
	}
	switch de.Kind {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindForbidden:
		return fiber.StatusForbidden
	case KindInvalidState, KindValidation:
		return fiber.StatusBadRequest
	case KindConflict:
		return fiber.StatusConflict
	case KindDependency:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// lockForUpdate takes a row lock on postgres. sqlite (used by tests) has no
// FOR UPDATE and serializes writers anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(forUpdate)
	}
	return tx
}
