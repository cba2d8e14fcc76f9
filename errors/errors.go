/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrDataNotAvailable is returned when reading a property of a
	// reference-only object before it has been fetched
	ErrDataNotAvailable = errors.New("object data not available")

	// ErrObjectNotFound is returned when a fetch cannot locate the object
	ErrObjectNotFound = errors.New("object not found")

	// ErrUnsupportedPredicate is returned when a query predicate uses
	// constructs the translator cannot express
	ErrUnsupportedPredicate = errors.New("unsupported predicate")

	// ErrInvalidConfig is returned when client configuration fails validation
	ErrInvalidConfig = errors.New("invalid configuration")
)

// DataNotAvailableError is returned when accessing properties of an object
// created without data that has not been fetched yet
type DataNotAvailableError struct {
	ClassName string
	ObjectID  string
}

func (e *DataNotAvailableError) Error() string {
	return fmt.Sprintf("%s object %q has no data; call Fetch before reading properties", e.ClassName, e.ObjectID)
}

func (e *DataNotAvailableError) Is(target error) bool {
	return target == ErrDataNotAvailable
}

// ObjectNotFoundError is returned when a fetch finds no object for an identity
type ObjectNotFoundError struct {
	ClassName string
	ObjectID  string
}

func (e *ObjectNotFoundError) Error() string {
	return fmt.Sprintf("%s object with id %q not found", e.ClassName, e.ObjectID)
}

func (e *ObjectNotFoundError) Is(target error) bool {
	return target == ErrObjectNotFound
}

// UnsupportedPredicateError is returned when predicate translation fails.
// The query is not constructed; the caller must adjust the predicate.
type UnsupportedPredicateError struct {
	Construct string
	Message   string
}

func (e *UnsupportedPredicateError) Error() string {
	if e.Construct != "" {
		return fmt.Sprintf("unsupported predicate construct %q: %s", e.Construct, e.Message)
	}
	return fmt.Sprintf("unsupported predicate: %s", e.Message)
}

func (e *UnsupportedPredicateError) Is(target error) bool {
	return target == ErrUnsupportedPredicate
}

// ConfigError represents a client configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Helper functions for creating errors

// NewDataNotAvailableError creates a new DataNotAvailableError
func NewDataNotAvailableError(className, objectID string) error {
	return &DataNotAvailableError{ClassName: className, ObjectID: objectID}
}

// NewObjectNotFoundError creates a new ObjectNotFoundError
func NewObjectNotFoundError(className, objectID string) error {
	return &ObjectNotFoundError{ClassName: className, ObjectID: objectID}
}

// NewUnsupportedPredicateError creates a new UnsupportedPredicateError
func NewUnsupportedPredicateError(construct, message string) error {
	return &UnsupportedPredicateError{Construct: construct, Message: message}
}

// NewConfigError creates a new ConfigError
func NewConfigError(field, message string) error {
	return &ConfigError{Field: field, Message: message}
}

// IsDataNotAvailable checks if an error is a data-not-available error
func IsDataNotAvailable(err error) bool {
	return errors.Is(err, ErrDataNotAvailable)
}

// IsObjectNotFound checks if an error is an object-not-found error
func IsObjectNotFound(err error) bool {
	return errors.Is(err, ErrObjectNotFound)
}

// IsUnsupportedPredicate checks if an error is a predicate translation error
func IsUnsupportedPredicate(err error) bool {
	return errors.Is(err, ErrUnsupportedPredicate)
}

// IsInvalidConfig checks if an error is a configuration error
func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
