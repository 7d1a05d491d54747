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
	// ErrConfiguration is returned when a type registration violates a precondition
	ErrConfiguration = errors.New("invalid type configuration")

	// ErrNotRegistered is returned when a lookup finds no registered type
	ErrNotRegistered = errors.New("type not registered")
)

// ConfigurationError reports a registration precondition violated by a declared
// type. It always carries the offending type's name so the misconfiguration is
// diagnosable at load time rather than at first use.
type ConfigurationError struct {
	Type   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("configuration error for type %q: %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NotRegisteredError reports a lookup miss against one of the registry tables.
type NotRegisteredError struct {
	Kind string
	Key  string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("no %s type registered for %q", e.Kind, e.Key)
}

func (e *NotRegisteredError) Is(target error) bool {
	return target == ErrNotRegistered
}

// Helper functions for creating errors

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(typeName, reason string) error {
	return &ConfigurationError{Type: typeName, Reason: reason}
}

// NewNotRegisteredError creates a new NotRegisteredError
func NewNotRegisteredError(kind, key string) error {
	return &NotRegisteredError{Kind: kind, Key: key}
}

// IsConfiguration checks if an error is a configuration error
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsNotRegistered checks if an error is a not registered error
func IsNotRegistered(err error) bool {
	return errors.Is(err, ErrNotRegistered)
}
