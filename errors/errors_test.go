/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigurationError(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		reason   string
		expected string
	}{
		{
			name:     "with type",
			typeName: "Animal",
			reason:   "resource name must not be empty",
			expected: `configuration error for type "Animal": resource name must not be empty`,
		},
		{
			name:     "without type",
			typeName: "",
			reason:   "missing type descriptor",
			expected: "configuration error: missing type descriptor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfigurationError(tt.typeName, tt.reason)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !errors.Is(err, ErrConfiguration) {
				t.Error("ConfigurationError should match ErrConfiguration")
			}

			if !IsConfiguration(err) {
				t.Error("IsConfiguration should return true for ConfigurationError")
			}
		})
	}
}

func TestNotRegisteredError(t *testing.T) {
	err := NewNotRegisteredError("resource", "animals")

	// Test error message
	expected := `no resource type registered for "animals"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrNotRegistered) {
		t.Error("NotRegisteredError should match ErrNotRegistered")
	}

	// Test helper function
	if !IsNotRegistered(err) {
		t.Error("IsNotRegistered should return true for NotRegisteredError")
	}
}

func TestErrorWrapping(t *testing.T) {
	// Test that wrapped errors still match
	original := NewConfigurationError("Animal", "must descend from Resource")
	wrapped := fmt.Errorf("loading declarations: %w", original)

	if !errors.Is(wrapped, ErrConfiguration) {
		t.Error("Wrapped ConfigurationError should still match ErrConfiguration")
	}

	var cfgErr *ConfigurationError
	if !errors.As(wrapped, &cfgErr) {
		t.Fatal("Wrapped error should unwrap to ConfigurationError")
	}
	if cfgErr.Type != "Animal" {
		t.Errorf("Expected type %q, got %q", "Animal", cfgErr.Type)
	}
}

func TestErrorKindsDoNotOverlap(t *testing.T) {
	cfg := NewConfigurationError("Animal", "bad declaration")
	if IsNotRegistered(cfg) {
		t.Error("ConfigurationError should not match ErrNotRegistered")
	}

	miss := NewNotRegisteredError("embedded", "toys")
	if IsConfiguration(miss) {
		t.Error("NotRegisteredError should not match ErrConfiguration")
	}
}
