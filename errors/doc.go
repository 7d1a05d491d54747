/*
Package errors provides semantic error types for the resourcemap library.

The package defines the two error scenarios of the registry core with specific
types that can be checked using the standard errors.Is() function or the
provided helper functions.

Common Errors:

	var (
	    ErrConfiguration = errors.New("invalid type configuration")
	    ErrNotRegistered = errors.New("type not registered")
	)

ConfigurationError is raised synchronously at registration time whenever a
declaration violates a precondition (empty resource name, missing type
reference, ancestry mismatch). It is always fatal to the registration call;
the registry is left untouched.

NotRegisteredError is raised by the decode layer when a resource name,
embedded property name, or relation property resolves to no registered type.

Usage:

	if err := reg.RegisterResourceType(animal, ""); err != nil {
	    if errors.IsConfiguration(err) {
	        // fix the declaration; the application should fail fast here
	    }
	}

	err := errors.NewConfigurationError("Animal", "resource name must not be empty")
	err := errors.NewNotRegisteredError("resource", "animals")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
