/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import "reflect"

// TypeDescriptor is the runtime description of a declared resource type.
// Descriptors form an explicit ancestry chain through Parent; the chain
// terminates at the hierarchy root, marked by a nil or empty-named parent.
type TypeDescriptor struct {
	// Name is the declared type name, used in diagnostics.
	Name string
	// Parent is the immediate ancestor descriptor.
	Parent *TypeDescriptor
	// ResourceName is the identifying key set by RegisterResourceType, or
	// copied from the base resource for projection descriptors.
	ResourceName string
	// ProjectionName is set only on projection descriptors.
	ProjectionName string
	// GoType is the concrete Go type the descriptor maps to, nil for
	// abstract bases.
	GoType reflect.Type

	factory func() any
}

// Fixed base descriptors. Resource types must descend from Resource, embedded
// resource types from EmbeddedResource. Relation types may descend from any
// branch of BaseResource.
var (
	BaseResource     = &TypeDescriptor{Name: "BaseResource"}
	Resource         = &TypeDescriptor{Name: "Resource", Parent: BaseResource}
	EmbeddedResource = &TypeDescriptor{Name: "EmbeddedResource", Parent: BaseResource}
)

// Describe creates a descriptor for the concrete Go type T under the given
// declared name and parent.
func Describe[T any](name string, parent *TypeDescriptor) *TypeDescriptor {
	return &TypeDescriptor{
		Name:    name,
		Parent:  parent,
		GoType:  reflect.TypeOf((*T)(nil)).Elem(),
		factory: func() any { return new(T) },
	}
}

// New returns a freshly allocated instance of the described Go type, or nil
// for abstract descriptors.
func (d *TypeDescriptor) New() any {
	if d.factory == nil {
		return nil
	}
	return d.factory()
}

// DescendsFrom reports whether candidate is ancestor itself or a transitive
// descendant of it. The walk ascends Parent links and stops at the hierarchy
// root. Pure predicate; no side effects.
func DescendsFrom(candidate, ancestor *TypeDescriptor) bool {
	for cur := candidate; cur != nil; cur = cur.Parent {
		if cur == ancestor {
			return true
		}
		if cur.Parent == nil || cur.Parent.Name == "" {
			return false
		}
	}
	return false
}

// parentName names a descriptor's immediate parent for error messages.
func parentName(d *TypeDescriptor) string {
	if d.Parent == nil || d.Parent.Name == "" {
		return "the hierarchy root"
	}
	return d.Parent.Name
}
