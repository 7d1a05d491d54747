/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/suparena/resourcemap/errors"
)

// Registry holds the four lookup tables consumed by the decode layer:
// resource names, embedded property names, relation property names, and the
// Go-type index. Tables are populated during application initialization and
// queried for the lifetime of the process; there is no deregistration path.
type Registry struct {
	mu        sync.RWMutex
	resources map[string]*TypeDescriptor
	embedded  map[string]*TypeDescriptor
	relations map[string]*TypeDescriptor
	types     map[reflect.Type]*TypeDescriptor
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		resources: make(map[string]*TypeDescriptor),
		embedded:  make(map[string]*TypeDescriptor),
		relations: make(map[string]*TypeDescriptor),
		types:     make(map[reflect.Type]*TypeDescriptor),
	}
}

// Default is the process-wide registry used by callers that do not construct
// their own. Tests should construct isolated registries with New.
var Default = New()

// RegisterResourceType records t under resourceName. The name must be
// non-empty and t must descend from Resource. The last registration for a
// given name wins; earlier entries are replaced, not merged.
func (r *Registry) RegisterResourceType(t *TypeDescriptor, resourceName string) error {
	if t == nil {
		return errors.NewConfigurationError("", "missing type descriptor")
	}
	if resourceName == "" {
		return errors.NewConfigurationError(t.Name, "resource name must not be empty")
	}
	if !DescendsFrom(t, Resource) {
		return errors.NewConfigurationError(t.Name,
			fmt.Sprintf("must descend from %s, but its parent is %s", Resource.Name, parentName(t)))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t.ResourceName = resourceName
	r.resources[resourceName] = t
	if t.GoType != nil {
		r.types[t.GoType] = t
	}
	return nil
}

// RegisterEmbeddedType records t under every property name in
// resourcePropertiesNames. The sequence must be non-empty and t must descend
// from EmbeddedResource. Names are inserted in sequence order; duplicates
// within a call simply overwrite.
func (r *Registry) RegisterEmbeddedType(t *TypeDescriptor, resourcePropertiesNames []string) error {
	if t == nil {
		return errors.NewConfigurationError("", "missing type descriptor")
	}
	if len(resourcePropertiesNames) == 0 {
		return errors.NewConfigurationError(t.Name, "at least one resource property name is required")
	}
	if !DescendsFrom(t, EmbeddedResource) {
		return errors.NewConfigurationError(t.Name,
			fmt.Sprintf("must descend from %s, but its parent is %s", EmbeddedResource.Name, parentName(t)))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range resourcePropertiesNames {
		r.embedded[name] = t
	}
	if t.GoType != nil {
		r.types[t.GoType] = t
	}
	return nil
}

// RegisterProjection derives a projection descriptor from base and t. The
// returned descriptor is parented on t, so it passes everywhere t is
// accepted, and carries base's resource name plus the given projection name.
// t itself is not mutated, and the projection is not entered into the
// resource table: projections share the base resource's name, and callers
// that need projection-aware decoding hold on to the returned descriptor.
func (r *Registry) RegisterProjection(base *TypeDescriptor, projectionName string, t *TypeDescriptor) (*TypeDescriptor, error) {
	if t == nil {
		return nil, errors.NewConfigurationError("", "missing type descriptor")
	}
	if base == nil {
		return nil, errors.NewConfigurationError(t.Name, "missing base resource type")
	}
	if projectionName == "" {
		return nil, errors.NewConfigurationError(t.Name, "projection name must not be empty")
	}
	if !DescendsFrom(t, Resource) {
		return nil, errors.NewConfigurationError(t.Name,
			fmt.Sprintf("must descend from %s, but its parent is %s", Resource.Name, parentName(t)))
	}

	return &TypeDescriptor{
		Name:           t.Name,
		Parent:         t,
		ResourceName:   base.ResourceName,
		ProjectionName: projectionName,
		GoType:         t.GoType,
		factory:        t.factory,
	}, nil
}

// AnnotateRelation records the type a named property on owner should decode
// into. Only the relation type's presence is validated; ancestry is the
// caller's responsibility here. The table is keyed by property name alone,
// so the same property reused across owners collides, last writer wins.
func (r *Registry) AnnotateRelation(owner *TypeDescriptor, propertyName string, relationType *TypeDescriptor) error {
	if relationType == nil {
		ownerName := ""
		if owner != nil {
			ownerName = owner.Name
		}
		return errors.NewConfigurationError(ownerName,
			fmt.Sprintf("missing relation type for property %q", propertyName))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.relations[propertyName] = relationType
	return nil
}

// LookupResourceType returns the type registered under resourceName.
func (r *Registry) LookupResourceType(resourceName string) (*TypeDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.resources[resourceName]
	return t, ok
}

// LookupEmbeddedType returns the type registered under an embedded property name.
func (r *Registry) LookupEmbeddedType(propertyName string) (*TypeDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.embedded[propertyName]
	return t, ok
}

// LookupRelationType returns the relation type annotated for a property name.
func (r *Registry) LookupRelationType(propertyName string) (*TypeDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.relations[propertyName]
	return t, ok
}

// DescriptorOf returns the descriptor registered for a concrete Go type.
func (r *Registry) DescriptorOf(t reflect.Type) (*TypeDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.types[t]
	return d, ok
}

// DescriptorFor retrieves the descriptor registered for the Go type T, if any.
func DescriptorFor[T any](r *Registry) (*TypeDescriptor, bool) {
	var zero T
	return r.DescriptorOf(reflect.TypeOf(zero))
}

// ResourceNames returns the registered resource names in sorted order.
func (r *Registry) ResourceNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.resources))
	for name := range r.resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EmbeddedProperties returns the registered embedded property names in sorted order.
func (r *Registry) EmbeddedProperties() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.embedded))
	for name := range r.embedded {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
