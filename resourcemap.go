/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package resourcemap

import (
	"github.com/suparena/resourcemap/decoder"
	"github.com/suparena/resourcemap/halmodels"
	"github.com/suparena/resourcemap/registry"
)

// Mapper bundles an isolated Registry with the Decoder that consumes it.
// Applications that want a single process-wide registry can use the package
// in registry.Default instead; a Mapper exists so that tests and multi-tenant
// clients can hold independent type universes.
type Mapper struct {
	reg *registry.Registry
	dec *decoder.Decoder
}

// New creates a Mapper around a fresh Registry.
func New() *Mapper {
	reg := registry.New()
	return &Mapper{
		reg: reg,
		dec: decoder.New(reg),
	}
}

// Registry exposes the underlying registry for registration calls.
func (m *Mapper) Registry() *registry.Registry {
	return m.reg
}

// RegisterResourceType records t under resourceName in the mapper's registry.
func (m *Mapper) RegisterResourceType(t *registry.TypeDescriptor, resourceName string) error {
	return m.reg.RegisterResourceType(t, resourceName)
}

// RegisterEmbeddedType records t under the given property names in the mapper's registry.
func (m *Mapper) RegisterEmbeddedType(t *registry.TypeDescriptor, resourcePropertiesNames []string) error {
	return m.reg.RegisterEmbeddedType(t, resourcePropertiesNames)
}

// Decode maps a raw HAL document onto the type registered under resourceName.
func (m *Mapper) Decode(data []byte, resourceName string) (*halmodels.Decoded, error) {
	return m.dec.Decode(data, resourceName)
}

// DecodeAs maps a raw HAL document onto an explicit descriptor, typically a
// projection returned by RegisterProjection.
func (m *Mapper) DecodeAs(data []byte, desc *registry.TypeDescriptor) (*halmodels.Decoded, error) {
	return m.dec.DecodeAs(data, desc)
}
