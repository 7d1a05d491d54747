/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package decoder

import (
	"encoding/json"
	"fmt"

	"github.com/ohler55/ojg/oj"

	"github.com/suparena/resourcemap/errors"
	"github.com/suparena/resourcemap/halmodels"
	"github.com/suparena/resourcemap/registry"
)

// Decoder maps raw HAL documents onto the concrete types registered in a
// Registry. It owns no state beyond the registry reference and is safe for
// concurrent use once the registry's load phase is over.
type Decoder struct {
	reg *registry.Registry
}

// New creates a Decoder backed by reg. A nil reg falls back to the
// process-wide default registry.
func New(reg *registry.Registry) *Decoder {
	if reg == nil {
		reg = registry.Default
	}
	return &Decoder{reg: reg}
}

// Decode resolves resourceName through the registry and maps data onto the
// registered type.
func (d *Decoder) Decode(data []byte, resourceName string) (*halmodels.Decoded, error) {
	desc, ok := d.reg.LookupResourceType(resourceName)
	if !ok {
		return nil, errors.NewNotRegisteredError("resource", resourceName)
	}
	return d.DecodeAs(data, desc)
}

// DecodeAs maps data onto an explicit descriptor. Projection descriptors
// returned by RegisterProjection are decoded through this entry point, since
// projections share their base resource's name in the lookup table.
func (d *Decoder) DecodeAs(data []byte, desc *registry.TypeDescriptor) (*halmodels.Decoded, error) {
	if desc == nil {
		return nil, errors.NewNotRegisteredError("resource", "")
	}
	doc, err := halmodels.Parse(data)
	if err != nil {
		return nil, err
	}
	return d.decodeDocument(doc, desc)
}

func (d *Decoder) decodeDocument(doc *halmodels.Document, desc *registry.TypeDescriptor) (*halmodels.Decoded, error) {
	target := desc.New()
	if target == nil {
		return nil, errors.NewConfigurationError(desc.Name, "descriptor has no concrete Go type")
	}

	// Round-trip the state properties through JSON so the concrete type's
	// tags and UnmarshalJSON implementations apply.
	if err := json.Unmarshal([]byte(oj.JSON(doc.Properties)), target); err != nil {
		return nil, fmt.Errorf("decode %s: %w", desc.Name, err)
	}

	out := &halmodels.Decoded{
		Descriptor: desc,
		Value:      target,
		Links:      doc.Links,
		Embedded:   make(map[string][]halmodels.Decoded),
	}

	for prop, raw := range doc.Embedded {
		et, ok := d.reg.LookupEmbeddedType(prop)
		if !ok {
			// Projections inline their annotated relations under _embedded.
			et, ok = d.reg.LookupRelationType(prop)
		}
		if !ok {
			// Unregistered embedded content is skipped; the registry owns
			// the naming convention.
			continue
		}

		items, ok := raw.([]any)
		if !ok {
			items = []any{raw}
		}
		decoded := make([]halmodels.Decoded, 0, len(items))
		for _, item := range items {
			sub, err := halmodels.ParseValue(item)
			if err != nil {
				return nil, fmt.Errorf("embedded %q: %w", prop, err)
			}
			dv, err := d.decodeDocument(sub, et)
			if err != nil {
				return nil, fmt.Errorf("embedded %q: %w", prop, err)
			}
			decoded = append(decoded, *dv)
		}
		out.Embedded[prop] = decoded
	}
	return out, nil
}
