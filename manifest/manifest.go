/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/resourcemap/errors"
	"github.com/suparena/resourcemap/registry"
)

// Manifest declares the type registrations an application performs at startup.
type Manifest struct {
	Resources []ResourceDecl `yaml:"resources"`
	Embedded  []EmbeddedDecl `yaml:"embedded,omitempty"`
}

// ResourceDecl maps a declared type to a resource name, with optional projections.
type ResourceDecl struct {
	Type        string           `yaml:"type"`
	Name        string           `yaml:"name"`
	Projections []ProjectionDecl `yaml:"projections,omitempty"`
}

// ProjectionDecl declares a named projection and its relation properties.
type ProjectionDecl struct {
	Name      string            `yaml:"name"`
	Relations map[string]string `yaml:"relations,omitempty"`
}

// EmbeddedDecl maps a declared type to the property names it may appear under.
type EmbeddedDecl struct {
	Type       string   `yaml:"type"`
	Properties []string `yaml:"properties"`
}

// Result carries the projection descriptors derived while applying a manifest.
type Result struct {
	Projections []*registry.TypeDescriptor
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses manifest YAML.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// Validate performs the structural checks that need no descriptor set: every
// declaration must carry its identifiers. Type references are resolved later,
// by Apply.
func (m *Manifest) Validate() error {
	for _, rd := range m.Resources {
		if rd.Type == "" {
			return errors.NewConfigurationError("", "resource declaration is missing its type")
		}
		if rd.Name == "" {
			return errors.NewConfigurationError(rd.Type, "resource name must not be empty")
		}
		for _, pd := range rd.Projections {
			if pd.Name == "" {
				return errors.NewConfigurationError(rd.Type, "projection name must not be empty")
			}
			for prop, rel := range pd.Relations {
				if rel == "" {
					return errors.NewConfigurationError(rd.Type,
						fmt.Sprintf("missing relation type for property %q", prop))
				}
			}
		}
	}
	for _, ed := range m.Embedded {
		if ed.Type == "" {
			return errors.NewConfigurationError("", "embedded declaration is missing its type")
		}
		if len(ed.Properties) == 0 {
			return errors.NewConfigurationError(ed.Type, "at least one resource property name is required")
		}
	}
	return nil
}

// Apply performs every registration the manifest declares against reg. The
// types map resolves declared type names to their descriptors. Registration
// errors surface verbatim; an unknown type reference is a ConfigurationError
// naming the manifest entry.
func (m *Manifest) Apply(reg *registry.Registry, types map[string]*registry.TypeDescriptor) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	res := &Result{}
	for _, rd := range m.Resources {
		t, ok := types[rd.Type]
		if !ok {
			return nil, errors.NewConfigurationError(rd.Type, "manifest references an undeclared type")
		}
		if err := reg.RegisterResourceType(t, rd.Name); err != nil {
			return nil, err
		}
		for _, pd := range rd.Projections {
			proj, err := reg.RegisterProjection(t, pd.Name, t)
			if err != nil {
				return nil, err
			}
			for prop, rel := range pd.Relations {
				relType, ok := types[rel]
				if !ok {
					return nil, errors.NewConfigurationError(rel, "manifest references an undeclared type")
				}
				if err := reg.AnnotateRelation(proj, prop, relType); err != nil {
					return nil, err
				}
			}
			res.Projections = append(res.Projections, proj)
		}
	}
	for _, ed := range m.Embedded {
		t, ok := types[ed.Type]
		if !ok {
			return nil, errors.NewConfigurationError(ed.Type, "manifest references an undeclared type")
		}
		if err := reg.RegisterEmbeddedType(t, ed.Properties); err != nil {
			return nil, err
		}
	}
	return res, nil
}
