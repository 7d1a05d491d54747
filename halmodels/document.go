/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package halmodels

import (
	"fmt"

	"github.com/ohler55/ojg/oj"

	"github.com/suparena/resourcemap/registry"
)

// Link is a single entry in a document's _links object.
type Link struct {
	Href      string `json:"href"`
	Templated bool   `json:"templated,omitempty"`
	Type      string `json:"type,omitempty"`
	Title     string `json:"title,omitempty"`
	Name      string `json:"name,omitempty"`
}

// Document is the parsed envelope of a HAL response: navigational links,
// embedded resources keyed by property name, and the plain state properties.
type Document struct {
	// Links holds the _links entries. For link arrays only the first entry
	// is kept; the decode layer follows single links.
	Links map[string]Link
	// Embedded holds the raw _embedded values, an object or array of
	// objects per property name. Typing them is the decoder's job.
	Embedded map[string]any
	// Properties holds every remaining top-level member.
	Properties map[string]any
}

// Decoded is the result of mapping a document onto a registered type.
type Decoded struct {
	// Descriptor identifies the type the document was decoded as.
	Descriptor *registry.TypeDescriptor
	// Value is a pointer to the populated concrete Go value.
	Value any
	// Links carries the document's navigational links.
	Links map[string]Link
	// Embedded holds the recursively decoded embedded resources.
	Embedded map[string][]Decoded
}

// SelfHref returns the document's self link target, or the empty string.
func (d *Document) SelfHref() string {
	return d.Links["self"].Href
}

// Parse splits raw HAL JSON into links, embedded resources and state properties.
func Parse(data []byte) (*Document, error) {
	v, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse hal document: %w", err)
	}
	return ParseValue(v)
}

// ParseValue builds a Document from an already-parsed JSON value. The decode
// layer uses it for the members of _embedded.
func ParseValue(v any) (*Document, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("hal document is not an object, got %T", v)
	}

	doc := &Document{
		Links:      make(map[string]Link),
		Embedded:   make(map[string]any),
		Properties: make(map[string]any),
	}
	for k, val := range obj {
		switch k {
		case "_links":
			if links, ok := val.(map[string]any); ok {
				for rel, lv := range links {
					doc.Links[rel] = parseLink(lv)
				}
			}
		case "_embedded":
			if embedded, ok := val.(map[string]any); ok {
				doc.Embedded = embedded
			}
		default:
			doc.Properties[k] = val
		}
	}
	return doc, nil
}

func parseLink(v any) Link {
	// Per the HAL draft a rel maps to a link object or an array of them.
	if arr, ok := v.([]any); ok {
		if len(arr) == 0 {
			return Link{}
		}
		v = arr[0]
	}
	m, ok := v.(map[string]any)
	if !ok {
		return Link{}
	}

	var l Link
	if s, ok := m["href"].(string); ok {
		l.Href = s
	}
	if b, ok := m["templated"].(bool); ok {
		l.Templated = b
	}
	if s, ok := m["type"].(string); ok {
		l.Type = s
	}
	if s, ok := m["title"].(string); ok {
		l.Title = s
	}
	if s, ok := m["name"].(string); ok {
		l.Name = s
	}
	return l
}
