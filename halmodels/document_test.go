/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package halmodels

import (
	"testing"
)

func TestParse(t *testing.T) {
	data := []byte(`{
		"_links": {
			"self": {"href": "/animals/1"},
			"owner": {"href": "/people/{id}", "templated": true, "title": "Owner"}
		},
		"_embedded": {
			"toys": [{"name": "ball"}, {"name": "rope"}]
		},
		"id": "1",
		"name": "Rex",
		"age": 4
	}`)

	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	// Links
	if doc.SelfHref() != "/animals/1" {
		t.Errorf("Expected self href %q, got %q", "/animals/1", doc.SelfHref())
	}
	owner := doc.Links["owner"]
	if !owner.Templated || owner.Title != "Owner" {
		t.Errorf("Owner link not parsed: %+v", owner)
	}

	// Embedded stays raw
	if _, ok := doc.Embedded["toys"].([]any); !ok {
		t.Errorf("Expected raw embedded array, got %T", doc.Embedded["toys"])
	}

	// Properties exclude the underscore members
	if len(doc.Properties) != 3 {
		t.Errorf("Expected 3 properties, got %d: %v", len(doc.Properties), doc.Properties)
	}
	if doc.Properties["name"] != "Rex" {
		t.Errorf("Expected name property %q, got %v", "Rex", doc.Properties["name"])
	}
	if _, ok := doc.Properties["_links"]; ok {
		t.Error("_links should not appear among properties")
	}
}

func TestParseLinkArray(t *testing.T) {
	data := []byte(`{"_links": {"item": [{"href": "/a"}, {"href": "/b"}]}}`)

	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if doc.Links["item"].Href != "/a" {
		t.Errorf("Expected first array link, got %q", doc.Links["item"].Href)
	}
}

func TestParseRejectsNonObjects(t *testing.T) {
	for _, data := range []string{`[1,2,3]`, `"text"`, `42`} {
		if _, err := Parse([]byte(data)); err == nil {
			t.Errorf("Expected error for %s", data)
		}
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"name":`)); err == nil {
		t.Error("Expected parse error for truncated JSON")
	}
}

func TestSelfHrefMissing(t *testing.T) {
	doc, err := Parse([]byte(`{"name": "Rex"}`))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if doc.SelfHref() != "" {
		t.Errorf("Expected empty self href, got %q", doc.SelfHref())
	}
}
