/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"testing"
)

type testAnimal struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestDescendsFrom(t *testing.T) {
	child := &TypeDescriptor{Name: "Child", Parent: Resource}
	grandchild := &TypeDescriptor{Name: "Grandchild", Parent: child}
	other := &TypeDescriptor{Name: "Other"}
	anonymousParent := &TypeDescriptor{Name: "Orphan", Parent: &TypeDescriptor{Name: ""}}

	tests := []struct {
		name      string
		candidate *TypeDescriptor
		ancestor  *TypeDescriptor
		expected  bool
	}{
		{"direct child", child, Resource, true},
		{"three level chain", grandchild, Resource, true},
		{"candidate is ancestor", Resource, Resource, true},
		{"resource descends from base", Resource, BaseResource, true},
		{"embedded descends from base", EmbeddedResource, BaseResource, true},
		{"unrelated root type", other, Resource, false},
		{"empty named parent stops walk", anonymousParent, Resource, false},
		{"nil candidate", nil, Resource, false},
		{"sibling branches do not match", EmbeddedResource, Resource, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DescendsFrom(tt.candidate, tt.ancestor); got != tt.expected {
				t.Errorf("DescendsFrom(%v, %v) = %v, want %v", tt.candidate, tt.ancestor, got, tt.expected)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	d := Describe[testAnimal]("Animal", Resource)

	if d.Name != "Animal" {
		t.Errorf("Expected name %q, got %q", "Animal", d.Name)
	}
	if d.Parent != Resource {
		t.Error("Descriptor should be parented on Resource")
	}
	if d.GoType != reflect.TypeOf(testAnimal{}) {
		t.Errorf("Expected GoType testAnimal, got %v", d.GoType)
	}

	v := d.New()
	if _, ok := v.(*testAnimal); !ok {
		t.Fatalf("New should return *testAnimal, got %T", v)
	}
}

func TestNewOnAbstractDescriptor(t *testing.T) {
	// The fixed bases describe no concrete Go type.
	if v := Resource.New(); v != nil {
		t.Errorf("Expected nil from abstract descriptor, got %T", v)
	}
}
