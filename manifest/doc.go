/*
Package manifest provides declarative, YAML-driven type registration for resourcemap.

Instead of hand-writing registration calls in init blocks, an application can
keep its resource declarations in a manifest checked in next to the API spec:

	resources:
	  - type: Animal
	    name: animals
	    projections:
	      - name: summary
	        relations:
	          owner: Person
	  - type: Person
	    name: people
	embedded:
	  - type: Toy
	    properties: [toys, favoriteToy]

Applying a manifest resolves the declared type names against a descriptor set
supplied by the caller and performs the registrations in declaration order:

	m, err := manifest.Load("resources.yaml")
	...
	result, err := m.Apply(reg, map[string]*registry.TypeDescriptor{
	    "Animal": Animal,
	    "Person": Person,
	    "Toy":    Toy,
	})

Apply surfaces the registry's ConfigurationErrors verbatim and returns the
derived projection descriptors, which are not findable by resource name and
must be handed to the decoder explicitly.
*/
package manifest
