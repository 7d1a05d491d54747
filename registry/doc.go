/*
Package registry manages the type-metadata tables behind resourcemap's decode layer.

The registry answers one question for the decoder: given a resource name, an
embedded property name, or a relation property name from a server response,
which concrete Go type should the payload become? Types are declared once as
TypeDescriptor values, verified against the fixed ancestry roots, and recorded
in a Registry during application initialization.

Declaring types:

	var (
	    Animal = registry.Describe[models.Animal]("Animal", registry.Resource)
	    Toy    = registry.Describe[models.Toy]("Toy", registry.EmbeddedResource)
	)

	func init() {
	    reg := registry.Default
	    if err := reg.RegisterResourceType(Animal, "animals"); err != nil {
	        log.Fatal(err)
	    }
	    if err := reg.RegisterEmbeddedType(Toy, []string{"toys"}); err != nil {
	        log.Fatal(err)
	    }
	}

Projections derive a new descriptor from a registered base; the returned
descriptor carries both the base's resource name and the projection name:

	summary, err := reg.RegisterProjection(Animal, "summary", Animal)

Every registration validates its inputs and the candidate's ancestry chain
up front, failing with errors.ConfigurationError; the tables are never
mutated by a failed call. Registration is expected to happen single-threaded
at load time, strictly before the decoder starts querying; the Registry
nevertheless guards its tables with a mutex so lookups are safe under
concurrent readers.
*/
package registry
