/*
Package resourcemap maps HAL API responses onto declared Go types.

A HAL response only identifies its type by convention: the resource name the
request was made for, the property names under _embedded, or a projection the
caller selected. resourcemap keeps a registry of type metadata — resource
names, embedded property names, relation annotations, projections — populated
once at startup, and a decoder that consults those tables to reconstruct the
right concrete type from a payload.

Basic Usage:

	// Describe the declared types
	var (
	    Animal = registry.Describe[models.Animal]("Animal", registry.Resource)
	    Toy    = registry.Describe[models.Toy]("Toy", registry.EmbeddedResource)
	)

	// Register them, typically at startup
	m := resourcemap.New()
	if err := m.RegisterResourceType(Animal, "animals"); err != nil {
	    log.Fatal(err)
	}
	if err := m.RegisterEmbeddedType(Toy, []string{"toys"}); err != nil {
	    log.Fatal(err)
	}

	// Decode a response body
	result, err := m.Decode(body, "animals")
	animal := result.Value.(*models.Animal)

Registrations can also be driven from a YAML manifest; see the manifest
package. Misdeclared types fail fast with a ConfigurationError at
registration time, never at decode time.

Transport is out of scope: resourcemap does not execute HTTP requests, build
URLs, or cache entities. It only answers "which type is this payload?"

For more information, see the documentation at https://github.com/suparena/resourcemap
*/
package resourcemap
