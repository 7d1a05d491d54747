/*
Package decoder reconstructs concrete Go values from HAL responses.

A server response identifies its type only by convention: a resource name
known from the request, embedded property names, or a projection chosen by
the caller. The decoder resolves each of those through the registry's lookup
tables and instantiates whatever type was registered there:

	dec := decoder.New(reg)
	result, err := dec.Decode(body, "animals")
	if err != nil {
	    return err
	}
	animal := result.Value.(*models.Animal)
	for _, toy := range result.Embedded["toys"] {
	    fmt.Println(toy.Value.(*models.Toy).Name)
	}

Embedded resources are decoded recursively: each _embedded property is
resolved first against the embedded-type table, then against the relation
annotations (projections inline their relations under _embedded). Properties
with no registered type are skipped rather than failing the decode.

Projection descriptors are not findable by resource name; decode them through
DecodeAs with the descriptor returned by RegisterProjection.
*/
package decoder
