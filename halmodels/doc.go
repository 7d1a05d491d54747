/*
Package halmodels defines the HAL document structures used throughout resourcemap.

A HAL response keeps three kinds of members at each level: _links (navigable
link relations), _embedded (nested resources keyed by property name), and the
resource's own state properties. Parse splits a raw payload into exactly those
three buckets:

	doc, err := halmodels.Parse(data)
	if err != nil {
	    return err
	}
	fmt.Println(doc.SelfHref())
	for prop := range doc.Embedded {
	    // resolved against the registry by the decode layer
	}

Decoded is the typed result produced by the decoder: the populated concrete
value, the descriptor it was decoded as, and the recursively decoded embedded
resources. These types provide a consistent document shape regardless of which
server produced the payload.
*/
package halmodels
