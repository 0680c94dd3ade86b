package shopify

// Connection is the Relay-style edges/nodes envelope used by every paginated
// Storefront API field.
type Connection[T any] struct {
	Edges []Edge[T] `json:"edges"`
}

type Edge[T any] struct {
	Node T `json:"node"`
}

// Nodes unwraps the connection into a plain slice, keeping upstream order.
func (c Connection[T]) Nodes() []T {
	nodes := make([]T, 0, len(c.Edges))
	for _, e := range c.Edges {
		nodes = append(nodes, e.Node)
	}
	return nodes
}
