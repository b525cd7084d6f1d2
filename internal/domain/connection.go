package domain

// Edge is one entry of a paginated GraphQL connection.
type Edge[T any] struct {
	Node T `json:"node"`
}

// Connection is the paginated wrapper shape the Admin API returns for every
// list-valued field: {edges: [{node: T}, ...]}.
type Connection[T any] struct {
	Edges []Edge[T] `json:"edges"`
}

// UnwrapEdges strips the edge/node wrappers from a connection, preserving
// order. An empty or absent edges list yields an empty (non-nil) slice so
// list results always serialize as [] rather than null.
func UnwrapEdges[T any](conn Connection[T]) []T {
	nodes := make([]T, 0, len(conn.Edges))
	for _, e := range conn.Edges {
		nodes = append(nodes, e.Node)
	}
	return nodes
}
