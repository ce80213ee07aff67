package cosettable

// unionFind is a disjoint-set over coset ids with path compression,
// generalized from a string-keyed vertex union-find to
// dense integer coset ids so it can grow as Enumerate defines new
// cosets.
type unionFind struct {
	parent []int
	rank   []int
}

// newUnionFind returns an empty unionFind; grow allocates id 0 on its
// first call.
func newUnionFind() *unionFind {
	return &unionFind{}
}

// grow extends the union-find with a new singleton set and returns its id.
func (u *unionFind) grow() int {
	id := len(u.parent)
	u.parent = append(u.parent, id)
	u.rank = append(u.rank, 0)

	return id
}

// find returns the root (canonical live coset id) of c, path-compressing
// as it walks.
func (u *unionFind) find(c int) int {
	for u.parent[c] != c {
		u.parent[c] = u.parent[u.parent[c]]
		c = u.parent[c]
	}

	return c
}

// union merges the sets containing a and b, attaching the root with the
// larger id under the root with the smaller id, and returns the surviving
// root together with the root that was absorbed (survivor, absorbed), or
// (-1, -1) if a and b were already in the same set.
//
// Coxeter engines want the *smallest* id to survive a merge (so that
// representative words stay shortest-first and coset 0 never moves), so
// the survivor is chosen by id alone; rank is updated but does not take
// part in that choice.
func (u *unionFind) union(a, b int) (survivor, absorbed int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return -1, -1
	}
	if ra > rb {
		ra, rb = rb, ra
	}
	// ra < rb now; keep the smaller id as survivor regardless of rank.
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}

	return ra, rb
}
