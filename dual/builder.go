package dual

import (
	"strconv"

	"github.com/katalvlaran/polywythoff/core"
	"github.com/katalvlaran/polywythoff/matrix"
	"github.com/katalvlaran/polywythoff/polytope"
)

// Builder builds the Catalan dual of an already-built source
// polyhedron: it holds an immutable reference to the source for the
// duration of its own build.
type Builder struct {
	source *polytope.Polytope
	built  bool
}

// New captures the source polyhedron to dualize. Call BuildGeometry to
// run the construction.
func New(source *polytope.Polytope) *Builder {
	return &Builder{source: source}
}

// BuildGeometry places one dual vertex per primal face and one dual
// face per primal vertex. Calling it twice returns ErrAlreadyBuilt.
func (b *Builder) BuildGeometry() (*polytope.Polytope, error) {
	if b.built {
		return nil, ErrAlreadyBuilt
	}
	if b.source == nil {
		return nil, ErrNilSource
	}

	faces := flattenFaces(b.source.FaceIndices)

	vertices := make([][]float64, len(faces))
	for fi, face := range faces {
		v, err := dualVertex(b.source.VertexCoords, face)
		if err != nil {
			return nil, err
		}
		vertices[fi] = v
	}

	dualFace := make([][]int, 0, len(b.source.VertexCoords))
	for v := range b.source.VertexCoords {
		var incident []int
		for fi, face := range faces {
			if containsInt(face, v) {
				incident = append(incident, fi)
			}
		}
		if len(incident) == 0 {
			continue // isolated vertex: no incident face, no dual face
		}
		ring, err := orderRing(faces, incident)
		if err != nil {
			return nil, err
		}
		dualFace = append(dualFace, ring)
	}

	b.built = true

	return &polytope.Polytope{
		VertexCoords: vertices,
		FaceIndices:  [][][]int{dualFace},
	}, nil
}

// dualVertex places the dual vertex for a primal face along the
// outward normal of its centroid, at the distance that puts every
// dual vertex of faces meeting at a common primal vertex in one plane.
func dualVertex(coords [][]float64, face []int) ([]float64, error) {
	var sum []float64
	for _, idx := range face {
		if sum == nil {
			sum = append([]float64(nil), coords[idx]...)
		} else {
			sum = matrix.AddVec(sum, coords[idx])
		}
	}
	normal := matrix.Normalize(sum)

	var weight float64
	for _, idx := range face {
		weight += matrix.Dot(coords[idx], normal)
	}
	weight /= float64(len(face))
	if weight == 0 {
		return nil, ErrDegenerateFace
	}

	return matrix.ScaleVec(normal, 1/weight), nil
}

// flattenFaces concatenates every orbit's faces into one list, the
// dual builder's face numbering being orbit-agnostic.
func flattenFaces(orbits [][][]int) [][]int {
	var out [][]int
	for _, orbit := range orbits {
		out = append(out, orbit...)
	}

	return out
}

func containsInt(s []int, x int) bool {
	for _, v := range s {
		if v == x {
			return true
		}
	}

	return false
}

// orderRing builds the face-adjacency graph induced by incident (one
// node per incident face, one edge per shared polyhedron edge) and
// reads the cyclic link of the primal vertex off it with a plain
// neighbor walk: start anywhere, always step to an unvisited adjacent
// face, and stop when every incident face has been visited.
func orderRing(faces [][]int, incident []int) ([]int, error) {
	g := core.NewGraph()
	for _, fi := range incident {
		if err := g.AddVertex(faceID(fi)); err != nil {
			return nil, err
		}
	}
	for i, fi := range incident {
		for _, fj := range incident[i+1:] {
			if facesAdjacent(faces[fi], faces[fj]) {
				if _, err := g.AddEdge(faceID(fi), faceID(fj)); err != nil {
					return nil, err
				}
			}
		}
	}

	ring := []int{incident[0]}
	visited := map[int]bool{incident[0]: true}
	current := incident[0]
	for len(ring) < len(incident) {
		nbrs, err := g.NeighborIDs(faceID(current))
		if err != nil {
			return nil, err
		}
		progressed := false
		for _, nb := range nbrs {
			fi, err := strconv.Atoi(nb)
			if err != nil {
				return nil, err
			}
			if visited[fi] {
				continue
			}
			ring = append(ring, fi)
			visited[fi] = true
			current = fi
			progressed = true
			break
		}
		if !progressed {
			return nil, ErrNonManifoldLink
		}
	}

	return ring, nil
}

func faceID(fi int) string { return strconv.Itoa(fi) }

// facesAdjacent reports whether f1 and f2 share an undirected edge
// between consecutive (cyclically wrapping) vertices.
func facesAdjacent(f1, f2 []int) bool {
	n := len(f1)
	for i := 0; i < n; i++ {
		if edgeIn(f2, f1[i], f1[(i+1)%n]) {
			return true
		}
	}

	return false
}

// edgeIn reports whether the undirected edge (v1,v2) appears as a
// consecutive (cyclically wrapping) pair in f.
func edgeIn(f []int, v1, v2 int) bool {
	n := len(f)
	for i := 0; i < n; i++ {
		w1, w2 := f[i], f[(i+1)%n]
		if (v1 == w1 && v2 == w2) || (v1 == w2 && v2 == w1) {
			return true
		}
	}

	return false
}
