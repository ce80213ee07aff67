package dual

import "errors"

// ErrAlreadyBuilt is returned by BuildGeometry when called a second
// time on the same Builder.
var ErrAlreadyBuilt = errors.New("dual: BuildGeometry already called")

// ErrNilSource is returned when New is given a nil source polytope.
var ErrNilSource = errors.New("dual: source polytope is nil")

// ErrDegenerateFace is returned when a primal face's vertices sum to a
// normal whose weight collapses to zero, so no dual vertex can be
// placed along it.
var ErrDegenerateFace = errors.New("dual: degenerate face, cannot place dual vertex")

// ErrNonManifoldLink is returned when the primal faces meeting at a
// vertex do not form a single adjacency ring — the vertex link is not
// a simple cycle, so no consistent dual face can be built.
var ErrNonManifoldLink = errors.New("dual: vertex link is not a single cycle")
