// SPDX-License-Identifier: MIT
package cosettable

import "errors"

// ErrInvalidTable indicates a malformed construction argument: zero or
// negative generator count, or a relator/subgroup word referencing a
// generator index outside [0, numGens).
var ErrInvalidTable = errors.New("cosettable: invalid table")

// ErrDiverged is returned by Enumerate when defining another coset would
// take the number of cosets ever defined (live or since merged) past the
// configured MaxCosets bound without the table closing — the
// presentation likely describes an infinite group, or is simply wrong.
var ErrDiverged = errors.New("cosettable: coset enumeration diverged")

// ErrNotEnumerated is returned by NumCosets, Next and Words when called
// before a successful Enumerate.
var ErrNotEnumerated = errors.New("cosettable: table has not been enumerated")
