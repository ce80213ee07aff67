// SPDX-License-Identifier: MIT
package polytope

import "errors"

// ErrWrongDimension is returned by Project4D when called on a Polytope
// whose vertex coordinates are not 5-dimensional.
var ErrWrongDimension = errors.New("polytope: wrong coordinate dimension")
