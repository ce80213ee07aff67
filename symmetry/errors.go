// SPDX-License-Identifier: MIT
package symmetry

import "errors"

// ErrUnknownLetter is returned by RotationAction.Apply when a word uses
// a generator letter the rotation table does not define.
var ErrUnknownLetter = errors.New("symmetry: unknown rotation letter")
