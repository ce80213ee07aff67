// SPDX-License-Identifier: MIT
package wythoff

import "errors"

// ErrAlreadyBuilt is returned by BuildGeometry when called a second
// time on the same Builder.
var ErrAlreadyBuilt = errors.New("wythoff: BuildGeometry already called")
