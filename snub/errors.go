package snub

import "errors"

// ErrAlreadyBuilt is returned by BuildGeometry when called a second
// time on the same builder.
var ErrAlreadyBuilt = errors.New("snub: BuildGeometry already called")

// ErrUntranslatable is returned when an extra relation, expressed in
// reflection letters, contains a consecutive pair that the
// reflection-to-rotation translation table has no entry for.
var ErrUntranslatable = errors.New("snub: extra relation pair has no rotation translation")
