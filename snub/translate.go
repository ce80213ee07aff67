package snub

import (
	"fmt"

	"github.com/katalvlaran/polywythoff/cosettable"
	"github.com/katalvlaran/polywythoff/descriptor"
)

// translatePair maps a consecutive pair of reflection letters
// (ρ0,ρ1,ρ2) to the rotation letters it corresponds to, r=0, r⁻¹=1,
// s=2, s⁻¹=3.
var translatePair = map[[2]int][]int{
	{0, 1}: {0},
	{1, 0}: {1},
	{1, 2}: {2},
	{2, 1}: {3},
	{0, 2}: {0, 2},
	{2, 0}: {3, 1},
}

// translateExtra rewrites an extra relation given in reflection
// letters into the rotation-subgroup alphabet. Odd-length words are
// doubled (w -> w·w) before splitting into adjacent pairs, since a
// rotation word's length is always even.
func translateExtra(w descriptor.Word) (cosettable.Word, error) {
	src := []int(w)
	if len(src)%2 != 0 {
		doubled := make([]int, 0, 2*len(src))
		doubled = append(doubled, src...)
		doubled = append(doubled, src...)
		src = doubled
	}

	out := make(cosettable.Word, 0, len(src))
	for i := 0; i+1 < len(src); i += 2 {
		pair := [2]int{src[i], src[i+1]}
		letters, ok := translatePair[pair]
		if !ok {
			return nil, fmt.Errorf("snub: extra relation pair (%d,%d): %w", pair[0], pair[1], ErrUntranslatable)
		}
		out = append(out, letters...)
	}

	return out, nil
}
