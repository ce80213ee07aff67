package snub

import "github.com/katalvlaran/polywythoff/cosettable"

// repeatWord returns w concatenated with itself n times.
func repeatWord(w cosettable.Word, n int) cosettable.Word {
	out := make(cosettable.Word, 0, len(w)*n)
	for i := 0; i < n; i++ {
		out = append(out, w...)
	}

	return out
}

// movePoints applies every word in reps to every index in base via
// vtable, producing one face/edge per representative.
func movePoints(vtable *cosettable.Table, base []int, reps []cosettable.Word) ([][]int, error) {
	orbit := make([][]int, 0, len(reps))
	for _, w := range reps {
		pts := make([]int, len(base))
		for i, v := range base {
			var err error
			pts[i], err = vtable.Move(v, w)
			if err != nil {
				return nil, err
			}
		}
		orbit = append(orbit, pts)
	}

	return orbit, nil
}

// edgeOrbit is movePoints specialized to a 2-point base, deduplicated
// by unordered pair (coset enumeration orbits can revisit the same
// undirected edge from two different representatives).
func edgeOrbit(vtable *cosettable.Table, e0, e1 int, reps []cosettable.Word) ([][2]int, error) {
	orbit := make([][2]int, 0, len(reps))
	seen := make(map[[2]int]bool, len(reps))
	for _, w := range reps {
		a, err := vtable.Move(e0, w)
		if err != nil {
			return nil, err
		}
		b, err := vtable.Move(e1, w)
		if err != nil {
			return nil, err
		}
		canon := [2]int{a, b}
		if canon[0] > canon[1] {
			canon[0], canon[1] = canon[1], canon[0]
		}
		if seen[canon] {
			continue
		}
		seen[canon] = true
		orbit = append(orbit, [2]int{a, b})
	}

	return orbit, nil
}
