package cosettable

import (
	"context"
	"fmt"
)

// Word is a finite ordered sequence of generator indices, interpreted as
// a group element or (for subgroup generators) a relator that must fix
// coset 0.
type Word []int

// Table enumerates the right cosets of a subgroup (given by
// subgroupWords) of a group presented by ⟨0..numGens-1 | relators⟩.
// Generators need not be self-inverse: inverses[g] names the generator
// that undoes g (a Coxeter presentation passes the identity mapping
// since every mirror is an involution; a rotation-subgroup presentation
// passes a genuine pairing, e.g. r at index 0 paired with r⁻¹ at index
// 1). Construct with New or NewInvolutive, then call Enumerate once.
type Table struct {
	numGens       int
	inverses      []int
	relators      []Word
	subgroupWords []Word
	cfg           Config

	// live working state, valid only between New and a successful
	// Enumerate; action/parentOf/parentGen/depthOf are indexed by raw
	// (pre-compaction) coset id and grow via newCosetRow.
	uf        *unionFind
	action    [][]int
	parentOf  []int
	parentGen []int
	depthOf   []int

	enumerated bool
	numCosets  int
	finalNext  [][]int
	words      []Word
}

// New validates numGens, inverses, relators and subgroupWords and
// returns a Table ready for Enumerate. inverses must have length
// numGens with inverses[inverses[g]] == g for every g.
func New(numGens int, inverses []int, relators, subgroupWords []Word, opts ...Option) (*Table, error) {
	if numGens <= 0 {
		return nil, fmt.Errorf("cosettable.New: numGens=%d must be positive: %w", numGens, ErrInvalidTable)
	}
	if len(inverses) != numGens {
		return nil, fmt.Errorf("cosettable.New: inverses has length %d, want %d: %w", len(inverses), numGens, ErrInvalidTable)
	}
	for g, ig := range inverses {
		if ig < 0 || ig >= numGens || inverses[ig] != g {
			return nil, fmt.Errorf("cosettable.New: inverses[%d]=%d is not a valid involutive pairing: %w", g, ig, ErrInvalidTable)
		}
	}
	for _, w := range relators {
		if err := validateWord(w, numGens); err != nil {
			return nil, err
		}
	}
	for _, w := range subgroupWords {
		if err := validateWord(w, numGens); err != nil {
			return nil, err
		}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	relCopy := make([]Word, len(relators))
	for i, w := range relators {
		relCopy[i] = append(Word(nil), w...)
	}
	subCopy := make([]Word, len(subgroupWords))
	for i, w := range subgroupWords {
		subCopy[i] = append(Word(nil), w...)
	}
	invCopy := append([]int(nil), inverses...)

	t := &Table{
		numGens:       numGens,
		inverses:      invCopy,
		relators:      relCopy,
		subgroupWords: subCopy,
		cfg:           cfg,
		uf:            newUnionFind(),
	}
	t.newCosetRow() // coset 0, no parent

	return t, nil
}

// NewInvolutive is New with every generator its own inverse, the
// Coxeter-presentation case.
func NewInvolutive(numGens int, relators, subgroupWords []Word, opts ...Option) (*Table, error) {
	inv := make([]int, numGens)
	for i := range inv {
		inv[i] = i
	}

	return New(numGens, inv, relators, subgroupWords, opts...)
}

func validateWord(w Word, numGens int) error {
	for _, g := range w {
		if g < 0 || g >= numGens {
			return fmt.Errorf("cosettable.New: generator %d out of range [0,%d): %w", g, numGens, ErrInvalidTable)
		}
	}

	return nil
}

// newCosetRow allocates a fresh action row and bookkeeping slot, growing
// the union-find by one singleton, and returns the new raw coset id.
func (t *Table) newCosetRow() int {
	id := t.uf.grow()
	row := make([]int, t.numGens)
	for i := range row {
		row[i] = -1
	}
	t.action = append(t.action, row)
	t.parentOf = append(t.parentOf, -1)
	t.parentGen = append(t.parentGen, -1)
	t.depthOf = append(t.depthOf, 0)

	return id
}

// rep resolves c to its live representative.
func (t *Table) rep(c int) int { return t.uf.find(c) }

// define creates a new coset c' with c--g-->c', recording a parent link
// for shortest-word reconstruction. Returns ErrDiverged if this exceeds
// the configured coset bound.
func (t *Table) define(c, g int) error {
	if len(t.action) >= t.cfg.MaxCosets {
		return fmt.Errorf("cosettable.Enumerate: exceeded %d cosets: %w", t.cfg.MaxCosets, ErrDiverged)
	}
	c = t.rep(c)
	nc := t.newCosetRow()
	t.action[c][g] = nc
	t.action[nc][t.inverses[g]] = c
	t.parentOf[nc] = c
	t.parentGen[nc] = g
	t.depthOf[nc] = t.depthOf[c] + 1

	return nil
}

// setLink asserts the single table edge c--g-->d (equivalently
// d--inverses[g]-->c), filling in whichever of the two directions is
// still undefined and queuing a coincidence for any direction that is
// already defined but disagrees.
func (t *Table) setLink(c, g, d int, pending *[][2]int) {
	ig := t.inverses[g]
	c = t.rep(c)
	d = t.rep(d)

	if existing := t.action[c][g]; existing == -1 {
		t.action[c][g] = d
	} else if t.rep(existing) != d {
		*pending = append(*pending, [2]int{existing, d})
	}

	if existing := t.action[d][ig]; existing == -1 {
		t.action[d][ig] = c
	} else if t.rep(existing) != c {
		*pending = append(*pending, [2]int{existing, c})
	}
}

// merge declares raw cosets a and b equivalent, reconciling their action
// rows and the shortest-path bookkeeping, and queues any new
// coincidences this produces onto pending.
func (t *Table) merge(a, b int, pending *[][2]int) {
	ra, rb := t.rep(a), t.rep(b)
	if ra == rb {
		return
	}
	survivor, absorbed := t.uf.union(ra, rb)
	if survivor == -1 {
		return
	}

	if t.depthOf[absorbed] < t.depthOf[survivor] {
		t.parentOf[survivor] = t.parentOf[absorbed]
		t.parentGen[survivor] = t.parentGen[absorbed]
		t.depthOf[survivor] = t.depthOf[absorbed]
	}
	if survivor == 0 {
		// coset 0 always keeps the canonical empty representative word.
		t.parentOf[0] = -1
	}

	for g := 0; g < t.numGens; g++ {
		if ab := t.action[absorbed][g]; ab != -1 {
			t.setLink(survivor, g, t.rep(ab), pending)
		}
	}
}

// coincidenceLoop drains pending merge requests, processing the
// coincidences they in turn generate, until the queue is empty.
func (t *Table) coincidenceLoop(ctx context.Context, pending [][2]int) error {
	for len(pending) > 0 {
		if err := checkCtx(ctx); err != nil {
			return err
		}
		pair := pending[0]
		pending = pending[1:]
		t.merge(pair[0], pair[1], &pending)
	}

	return nil
}

// scanRelation walks w from both ends toward the middle starting at
// coset c0, deducing or merging as the gap between the two pointers
// closes. Any coincidence produced is appended to pending rather than
// processed inline, so the caller can drain it with coincidenceLoop.
func (t *Table) scanRelation(c0 int, w Word, pending *[][2]int) {
	if len(w) == 0 {
		return
	}
	f := t.rep(c0)
	b := t.rep(c0)
	i, j := 0, len(w)-1

	for i <= j && t.action[f][w[i]] != -1 {
		f = t.rep(t.action[f][w[i]])
		i++
	}
	for j >= i && t.action[b][t.inverses[w[j]]] != -1 {
		b = t.rep(t.action[b][t.inverses[w[j]]])
		j--
	}

	gap := j - i + 1
	switch {
	case gap <= 0:
		// pointers crossed exactly: scan closed.
		if f != b {
			*pending = append(*pending, [2]int{f, b})
		}
	case gap == 1:
		t.setLink(f, w[i], b, pending)
	default:
		// gap > 1: undetermined, HLT style — leave it for a later round.
	}
}

// firstUndefined returns the smallest live coset id and smallest
// generator for which A[c][g] is undefined, in ascending (c,g) order,
// or ok=false if the table is closed.
func (t *Table) firstUndefined() (c, g int, ok bool) {
	for raw := 0; raw < len(t.action); raw++ {
		if t.rep(raw) != raw {
			continue // not a live root
		}
		for gen := 0; gen < t.numGens; gen++ {
			if t.action[raw][gen] == -1 {
				return raw, gen, true
			}
		}
	}

	return 0, 0, false
}

// liveCosets returns every currently live coset id in ascending order.
func (t *Table) liveCosets() []int {
	out := make([]int, 0, len(t.action))
	for raw := 0; raw < len(t.action); raw++ {
		if t.rep(raw) == raw {
			out = append(out, raw)
		}
	}

	return out
}

func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// Enumerate runs HLT-with-scan-all coset enumeration to completion.
// Each round first scans every relator at every live coset and drains
// the resulting coincidences to saturate every deduction reachable
// without growing the table, then — only if some live coset still has
// an undefined outgoing generator — defines the smallest such
// transition and repeats. Scanning before defining is what lets a
// relation like a lone generator's r^1 = 1 (the word {0}) close the
// single-coset table by deduction instead of spuriously allocating a
// second coset and merging it back; a
// define-first ordering would create cosets a pure scan-and-fill
// deduction could have avoided. Calling Enumerate a second time on an
// already-enumerated table is a no-op.
//
// Returns ErrDiverged if the coset count exceeds the configured bound,
// or ctx.Err() if ctx is cancelled mid-enumeration.
func (t *Table) Enumerate(ctx context.Context) error {
	if t.enumerated {
		return nil
	}

	var pending [][2]int
	for _, w := range t.subgroupWords {
		if err := checkCtx(ctx); err != nil {
			return err
		}
		t.scanRelation(0, w, &pending)
	}
	if err := t.coincidenceLoop(ctx, pending); err != nil {
		return err
	}

	for {
		if err := checkCtx(ctx); err != nil {
			return err
		}

		var round [][2]int
		for _, live := range t.liveCosets() {
			for _, rel := range t.relators {
				if err := checkCtx(ctx); err != nil {
					return err
				}
				t.scanRelation(live, rel, &round)
			}
		}
		if err := t.coincidenceLoop(ctx, round); err != nil {
			return err
		}

		c, g, ok := t.firstUndefined()
		if !ok {
			break
		}
		if err := t.define(c, g); err != nil {
			return err
		}
	}

	t.finalize()
	t.enumerated = true

	return nil
}

// finalize compacts the live roots into a dense 0..N-1 numbering
// (preserving ascending raw-id order, so coset 0 maps to 0) and
// reconstructs each coset's shortest representative word from the
// parent chain.
func (t *Table) finalize() {
	live := t.liveCosets()
	newID := make(map[int]int, len(live))
	for idx, raw := range live {
		newID[raw] = idx
	}

	t.numCosets = len(live)
	t.finalNext = make([][]int, t.numCosets)
	t.words = make([]Word, t.numCosets)

	for idx, raw := range live {
		row := make([]int, t.numGens)
		for g := 0; g < t.numGens; g++ {
			row[g] = newID[t.rep(t.action[raw][g])]
		}
		t.finalNext[idx] = row
		t.words[idx] = t.reconstructWord(raw)
	}
}

// reconstructWord walks the parent chain of raw back to coset 0,
// re-resolving every intermediate id through the union-find so that a
// parent link recorded before a later merge still yields a live path.
func (t *Table) reconstructWord(raw int) Word {
	var rev Word
	cur := t.rep(raw)
	for cur != 0 {
		g := t.parentGen[cur]
		rev = append(rev, g)
		cur = t.rep(t.parentOf[cur])
	}
	word := make(Word, len(rev))
	for i, g := range rev {
		word[len(rev)-1-i] = g
	}

	return word
}

// NumCosets returns the number of live cosets found by Enumerate.
func (t *Table) NumCosets() (int, error) {
	if !t.enumerated {
		return 0, ErrNotEnumerated
	}

	return t.numCosets, nil
}

// Next returns the coset reached from c by applying generator g.
func (t *Table) Next(c, g int) (int, error) {
	if !t.enumerated {
		return 0, ErrNotEnumerated
	}
	if c < 0 || c >= t.numCosets || g < 0 || g >= t.numGens {
		return 0, fmt.Errorf("cosettable.Next: (c=%d,g=%d) out of range: %w", c, g, ErrInvalidTable)
	}

	return t.finalNext[c][g], nil
}

// Move applies w to c left-to-right via repeated Next calls.
func (t *Table) Move(c int, w Word) (int, error) {
	cur := c
	for _, g := range w {
		var err error
		cur, err = t.Next(cur, g)
		if err != nil {
			return 0, err
		}
	}

	return cur, nil
}

// Words returns a shortest representative word for every live coset, in
// ascending coset-id order.
func (t *Table) Words() ([]Word, error) {
	if !t.enumerated {
		return nil, ErrNotEnumerated
	}
	out := make([]Word, len(t.words))
	for i, w := range t.words {
		out[i] = append(Word(nil), w...)
	}

	return out, nil
}

// NumGens returns the generator-alphabet size this table was built with.
func (t *Table) NumGens() int { return t.numGens }
