package cosettable

import "testing"

func TestUnionFindGrowAssignsSequentialIDs(t *testing.T) {
	u := newUnionFind()
	for i := 0; i < 4; i++ {
		if got := u.grow(); got != i {
			t.Fatalf("grow() = %d, want %d", got, i)
		}
	}
}

func TestUnionFindFindIsIdentityBeforeUnion(t *testing.T) {
	u := newUnionFind()
	u.grow()
	u.grow()
	u.grow()
	for i := 0; i < 3; i++ {
		if got := u.find(i); got != i {
			t.Fatalf("find(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestUnionFindSmallestIDSurvives(t *testing.T) {
	u := newUnionFind()
	for i := 0; i < 5; i++ {
		u.grow()
	}
	survivor, absorbed := u.union(3, 1)
	if survivor != 1 || absorbed != 3 {
		t.Fatalf("union(3,1) = (%d,%d), want (1,3)", survivor, absorbed)
	}
	if u.find(3) != 1 {
		t.Fatalf("find(3) = %d, want 1", u.find(3))
	}

	survivor, absorbed = u.union(4, 0)
	if survivor != 0 || absorbed != 4 {
		t.Fatalf("union(4,0) = (%d,%d), want (0,4)", survivor, absorbed)
	}
}

func TestUnionFindSameSetIsNoop(t *testing.T) {
	u := newUnionFind()
	u.grow()
	u.grow()
	u.union(0, 1)
	survivor, absorbed := u.union(0, 1)
	if survivor != -1 || absorbed != -1 {
		t.Fatalf("union of already-merged ids = (%d,%d), want (-1,-1)", survivor, absorbed)
	}
}
