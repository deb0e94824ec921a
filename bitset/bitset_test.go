package bitset

import "testing"

func TestInsertContainsRemove(t *testing.T) {
	b := New(70) // forces 2 words
	if b.Contains(5) {
		t.Fatalf("fresh bitset should not contain 5")
	}
	b.Insert(5)
	b.Insert(65)
	if !b.Contains(5) || !b.Contains(65) {
		t.Fatalf("Insert did not set expected bits")
	}
	b.Remove(5)
	if b.Contains(5) {
		t.Fatalf("Remove did not clear bit 5")
	}
	if !b.Contains(65) {
		t.Fatalf("Remove(5) should not affect bit 65")
	}
}

func TestSize(t *testing.T) {
	b := New(10)
	for _, e := range []int{0, 3, 7} {
		b.Insert(e)
	}
	if got := b.Size(); got != 3 {
		t.Errorf("Size() = %d; want 3", got)
	}
}

func TestSizeUnionDoesNotMutate(t *testing.T) {
	a := New(10)
	a.Insert(1)
	a.Insert(2)
	b := New(10)
	b.Insert(2)
	b.Insert(3)

	if got := a.SizeUnion(b); got != 3 {
		t.Errorf("SizeUnion() = %d; want 3", got)
	}
	if a.Size() != 2 || b.Size() != 2 {
		t.Errorf("SizeUnion mutated an operand: a.Size()=%d b.Size()=%d", a.Size(), b.Size())
	}
}

func TestUnionIntersect(t *testing.T) {
	a := New(10)
	a.Insert(1)
	a.Insert(2)
	b := New(10)
	b.Insert(2)
	b.Insert(3)

	union := New(10)
	union.Insert(1)
	union.Insert(2)
	union.Union(b)
	if union.Size() != 3 {
		t.Errorf("Union size = %d; want 3", union.Size())
	}

	inter := New(10)
	inter.Insert(1)
	inter.Insert(2)
	inter.Intersect(b)
	if !inter.Contains(2) || inter.Contains(1) {
		t.Errorf("Intersect did not keep only the shared bit")
	}
}

func TestResetPattern(t *testing.T) {
	b := New(64)
	b.Reset(^uint64(0))
	if b.Size() != 64 {
		t.Errorf("Reset(all-ones) Size() = %d; want 64", b.Size())
	}
	b.Reset(0)
	if b.Size() != 0 {
		t.Errorf("Reset(0) Size() = %d; want 0", b.Size())
	}
}

func TestWidthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on width mismatch")
		}
	}()
	New(10).Union(New(200))
}

func TestHashStableAcrossEqualContent(t *testing.T) {
	a := New(128)
	a.Insert(3)
	a.Insert(70)
	b := New(128)
	b.Insert(3)
	b.Insert(70)
	if a.Hash() != b.Hash() {
		t.Errorf("equal-content bitsets hashed differently")
	}
}
