package grass

import (
	"errors"
	"slices"
	"testing"
)

func TestBuildBladeIndicesLength(t *testing.T) {
	for segments := 1; segments <= 64; segments++ {
		indices, err := BuildBladeIndices(segments)
		if err != nil {
			t.Fatalf("BuildBladeIndices(%d) error: %v", segments, err)
		}
		if len(indices) != segments*12 {
			t.Errorf("BuildBladeIndices(%d) len = %d, want %d", segments, len(indices), segments*12)
		}
		limit := uint32(4 * (segments + 1))
		for i, idx := range indices {
			if idx >= limit {
				t.Fatalf("segments=%d index[%d] = %d, want < %d", segments, i, idx, limit)
			}
		}
	}
}

func TestBuildBladeIndicesFiveSegments(t *testing.T) {
	indices, err := BuildBladeIndices(5)
	if err != nil {
		t.Fatalf("BuildBladeIndices(5) error: %v", err)
	}
	if len(indices) != 60 {
		t.Errorf("len = %d, want 60", len(indices))
	}
	if hi := slices.Max(indices); hi >= 24 {
		t.Errorf("max index = %d, want < 24", hi)
	}
	if VertexCount(5) != 24 {
		t.Errorf("VertexCount(5) = %d, want 24", VertexCount(5))
	}
}

func TestBuildBladeIndicesFirstSegment(t *testing.T) {
	indices, err := BuildBladeIndices(2)
	if err != nil {
		t.Fatal(err)
	}
	// Back face base for 2 segments is 2*(2+1) = 6.
	want := []uint32{
		0, 1, 2, 2, 1, 3,
		8, 7, 6, 9, 7, 8,
	}
	if !slices.Equal(indices[:12], want) {
		t.Errorf("first segment = %v, want %v", indices[:12], want)
	}
	wantSecond := []uint32{
		2, 3, 4, 4, 3, 5,
		10, 9, 8, 11, 9, 10,
	}
	if !slices.Equal(indices[12:], wantSecond) {
		t.Errorf("second segment = %v, want %v", indices[12:], wantSecond)
	}
}

func TestBuildBladeIndicesMirroredWinding(t *testing.T) {
	const segments = 4
	indices, err := BuildBladeIndices(segments)
	if err != nil {
		t.Fatal(err)
	}
	offset := uint32(2 * (segments + 1))
	for i := 0; i < segments; i++ {
		o := i * 12
		for tri := 0; tri < 2; tri++ {
			front := indices[o+tri*3 : o+tri*3+3]
			back := indices[o+6+tri*3 : o+6+tri*3+3]
			// Back triangle is the front triangle shifted to the back
			// vertex set with first and last swapped.
			if back[0] != front[2]+offset || back[1] != front[1]+offset || back[2] != front[0]+offset {
				t.Errorf("segment %d tri %d: front %v back %v not mirrored", i, tri, front, back)
			}
		}
	}
}

func TestBuildBladeIndicesDeterministic(t *testing.T) {
	a, _ := BuildBladeIndices(7)
	b, _ := BuildBladeIndices(7)
	if !slices.Equal(a, b) {
		t.Error("two calls with equal input produced different buffers")
	}
}

func TestBuildBladeIndicesInvalid(t *testing.T) {
	for _, segments := range []int{0, -1, -100} {
		indices, err := BuildBladeIndices(segments)
		if !errors.Is(err, ErrInvalidSegments) {
			t.Errorf("BuildBladeIndices(%d) error = %v, want ErrInvalidSegments", segments, err)
		}
		if indices != nil {
			t.Errorf("BuildBladeIndices(%d) returned a buffer on error", segments)
		}
	}
}

func TestTopologyCache(t *testing.T) {
	c := NewTopologyCache()

	a, err := c.Get(5)
	if err != nil {
		t.Fatal(err)
	}
	a[0] = 999 // Mutating the copy must not leak into the cache

	b, err := c.Get(5)
	if err != nil {
		t.Fatal(err)
	}
	if b[0] != 0 {
		t.Errorf("cached buffer mutated: b[0] = %d", b[0])
	}

	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("Stats() = (%d, %d), want (1, 1)", hits, misses)
	}

	if _, err := c.Get(0); !errors.Is(err, ErrInvalidSegments) {
		t.Errorf("Get(0) error = %v, want ErrInvalidSegments", err)
	}
	if hits, misses := c.Stats(); hits != 1 || misses != 1 {
		t.Errorf("Stats() after invalid Get = (%d, %d), want (1, 1)", hits, misses)
	}
}
