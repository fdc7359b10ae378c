package metadata

import (
	"errors"
	"testing"

	"github.com/dannisliang/hydrogen/engine/core"
)

func TestNewIndexBuffer(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		wantErr bool
	}{
		{"one triangle", 3, false},
		{"two triangles", 6, false},
		{"large triangle list", 65532, false},
		{"zero", 0, true},
		{"negative", -3, true},
		{"not a multiple of 3", 4, true},
		{"off by one below", 5, true},
		{"off by one above", 7, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewIndexBuffer(tt.count)
			if tt.wantErr {
				if !errors.Is(err, core.ErrNonTriangleIndexCount) {
					t.Errorf("NewIndexBuffer(%d) error = %v, want ErrNonTriangleIndexCount", tt.count, err)
				}
				if b != nil {
					t.Errorf("NewIndexBuffer(%d) returned a buffer alongside an error", tt.count)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewIndexBuffer(%d) error = %v", tt.count, err)
			}
			if b.Count() != tt.count {
				t.Errorf("Count() = %d, want %d", b.Count(), tt.count)
			}
		})
	}
}

func TestIndexBufferRoundTrip(t *testing.T) {
	src := []uint32{4, 0, 2, 2, 0, 1}
	b, err := NewIndexBuffer(len(src))
	if err != nil {
		t.Fatal(err)
	}
	b.CopyFrom(src)
	got := b.ToArray()
	if len(got) != len(src) {
		t.Fatalf("ToArray() length = %d, want %d", len(got), len(src))
	}
	for i := range src {
		if got[i] != src[i] {
			t.Errorf("ToArray()[%d] = %d, want %d", i, got[i], src[i])
		}
	}
}

func TestIndexBufferCopyTruncates(t *testing.T) {
	b, err := NewIndexBuffer(3)
	if err != nil {
		t.Fatal(err)
	}
	b.CopyFrom([]uint32{9, 8, 7, 6, 5})
	if b.Count() != 3 {
		t.Fatalf("Count() = %d after oversized copy, want 3", b.Count())
	}
	want := []uint32{9, 8, 7}
	for i, w := range want {
		if b.Get(i) != w {
			t.Errorf("Get(%d) = %d, want %d", i, b.Get(i), w)
		}
	}
}

func TestIndexBufferOutOfRange(t *testing.T) {
	b, err := NewIndexBuffer(3)
	if err != nil {
		t.Fatal(err)
	}
	if b.Set(3, 1) {
		t.Error("Set(3) succeeded on a buffer of size 3")
	}
	if got := b.Get(17); got != 0 {
		t.Errorf("Get(17) = %d, want 0", got)
	}
}
