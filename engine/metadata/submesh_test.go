package metadata

import (
	"testing"
)

func TestUsedVertexCount(t *testing.T) {
	tests := []struct {
		name        string
		vertexCount int
		indices     []uint32
		want        int
	}{
		{"one triangle, all distinct", 3, []uint32{0, 1, 2}, 3},
		{"shared vertices across triangles", 4, []uint32{0, 1, 2, 2, 1, 3}, 4},
		{"degenerate, single vertex repeated", 4, []uint32{1, 1, 1}, 1},
		{"subset of the block", 100, []uint32{10, 20, 30}, 3},
		{"out-of-range indices not counted", 2, []uint32{0, 1, 9}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := NewVertexBlock(tt.vertexCount)
			sm, err := NewSubmesh(len(tt.indices), 1, block)
			if err != nil {
				t.Fatal(err)
			}
			sm.Indices.CopyFrom(tt.indices)
			if got := sm.UsedVertexCount(); got != tt.want {
				t.Errorf("UsedVertexCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUsedVertexCountEmptyBlock(t *testing.T) {
	block := NewVertexBlock(0)
	sm, err := NewSubmesh(3, 1, block)
	if err != nil {
		t.Fatal(err)
	}
	if got := sm.UsedVertexCount(); got != 0 {
		t.Errorf("UsedVertexCount() = %d for an empty block, want 0", got)
	}
}

func TestMeshRecordSubmeshesShareBlock(t *testing.T) {
	record := NewMeshRecord(6)
	a, err := record.AddSubmesh(3, 1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := record.AddSubmesh(6, 2)
	if err != nil {
		t.Fatal(err)
	}
	if a.Parent != record.Block || b.Parent != record.Block {
		t.Error("submeshes do not share the record's vertex block")
	}
	if len(record.Submeshes) != 2 {
		t.Errorf("len(Submeshes) = %d, want 2", len(record.Submeshes))
	}
	if record.VertexCount() != 6 {
		t.Errorf("VertexCount() = %d, want 6", record.VertexCount())
	}
}

func TestMeshRecordRejectsBadSubmesh(t *testing.T) {
	record := NewMeshRecord(3)
	if _, err := record.AddSubmesh(4, 1); err == nil {
		t.Error("AddSubmesh(4) succeeded, want error")
	}
	if len(record.Submeshes) != 0 {
		t.Errorf("rejected submesh was still appended, len = %d", len(record.Submeshes))
	}
}

func TestMeshRecordIdentity(t *testing.T) {
	a := NewMeshRecord(3)
	b := NewMeshRecord(3)
	if a.ID == b.ID {
		t.Error("two records share the same identity")
	}
}
