package metadata

import (
	"github.com/google/uuid"
)

/**
 * @brief One logical mesh: a vertex block plus its ordered submeshes.
 * The unit of both combine input and combine output.
 */
type MeshRecord struct {
	/** @brief The record identity, used for duplicate detection and removal. */
	ID uuid.UUID
	/** @brief The record name. */
	Name string
	/** @brief The vertex pool shared by all submeshes. */
	Block *VertexBlock
	/** @brief The ordered submesh list. */
	Submeshes []*Submesh
}

func NewMeshRecord(vertexCount int) *MeshRecord {
	return &MeshRecord{
		ID:    uuid.New(),
		Block: NewVertexBlock(vertexCount),
	}
}

// AddSubmesh creates a submesh of the given index count sharing this record's
// vertex block and appends it. Fails when the index count is not a positive
// multiple of 3.
func (r *MeshRecord) AddSubmesh(indexCount int, materialID uint32) (*Submesh, error) {
	sm, err := NewSubmesh(indexCount, materialID, r.Block)
	if err != nil {
		return nil, err
	}
	r.Submeshes = append(r.Submeshes, sm)
	return sm, nil
}

// VertexCount returns the size of the record's vertex block.
func (r *MeshRecord) VertexCount() int {
	if r.Block == nil {
		return 0
	}
	return r.Block.Size
}
