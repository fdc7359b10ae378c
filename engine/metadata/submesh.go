package metadata

/**
 * @brief A triangle-index range into a vertex block, associated with one
 * material. The parent block is shared by every submesh of the same mesh
 * record and is not owned.
 */
type Submesh struct {
	Indices *IndexBuffer
	/** @brief Hash of the material identity this submesh renders with. */
	MaterialID uint32
	Parent     *VertexBlock
}

func NewSubmesh(indexCount int, materialID uint32, parent *VertexBlock) (*Submesh, error) {
	ib, err := NewIndexBuffer(indexCount)
	if err != nil {
		return nil, err
	}
	return &Submesh{
		Indices:    ib,
		MaterialID: materialID,
		Parent:     parent,
	}, nil
}

func (s *Submesh) IndexCount() int {
	return s.Indices.Count()
}

// UsedVertexCount counts the distinct vertices the index buffer actually
// references, not the index count. The scratch marks are freshly allocated
// per call so concurrent merges never share state. Out-of-range indices are
// not counted.
func (s *Submesh) UsedVertexCount() int {
	if s.Parent == nil || s.Parent.Size == 0 {
		return 0
	}
	used := make([]bool, s.Parent.Size)
	count := 0
	for i := 0; i < s.Indices.Count(); i++ {
		idx := int(s.Indices.Get(i))
		if idx >= len(used) {
			continue
		}
		if !used[idx] {
			used[idx] = true
			count++
		}
	}
	return count
}
