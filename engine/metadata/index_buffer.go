package metadata

import (
	"github.com/dannisliang/hydrogen/engine/core"
)

/**
 * @brief A fixed-capacity triangle-list index buffer. The capacity must be a
 * positive multiple of 3; anything else fails construction.
 */
type IndexBuffer struct {
	data []uint32
}

func NewIndexBuffer(count int) (*IndexBuffer, error) {
	if count <= 0 || count%3 != 0 {
		core.LogError("index buffer rejected, count %d is not a positive multiple of 3", count)
		return nil, core.ErrNonTriangleIndexCount
	}
	return &IndexBuffer{
		data: make([]uint32, count),
	}, nil
}

func (b *IndexBuffer) Count() int {
	return len(b.data)
}

func (b *IndexBuffer) Get(index int) uint32 {
	if index < 0 || index >= len(b.data) {
		core.LogWarn("index buffer read out of range (index=%d capacity=%d)", index, len(b.data))
		return 0
	}
	return b.data[index]
}

func (b *IndexBuffer) Set(index int, value uint32) bool {
	if index < 0 || index >= len(b.data) {
		core.LogWarn("index buffer write out of range (index=%d capacity=%d)", index, len(b.data))
		return false
	}
	b.data[index] = value
	return true
}

// CopyFrom bulk-copies from src, truncated or matched to this buffer's size.
func (b *IndexBuffer) CopyFrom(src []uint32) {
	copy(b.data, src)
}

// ToArray returns a copy of the indices.
func (b *IndexBuffer) ToArray() []uint32 {
	out := make([]uint32, len(b.data))
	copy(out, b.data)
	return out
}
