package metadata

import (
	"github.com/dannisliang/hydrogen/engine/core"
)

/**
 * @brief A fixed-capacity, typed vertex attribute array. Tracks whether any
 * value has ever been written so empty channels can be skipped during merge.
 * Capacity never changes after construction.
 */
type AttributeBuffer[T any] struct {
	data      []T
	hasValues bool
}

func NewAttributeBuffer[T any](size int) *AttributeBuffer[T] {
	if size < 0 {
		size = 0
	}
	return &AttributeBuffer[T]{
		data: make([]T, size),
	}
}

func (b *AttributeBuffer[T]) Size() int {
	return len(b.data)
}

// HasValues reports whether any value has ever been written. It never
// reverts to false once set.
func (b *AttributeBuffer[T]) HasValues() bool {
	return b.hasValues
}

func (b *AttributeBuffer[T]) Get(index int) T {
	if index < 0 || index >= len(b.data) {
		var zero T
		core.LogWarn("attribute buffer read out of range (index=%d capacity=%d)", index, len(b.data))
		return zero
	}
	return b.data[index]
}

// Set writes a single element. Out-of-range writes are skipped, not fatal.
func (b *AttributeBuffer[T]) Set(index int, value T) bool {
	if index < 0 || index >= len(b.data) {
		core.LogWarn("attribute buffer write out of range (index=%d capacity=%d)", index, len(b.data))
		return false
	}
	b.data[index] = value
	b.hasValues = true
	return true
}

// CopyFrom bulk-copies from src, truncated or matched to this buffer's size.
func (b *AttributeBuffer[T]) CopyFrom(src []T) {
	n := copy(b.data, src)
	if n > 0 {
		b.hasValues = true
	}
}

// ToArray returns a copy of the contents, or nil when the capacity is zero.
func (b *AttributeBuffer[T]) ToArray() []T {
	if len(b.data) == 0 {
		return nil
	}
	out := make([]T, len(b.data))
	copy(out, b.data)
	return out
}
