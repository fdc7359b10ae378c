package metadata

import (
	"github.com/dannisliang/hydrogen/engine/math"
)

/**
 * @brief The vertex pool of one mesh record: parallel attribute buffers all
 * sized to the same vertex count, plus the world transform that maps the
 * block's local-space data into the shared combining space. Created once at
 * a fixed vertex count and never resized.
 */
type VertexBlock struct {
	/** @brief The vertex count every attribute buffer is sized to. */
	Size int

	Positions *AttributeBuffer[math.Vec3]
	Normals   *AttributeBuffer[math.Vec3]
	/** @brief Tangents; the w component carries handedness. */
	Tangents *AttributeBuffer[math.Vec4]
	Colors   *AttributeBuffer[math.Vec4]
	UV0      *AttributeBuffer[math.Vec2]
	UV1      *AttributeBuffer[math.Vec2]
	UV2      *AttributeBuffer[math.Vec2]

	/** @brief The world transform. Defaults to identity. */
	WorldTransform math.Mat4
}

func NewVertexBlock(size int) *VertexBlock {
	if size < 0 {
		size = 0
	}
	return &VertexBlock{
		Size:           size,
		Positions:      NewAttributeBuffer[math.Vec3](size),
		Normals:        NewAttributeBuffer[math.Vec3](size),
		Tangents:       NewAttributeBuffer[math.Vec4](size),
		Colors:         NewAttributeBuffer[math.Vec4](size),
		UV0:            NewAttributeBuffer[math.Vec2](size),
		UV1:            NewAttributeBuffer[math.Vec2](size),
		UV2:            NewAttributeBuffer[math.Vec2](size),
		WorldTransform: math.NewMat4Identity(),
	}
}
