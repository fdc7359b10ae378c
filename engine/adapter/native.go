package adapter

import (
	"github.com/dannisliang/hydrogen/engine/math"
)

/** @brief The primitive topology of one native submesh. */
type Topology int

const (
	TOPOLOGY_TRIANGLE_LIST Topology = iota
	TOPOLOGY_TRIANGLE_STRIP
	TOPOLOGY_LINE_LIST
	TOPOLOGY_POINT_LIST
)

type NativeSubmesh struct {
	Indices  []uint32
	Topology Topology
}

/**
 * @brief The host engine's view of a mesh: flat attribute arrays plus
 * per-submesh index lists. This is the only representation the adapter
 * touches; everything past the adapter works on mesh records.
 */
type NativeMesh struct {
	Name      string
	Positions []math.Vec3
	Normals   []math.Vec3
	Tangents  []math.Vec4
	Colors    []math.Vec4
	UV0       []math.Vec2
	UV1       []math.Vec2
	UV2       []math.Vec2
	Submeshes []NativeSubmesh
}

func (nm *NativeMesh) VertexCount() int {
	return len(nm.Positions)
}
