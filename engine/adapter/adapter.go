package adapter

import (
	"fmt"

	"github.com/dannisliang/hydrogen/engine/core"
	"github.com/dannisliang/hydrogen/engine/math"
	"github.com/dannisliang/hydrogen/engine/metadata"
)

/**
 * @brief Translates a native mesh, its material list and its world transform
 * into a mesh record. Pure translation, no side effects on the inputs.
 *
 * A native submesh whose index exceeds the material list is clamped to the
 * LAST material; a native submesh that is not a triangle list is reported
 * and skipped, never merged.
 */
func CreateDescription(native *NativeMesh, materials []*metadata.Material, transform math.Mat4) (*metadata.MeshRecord, error) {
	if native == nil {
		return nil, fmt.Errorf("cannot create a description from a nil native mesh")
	}
	if len(materials) == 0 {
		return nil, fmt.Errorf("cannot create a description for mesh '%s' without materials", native.Name)
	}

	record := metadata.NewMeshRecord(native.VertexCount())
	record.Name = native.Name
	record.Block.WorldTransform = transform

	record.Block.Positions.CopyFrom(native.Positions)
	if len(native.Normals) > 0 {
		record.Block.Normals.CopyFrom(native.Normals)
	}
	if len(native.Tangents) > 0 {
		record.Block.Tangents.CopyFrom(native.Tangents)
	}
	if len(native.Colors) > 0 {
		record.Block.Colors.CopyFrom(native.Colors)
	}
	if len(native.UV0) > 0 {
		record.Block.UV0.CopyFrom(native.UV0)
	}
	if len(native.UV1) > 0 {
		record.Block.UV1.CopyFrom(native.UV1)
	}
	if len(native.UV2) > 0 {
		record.Block.UV2.CopyFrom(native.UV2)
	}

	for i, nsm := range native.Submeshes {
		if nsm.Topology != TOPOLOGY_TRIANGLE_LIST {
			core.LogError("submesh %d of mesh '%s': %s", i, native.Name, core.ErrUnsupportedTopology.Error())
			continue
		}
		material := materials[math.Clamp(i, 0, len(materials)-1)]
		sm, err := record.AddSubmesh(len(nsm.Indices), material.ID)
		if err != nil {
			core.LogError("submesh %d of mesh '%s' rejected: %s", i, native.Name, err.Error())
			continue
		}
		sm.Indices.CopyFrom(nsm.Indices)
	}

	return record, nil
}

/**
 * @brief Inverse translation: populates a native mesh from a mesh record.
 * Generated meshes follow the MeshCombiner_<n> naming convention.
 */
func CreateMesh(record *metadata.MeshRecord) (*NativeMesh, error) {
	if record == nil || record.Block == nil {
		return nil, fmt.Errorf("cannot create a native mesh from a nil record")
	}

	native := &NativeMesh{
		Name:      fmt.Sprintf("MeshCombiner_%d", math.RandomInRange(0, 999)),
		Positions: record.Block.Positions.ToArray(),
	}
	if record.Block.Normals.HasValues() {
		native.Normals = record.Block.Normals.ToArray()
	}
	if record.Block.Tangents.HasValues() {
		native.Tangents = record.Block.Tangents.ToArray()
	}
	if record.Block.Colors.HasValues() {
		native.Colors = record.Block.Colors.ToArray()
	}
	if record.Block.UV0.HasValues() {
		native.UV0 = record.Block.UV0.ToArray()
	}
	if record.Block.UV1.HasValues() {
		native.UV1 = record.Block.UV1.ToArray()
	}
	if record.Block.UV2.HasValues() {
		native.UV2 = record.Block.UV2.ToArray()
	}

	for i, sm := range record.Submeshes {
		if sm.IndexCount()%3 != 0 {
			core.LogError("submesh %d of record '%s': %s", i, record.Name, core.ErrUnsupportedTopology.Error())
			continue
		}
		native.Submeshes = append(native.Submeshes, NativeSubmesh{
			Indices:  sm.Indices.ToArray(),
			Topology: TOPOLOGY_TRIANGLE_LIST,
		})
	}

	return native, nil
}
