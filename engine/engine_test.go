package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/dannisliang/hydrogen/engine/adapter"
	"github.com/dannisliang/hydrogen/engine/config"
	"github.com/dannisliang/hydrogen/engine/math"
	"github.com/dannisliang/hydrogen/engine/metadata"
)

func newTestCombiner(t *testing.T) *Combiner {
	t.Helper()
	c, err := New(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = c.Shutdown() })
	return c
}

func nativeTriangle(name string) *adapter.NativeMesh {
	return &adapter.NativeMesh{
		Name: name,
		Positions: []math.Vec3{
			math.NewVec3(0, 0, 0),
			math.NewVec3(1, 0, 0),
			math.NewVec3(0, 1, 0),
		},
		Submeshes: []adapter.NativeSubmesh{
			{Indices: []uint32{0, 1, 2}, Topology: adapter.TOPOLOGY_TRIANGLE_LIST},
		},
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(&config.Config{VertexLimit: 2, Workers: 1}); err == nil {
		t.Error("New() accepted a vertex limit that cannot hold a triangle")
	}
	if _, err := New(&config.Config{VertexLimit: 65535, Workers: 0}); err == nil {
		t.Error("New() accepted zero workers")
	}
}

func TestAddMaterialTwice(t *testing.T) {
	c := newTestCombiner(t)
	m := &metadata.Material{ID: 5, Name: "wood"}

	if !c.AddMaterial(m) {
		t.Error("AddMaterial() = false on first add, want true")
	}
	if c.AddMaterial(m) {
		t.Error("AddMaterial() = true on second add, want false")
	}
	if !c.RemoveMaterial(5) {
		t.Error("RemoveMaterial() = false, want true")
	}
	if !c.AddMaterial(m) {
		t.Error("AddMaterial() = false after removal, want true")
	}
}

func TestCombineEndToEnd(t *testing.T) {
	c := newTestCombiner(t)

	stone := &metadata.Material{ID: 1, Name: "stone"}
	c.AddMaterial(stone)
	materials := []*metadata.Material{stone}

	for _, name := range []string{"a", "b"} {
		if _, err := c.AddNativeMesh(nativeTriangle(name), materials, math.NewMat4Identity()); err != nil {
			t.Fatal(err)
		}
	}

	var delivered atomic.Bool
	var got *metadata.CombineResult
	handle := c.Combine(metadata.JOB_PRIORITY_NORMAL, func(result *metadata.CombineResult) {
		got = result
		delivered.Store(true)
	})

	deadline := time.Now().Add(5 * time.Second)
	for !delivered.Load() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for the combine callback")
		}
		c.Update()
		time.Sleep(time.Millisecond)
	}

	if got.Handle != handle {
		t.Errorf("result handle = %d, want %d", got.Handle, handle)
	}
	if len(got.Records) != 1 {
		t.Fatalf("combine produced %d records, want 1", len(got.Records))
	}
	out := got.Records[0]
	if out.VertexCount() != 6 {
		t.Errorf("output vertex count = %d, want 6", out.VertexCount())
	}

	native, err := adapter.CreateMesh(out)
	if err != nil {
		t.Fatal(err)
	}
	if native.VertexCount() != 6 || len(native.Submeshes) != 1 {
		t.Errorf("adapter output: %d vertices, %d submeshes, want 6 and 1",
			native.VertexCount(), len(native.Submeshes))
	}

	passes, records, vertices, _ := c.Stats()
	if passes == 0 || records == 0 || vertices == 0 {
		t.Errorf("Stats() = %d passes, %d records, %d vertices, want nonzero", passes, records, vertices)
	}
}

func TestRemoveMeshExcludesFromCombine(t *testing.T) {
	c := newTestCombiner(t)
	stone := &metadata.Material{ID: 1}
	c.AddMaterial(stone)

	record, err := c.AddNativeMesh(nativeTriangle("gone"), []*metadata.Material{stone}, math.NewMat4Identity())
	if err != nil {
		t.Fatal(err)
	}
	if !c.RemoveMesh(record) {
		t.Fatal("RemoveMesh() = false for a pending record")
	}

	var delivered atomic.Bool
	var got *metadata.CombineResult
	c.Combine(metadata.JOB_PRIORITY_NORMAL, func(result *metadata.CombineResult) {
		got = result
		delivered.Store(true)
	})

	deadline := time.Now().Add(5 * time.Second)
	for !delivered.Load() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for the combine callback")
		}
		c.Update()
		time.Sleep(time.Millisecond)
	}

	if len(got.Records) != 0 {
		t.Errorf("combine produced %d records from an emptied input set, want 0", len(got.Records))
	}
}
