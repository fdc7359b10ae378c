/*
This is an example of a host application that feeds a few native meshes to
the combiner, waits for the combined output and converts it back through
the adapter.
*/
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dannisliang/hydrogen/engine"
	"github.com/dannisliang/hydrogen/engine/adapter"
	"github.com/dannisliang/hydrogen/engine/config"
	"github.com/dannisliang/hydrogen/engine/math"
	"github.com/dannisliang/hydrogen/engine/metadata"
)

func triangleMesh(name string, offset float32) *adapter.NativeMesh {
	return &adapter.NativeMesh{
		Name: name,
		Positions: []math.Vec3{
			math.NewVec3(offset, 0, 0),
			math.NewVec3(offset+1, 0, 0),
			math.NewVec3(offset, 1, 0),
		},
		Normals: []math.Vec3{
			math.NewVec3(0, 0, 1),
			math.NewVec3(0, 0, 1),
			math.NewVec3(0, 0, 1),
		},
		UV0: []math.Vec2{
			math.NewVec2(0, 0),
			math.NewVec2(1, 0),
			math.NewVec2(0, 1),
		},
		Submeshes: []adapter.NativeSubmesh{
			{Indices: []uint32{0, 1, 2}, Topology: adapter.TOPOLOGY_TRIANGLE_LIST},
		},
	}
}

func main() {
	combiner, err := engine.New(config.Default())
	if err != nil {
		panic(err)
	}

	stone := &metadata.Material{ID: 1, Name: "stone", DiffuseColour: math.NewVec4One(), Shininess: 8}
	combiner.AddMaterial(stone)

	materials := []*metadata.Material{stone}
	for i := 0; i < 4; i++ {
		t := math.TransformFromPosition(math.NewVec3(float32(i)*2, 0, 0))
		if _, err := combiner.AddNativeMesh(triangleMesh(fmt.Sprintf("tri_%d", i), 0), materials, t.GetWorld()); err != nil {
			panic(err)
		}
	}

	done := make(chan struct{})
	combiner.Combine(metadata.JOB_PRIORITY_NORMAL, func(result *metadata.CombineResult) {
		fmt.Printf("job %d finished: %d records, %d vertices, %d warnings\n",
			result.Handle, len(result.Records), result.VerticesCopied, len(result.Warnings))
		for _, record := range result.Records {
			native, err := adapter.CreateMesh(record)
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("  %s: %d vertices, %d submeshes\n", native.Name, native.VertexCount(), len(native.Submeshes))
		}
		close(done)
	})

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// pump completion callbacks on this thread, the way a host main loop would
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			combiner.Update()
		case <-done:
			passes, records, vertices, warnings := combiner.Stats()
			fmt.Printf("passes=%d records=%d vertices=%d warnings=%d\n", passes, records, vertices, warnings)
			if err := combiner.Shutdown(); err != nil {
				panic(err)
			}
			return
		case <-sigCh:
			_ = combiner.Shutdown()
			return
		}
	}
}
