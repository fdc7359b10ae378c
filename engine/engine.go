package engine

import (
	"github.com/dannisliang/hydrogen/engine/adapter"
	"github.com/dannisliang/hydrogen/engine/config"
	"github.com/dannisliang/hydrogen/engine/core"
	"github.com/dannisliang/hydrogen/engine/math"
	"github.com/dannisliang/hydrogen/engine/metadata"
	"github.com/dannisliang/hydrogen/engine/systems"
)

/**
 * @brief The public face of the mesh-combining engine. The host registers
 * materials and mesh records, submits combine jobs and pumps Update from the
 * thread it wants completion callbacks delivered on. The combiner itself
 * never touches a GPU resource; outputs are plain attribute and index
 * buffers for a thin host adapter to upload.
 */
type Combiner struct {
	config         *config.Config
	jobSystem      *systems.JobSystem
	materialSystem *systems.MaterialSystem
	combineSystem  *systems.CombineSystem
}

func New(cfg *config.Config) (*Combiner, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	core.LogSetLevel(cfg.LogLevel)

	if err := core.MetricsInitialize(); err != nil {
		return nil, err
	}

	js, err := systems.NewJobSystem(cfg.Workers, cfg.QueueSize)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	ms := systems.NewMaterialSystem()

	cs, err := systems.NewCombineSystem(cfg.VertexLimit, js, ms)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	return &Combiner{
		config:         cfg,
		jobSystem:      js,
		materialSystem: ms,
		combineSystem:  cs,
	}, nil
}

// AddMesh appends a record to the pending combine inputs. Returns false when
// the same record was already added.
func (c *Combiner) AddMesh(record *metadata.MeshRecord) bool {
	return c.combineSystem.AddMesh(record)
}

// AddNativeMesh translates a native mesh through the adapter and appends the
// resulting record, which is also returned so the caller can remove it later.
func (c *Combiner) AddNativeMesh(native *adapter.NativeMesh, materials []*metadata.Material, transform math.Mat4) (*metadata.MeshRecord, error) {
	record, err := adapter.CreateDescription(native, materials, transform)
	if err != nil {
		return nil, err
	}
	c.combineSystem.AddMesh(record)
	return record, nil
}

// RemoveMesh removes a pending record by identity.
func (c *Combiner) RemoveMesh(record *metadata.MeshRecord) bool {
	return c.combineSystem.RemoveMesh(record)
}

// AddMaterial registers a material. Returns false when the id is already
// registered.
func (c *Combiner) AddMaterial(material *metadata.Material) bool {
	return c.materialSystem.Add(material)
}

// RemoveMaterial unregisters a material by id.
func (c *Combiner) RemoveMaterial(id uint32) bool {
	return c.materialSystem.Remove(id)
}

// Combine schedules one combine pass and returns its handle immediately.
// onFinished fires from Update with the fully materialized result.
func (c *Combiner) Combine(priority metadata.JobPriority, onFinished metadata.CombineCallback) metadata.JobHandle {
	return c.combineSystem.Combine(priority, onFinished)
}

// Cancel cooperatively cancels an in-flight pass between buckets.
func (c *Combiner) Cancel(handle metadata.JobHandle) bool {
	return c.combineSystem.Cancel(handle)
}

// Update dispatches finished combine results on the calling thread. Should
// happen once an update cycle of the host.
func (c *Combiner) Update() {
	c.combineSystem.Update()
}

// Stats returns the totals accumulated across combine passes.
func (c *Combiner) Stats() (passes, recordsOut, verticesCopied, warnings uint64) {
	return core.MetricsTotals()
}

func (c *Combiner) Shutdown() error {
	return c.jobSystem.Shutdown()
}
