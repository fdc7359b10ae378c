package systems

import (
	"fmt"
	"sync"
	"time"

	"github.com/dannisliang/hydrogen/engine/containers"
	"github.com/dannisliang/hydrogen/engine/core"
	"github.com/dannisliang/hydrogen/engine/math"
	"github.com/dannisliang/hydrogen/engine/metadata"
)

// The max number of finished combine results that can wait for dispatch at once.
const MAX_JOB_RESULTS int = 512

/**
 * @brief Groups every submesh sharing one material id for one combine pass.
 * Built fresh per pass and discarded after producing outputs.
 */
type materialBucket struct {
	materialID uint32
	submeshes  []*metadata.Submesh
}

type pendingResult struct {
	result     *metadata.CombineResult
	onFinished metadata.CombineCallback
}

/**
 * @brief Orchestrates combine passes: partitions pending submeshes into
 * material buckets, merges each bucket under the vertex ceiling on a worker
 * and parks finished results until the host polls Update on its own thread.
 */
type CombineSystem struct {
	vertexLimit    int
	jobSystem      *JobSystem
	materialSystem *MaterialSystem

	meshMutex sync.Mutex
	pending   []*metadata.MeshRecord

	resultMutex sync.Mutex
	results     *containers.RingQueue[pendingResult]

	cancelMutex sync.Mutex
	cancels     map[metadata.JobHandle]bool
}

func NewCombineSystem(vertexLimit int, js *JobSystem, ms *MaterialSystem) (*CombineSystem, error) {
	if vertexLimit < 4 {
		return nil, fmt.Errorf("vertex limit %d cannot hold a single triangle", vertexLimit)
	}
	if js == nil || ms == nil {
		return nil, fmt.Errorf("combine system requires a job system and a material system")
	}
	return &CombineSystem{
		vertexLimit:    vertexLimit,
		jobSystem:      js,
		materialSystem: ms,
		results:        containers.NewRingQueue[pendingResult](MAX_JOB_RESULTS),
		cancels:        make(map[metadata.JobHandle]bool),
	}, nil
}

// AddMesh appends a record to the pending inputs. Returns false when a record
// with the same identity was already added.
func (cs *CombineSystem) AddMesh(record *metadata.MeshRecord) bool {
	if record == nil {
		return false
	}
	cs.meshMutex.Lock()
	defer cs.meshMutex.Unlock()
	for _, existing := range cs.pending {
		if existing.ID == record.ID {
			return false
		}
	}
	cs.pending = append(cs.pending, record)
	return true
}

// RemoveMesh removes a previously added record by identity, returning whether
// it was found.
func (cs *CombineSystem) RemoveMesh(record *metadata.MeshRecord) bool {
	if record == nil {
		return false
	}
	cs.meshMutex.Lock()
	defer cs.meshMutex.Unlock()
	for i, existing := range cs.pending {
		if existing.ID == record.ID {
			cs.pending = append(cs.pending[:i], cs.pending[i+1:]...)
			return true
		}
	}
	return false
}

func (cs *CombineSystem) PendingCount() int {
	cs.meshMutex.Lock()
	defer cs.meshMutex.Unlock()
	return len(cs.pending)
}

/**
 * @brief Schedules one combine pass at the given priority and returns its
 * handle immediately. The pending records and the material table are
 * snapshotted here, on the calling thread, so the worker never reads live
 * collections. onFinished fires on whatever thread pumps Update.
 */
func (cs *CombineSystem) Combine(priority metadata.JobPriority, onFinished metadata.CombineCallback) metadata.JobHandle {
	handle := metadata.JobHandle(time.Now().UnixNano() + int64(math.RandomInRange(0, 0x7FFF)))

	cs.meshMutex.Lock()
	records := make([]*metadata.MeshRecord, len(cs.pending))
	copy(records, cs.pending)
	cs.meshMutex.Unlock()

	ids, materials := cs.materialSystem.Snapshot()

	cs.cancelMutex.Lock()
	cs.cancels[handle] = false
	cs.cancelMutex.Unlock()

	cs.jobSystem.AddWorkNonBlocking(metadata.JobTask{
		Handle:   handle,
		Priority: priority,
		OnStart: func() (interface{}, error) {
			return cs.runPass(handle, records, ids, materials), nil
		},
		OnComplete: func(result interface{}) {
			cs.finish(result.(*metadata.CombineResult), onFinished)
		},
		OnFailure: func(err error) {
			cs.finish(&metadata.CombineResult{
				Handle:    handle,
				Materials: materials,
				Warnings: []metadata.CombineWarning{{
					Code:    metadata.WARNING_COPY_FAILURE,
					Submesh: -1,
					Detail:  err.Error(),
				}},
			}, onFinished)
		},
	})

	return handle
}

// Cancel cooperatively cancels an in-flight pass. The check happens between
// buckets only; the pass still completes and delivers the buckets finished so
// far with the Cancelled flag set. Returns false for unknown handles.
func (cs *CombineSystem) Cancel(handle metadata.JobHandle) bool {
	cs.cancelMutex.Lock()
	defer cs.cancelMutex.Unlock()
	if _, ok := cs.cancels[handle]; !ok {
		return false
	}
	cs.cancels[handle] = true
	return true
}

func (cs *CombineSystem) isCancelled(handle metadata.JobHandle) bool {
	cs.cancelMutex.Lock()
	defer cs.cancelMutex.Unlock()
	return cs.cancels[handle]
}

func (cs *CombineSystem) finish(result *metadata.CombineResult, onFinished metadata.CombineCallback) {
	cs.cancelMutex.Lock()
	delete(cs.cancels, result.Handle)
	cs.cancelMutex.Unlock()

	core.MetricsRecordPass(result.ElapsedMS, len(result.Records), result.VerticesCopied, len(result.Warnings))

	cs.resultMutex.Lock()
	err := cs.results.Enqueue(pendingResult{result: result, onFinished: onFinished})
	cs.resultMutex.Unlock()
	if err != nil {
		core.LogError("combine result mailbox full, dropping result for job %d; is the host pumping Update?", result.Handle)
	}
}

/**
 * @brief Dispatches every parked combine result on the calling thread.
 * The host pumps this from whichever thread it wants callbacks delivered on,
 * typically its main thread.
 */
func (cs *CombineSystem) Update() {
	for {
		cs.resultMutex.Lock()
		pr, err := cs.results.Dequeue()
		cs.resultMutex.Unlock()
		if err != nil {
			return
		}
		if pr.onFinished != nil {
			pr.onFinished(pr.result)
		}
	}
}

// runPass executes one whole combine pass on the worker goroutine. It never
// fails outright; degraded data is reported through the result's warnings.
func (cs *CombineSystem) runPass(handle metadata.JobHandle, records []*metadata.MeshRecord, ids []uint32, materials map[uint32]*metadata.Material) *metadata.CombineResult {
	clock := core.NewClock()
	clock.Start()

	result := &metadata.CombineResult{
		Handle:    handle,
		Materials: materials,
	}

	// Partition: one bucket per registered material, in table insertion
	// order. A submesh whose material is unregistered is dropped, but the
	// drop stays observable.
	buckets := make([]*materialBucket, 0, len(ids))
	byID := make(map[uint32]*materialBucket, len(ids))
	for _, id := range ids {
		b := &materialBucket{materialID: id}
		buckets = append(buckets, b)
		byID[id] = b
	}
	for _, record := range records {
		for _, sm := range record.Submeshes {
			b, ok := byID[sm.MaterialID]
			if !ok {
				core.LogWarn("submesh references unregistered material %d, dropped from combine", sm.MaterialID)
				result.Warnings = append(result.Warnings, metadata.CombineWarning{
					Code:       metadata.WARNING_UNMATCHED_MATERIAL,
					MaterialID: sm.MaterialID,
					Submesh:    -1,
				})
				continue
			}
			b.submeshes = append(b.submeshes, sm)
		}
	}

	for _, bucket := range buckets {
		if cs.isCancelled(handle) {
			result.Cancelled = true
			core.LogInfo("combine job %d cancelled after %d output records", handle, len(result.Records))
			break
		}
		outputs, copied, warnings := cs.mergeBucket(bucket)
		result.Records = append(result.Records, outputs...)
		result.VerticesCopied += copied
		result.Warnings = append(result.Warnings, warnings...)
	}

	clock.Update()
	result.ElapsedMS = clock.ElapsedMS()
	core.LogDebug("combine job %d produced %d records from %d input records in %.2fms",
		handle, len(result.Records), len(records), result.ElapsedMS)
	return result
}

/**
 * @brief Merges one bucket into as few output records as the vertex ceiling
 * allows. The vertex budget is the sum of the raw index counts; it is chunked
 * into groups no larger than vertexLimit-1 rounded down to a multiple of 3,
 * so chunks tile the budget exactly and triangles never straddle outputs.
 * Every output gets a single submesh with the identity index permutation.
 */
func (cs *CombineSystem) mergeBucket(bucket *materialBucket) ([]*metadata.MeshRecord, int, []metadata.CombineWarning) {
	var warnings []metadata.CombineWarning

	budget := 0
	for _, sm := range bucket.submeshes {
		budget += sm.IndexCount()
	}
	if budget == 0 {
		return nil, 0, nil
	}

	// One less than the platform ceiling. The margin is intentional.
	groupMax := cs.vertexLimit - 1
	groupMax -= groupMax % 3
	if groupMax < 3 {
		core.LogError("vertex limit %d leaves no room for a triangle, skipping material %d", cs.vertexLimit, bucket.materialID)
		return nil, 0, append(warnings, metadata.CombineWarning{
			Code:       metadata.WARNING_DEGENERATE_LIMIT,
			MaterialID: bucket.materialID,
			Submesh:    -1,
		})
	}

	outputs := make([]*metadata.MeshRecord, 0, budget/groupMax+1)
	for remaining := budget; remaining > 0; {
		size := remaining
		if size > groupMax {
			size = groupMax
		}
		record := metadata.NewMeshRecord(size)
		record.Name = fmt.Sprintf("combined_%d_%d", bucket.materialID, len(outputs))
		sm, err := record.AddSubmesh(size, bucket.materialID)
		if err != nil {
			// unreachable: budget and groupMax are both multiples of 3
			core.LogError("output submesh allocation failed for material %d: %s", bucket.materialID, err.Error())
			return nil, 0, append(warnings, metadata.CombineWarning{
				Code:       metadata.WARNING_COPY_FAILURE,
				MaterialID: bucket.materialID,
				Submesh:    -1,
				Detail:     err.Error(),
			})
		}
		// The merge flattens to one dense vertex stream, so the index
		// buffer is the identity permutation.
		for i := 0; i < size; i++ {
			sm.Indices.Set(i, uint32(i))
		}
		outputs = append(outputs, record)
		remaining -= size
	}

	st := &copyState{outputs: outputs}
	for si, sm := range bucket.submeshes {
		st.copySubmesh(si, sm, bucket.materialID)
	}
	return outputs, st.copied, append(warnings, st.warnings...)
}

type copyState struct {
	outputs  []*metadata.MeshRecord
	outIndex int
	cursor   int
	copied   int
	warnings []metadata.CombineWarning
}

// copySubmesh walks one input submesh and writes its referenced vertices to
// the output cursor, transforming positions by the source world matrix and
// normals/tangents by its inverse-transpose. A failure in one submesh is
// logged with its context and the pass continues with the next.
func (st *copyState) copySubmesh(si int, sm *metadata.Submesh, materialID uint32) {
	defer func() {
		if r := recover(); r != nil {
			core.LogError("copy pass failed for submesh %d of material %d (outputs=%d cursor=%d): %v",
				si, materialID, len(st.outputs), st.cursor, r)
			st.warnings = append(st.warnings, metadata.CombineWarning{
				Code:       metadata.WARNING_COPY_FAILURE,
				MaterialID: materialID,
				Submesh:    si,
				Detail:     fmt.Sprintf("%v", r),
			})
		}
	}()

	src := sm.Parent
	world := src.WorldTransform
	// Inverse-transpose keeps normals correct under non-uniform scale.
	normalMatrix := math.NewMat4Transposed(world.Inverse())

	hasNormals := src.Normals.HasValues()
	hasTangents := src.Tangents.HasValues()
	hasColors := src.Colors.HasValues()
	hasUV0 := src.UV0.HasValues()
	hasUV1 := src.UV1.HasValues()
	hasUV2 := src.UV2.HasValues()

	invalid := 0
	for i := 0; i < sm.IndexCount(); i++ {
		if st.cursor >= st.outputs[st.outIndex].VertexCount() {
			st.outIndex++
			st.cursor = 0
		}
		out := st.outputs[st.outIndex].Block

		idx := int(sm.Indices.Get(i))
		if idx < 0 || idx >= src.Size {
			// the cursor still advances so later submeshes stay aligned
			// with the sizing pass; the slot is left zeroed
			invalid++
			st.cursor++
			continue
		}

		out.Positions.Set(st.cursor, src.Positions.Get(idx).Transform(world))
		if hasNormals {
			out.Normals.Set(st.cursor, src.Normals.Get(idx).TransformDirection(normalMatrix).Normalize())
		}
		if hasTangents {
			t := src.Tangents.Get(idx)
			xyz := t.ToVec3().TransformDirection(normalMatrix)
			// w carries handedness and crosses the transform untouched
			out.Tangents.Set(st.cursor, xyz.ToVec4(t.W))
		}
		if hasColors {
			out.Colors.Set(st.cursor, src.Colors.Get(idx))
		}
		if hasUV0 {
			out.UV0.Set(st.cursor, src.UV0.Get(idx))
		}
		if hasUV1 {
			out.UV1.Set(st.cursor, src.UV1.Get(idx))
		}
		if hasUV2 {
			out.UV2.Set(st.cursor, src.UV2.Get(idx))
		}

		st.cursor++
		st.copied++
	}

	if invalid > 0 {
		core.LogWarn("submesh %d of material %d referenced %d out-of-range indices", si, materialID, invalid)
		st.warnings = append(st.warnings, metadata.CombineWarning{
			Code:       metadata.WARNING_INDEX_OUT_OF_RANGE,
			MaterialID: materialID,
			Submesh:    si,
			Detail:     fmt.Sprintf("%d indices out of range", invalid),
		})
	}
}
