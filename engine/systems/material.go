package systems

import (
	"sync"

	"github.com/dannisliang/hydrogen/engine/metadata"
)

/**
 * @brief The registry of materials the combiner knows about, keyed by
 * material id. Insertion order is remembered so that bucket iteration is
 * deterministic; a bare map would randomize output order between runs.
 * Safe for concurrent use; combine passes read an immutable snapshot.
 */
type MaterialSystem struct {
	mutex     sync.RWMutex
	ids       []uint32
	materials map[uint32]*metadata.Material
}

func NewMaterialSystem() *MaterialSystem {
	return &MaterialSystem{
		materials: make(map[uint32]*metadata.Material),
	}
}

// Add registers a material. Duplicate ids are no-ops and return false.
func (ms *MaterialSystem) Add(material *metadata.Material) bool {
	if material == nil {
		return false
	}
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	if _, ok := ms.materials[material.ID]; ok {
		return false
	}
	ms.materials[material.ID] = material
	ms.ids = append(ms.ids, material.ID)
	return true
}

// Remove unregisters a material by id, returning whether it was present.
func (ms *MaterialSystem) Remove(id uint32) bool {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	if _, ok := ms.materials[id]; !ok {
		return false
	}
	delete(ms.materials, id)
	for i, existing := range ms.ids {
		if existing == id {
			ms.ids = append(ms.ids[:i], ms.ids[i+1:]...)
			break
		}
	}
	return true
}

func (ms *MaterialSystem) Get(id uint32) (*metadata.Material, bool) {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()
	m, ok := ms.materials[id]
	return m, ok
}

func (ms *MaterialSystem) Count() int {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()
	return len(ms.ids)
}

// Snapshot returns a copy of the registered ids in insertion order along with
// a copy of the table. Workers read the snapshot, never the live maps.
func (ms *MaterialSystem) Snapshot() ([]uint32, map[uint32]*metadata.Material) {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()
	ids := make([]uint32, len(ms.ids))
	copy(ids, ms.ids)
	materials := make(map[uint32]*metadata.Material, len(ms.materials))
	for id, m := range ms.materials {
		materials[id] = m
	}
	return ids, materials
}
