package core

import "sync"

const AVG_COUNT uint8 = 30

// MetricsState keeps rolling statistics about completed combine passes.
// Workers record from their own goroutines, so access is guarded.
type MetricsState struct {
	PassAVGCounter uint8
	MStimes        [AVG_COUNT]float64
	MSavg          float64
	Passes         uint64
	RecordsOut     uint64
	VerticesCopied uint64
	Warnings       uint64

	mutex sync.Mutex
}

var onceMetrics sync.Once
var metricsState *MetricsState = nil

func MetricsInitialize() error {
	onceMetrics.Do(func() {
		metricsState = &MetricsState{
			MStimes: [AVG_COUNT]float64{0},
		}
	})
	return nil
}

// MetricsRecordPass folds one completed combine pass into the rolling state.
func MetricsRecordPass(elapsedMS float64, recordsOut, verticesCopied, warnings int) {
	if metricsState == nil {
		return
	}
	metricsState.mutex.Lock()
	defer metricsState.mutex.Unlock()

	metricsState.MStimes[metricsState.PassAVGCounter] = elapsedMS
	if metricsState.PassAVGCounter == AVG_COUNT-1 {
		sum := 0.0
		for i := uint8(0); i < AVG_COUNT; i++ {
			sum += metricsState.MStimes[i]
		}
		metricsState.MSavg = sum / float64(AVG_COUNT)
	}
	metricsState.PassAVGCounter++
	metricsState.PassAVGCounter %= AVG_COUNT

	metricsState.Passes++
	metricsState.RecordsOut += uint64(recordsOut)
	metricsState.VerticesCopied += uint64(verticesCopied)
	metricsState.Warnings += uint64(warnings)
}

// MetricsPassTime returns the rolling average pass duration in milliseconds.
func MetricsPassTime() float64 {
	if metricsState == nil {
		return 0
	}
	metricsState.mutex.Lock()
	defer metricsState.mutex.Unlock()
	return metricsState.MSavg
}

// MetricsTotals returns the pass, output record, copied vertex and warning
// totals accumulated since initialization.
func MetricsTotals() (passes, recordsOut, verticesCopied, warnings uint64) {
	if metricsState == nil {
		return 0, 0, 0, 0
	}
	metricsState.mutex.Lock()
	defer metricsState.mutex.Unlock()
	return metricsState.Passes, metricsState.RecordsOut, metricsState.VerticesCopied, metricsState.Warnings
}
