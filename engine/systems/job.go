package systems

import (
	"fmt"
	"sync"

	"github.com/dannisliang/hydrogen/engine/core"
	"github.com/dannisliang/hydrogen/engine/metadata"
)

type JobSystem struct {
	numWorkers int
	// One queue per priority; workers drain high before normal before low.
	queues [3]chan metadata.JobTask
	quit   chan struct{}
	wg     sync.WaitGroup
}

var ErrNoWorkers = fmt.Errorf("attempting to create worker pool with less than 1 worker")
var ErrNegativeChannelSize = fmt.Errorf("attempting to create worker pool with a negative channel size")

func NewJobSystem(numWorkers int, channelSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}

	js := &JobSystem{
		numWorkers: numWorkers,
		quit:       make(chan struct{}),
	}
	for i := range js.queues {
		js.queues[i] = make(chan metadata.JobTask, channelSize)
	}

	js.start()

	return js, nil
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go js.worker()
	}
}

func (js *JobSystem) worker() {
	defer js.wg.Done()
	for {
		// Exhaust the high-priority queue first, then normal, then block
		// on whichever queue delivers next.
		select {
		case jt := <-js.queues[metadata.JOB_PRIORITY_HIGH]:
			js.run(jt)
			continue
		default:
		}
		select {
		case jt := <-js.queues[metadata.JOB_PRIORITY_HIGH]:
			js.run(jt)
			continue
		case jt := <-js.queues[metadata.JOB_PRIORITY_NORMAL]:
			js.run(jt)
			continue
		default:
		}
		select {
		case jt := <-js.queues[metadata.JOB_PRIORITY_HIGH]:
			js.run(jt)
		case jt := <-js.queues[metadata.JOB_PRIORITY_NORMAL]:
			js.run(jt)
		case jt := <-js.queues[metadata.JOB_PRIORITY_LOW]:
			js.run(jt)
		case <-js.quit:
			return
		}
	}
}

func (js *JobSystem) run(jt metadata.JobTask) {
	result, err := jt.OnStart()
	if err != nil {
		core.LogError("job %d failed: %s", jt.Handle, err.Error())
		if jt.OnFailure != nil {
			jt.OnFailure(err)
		}
		return
	}
	if jt.OnComplete != nil {
		jt.OnComplete(result)
	}
}

/**
 * @brief Shuts the job system down. Queued but unstarted jobs are dropped.
 */
func (js *JobSystem) Shutdown() error {
	close(js.quit)
	js.wg.Wait()
	return nil
}

// AddWorkNonBlocking adds work to the pool and returns immediately, even when
// the target queue is full.
func (js *JobSystem) AddWorkNonBlocking(jt metadata.JobTask) {
	go js.Submit(jt)
}

/**
 * @brief Submits the provided job to be queued for execution at its priority.
 * Blocks while the queue is full.
 */
func (js *JobSystem) Submit(jt metadata.JobTask) {
	p := jt.Priority
	if p < metadata.JOB_PRIORITY_LOW || p > metadata.JOB_PRIORITY_HIGH {
		p = metadata.JOB_PRIORITY_NORMAL
	}
	js.queues[p] <- jt
}
