package metadata

/**
 * @brief Determines which job queue a job uses. The high-priority queue is
 * always exhausted first before processing the normal-priority queue, which
 * must also be exhausted before processing the low-priority queue.
 */
type JobPriority int

const (
	/** @brief The lowest-priority job, used for things that can wait to be done if need be. */
	JOB_PRIORITY_LOW JobPriority = iota
	/** @brief A normal-priority job. Should be used for medium-priority tasks such as background combines. */
	JOB_PRIORITY_NORMAL
	/** @brief The highest-priority job. Should be used sparingly, and only for time-critical operations. */
	JOB_PRIORITY_HIGH
)

/**
 * @brief Opaque identifier correlating a combine submission with its eventual
 * completion callback. Derived from submission time plus a random salt;
 * uniqueness is best-effort, not guaranteed under adversarial timing.
 */
type JobHandle int64

type WarningCode int

const (
	/** @brief A submesh referenced a material id with no registered material. */
	WARNING_UNMATCHED_MATERIAL WarningCode = iota
	/** @brief A submesh referenced vertex indices outside its block. */
	WARNING_INDEX_OUT_OF_RANGE
	/** @brief A submesh copy failed mid-pass; the pass continued without it. */
	WARNING_COPY_FAILURE
	/** @brief The configured vertex ceiling is too small to hold one triangle. */
	WARNING_DEGENERATE_LIMIT
)

/**
 * @brief A diagnostic accumulated during a combine pass instead of being
 * swallowed: dropped or degraded data stays observable in the result.
 */
type CombineWarning struct {
	Code       WarningCode
	MaterialID uint32
	/** @brief Index of the offending submesh within its bucket, -1 when not applicable. */
	Submesh int
	Detail  string
}

/**
 * @brief The fully materialized outcome of one combine pass, handed to the
 * caller's callback. Immutable once delivered.
 */
type CombineResult struct {
	Handle JobHandle
	/** @brief The combined output records, in bucket order. Owned by the caller. */
	Records []*MeshRecord
	/** @brief Snapshot of the material table the pass ran against. */
	Materials map[uint32]*Material
	/** @brief Diagnostics accumulated during the pass. */
	Warnings []CombineWarning
	/** @brief True when the pass was cancelled between buckets; Records holds the buckets completed so far. */
	Cancelled bool
	/** @brief Vertices written to output blocks. */
	VerticesCopied int
	/** @brief Wall time of the pass in milliseconds. */
	ElapsedMS float64
}

/** Definition for completion of a combine job. Dispatched on the host's polling thread. */
type CombineCallback func(result *CombineResult)

/**
 * @brief Describes a job to be run on the worker pool.
 */
type JobTask struct {
	Handle   JobHandle
	Priority JobPriority
	/** @brief Invoked on the worker when the job starts. Required. */
	OnStart func() (interface{}, error)
	/** @brief Invoked on the worker when OnStart succeeds. Optional. */
	OnComplete func(result interface{})
	/** @brief Invoked on the worker when OnStart fails. Optional. */
	OnFailure func(err error)
}
