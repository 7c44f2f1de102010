package ports

// WorkerPool executes arbitrary unit-of-work tasks on a bounded set of
// long-lived workers. Submission is fire-and-forget: completion, success,
// and failure are not reported back to the submitter, and no ordering is
// guaranteed between tasks.
type WorkerPool interface {
	// Execute enqueues task for whichever worker becomes free first and
	// returns immediately. The queue is unbounded; submitters are never
	// blocked or given backpressure.
	Execute(task func())

	// Workers returns the number of workers in the pool.
	Workers() int

	// Shutdown stops intake, lets the workers drain the queue, and joins
	// them. It is safe to invoke more than once; only the first call has
	// an effect.
	Shutdown()
}
