package interfaces

// ProgressObserver receives a notification as each input URL's discovery
// pipeline completes. The orchestrator serializes calls, so implementations
// may write to shared sinks without their own locking. Observers must not
// block for long; they run on the discovery workers' critical path.
type ProgressObserver interface {
	// URLProcessed is called exactly once per input URL, in completion order.
	URLProcessed(url string, succeeded bool, feedCount int)
}

// ProgressObserverFunc adapts a function to the ProgressObserver interface
type ProgressObserverFunc func(url string, succeeded bool, feedCount int)

// URLProcessed implements ProgressObserver
func (f ProgressObserverFunc) URLProcessed(url string, succeeded bool, feedCount int) {
	f(url, succeeded, feedCount)
}
