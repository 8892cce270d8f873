// ABOUTME: DiscoveryStatus records the per-URL outcome of a discovery run
// ABOUTME: Statuses are created once per input URL and never mutated afterwards

package domain

// DiscoveryOutcome indicates whether a URL's discovery pipeline found any feeds
type DiscoveryOutcome int

const (
	// OutcomeSucceeded means at least one feed was confirmed for the URL
	OutcomeSucceeded DiscoveryOutcome = iota

	// OutcomeFailed means the pipeline terminated with zero feeds
	OutcomeFailed
)

// String returns the lowercase name of the outcome
func (o DiscoveryOutcome) String() string {
	if o == OutcomeSucceeded {
		return "succeeded"
	}
	return "failed"
}

// DiscoveryStatus is the terminal report for one input URL
type DiscoveryStatus struct {
	// URL is the input URL as given by the caller
	URL string

	// Outcome is the terminal state of the URL's pipeline
	Outcome DiscoveryOutcome

	// Error describes why the pipeline failed; empty on success
	Error string
}

// Succeeded reports whether the pipeline found at least one feed
func (s DiscoveryStatus) Succeeded() bool {
	return s.Outcome == OutcomeSucceeded
}
