// Package analysis turns a time-ordered visit sequence into dwell-time
// statistics: it infers a duration for each visit from the gap to its
// successor, then aggregates durations by domain and calendar month.
//
// The successor relationship is global across the whole history, not scoped
// to a domain: navigating from site A to site B cuts A's credited time at
// the moment of navigation even if A's content (a video, say) keeps playing.
// Idle gaps are likewise credited in full unless a cap is configured. Both
// are known limitations of inferring durations from a visit log that never
// recorded them.
package analysis

import (
	"github.com/runnerr0/dwell/internal/history"
)

// Policy selects how an event's successor is chosen during inference.
type Policy string

const (
	// PolicyGlobal uses the next event in full chronological order.
	PolicyGlobal Policy = "global"
	// PolicyPerDomain uses the next event on the same registrable domain.
	PolicyPerDomain Policy = "per-domain"
)

// InferOptions tune duration inference.
type InferOptions struct {
	Policy Policy
	// CapSeconds clips each inferred duration when > 0. Zero means no cap:
	// a six-hour gap before the next visit credits six hours.
	CapSeconds float64
}

// AnnotatedEvent is a visit event plus its inferred dwell time.
type AnnotatedEvent struct {
	history.VisitEvent
	// Seconds is the inferred dwell time. The final event of a sequence has
	// no successor and gets zero, so it contributes nothing to sums.
	Seconds float64
}

// Infer computes a dwell duration for every event in a sequence already
// sorted ascending by timestamp. Durations are never negative: equal or
// out-of-order timestamps clamp to zero.
func Infer(events []history.VisitEvent, opts InferOptions) []AnnotatedEvent {
	if opts.Policy == "" {
		opts.Policy = PolicyGlobal
	}

	annotated := make([]AnnotatedEvent, len(events))
	for i, e := range events {
		annotated[i] = AnnotatedEvent{VisitEvent: e}
	}

	switch opts.Policy {
	case PolicyPerDomain:
		inferPerDomain(annotated)
	default:
		inferGlobal(annotated)
	}

	if opts.CapSeconds > 0 {
		for i := range annotated {
			if annotated[i].Seconds > opts.CapSeconds {
				annotated[i].Seconds = opts.CapSeconds
			}
		}
	}

	return annotated
}

func inferGlobal(events []AnnotatedEvent) {
	for i := 0; i+1 < len(events); i++ {
		events[i].Seconds = gapSeconds(events[i], events[i+1])
	}
}

// inferPerDomain looks ahead to the next visit on the same registrable
// domain instead of the next visit anywhere. The last visit of each domain
// gets zero.
func inferPerDomain(events []AnnotatedEvent) {
	lastIdx := make(map[string]int)
	for i := len(events) - 1; i >= 0; i-- {
		if next, ok := lastIdx[events[i].RegistrableDomain]; ok {
			events[i].Seconds = gapSeconds(events[i], events[next])
		}
		lastIdx[events[i].RegistrableDomain] = i
	}
}

func gapSeconds(from, to AnnotatedEvent) float64 {
	sec := to.Timestamp.Sub(from.Timestamp).Seconds()
	if sec < 0 {
		return 0
	}
	return sec
}
