package domain

// Event drives a campaign from one status to another.
type Event string

const (
	// EventLaunch submits a draft for review.
	EventLaunch Event = "launch"
	// EventReviewWindowElapsed is time driven; it is only ever produced by a tick.
	EventReviewWindowElapsed Event = "reviewWindowElapsed"
	EventPaymentConfirmed    Event = "paymentConfirmed"
	EventPause               Event = "pause"
	EventResume              Event = "resume"
	EventTerminate           Event = "terminate"
)

// Valid checks if the event is known.
func (e Event) Valid() bool {
	switch e {
	case EventLaunch, EventReviewWindowElapsed, EventPaymentConfirmed,
		EventPause, EventResume, EventTerminate:
		return true
	default:
		return false
	}
}
