package collab

// Event is the label a component attaches to a mediator notification.
type Event string

// The closed set of event labels used in the collaboration.
const (
	EventA Event = "A"
	EventB Event = "B"
	EventC Event = "C"
	EventD Event = "D"
)

// String returns the raw label
func (e Event) String() string {
	return string(e)
}
