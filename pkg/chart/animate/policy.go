package animate

import "time"

// Transition durations.
const (
	EnterDuration  = 750 * time.Millisecond
	UpdateDuration = 750 * time.Millisecond
	ExitDuration   = 750 * time.Millisecond
	AxisDuration   = 500 * time.Millisecond
)

// Policy gives the durations used for one kind of element.
// A zero duration applies the change at once.
type Policy struct {
	Enter  time.Duration
	Update time.Duration
	Exit   time.Duration
}

var (
	// Boxes covers stacked boxes, total labels and images.
	Boxes = Policy{Enter: EnterDuration, Update: UpdateDuration, Exit: ExitDuration}

	// Legend rows appear at once and move like boxes.
	Legend = Policy{Update: UpdateDuration, Exit: ExitDuration}

	// Axes are drawn at once and slide to new scales faster than the data.
	Axes = Policy{Update: AxisDuration, Exit: ExitDuration}

	// Static elements never animate.
	Static = Policy{}
)
