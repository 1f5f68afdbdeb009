package model

// Direction is the sign of a day-over-day change.
type Direction int

const (
	// Down covers every change that is not strictly positive,
	// including a change of exactly zero.
	Down Direction = iota

	// Up is a strictly positive change.
	Up
)

// String returns "up" or "down".
func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// DirectionOf classifies a change. Zero is Down.
func DirectionOf(change float64) Direction {
	if change > 0 {
		return Up
	}
	return Down
}

// DeltaResult compares one metric between the latest observation date and
// the one before it.
type DeltaResult struct {
	// Date is the latest observation date.
	Date string

	// PreviousDate is the observation date compared against.
	PreviousDate string

	// Current is the metric value on Date.
	Current float64

	// Previous is the metric value on PreviousDate.
	Previous float64

	// Change is Current-Previous, expressed in the unit of the metric
	// (basis points for yields, points for prices and rates).
	Change float64

	// Direction is derived from the sign of Change.
	Direction Direction
}
