package models

// AxisScale represents the upper bound and tick step of one chart axis.
type AxisScale struct {
	// Upper is the axis maximum, a whole multiple of Step.
	Upper float64 `json:"upper"`
	// Step is the distance between major ticks.
	Step float64 `json:"step"`
}

// Tick represents one labelled axis tick.
type Tick struct {
	// Value is the tick position in data units.
	Value float64 `json:"value"`
	// Label is the rendered text. The last tick of an axis carries the unit.
	Label string `json:"label"`
}
