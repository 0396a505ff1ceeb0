// Package record holds decoded navigation updates and renders them as
// comma-delimited text lines.
package record

// Classification selects the output channel of an update.
type Classification uint8

const (
	Other Classification = iota
	Regular
	TriggerFallingEdge
)

func (c Classification) String() string {
	switch c {
	case Regular:
		return "regular"
	case TriggerFallingEdge:
		return "trigger-falling-edge"
	default:
		return "other"
	}
}

// Time is a GPS time sample: seconds since the GPS epoch and the UTC-GPS
// correction that applies to it.
type Time struct {
	Seconds   float64
	UTCOffset float64
}

// Update is a snapshot of one decoded record.
type Update struct {
	Time   Field[Time]
	Lat    Field[float64]
	Lon    Field[float64]
	Dist2D Field[float64]
	Class  Classification
}
