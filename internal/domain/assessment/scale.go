package assessment

// ScaleType is the normalization convention of a standardized score.
type ScaleType string

const (
	ScaleZ    ScaleType = "Z"
	ScaleS10  ScaleType = "S10"
	ScaleS100 ScaleType = "S100"
)

// Band is the qualitative interpretation of a standardized score.
type Band string

const (
	BandVeryHigh Band = "very high"
	BandHigh     Band = "high"
	BandAverage  Band = "average"
	BandLow      Band = "low"
	BandVeryLow  Band = "very low"
	BandUnknown  Band = "unknown"
)

type scaleRange struct {
	min, max float64
	// lower bounds for very high, high, average, low; anything below is very low
	bands [4]float64
}

var scales = map[ScaleType]scaleRange{
	ScaleZ:    {min: -4, max: 4, bands: [4]float64{1.5, 1, -1, -1.5}},
	ScaleS10:  {min: 1, max: 19, bands: [4]float64{13, 11, 8, 6}},
	ScaleS100: {min: 40, max: 160, bands: [4]float64{115, 110, 90, 80}},
}

// Known reports whether s is one of the supported scale types.
func (s ScaleType) Known() bool {
	_, ok := scales[s]
	return ok
}

// IsValidScore reports whether value lies in the closed range of scale.
// Unknown scales are never valid.
func IsValidScore(value float64, scale ScaleType) bool {
	r, ok := scales[scale]
	if !ok {
		return false
	}
	return value >= r.min && value <= r.max
}

// Interpret maps a score to its band. Bounds are inclusive lower bounds.
func Interpret(score float64, scale ScaleType) Band {
	r, ok := scales[scale]
	if !ok {
		return BandUnknown
	}
	switch {
	case score >= r.bands[0]:
		return BandVeryHigh
	case score >= r.bands[1]:
		return BandHigh
	case score >= r.bands[2]:
		return BandAverage
	case score >= r.bands[3]:
		return BandLow
	default:
		return BandVeryLow
	}
}

// LocalizedBand returns the Hebrew label used in reports.
func LocalizedBand(b Band) string {
	switch b {
	case BandVeryHigh:
		return "גבוה מאוד"
	case BandHigh:
		return "גבוה"
	case BandAverage:
		return "ממוצע"
	case BandLow:
		return "נמוך"
	case BandVeryLow:
		return "נמוך מאוד"
	default:
		return "לא ידוע"
	}
}
