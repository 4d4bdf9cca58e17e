package model

// ImportanceBand groups importance levels that share a colour.
type ImportanceBand string

const (
	BandCritical ImportanceBand = "critical"
	BandHigh     ImportanceBand = "high"
	BandMedium   ImportanceBand = "medium"
	BandLow      ImportanceBand = "low"
	BandMinimal  ImportanceBand = "minimal"
)

func BandFor(importance int) ImportanceBand {
	switch {
	case importance >= 9:
		return BandCritical
	case importance >= 7:
		return BandHigh
	case importance >= 5:
		return BandMedium
	case importance >= 3:
		return BandLow
	default:
		return BandMinimal
	}
}

// Hex is the border/fill colour for the band.
func (b ImportanceBand) Hex() string {
	switch b {
	case BandCritical:
		return "#ef4444"
	case BandHigh:
		return "#f97316"
	case BandMedium:
		return "#f59e0b"
	case BandLow:
		return "#84cc16"
	default:
		return "#94a3b8"
	}
}
