package assessment

// Band is the readiness classification derived from a percent score.
type Band string

const (
	BandNotReady         Band = "not_ready"
	BandNeedsPreparation Band = "needs_preparation"
	BandPilotReady       Band = "pilot_ready"
)

// Classification thresholds, both inclusive.
const (
	PilotReadyMinPercent = 75
	NotReadyMaxPercent   = 40
)

// StatusFor classifies a percent score. The rules are applied in a fixed
// order and a later match overrides an earlier one:
// needs_preparation, then pilot_ready, then not_ready.
func StatusFor(percent int) Band {
	band := BandNeedsPreparation
	if percent >= PilotReadyMinPercent {
		band = BandPilotReady
	}
	if percent <= NotReadyMaxPercent {
		band = BandNotReady
	}
	return band
}

// DisplayName returns the badge text for the band.
func (b Band) DisplayName() string {
	switch b {
	case BandNotReady:
		return "Not Ready"
	case BandPilotReady:
		return "Pilot Ready"
	case BandNeedsPreparation:
		return "Needs Preparation"
	default:
		return string(b)
	}
}

// Headline returns the one-line diagnosis shown under the badge.
func (b Band) Headline() string {
	switch b {
	case BandNotReady:
		return "Significant Gaps Identified"
	case BandPilotReady:
		return "Ready for Implementation"
	case BandNeedsPreparation:
		return "Foundation Building Required"
	default:
		return ""
	}
}

// ParseBand converts a stored band string back to a Band.
func ParseBand(s string) (Band, error) {
	switch b := Band(s); b {
	case BandNotReady, BandNeedsPreparation, BandPilotReady:
		return b, nil
	}
	return "", &InputError{Field: "band", Value: s}
}
