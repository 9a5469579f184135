package flightapi

import "github.com/dstairlines/flightwatch/internal/jsonutil"

// Airborne reports whether a flight record represents a flight currently
// in the air. The live telemetry block is the primary signal: when
// live.is_ground is present, airborne means it is explicitly false.
// Upstream data quality for the live block is inconsistent, so when it is
// absent (or lacks is_ground) the lower-confidence flight_status string
// is used instead.
func Airborne(record map[string]any) bool {
	if live, ok := record["live"].(map[string]any); ok {
		if ig, present := live["is_ground"]; present {
			b, isBool := ig.(bool)
			return isBool && !b
		}
	}
	status, _ := record["flight_status"].(string)
	return status == "active"
}

// extractAirborne walks the flights list in order and returns the pruned
// airborne subset. Pruning is cosmetic: if pruning a record collapses it
// entirely, the original record is kept rather than lost.
func extractAirborne(flights []any) []map[string]any {
	extracted := []map[string]any{}
	for _, f := range flights {
		record, ok := f.(map[string]any)
		if !ok || !Airborne(record) {
			continue
		}
		if pruned, ok := jsonutil.Prune(record).(map[string]any); ok {
			extracted = append(extracted, pruned)
		} else {
			extracted = append(extracted, record)
		}
	}
	return extracted
}
