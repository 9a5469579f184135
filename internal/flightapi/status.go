// Package flightapi fetches live flight data and extracts the flights
// that are currently in the air, reporting a stage-by-stage status so
// callers can tell "could not connect" from "connected but rejected"
// from "connected, parsed, nothing matched".
package flightapi

// FetchStatus is the result record of one fetch attempt. The boolean
// checkpoints are ordered and monotonic: connected ≥ http_ok ≥ json_ok ≥
// api_ok ≥ has_flights_array, and extracted_any is only evaluated once
// has_flights_array holds. The fetch returns at the first failed
// checkpoint, so a later checkpoint is never true after an earlier one
// failed. The JSON field names are a wire contract; downstream consumers
// branch on them.
type FetchStatus struct {
	Connected       bool `json:"connected"`
	HTTPOK          bool `json:"http_ok"`
	JSONOK          bool `json:"json_ok"`
	APIOK           bool `json:"api_ok"`
	HasFlightsArray bool `json:"has_flights_array"`
	ExtractedAny    bool `json:"extracted_any"`

	// ErrorMessage is set when a checkpoint fails, and also for the soft
	// warning case where everything succeeded but no flight matched.
	ErrorMessage string `json:"error_message,omitempty"`

	// FlightsExtracted holds the pruned airborne records in response order.
	FlightsExtracted []map[string]any `json:"flights_extracted"`

	// Raw is the full parsed response body, kept for diagnostics once the
	// body parses as JSON, regardless of later checkpoints.
	Raw any `json:"raw,omitempty"`
}

// Stage identifies the first checkpoint that did not hold, or StageOK.
type Stage int

const (
	StageConnect Stage = iota
	StageHTTP
	StageJSON
	StageAPI
	StageFlightsArray
	StageExtract
	StageOK
)

// Stage returns the first unmet checkpoint.
func (s FetchStatus) Stage() Stage {
	switch {
	case !s.Connected:
		return StageConnect
	case !s.HTTPOK:
		return StageHTTP
	case !s.JSONOK:
		return StageJSON
	case !s.APIOK:
		return StageAPI
	case !s.HasFlightsArray:
		return StageFlightsArray
	case !s.ExtractedAny:
		return StageExtract
	default:
		return StageOK
	}
}

// Verdict is the one-line human summary for the status. A failed
// extraction stage is a warning, not a failure: the request itself
// succeeded.
func (s FetchStatus) Verdict() string {
	switch s.Stage() {
	case StageConnect:
		return "FAIL (could not connect)"
	case StageHTTP:
		return "FAIL (HTTP error)"
	case StageJSON:
		return "FAIL (invalid JSON)"
	case StageAPI:
		return "FAIL (API returned error)"
	case StageFlightsArray:
		return `FAIL (missing "data"/"results")`
	case StageExtract:
		return "WARNING (no matches extracted)"
	default:
		return "OK"
	}
}

// OK reports whether every checkpoint including extraction held.
func (s FetchStatus) OK() bool { return s.Stage() == StageOK }
