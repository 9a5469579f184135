package display

import (
	"encoding/json"
	"io"
)

// OutputJSON writes pretty-printed JSON to w.
func OutputJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
