// Package jsonutil provides helpers for working with decoded JSON values
// (the map[string]any / []any shapes produced by encoding/json).
package jsonutil

// Prune returns a copy of v with empty values removed at every nesting
// level. A value is empty if it is nil, the empty string, an empty slice,
// or an empty map. Children are pruned first, so a container that becomes
// empty only after pruning is itself removed from its parent. A container
// that collapses entirely is returned as nil so that enclosing structures
// treat it as removable. Scalars pass through unchanged.
func Prune(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			pc := Prune(child)
			if isEmpty(pc) {
				continue
			}
			out[k] = pc
		}
		if len(out) == 0 {
			return nil
		}
		return out

	case []any:
		out := make([]any, 0, len(t))
		for _, child := range t {
			pc := Prune(child)
			if isEmpty(pc) {
				continue
			}
			out = append(out, pc)
		}
		if len(out) == 0 {
			return nil
		}
		return out

	default:
		return v
	}
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	}
	return false
}
