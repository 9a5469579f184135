package jsonutil

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestPrune_RemovesEmptyValues(t *testing.T) {
	in := map[string]any{
		"a": nil,
		"b": map[string]any{"c": ""},
		"d": []any{float64(1), map[string]any{}},
	}
	want := map[string]any{
		"d": []any{float64(1)},
	}

	got := Prune(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Prune() = %#v, want %#v", got, want)
	}
}

func TestPrune_CascadingCollapse(t *testing.T) {
	// A child that becomes empty only after pruning must also be removed
	// from its parent, all the way up.
	in := map[string]any{
		"outer": map[string]any{
			"inner": map[string]any{
				"leaf": []any{"", nil, map[string]any{}},
			},
		},
	}

	if got := Prune(in); got != nil {
		t.Errorf("Prune() = %#v, want nil", got)
	}
}

func TestPrune_ScalarsPassThrough(t *testing.T) {
	for _, v := range []any{float64(0), false, "x", float64(-1.5)} {
		if got := Prune(v); got != v {
			t.Errorf("Prune(%v) = %v, want unchanged", v, got)
		}
	}
}

func TestPrune_KeepsFalseAndZero(t *testing.T) {
	// false and 0 are not "empty": only nil, "", [] and {} are removed.
	in := map[string]any{
		"is_ground": false,
		"altitude":  float64(0),
		"note":      "",
	}
	want := map[string]any{
		"is_ground": false,
		"altitude":  float64(0),
	}

	if got := Prune(in); !reflect.DeepEqual(got, want) {
		t.Errorf("Prune() = %#v, want %#v", got, want)
	}
}

func TestPrune_Idempotent(t *testing.T) {
	inputs := []string{
		`{"a": null, "b": {"c": ""}, "d": [1, {}]}`,
		`{"live": {"is_ground": false}, "extra": null}`,
		`[1, "", [], {"x": []}, {"y": 2}]`,
		`{"nested": {"deep": {"deeper": null}}}`,
		`"scalar"`,
	}

	for _, raw := range inputs {
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			t.Fatalf("bad fixture %s: %v", raw, err)
		}
		once := Prune(v)
		twice := Prune(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Prune not idempotent for %s: once=%#v twice=%#v", raw, once, twice)
		}
	}
}

func TestPrune_ListElements(t *testing.T) {
	in := []any{
		map[string]any{"keep": "yes", "drop": nil},
		map[string]any{"drop": ""},
		"",
		"tail",
	}
	want := []any{
		map[string]any{"keep": "yes"},
		"tail",
	}

	if got := Prune(in); !reflect.DeepEqual(got, want) {
		t.Errorf("Prune() = %#v, want %#v", got, want)
	}
}
