package tracekit

import (
	"reflect"
	"testing"
)

func TestSelectByName(t *testing.T) {
	set := testSet("anmo.z.sac", "anmo.n.sac", "kip.z.sac")

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"suffix", "*.z.sac", []string{"anmo.z.sac", "kip.z.sac"}},
		{"prefix", "anmo.*", []string{"anmo.z.sac", "anmo.n.sac"}},
		{"exact", "kip.z.sac", []string{"kip.z.sac"}},
		{"none", "*.miniseed", nil},
		{"invalid pattern matches nothing", "[", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(set, ByName(tt.pattern)).Names()
			if len(got) == 0 {
				got = nil
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Select(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestSelectCombinators(t *testing.T) {
	set := testSet("a.sac", "b.sac", "c.tr")
	set[1].Data = []byte{1}
	set[1].HasData = true
	set[2].FormatType = FormatTrace
	set[2].Version = 200

	if got := Select(set, Loaded()).Names(); len(got) != 1 || got[0] != "b.sac" {
		t.Errorf("Loaded() selected %v", got)
	}
	if got := Select(set, ByFormat(FormatTrace)).Names(); len(got) != 1 || got[0] != "c.tr" {
		t.Errorf("ByFormat selected %v", got)
	}

	and := And(ByFormat(FormatSAC), Loaded())
	if got := Select(set, and).Names(); len(got) != 1 || got[0] != "b.sac" {
		t.Errorf("And selected %v", got)
	}

	or := Or(Loaded(), ByFormat(FormatTrace))
	if got := Select(set, or); len(got) != 2 {
		t.Errorf("Or selected %v", got.Names())
	}

	not := Not(Loaded())
	if got := Select(set, not); len(got) != 2 {
		t.Errorf("Not selected %v", got.Names())
	}

	if got := Select(set, All()); len(got) != len(set) {
		t.Errorf("All selected %d of %d", len(got), len(set))
	}
}

func TestSelectEdgeCases(t *testing.T) {
	set := testSet("a.sac")

	if got := Select(set, nil); got != nil {
		t.Errorf("nil selector selected %v", got.Names())
	}
	if got := Select(nil, All()); got != nil {
		t.Errorf("nil set selected %v", got.Names())
	}
	if got := Select(append(set, nil), All()); len(got) != 1 {
		t.Errorf("nil records should be skipped, got %d", len(got))
	}
	if got := Select(set, And()); len(got) != 1 {
		t.Error("empty And should select everything")
	}
	if got := Select(set, Or()); len(got) != 0 {
		t.Error("empty Or should select nothing")
	}
}
