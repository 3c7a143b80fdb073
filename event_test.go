package tracekit

import (
	"errors"
	"testing"
	"time"

	"github.com/seisgo/tracekit/catalog"
)

func testEvent() *catalog.SodEvent {
	return &catalog.SodEvent{
		Time:    time.Date(2005, 1, 1, 1, 20, 5, 400e6, time.UTC),
		Lat:     13.78,
		Lon:     -88.78,
		Depth:   193.1,
		Mag:     5.0,
		MagType: "mw",
		Label:   "ELSALVADOR",
	}
}

func TestApplyEventStampsFields(t *testing.T) {
	set := testSet("a.sac", "b.sac")
	ev := testEvent()

	updated, err := ApplyEvent(set, ev)
	if err != nil {
		t.Fatalf("ApplyEvent: %v", err)
	}

	for i, rec := range updated {
		h := rec.Header
		checks := map[string]float64{
			"evla":    13.78,
			"evlo":    -88.78,
			"evdp":    193.1,
			"mag":     5.0,
			"imagtyp": 55,
		}
		for name, want := range checks {
			v, err := h.Get(name)
			if err != nil {
				t.Fatal(err)
			}
			if v != want {
				t.Errorf("record %d: %s = %v, want %v", i, name, v, want)
			}
		}
		if s, _ := h.GetString("kevnm"); s != "ELSALVADOR" {
			t.Errorf("record %d: kevnm = %q", i, s)
		}
	}

	// The input set is untouched.
	for i, rec := range set {
		if !rec.Header.IsUndefined("evla") {
			t.Errorf("input record %d was mutated", i)
		}
	}
}

func TestApplyEventSeedsReferenceTime(t *testing.T) {
	set := testSet("a.sac")

	updated, err := ApplyEvent(set, testEvent())
	if err != nil {
		t.Fatal(err)
	}

	h := updated[0].Header
	want := map[string]float64{
		"nzyear": 2005, "nzjday": 1, "nzhour": 1,
		"nzmin": 20, "nzsec": 5, "nzmsec": 400,
		"o": 0, "iztype": izOrigin,
	}
	for name, v := range want {
		got, err := h.Get(name)
		if err != nil {
			t.Fatal(err)
		}
		if got != v {
			t.Errorf("%s = %v, want %v", name, got, v)
		}
	}
}

func TestApplyEventRelativeOrigin(t *testing.T) {
	ev := testEvent()
	set := testSet("a.sac")

	// Give the record a reference time ten seconds after the origin;
	// the stored origin offset becomes negative.
	if err := setReferenceTime(set[0].Header, ev.Time.Add(10*time.Second)); err != nil {
		t.Fatal(err)
	}

	updated, err := ApplyEvent(set, ev)
	if err != nil {
		t.Fatal(err)
	}
	h := updated[0].Header
	if o, _ := h.Get("o"); o != -10 {
		t.Errorf("o = %v, want -10", o)
	}
	// The existing reference time survives.
	if y, _ := h.Get("nzyear"); y != 2005 {
		t.Errorf("nzyear = %v, want 2005", y)
	}
	if iz, _ := h.Get("iztype"); iz != Undefined {
		t.Errorf("iztype = %v, should stay untouched when the reference is kept", iz)
	}
}

func TestApplyEventInvalidatesGeometry(t *testing.T) {
	set := testSet("a.sac")
	for _, name := range []string{"dist", "az", "baz", "gcarc"} {
		if err := set[0].Header.Set(name, 100); err != nil {
			t.Fatal(err)
		}
	}

	updated, err := ApplyEvent(set, testEvent())
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"dist", "az", "baz", "gcarc"} {
		if v, _ := updated[0].Header.Get(name); v != Undefined {
			t.Errorf("%s = %v, want undefined after the event changed", name, v)
		}
	}
}

func TestApplyEventCustomGeometry(t *testing.T) {
	t.Cleanup(func() { SetGeometryFunc(nil) })
	SetGeometryFunc(func(set RecordSet) error {
		for _, r := range set {
			if err := r.Header.Set("gcarc", 42); err != nil {
				return err
			}
		}
		return nil
	})

	updated, err := ApplyEvent(testSet("a.sac"), testEvent())
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := updated[0].Header.Get("gcarc"); v != 42 {
		t.Errorf("gcarc = %v, want the hook's value", v)
	}
}

func TestApplyEventHookFailure(t *testing.T) {
	t.Cleanup(func() { SetGeometryFunc(nil) })
	boom := errors.New("geometry failed")
	SetGeometryFunc(func(RecordSet) error { return boom })

	_, err := ApplyEvent(testSet("a.sac"), testEvent())
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want the hook error", err)
	}
	if !ValidationEnabled() {
		t.Error("validation switch not restored after a failed update")
	}
}

func TestApplyEventRejectsBadInput(t *testing.T) {
	if _, err := ApplyEvent(testSet("a.sac"), nil); err == nil {
		t.Error("nil event should fail")
	}

	bad := testSet("a.sac")
	bad[0].ByteOrder = "inverted"
	_, err := ApplyEvent(bad, testEvent())
	if !HasReportID(err, ReportEndianBad) {
		t.Errorf("error = %v, want endian report", err)
	}
	if !ValidationEnabled() {
		t.Error("validation switch not restored")
	}
}

func TestApplyEventMagnitudeCode(t *testing.T) {
	tests := []struct {
		magType string
		want    float64
	}{
		{"mb", 52}, {"ms", 53}, {"ml", 54}, {"mw", 55}, {"md", 56},
		{"MW", 55}, // case-insensitive
	}
	for _, tt := range tests {
		ev := testEvent()
		ev.MagType = tt.magType
		updated, err := ApplyEvent(testSet("a.sac"), ev)
		if err != nil {
			t.Fatal(err)
		}
		if v, _ := updated[0].Header.Get("imagtyp"); v != tt.want {
			t.Errorf("magType %q: imagtyp = %v, want %v", tt.magType, v, tt.want)
		}
	}

	// An unknown scale leaves the code undefined.
	ev := testEvent()
	ev.MagType = "mystery"
	updated, err := ApplyEvent(testSet("a.sac"), ev)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := updated[0].Header.Get("imagtyp"); v != Undefined {
		t.Errorf("imagtyp = %v, want undefined for an unknown scale", v)
	}
}

func TestCheckedSetApplyEvent(t *testing.T) {
	cs, err := NewCheckedSet(testSet("a.sac"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cs.ApplyEvent(testEvent()); err != nil {
		t.Fatalf("ApplyEvent: %v", err)
	}
	recs := cs.Records()
	if v, _ := recs[0].Header.Get("mag"); v != 5.0 {
		t.Errorf("mag = %v after checked apply", v)
	}
}
