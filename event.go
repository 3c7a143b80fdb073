package tracekit

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/seisgo/tracekit/catalog"
)

// Magnitude scale codes stored in the imagtyp header field.
var magTypeCodes = map[string]float64{
	"mb": 52,
	"ms": 53,
	"ml": 54,
	"mw": 55,
	"md": 56,
}

// izOrigin is the iztype code meaning the reference time is the event
// origin.
const izOrigin = 11

// Reference time fields, most significant first.
var refTimeFields = []string{"nzyear", "nzjday", "nzhour", "nzmin", "nzsec", "nzmsec"}

// Station-event fields invalidated by an event update.
var geometryFields = []string{"dist", "az", "baz", "gcarc"}

// GeometryFunc recomputes derived station-event fields after an event
// update. It runs on the already-updated copy of the set.
type GeometryFunc func(set RecordSet) error

var (
	geometryMu sync.RWMutex
	geometry   GeometryFunc = markGeometryUndefined
)

// SetGeometryFunc installs the hook run after every event update. Passing
// nil restores the default, which marks the distance and azimuth fields
// undefined so stale values cannot outlive the event they were computed
// for.
func SetGeometryFunc(fn GeometryFunc) {
	if fn == nil {
		fn = markGeometryUndefined
	}
	geometryMu.Lock()
	geometry = fn
	geometryMu.Unlock()
}

func markGeometryUndefined(set RecordSet) error {
	for _, r := range set {
		for _, name := range geometryFields {
			if err := r.Header.Set(name, Undefined); err != nil {
				return err
			}
		}
	}
	return nil
}

// ApplyEvent stamps an event's origin time, hypocenter and magnitude into
// every record of the set and returns the updated copy; the input set is
// left untouched. The set is validated before and after the update, and
// the geometry hook runs between the field writes and the final check.
//
// While the fields are being written, record checking is suppressed so
// half-updated headers cannot fail a concurrent check; the previous
// switch state is restored on every path out.
func ApplyEvent(set RecordSet, ev catalog.Event) (RecordSet, error) {
	if ev == nil {
		return nil, fmt.Errorf("apply event: event is nil")
	}
	if rep := Check(set); rep != nil {
		return nil, rep
	}

	out := set.Clone()
	if err := applyEventFields(out, ev); err != nil {
		return nil, err
	}
	if err := recomputeGeometry(out); err != nil {
		return nil, err
	}
	if rep := Check(out); rep != nil {
		return nil, rep
	}
	return out, nil
}

// ApplyEvent updates every held record from the event, validating the
// result before commit.
func (cs *CheckedSet) ApplyEvent(ev catalog.Event) error {
	return cs.Apply(func(set RecordSet) (RecordSet, error) {
		return ApplyEvent(set, ev)
	})
}

func applyEventFields(set RecordSet, ev catalog.Event) error {
	restore := SuppressValidation()
	defer restore()

	origin := ev.Origin()
	for i, r := range set {
		if err := applyEventTo(r, ev, origin); err != nil {
			return fmt.Errorf("record %d (%s): %w", i, r.Name, err)
		}
	}
	return nil
}

func applyEventTo(r *Record, ev catalog.Event, origin time.Time) error {
	h := r.Header

	// Records with a reference time keep it and store the origin
	// relative to it. Records without one are seeded from the origin.
	if hasReferenceTime(h) {
		ref, err := referenceTime(h)
		if err != nil {
			return err
		}
		if err := h.Set("o", origin.Sub(ref).Seconds()); err != nil {
			return err
		}
	} else {
		if err := setReferenceTime(h, origin); err != nil {
			return err
		}
		if err := h.Set("o", 0); err != nil {
			return err
		}
		if err := h.Set("iztype", izOrigin); err != nil {
			return err
		}
	}

	if err := h.Set("evla", ev.Latitude()); err != nil {
		return err
	}
	if err := h.Set("evlo", ev.Longitude()); err != nil {
		return err
	}
	if err := h.Set("evdp", ev.DepthKm()); err != nil {
		return err
	}
	if err := h.Set("mag", ev.Magnitude()); err != nil {
		return err
	}
	if code, ok := magTypeCodes[strings.ToLower(ev.MagnitudeType())]; ok {
		if err := h.Set("imagtyp", code); err != nil {
			return err
		}
	}
	if name := ev.Name(); name != "" {
		if err := h.SetString("kevnm", name); err != nil {
			return err
		}
	}
	return nil
}

func recomputeGeometry(set RecordSet) error {
	geometryMu.RLock()
	fn := geometry
	geometryMu.RUnlock()
	return fn(set)
}

func hasReferenceTime(h *Header) bool {
	for _, name := range refTimeFields {
		if h.IsUndefined(name) {
			return false
		}
	}
	return true
}

// referenceTime assembles the record reference time from the nz fields.
func referenceTime(h *Header) (time.Time, error) {
	vals := make(map[string]int, len(refTimeFields))
	for _, name := range refTimeFields {
		v, err := h.Get(name)
		if err != nil {
			return time.Time{}, err
		}
		vals[name] = int(v)
	}
	t := time.Date(vals["nzyear"], time.January, 1,
		vals["nzhour"], vals["nzmin"], vals["nzsec"], vals["nzmsec"]*int(time.Millisecond),
		time.UTC)
	return t.AddDate(0, 0, vals["nzjday"]-1), nil
}

// setReferenceTime writes t into the nz fields, truncating to
// millisecond precision.
func setReferenceTime(h *Header, t time.Time) error {
	t = t.UTC()
	fields := map[string]float64{
		"nzyear": float64(t.Year()),
		"nzjday": float64(t.YearDay()),
		"nzhour": float64(t.Hour()),
		"nzmin":  float64(t.Minute()),
		"nzsec":  float64(t.Second()),
		"nzmsec": float64(t.Nanosecond() / int(time.Millisecond)),
	}
	for _, name := range refTimeFields {
		if err := h.Set(name, fields[name]); err != nil {
			return err
		}
	}
	return nil
}
