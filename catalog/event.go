package catalog

import "time"

// Kind identifies a catalog flavor.
type Kind int

const (
	// KindUnknown marks content no parser recognizes.
	KindUnknown Kind = iota
	// KindSod marks SOD-style event CSV content.
	KindSod
	// KindNdk marks 5-line NDK moment tensor blocks.
	KindNdk
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindSod:
		return "sod"
	case KindNdk:
		return "ndk"
	default:
		return "unknown"
	}
}

// Event is one catalog entry. Implementations expose the fields a trace
// header update needs regardless of the source format.
type Event interface {
	// Kind identifies the catalog flavor the event came from.
	Kind() Kind
	// Name is a short label for the event, possibly empty.
	Name() string
	// Origin is the event origin time in UTC.
	Origin() time.Time
	// Latitude is the epicenter latitude in degrees.
	Latitude() float64
	// Longitude is the epicenter longitude in degrees.
	Longitude() float64
	// DepthKm is the hypocenter depth in kilometers.
	DepthKm() float64
	// Magnitude is the preferred magnitude value.
	Magnitude() float64
	// MagnitudeType names the magnitude scale, e.g. "mw". May be empty.
	MagnitudeType() string
}

// SodEvent is one row of a SOD-style event CSV file.
type SodEvent struct {
	Time    time.Time
	Lat     float64
	Lon     float64
	Depth   float64 // kilometers
	Mag     float64
	MagType string
	Label   string
}

// Kind implements Event.
func (e *SodEvent) Kind() Kind { return KindSod }

// Name implements Event.
func (e *SodEvent) Name() string { return e.Label }

// Origin implements Event.
func (e *SodEvent) Origin() time.Time { return e.Time }

// Latitude implements Event.
func (e *SodEvent) Latitude() float64 { return e.Lat }

// Longitude implements Event.
func (e *SodEvent) Longitude() float64 { return e.Lon }

// DepthKm implements Event.
func (e *SodEvent) DepthKm() float64 { return e.Depth }

// Magnitude implements Event.
func (e *SodEvent) Magnitude() float64 { return e.Mag }

// MagnitudeType implements Event.
func (e *SodEvent) MagnitudeType() string { return e.MagType }

// NdkEvent is one 5-line NDK block.
type NdkEvent struct {
	Catalog string // hypocenter reference catalog, e.g. "PDE"
	Time    time.Time
	Lat     float64
	Lon     float64
	Depth   float64 // kilometers
	Mb      float64
	Ms      float64
	Mw      float64 // derived from the scalar moment
	ID      string  // moment tensor event name
	Region  string
}

// Kind implements Event.
func (e *NdkEvent) Kind() Kind { return KindNdk }

// Name implements Event.
func (e *NdkEvent) Name() string { return e.ID }

// Origin implements Event.
func (e *NdkEvent) Origin() time.Time { return e.Time }

// Latitude implements Event.
func (e *NdkEvent) Latitude() float64 { return e.Lat }

// Longitude implements Event.
func (e *NdkEvent) Longitude() float64 { return e.Lon }

// DepthKm implements Event.
func (e *NdkEvent) DepthKm() float64 { return e.Depth }

// Magnitude returns the moment magnitude when available, otherwise the
// reported surface wave or body wave magnitude.
func (e *NdkEvent) Magnitude() float64 {
	switch {
	case e.Mw != 0:
		return e.Mw
	case e.Ms != 0:
		return e.Ms
	default:
		return e.Mb
	}
}

// MagnitudeType implements Event.
func (e *NdkEvent) MagnitudeType() string {
	switch {
	case e.Mw != 0:
		return "mw"
	case e.Ms != 0:
		return "ms"
	case e.Mb != 0:
		return "mb"
	default:
		return ""
	}
}

var (
	_ Event = (*SodEvent)(nil)
	_ Event = (*NdkEvent)(nil)
)
