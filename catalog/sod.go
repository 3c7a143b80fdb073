package catalog

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"
)

// Columns a SOD event CSV must provide. Optional columns refine the
// magnitude scale, event name and depth units.
var sodRequiredColumns = []string{"time", "latitude", "longitude", "depth", "magnitude"}

// Origin time layouts accepted in SOD files, tried in order.
var sodTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseSod reads a SOD-style event CSV stream. The first row must be a
// header naming at least the required columns; every following row
// becomes one event.
func ParseSod(r io.Reader) ([]*SodEvent, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, parseErrorf(1, "empty catalog")
	}
	if err != nil {
		return nil, err
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range sodRequiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, parseErrorf(1, "missing required column %q", name)
		}
	}

	var events []*SodEvent
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		ev, perr := parseSodRow(row, cols, line)
		if perr != nil {
			return nil, perr
		}
		events = append(events, ev)
	}
	if len(events) == 0 {
		return nil, parseErrorf(line, "catalog has no events")
	}
	return events, nil
}

func parseSodRow(row []string, cols map[string]int, line int) (*SodEvent, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	origin, err := parseSodTime(field("time"))
	if err != nil {
		return nil, parseErrorf(line, "bad time %q", field("time"))
	}
	lat, err := strconv.ParseFloat(field("latitude"), 64)
	if err != nil {
		return nil, parseErrorf(line, "bad latitude %q", field("latitude"))
	}
	lon, err := strconv.ParseFloat(field("longitude"), 64)
	if err != nil {
		return nil, parseErrorf(line, "bad longitude %q", field("longitude"))
	}
	depth, err := strconv.ParseFloat(field("depth"), 64)
	if err != nil {
		return nil, parseErrorf(line, "bad depth %q", field("depth"))
	}
	mag, err := strconv.ParseFloat(field("magnitude"), 64)
	if err != nil {
		return nil, parseErrorf(line, "bad magnitude %q", field("magnitude"))
	}

	// Depths default to kilometers; meter-based files declare it.
	switch strings.ToLower(field("depthunits")) {
	case "", "km", "kilometer", "kilometers":
	case "m", "meter", "meters":
		depth /= 1000
	default:
		return nil, parseErrorf(line, "bad depth units %q", field("depthunits"))
	}

	return &SodEvent{
		Time:    origin,
		Lat:     lat,
		Lon:     lon,
		Depth:   depth,
		Mag:     mag,
		MagType: strings.ToLower(field("magnitudetype")),
		Label:   field("name"),
	}, nil
}

func parseSodTime(s string) (time.Time, error) {
	var err error
	for _, layout := range sodTimeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}
