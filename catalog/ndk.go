package catalog

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// ndkBlockLines is the fixed number of lines per NDK event block.
const ndkBlockLines = 5

// ParseNdk reads NDK moment tensor blocks. Every event spans exactly five
// 80-column lines; blank lines between blocks are ignored.
func ParseNdk(r io.Reader) ([]*NdkEvent, error) {
	scanner := bufio.NewScanner(r)

	var (
		events []*NdkEvent
		block  [ndkBlockLines]string
		fill   int
		line   int
		start  int
	)
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if fill == 0 && strings.TrimSpace(text) == "" {
			continue
		}
		if fill == 0 {
			start = line
		}
		block[fill] = text
		fill++
		if fill < ndkBlockLines {
			continue
		}
		fill = 0
		ev, err := parseNdkBlock(block, start)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if fill != 0 {
		return nil, parseErrorf(start, "truncated block: %d of %d lines", fill, ndkBlockLines)
	}
	if len(events) == 0 {
		return nil, parseErrorf(line, "catalog has no events")
	}
	return events, nil
}

// parseNdkBlock decodes one 5-line block. Line numbers in errors refer to
// the block's first line.
func parseNdkBlock(block [ndkBlockLines]string, start int) (*NdkEvent, error) {
	hypo := block[0]
	if len(hypo) < 48 {
		return nil, parseErrorf(start, "hypocenter line too short")
	}

	ev := &NdkEvent{
		Catalog: strings.TrimSpace(columns(hypo, 0, 4)),
	}

	origin, err := parseNdkTime(columns(hypo, 5, 15), columns(hypo, 16, 26))
	if err != nil {
		return nil, parseErrorf(start, "bad origin time: %v", err)
	}
	ev.Time = origin

	if ev.Lat, err = parseNdkFloat(columns(hypo, 27, 33)); err != nil {
		return nil, parseErrorf(start, "bad latitude %q", columns(hypo, 27, 33))
	}
	if ev.Lon, err = parseNdkFloat(columns(hypo, 34, 42)); err != nil {
		return nil, parseErrorf(start, "bad longitude %q", columns(hypo, 34, 42))
	}
	if ev.Depth, err = parseNdkFloat(columns(hypo, 42, 47)); err != nil {
		return nil, parseErrorf(start, "bad depth %q", columns(hypo, 42, 47))
	}

	// Reported magnitudes, usually mb and Ms. Zero means unreported.
	mags := strings.Fields(columns(hypo, 48, 55))
	if len(mags) > 0 {
		if ev.Mb, err = strconv.ParseFloat(mags[0], 64); err != nil {
			return nil, parseErrorf(start, "bad magnitude %q", mags[0])
		}
	}
	if len(mags) > 1 {
		if ev.Ms, err = strconv.ParseFloat(mags[1], 64); err != nil {
			return nil, parseErrorf(start, "bad magnitude %q", mags[1])
		}
	}
	ev.Region = strings.TrimSpace(columns(hypo, 56, 80))

	ev.ID = strings.TrimSpace(columns(block[1], 0, 16))

	// The exponent on line 4 scales the scalar moment on line 5; together
	// they give the moment magnitude.
	expFields := strings.Fields(block[3])
	if len(expFields) == 0 {
		return nil, parseErrorf(start+3, "missing moment exponent")
	}
	exponent, err := strconv.Atoi(expFields[0])
	if err != nil {
		return nil, parseErrorf(start+3, "bad moment exponent %q", expFields[0])
	}

	momentFields := strings.Fields(block[4])
	if len(momentFields) < 11 {
		return nil, parseErrorf(start+4, "missing scalar moment")
	}
	scalar, err := strconv.ParseFloat(momentFields[10], 64)
	if err != nil {
		return nil, parseErrorf(start+4, "bad scalar moment %q", momentFields[10])
	}
	if scalar > 0 {
		ev.Mw = momentMagnitude(scalar, exponent)
	}

	return ev, nil
}

// momentMagnitude converts a scalar moment in dyne-cm, given as
// scalar*10^exponent, to moment magnitude.
func momentMagnitude(scalar float64, exponent int) float64 {
	logM0 := math.Log10(scalar) + float64(exponent)
	return 2.0/3.0*logM0 - 10.7
}

// parseNdkTime combines the date and clock columns of a hypocenter line.
// Out-of-range seconds, which bulk catalogs occasionally contain, roll
// over into the next minute.
func parseNdkTime(date, clock string) (time.Time, error) {
	var y, mo, d, hh, mm int
	var ss float64
	if _, err := fmt.Sscanf(strings.TrimSpace(date), "%d/%d/%d", &y, &mo, &d); err != nil {
		return time.Time{}, fmt.Errorf("bad date %q", date)
	}
	if _, err := fmt.Sscanf(strings.TrimSpace(clock), "%d:%d:%f", &hh, &mm, &ss); err != nil {
		return time.Time{}, fmt.Errorf("bad clock %q", clock)
	}
	sec := int(ss)
	nsec := int(math.Round((ss - float64(sec)) * 1e9))
	return time.Date(y, time.Month(mo), d, hh, mm, sec, nsec, time.UTC), nil
}

func parseNdkFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// columns slices a fixed-width line by byte positions, tolerating short
// lines.
func columns(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	if to > len(line) {
		to = len(line)
	}
	return line[from:to]
}
