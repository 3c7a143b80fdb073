package catalog

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// One real GCMT block, January 2005.
var ndkBlock1 = []string{
	"PDE  2005/01/01 01:20:05.4  13.78  -88.78 193.1 5.0 0.0 EL SALVADOR",
	"C200501010120A   B:  4    4  40 S: 27   33  35 M:  0   0   0 CMT: 1 TRIHD:  0.6",
	"CENTROID:     -0.3 0.9  13.76 0.06  -89.08 0.09 162.8 12.5 FREE S-20050322125201",
	"23  -0.310 0.213  0.657 0.188 -0.347 0.206 -0.184 0.301 -0.966 0.217 -0.944 0.224",
	"V10   1.581 56  12  -0.537 23 140  -1.044 24 241   1.312 9 29  142 133 72   66",
}

var ndkBlock2 = []string{
	"PDE  2005/01/01 01:42:24.9   7.29   93.92  30.0 5.1 0.0 NICOBAR ISLANDS, INDIA R",
	"C200501010142A   B: 17   27  40 S: 41   58  50 M:  0   0   0 CMT: 1 TRIHD:  0.7",
	"CENTROID:     -1.1 0.8   7.24 0.04   93.96 0.04  12.0  0.0 BDY  S-20050322125628",
	"24  -1.310 0.212  2.320 0.166 -0.980 0.241  0.539 0.301  0.882 0.263  0.092 0.266",
	"V10   2.570 49  55  -0.120 23 164  -2.450 31 259   2.510 8 110  16 31 80   73",
}

func ndkText(blocks ...[]string) string {
	var lines []string
	for _, b := range blocks {
		lines = append(lines, b...)
	}
	return strings.Join(lines, "\n") + "\n"
}

func TestParseNdk(t *testing.T) {
	events, err := ParseNdk(strings.NewReader(ndkText(ndkBlock1)))
	require.NoError(t, err)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, "PDE", ev.Catalog)
	assert.True(t, ev.Time.Equal(time.Date(2005, 1, 1, 1, 20, 5, 400000000, time.UTC)),
		"origin = %v", ev.Time)
	assert.InDelta(t, 13.78, ev.Lat, 1e-9)
	assert.InDelta(t, -88.78, ev.Lon, 1e-9)
	assert.InDelta(t, 193.1, ev.Depth, 1e-9)
	assert.InDelta(t, 5.0, ev.Mb, 1e-9)
	assert.InDelta(t, 0.0, ev.Ms, 1e-9)
	assert.Equal(t, "EL SALVADOR", ev.Region)
	assert.Equal(t, "C200501010120A", ev.ID)

	// Scalar moment 1.312e23 dyne-cm.
	assert.InDelta(t, 4.712, ev.Mw, 0.001)
	assert.Equal(t, "mw", ev.MagnitudeType())
	assert.InDelta(t, ev.Mw, ev.Magnitude(), 1e-9)
	assert.Equal(t, KindNdk, ev.Kind())
	assert.Equal(t, "C200501010120A", ev.Name())
}

func TestParseNdkMultipleBlocks(t *testing.T) {
	// Blank lines between blocks are tolerated.
	text := ndkText(ndkBlock1) + "\n" + ndkText(ndkBlock2)

	events, err := ParseNdk(strings.NewReader(text))
	require.NoError(t, err)
	require.Len(t, events, 2)

	ev := events[1]
	assert.Equal(t, "C200501010142A", ev.ID)
	assert.InDelta(t, 7.29, ev.Lat, 1e-9)
	assert.InDelta(t, 93.92, ev.Lon, 1e-9)
	assert.InDelta(t, 30.0, ev.Depth, 1e-9)
	assert.Equal(t, "NICOBAR ISLANDS, INDIA R", ev.Region)
	assert.InDelta(t, 5.566, ev.Mw, 0.001)
}

func TestParseNdkSecondsRollover(t *testing.T) {
	block := append([]string{}, ndkBlock1...)
	block[0] = strings.Replace(block[0], "01:20:05.4", "23:59:60.5", 1)

	events, err := ParseNdk(strings.NewReader(ndkText(block)))
	require.NoError(t, err)

	want := time.Date(2005, 1, 2, 0, 0, 0, 500000000, time.UTC)
	assert.True(t, events[0].Time.Equal(want), "origin = %v, want %v", events[0].Time, want)
}

func TestParseNdkErrors(t *testing.T) {
	corrupt := func(lineIdx int, from, to string) string {
		block := append([]string{}, ndkBlock1...)
		block[lineIdx] = strings.Replace(block[lineIdx], from, to, 1)
		return ndkText(block)
	}

	tests := []struct {
		name     string
		text     string
		wantLine int
		errMsg   string
	}{
		{
			name:     "empty input",
			text:     "",
			wantLine: 0,
			errMsg:   "no events",
		},
		{
			name:     "truncated block",
			text:     strings.Join(ndkBlock1[:3], "\n") + "\n",
			wantLine: 1,
			errMsg:   "truncated block: 3 of 5 lines",
		},
		{
			name:     "short hypocenter line",
			text:     ndkText([]string{"PDE  2005/01/01", "", "", "", ""}),
			wantLine: 1,
			errMsg:   "hypocenter line too short",
		},
		{
			name:     "bad latitude",
			text:     corrupt(0, " 13.78", "north1"),
			wantLine: 1,
			errMsg:   "bad latitude",
		},
		{
			name:     "bad moment exponent",
			text:     corrupt(3, "23 ", "XX "),
			wantLine: 4,
			errMsg:   `bad moment exponent "XX"`,
		},
		{
			name: "missing scalar moment",
			text: ndkText([]string{
				ndkBlock1[0], ndkBlock1[1], ndkBlock1[2], ndkBlock1[3],
				"V10   1.581 56",
			}),
			wantLine: 5,
			errMsg:   "missing scalar moment",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNdk(strings.NewReader(tt.text))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)

			var pe *ParseError
			require.True(t, errors.As(err, &pe), "expected a parse error, got %T", err)
			assert.Equal(t, tt.wantLine, pe.Line)
		})
	}
}

func TestNdkMagnitudePreference(t *testing.T) {
	tests := []struct {
		name     string
		ev       NdkEvent
		wantMag  float64
		wantType string
	}{
		{name: "moment magnitude wins", ev: NdkEvent{Mb: 5.0, Ms: 5.2, Mw: 5.5}, wantMag: 5.5, wantType: "mw"},
		{name: "surface wave next", ev: NdkEvent{Mb: 5.0, Ms: 5.2}, wantMag: 5.2, wantType: "ms"},
		{name: "body wave last", ev: NdkEvent{Mb: 5.0}, wantMag: 5.0, wantType: "mb"},
		{name: "nothing reported", ev: NdkEvent{}, wantMag: 0, wantType: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantMag, tt.ev.Magnitude(), 1e-9)
			assert.Equal(t, tt.wantType, tt.ev.MagnitudeType())
		})
	}
}

func TestMomentMagnitude(t *testing.T) {
	// Mw = 2/3 * log10(M0) - 10.7, M0 in dyne-cm.
	assert.InDelta(t, 4.712, momentMagnitude(1.312, 23), 0.001)
	assert.InDelta(t, 9.0, momentMagnitude(3.55, 29), 0.02)
}
