package catalog

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"
)

// Detect sniffs catalog content and reports its kind. Only the first
// non-blank line is examined: a CSV header naming the SOD event columns
// means KindSod, a fixed-width hypocenter line with a parseable origin
// time means KindNdk.
func Detect(data []byte) Kind {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		switch {
		case looksLikeSodHeader(line):
			return KindSod
		case looksLikeNdkHypocenter(line):
			return KindNdk
		default:
			return KindUnknown
		}
	}
	return KindUnknown
}

func looksLikeSodHeader(line string) bool {
	if !strings.Contains(line, ",") {
		return false
	}
	present := make(map[string]bool)
	for _, name := range strings.Split(line, ",") {
		present[strings.ToLower(strings.TrimSpace(name))] = true
	}
	return present["time"] && present["latitude"] && present["longitude"]
}

func looksLikeNdkHypocenter(line string) bool {
	if len(line) < 48 {
		return false
	}
	_, err := parseNdkTime(columns(line, 5, 15), columns(line, 16, 26))
	return err == nil
}

// ReadEvents sniffs the stream's format and parses it with the matching
// parser. Unrecognized content fails with ErrUnknownCatalog.
func ReadEvents(r io.Reader) ([]Event, Kind, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, KindUnknown, err
	}

	switch kind := Detect(data); kind {
	case KindSod:
		parsed, err := ParseSod(bytes.NewReader(data))
		if err != nil {
			return nil, kind, err
		}
		events := make([]Event, len(parsed))
		for i, ev := range parsed {
			events[i] = ev
		}
		return events, kind, nil
	case KindNdk:
		parsed, err := ParseNdk(bytes.NewReader(data))
		if err != nil {
			return nil, kind, err
		}
		events := make([]Event, len(parsed))
		for i, ev := range parsed {
			events[i] = ev
		}
		return events, kind, nil
	default:
		return nil, KindUnknown, ErrUnknownCatalog
	}
}

// ReadFile reads and parses a catalog file.
func ReadFile(path string) ([]Event, Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, KindUnknown, err
	}
	defer f.Close()
	return ReadEvents(f)
}
