package asset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CommentPrefix marks a track line to skip
const CommentPrefix = "#"

// TrackEntry is one spawn: a kind and its x offset from the previous entry
type TrackEntry struct {
	Kind   string
	XDelta int
}

// ParseTrack reads "kind,x_delta" lines
// Blank lines and comment lines are skipped; anything else malformed is an error
func ParseTrack(r io.Reader) ([]TrackEntry, error) {
	var entries []TrackEntry
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}

		kind, delta, ok := strings.Cut(line, ",")
		kind = strings.TrimSpace(kind)
		if !ok || kind == "" {
			return nil, fmt.Errorf("line %d %q: %w", lineNum, line, ErrTrackFormat)
		}
		d, err := strconv.Atoi(strings.TrimSpace(delta))
		if err != nil {
			return nil, fmt.Errorf("line %d %q: %w", lineNum, line, ErrTrackFormat)
		}
		entries = append(entries, TrackEntry{Kind: kind, XDelta: d})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading track: %w", err)
	}
	return entries, nil
}
