package webvtt

import (
	"strings"
	"time"
	"unicode"
)

const arrow = "-->"

// parseCueTimings parses "<start> --> <end> <settings>". A false result means
// the line is not a timing line.
func parseCueTimings(line string) (time.Duration, time.Duration, CueSettings, bool) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	start, line, ok := parseTimestamp(line)
	if !ok {
		return 0, 0, CueSettings{}, false
	}

	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	line, ok = strings.CutPrefix(line, arrow)
	if !ok {
		return 0, 0, CueSettings{}, false
	}
	line = strings.TrimLeftFunc(line, unicode.IsSpace)

	end, line, ok := parseTimestamp(line)
	if !ok {
		return 0, 0, CueSettings{}, false
	}

	return start, end, parseSettings(line), true
}

// parseSettings reads space separated key:value cue settings. Unknown keys
// and malformed tokens are ignored.
func parseSettings(line string) CueSettings {
	var settings CueSettings

	for _, token := range strings.Split(line, " ") {
		key, value, found := strings.Cut(token, ":")
		if !found || key == "" || value == "" {
			continue
		}

		switch key {
		case "region":
			settings.Region = strings.Clone(value)
		case "vertical":
			if dir, ok := ParseWritingDirection(value); ok {
				settings.WritingDirection = dir
			}
		}
	}

	// regions only apply to horizontal cues
	if settings.WritingDirection != Horizontal {
		settings.Region = ""
	}

	return settings
}
