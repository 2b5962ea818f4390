package hook

import (
	"strconv"
	"strings"

	"github.com/embedlog/sinker/core"
)

type parsedLine struct {
	level     core.Level
	tag       string
	message   string
	millis    int64
	hasMillis bool
}

// parseLine interprets the "L (TIMESTAMP) TAG: MESSAGE" convention. When
// the line does not match, the whole line becomes the payload: with the
// parsed severity if at least the leading letter matched, otherwise with
// the fallback severity.
func parseLine(line string, fallback core.Level) parsedLine {
	p := parsedLine{level: fallback, message: line}
	if len(line) <= 4 || line[1] != ' ' {
		return p
	}
	level, ok := core.LevelFromLetter(line[0])
	if !ok {
		return p
	}
	p.level = level

	open := strings.IndexByte(line, '(')
	if open < 0 {
		return p
	}
	closing := strings.IndexByte(line[open:], ')')
	if closing < 0 {
		return p
	}
	closing += open
	colon := strings.IndexByte(line[closing:], ':')
	if colon < 0 || closing+1 >= len(line) {
		return p
	}
	colon += closing

	if ms, err := strconv.ParseInt(strings.TrimSpace(line[open+1:closing]), 10, 64); err == nil {
		p.millis = ms
		p.hasMillis = true
	}

	if line[closing+1] == ' ' {
		tagStart := closing + 2
		if tagStart < colon {
			p.tag = line[tagStart:colon]
		}
	}

	payloadStart := colon + 2 // skip ": "
	if payloadStart <= len(line) {
		p.message = line[payloadStart:]
	} else {
		// A bare "TAG:" line carries no message.
		p.message = ""
	}
	return p
}

// stripANSI removes CSI escape sequences ("\x1b[...m") from a line,
// covering the color prefixes and reset codes emitted by leveled console
// loggers.
func stripANSI(s string) string {
	if !strings.Contains(s, "\x1b[") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			end := strings.IndexByte(s[i:], 'm')
			if end >= 0 {
				i += end + 1
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
