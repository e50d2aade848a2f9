package prediction

import (
	"strconv"
	"strings"
)

const confidenceSep = '|'

// NormalizeCandidate strips an appended confidence value from a candidate
// token ("entity|0.87" becomes "entity"). The suffix is only removed when it
// parses as a number, so identifiers that legitimately contain '|' survive.
func NormalizeCandidate(tok string) string {
	i := strings.LastIndexByte(tok, confidenceSep)
	if i <= 0 {
		return tok
	}
	if _, err := strconv.ParseFloat(tok[i+1:], 64); err != nil {
		return tok
	}
	return tok[:i]
}

// trimEOL removes a trailing "\n" or "\r\n".
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
