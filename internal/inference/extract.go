package inference

import (
	"fmt"
	"strings"
)

// ExtractJSONObject returns the first balanced top-level {...} block of raw.
// Braces inside JSON string literals, including escaped quotes, do not count.
func ExtractJSONObject(raw string) (string, error) {
	start := strings.IndexByte(raw, '{')
	for start >= 0 {
		if end := matchingBrace(raw, start); end >= 0 {
			return raw[start : end+1], nil
		}

		next := strings.IndexByte(raw[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}

	return "", fmt.Errorf("%w: no JSON object found in %q", ErrInvalidFormat, raw)
}

// matchingBrace returns the index of the brace closing the one at start,
// or -1 when the block is never closed.
func matchingBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
