package logtail

import "strings"

// Segment is one run of a line: either plain text or a bracketed tag.
type Segment struct {
	Text   string
	Tag    bool
	Closed bool // the tag's brackets balanced before end of line
}

// Name returns the lower-cased text between a closed tag's brackets, or ""
// for plain text and unclosed tags.
func (s Segment) Name() string {
	if !s.Tag || !s.Closed {
		return ""
	}
	return strings.ToLower(s.Text[1 : len(s.Text)-1])
}

// Tokenize splits line into alternating plain and tag segments. A tag starts
// at '[' and ends at the ']' that returns the nesting depth to zero; without
// one it runs to the end of the line.
func Tokenize(line string) []Segment {
	var segs []Segment
	for rest := line; rest != ""; {
		if rest[0] == '[' {
			end, closed := matchBracket(rest)
			segs = append(segs, Segment{Text: rest[:end], Tag: true, Closed: closed})
			rest = rest[end:]
			continue
		}
		end := strings.IndexByte(rest, '[')
		if end < 0 {
			end = len(rest)
		}
		segs = append(segs, Segment{Text: rest[:end]})
		rest = rest[end:]
	}
	return segs
}

// matchBracket expects s[0] == '['.
func matchBracket(s string) (int, bool) {
	depth := 1
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return len(s), false
}
