package core

import (
	"fmt"
	"strings"
)

// Rule is a life-like cellular automaton rule in birth/survival form.
// Birth[n] reports whether a dead cell with n live neighbours becomes alive;
// Survive[n] whether a live cell with n live neighbours stays alive.
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

// ParseRule parses rules written as "B3/S23". The order of the two parts
// does not matter and either digit list may be empty ("B2/S").
func ParseRule(s string) (Rule, error) {
	var r Rule
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return r, fmt.Errorf("rule %q: expected B<digits>/S<digits>", s)
	}

	var seenB, seenS bool
	for _, p := range parts {
		if p == "" {
			return r, fmt.Errorf("rule %q: empty part", s)
		}
		var dst *[9]bool
		switch p[0] {
		case 'B':
			if seenB {
				return r, fmt.Errorf("rule %q: duplicate B part", s)
			}
			seenB, dst = true, &r.Birth
		case 'S':
			if seenS {
				return r, fmt.Errorf("rule %q: duplicate S part", s)
			}
			seenS, dst = true, &r.Survive
		default:
			return r, fmt.Errorf("rule %q: part %q must start with B or S", s, p)
		}
		for _, ch := range p[1:] {
			if ch < '0' || ch > '8' {
				return r, fmt.Errorf("rule %q: invalid neighbour count %q", s, ch)
			}
			dst[ch-'0'] = true
		}
	}
	return r, nil
}

// MustParseRule is like ParseRule but panics on error.
// Intended for package-level rule tables.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

// String returns the rule in canonical B/S notation.
func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteByte('B')
	for n, on := range r.Birth {
		if on {
			sb.WriteByte(byte('0' + n))
		}
	}
	sb.WriteString("/S")
	for n, on := range r.Survive {
		if on {
			sb.WriteByte(byte('0' + n))
		}
	}
	return sb.String()
}

// Next returns the state of a cell in the following generation.
func (r Rule) Next(alive bool, neighbours int) bool {
	if alive {
		return r.Survive[neighbours]
	}
	return r.Birth[neighbours]
}
