package framework

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter decides whether a test should be included in a run, given its
// "suite/test" path. Filtering happens at registration time, before a suite
// is run, so the runner's lifecycle and counters are unaffected by it.
type Filter func(path string) bool

// RegexFilters selects tests by regular expression, in the usual
// run/skip form: a test is included if it matches at least one MustMatch
// pattern (or none are defined) and matches no MustNotMatch pattern.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) AsFilter(path string) bool {
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(path)) &&
		!r.MustNotMatch.AnyMatch(path)
}

// RegexList is a list of compiled patterns. It implements flag.Value so it
// can be populated from a repeatable command-line option.
type RegexList struct {
	patterns []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
