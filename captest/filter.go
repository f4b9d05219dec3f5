package captest

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/exp/slices"
)

// Filter is a function that can determine whether to run a specific check or not.
type Filter func(CheckID) bool

// RegexFilters selects checks by name: a check runs if it matches at least one
// MustMatch pattern (when any are given) and no MustNotMatch pattern.
type RegexFilters struct {
	MustMatch    CheckIDPatternList
	MustNotMatch CheckIDPatternList
}

func (r RegexFilters) Match(id CheckID) bool {
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(id, true)) &&
		!r.MustNotMatch.AnyMatch(id, false)
}

// CheckIDPattern is a slash-delimited list of regular expressions, each applied
// to the corresponding component of a CheckID.
type CheckIDPattern []*regexp.Regexp

func (p CheckIDPattern) Match(id CheckID, includeParents bool) bool {
	min := len(p)
	if min > len(id) {
		if !includeParents {
			return false
		}
		min = len(id)
	}
	for i := 0; i < min; i++ {
		if !p[i].MatchString(id[i]) {
			return false
		}
	}
	return true
}

func (p CheckIDPattern) String() string {
	ss := make([]string, 0, len(p))
	for _, c := range p {
		ss = append(ss, c.String())
	}
	return strings.Join(ss, "/")
}

func ParseCheckIDPattern(s string) (CheckIDPattern, error) {
	parts := strings.Split(s, "/")
	ret := make(CheckIDPattern, 0, len(parts))
	for _, part := range parts {
		rx, err := regexp.Compile(part)
		if err != nil {
			return nil, fmt.Errorf("invalid regex: %w", err)
		}
		ret = append(ret, rx)
	}
	return ret, nil
}

type CheckIDPatternList []CheckIDPattern

func (l CheckIDPatternList) String() string {
	ss := make([]string, 0, len(l))
	for _, p := range l {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (l *CheckIDPatternList) Set(value string) error {
	p, err := ParseCheckIDPattern(value)
	if err != nil {
		return err
	}
	*l = append(*l, p)
	return nil
}

func (l CheckIDPatternList) IsDefined() bool {
	return len(l) != 0
}

func (l CheckIDPatternList) AnyMatch(id CheckID, includeParents bool) bool {
	return slices.ContainsFunc(l, func(p CheckIDPattern) bool {
		return p.Match(id, includeParents)
	})
}

// PrintFilterDescription summarizes the active filters at the start of a run.
func PrintFilterDescription(filters RegexFilters) {
	if filters.MustMatch.IsDefined() || filters.MustNotMatch.IsDefined() {
		fmt.Println("Some checks will be skipped based on the filter criteria for this run:")
		if filters.MustMatch.IsDefined() {
			fmt.Printf("  skip any not matching %s\n", filters.MustMatch)
		}
		if filters.MustNotMatch.IsDefined() {
			fmt.Printf("  skip any matching %s\n", filters.MustNotMatch)
		}
		fmt.Println()
	}
}
