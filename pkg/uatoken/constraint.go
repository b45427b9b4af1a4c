package uatoken

import (
	"regexp"
	"strconv"
	"strings"
)

// Operator is a version comparison operator.
type Operator string

const (
	OpEqual          Operator = "=="
	OpLess           Operator = "<"
	OpLessOrEqual    Operator = "<="
	OpGreater        Operator = ">"
	OpGreaterOrEqual Operator = ">="
	// OpPessimistic accepts versions from the given one up to, but not
	// including, the next release of its second-to-last segment:
	// "~>8.1" means ">=8.1" and "<9".
	OpPessimistic Operator = "~>"
)

var operatorRegex = regexp.MustCompile(`^[><=]=?`)

// Constraint is a parsed version constraint such as ">=5.0".
//
// Comparison is lexicographic on the raw strings, not numeric: "9.0" is
// greater than "10.0". Callers relying on ordering across a change in the
// number of digits must account for that.
type Constraint struct {
	Op      Operator
	Version string
}

// ParseConstraint parses "[operator]version". The operator is one of
// "<", "<=", ">", ">=", "=", "==" or "~>" and defaults to "==". Whitespace
// around the operator and the version is ignored.
func ParseConstraint(s string) Constraint {
	s = strings.TrimSpace(s)

	if rest, ok := strings.CutPrefix(s, string(OpPessimistic)); ok {
		return Constraint{Op: OpPessimistic, Version: strings.TrimSpace(rest)}
	}

	op := OpEqual
	if m := operatorRegex.FindString(s); m != "" {
		op = Operator(m)
		s = strings.TrimSpace(s[len(m):])
	}
	if op == "=" {
		op = OpEqual
	}
	return Constraint{Op: op, Version: s}
}

// Match reports whether version satisfies the constraint.
func (c Constraint) Match(version string) bool {
	switch c.Op {
	case OpLess:
		return version < c.Version
	case OpLessOrEqual:
		return version <= c.Version
	case OpGreater:
		return version > c.Version
	case OpGreaterOrEqual:
		return version >= c.Version
	case OpPessimistic:
		if version < c.Version {
			return false
		}
		upper, ok := pessimisticBound(c.Version)
		return !ok || version < upper
	default:
		return version == c.Version
	}
}

// pessimisticBound drops the last segment and bumps the one before it:
// "8.2.0.100" -> "8.2.1", "8.1" -> "9". A single segment has no bound.
func pessimisticBound(v string) (string, bool) {
	segs := strings.Split(v, ".")
	if len(segs) < 2 {
		return "", false
	}
	segs = segs[:len(segs)-1]
	n, err := strconv.Atoi(segs[len(segs)-1])
	if err != nil {
		return "", false
	}
	segs[len(segs)-1] = strconv.Itoa(n + 1)
	return strings.Join(segs, "."), true
}
