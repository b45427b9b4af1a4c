package uatoken_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uatoken/pkg/uatoken"
)

func TestParseConstraint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		expected uatoken.Constraint
	}{
		{"5.0", uatoken.Constraint{Op: uatoken.OpEqual, Version: "5.0"}},
		{"=5.0", uatoken.Constraint{Op: uatoken.OpEqual, Version: "5.0"}},
		{"== 5.0", uatoken.Constraint{Op: uatoken.OpEqual, Version: "5.0"}},
		{"<5.0", uatoken.Constraint{Op: uatoken.OpLess, Version: "5.0"}},
		{"<= 5.0", uatoken.Constraint{Op: uatoken.OpLessOrEqual, Version: "5.0"}},
		{" > 5.0 ", uatoken.Constraint{Op: uatoken.OpGreater, Version: "5.0"}},
		{">=5.0", uatoken.Constraint{Op: uatoken.OpGreaterOrEqual, Version: "5.0"}},
		{"~> 8.1", uatoken.Constraint{Op: uatoken.OpPessimistic, Version: "8.1"}},
		{"", uatoken.Constraint{Op: uatoken.OpEqual, Version: ""}},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, uatoken.ParseConstraint(tc.in))
		})
	}
}

func TestConstraint_Match(t *testing.T) {
	t.Parallel()

	tests := []struct {
		constraint string
		version    string
		expected   bool
	}{
		{"5.0", "5.0", true},
		{"5.0", "5.01", false},
		{"<6.0", "5.0", true},
		{">=5.0", "5.0", true},
		{">5.0", "5.0", false},
		{"~>8.1", "8.1", true},
		{"~>8.1", "8.9.9", true},
		{"~>8.1", "9.0", false},
		{"~>8.2.0.100", "8.2.0.132", true},
		{"~>8.2.0.100", "8.2.1", false},
		{"~>7", "99", true},
		{"~>7", "6.9", false},
		{"~>a.b", "a.c", true},
		// Lexicographic, not numeric.
		{">9.0", "10.0", false},
		{"<9.0", "10.0", true},
	}

	for _, tc := range tests {
		got := uatoken.ParseConstraint(tc.constraint).Match(tc.version)
		assert.Equal(t, tc.expected, got, "%q matches %q", tc.version, tc.constraint)
	}
}
