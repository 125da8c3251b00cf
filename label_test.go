package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name    string
		members []string
		want    []string
	}{
		{
			name:    "alreadySorted",
			members: []string{"q0", "q1"},
			want:    []string{"q0", "q1"},
		},
		{
			name:    "reversed",
			members: []string{"q2", "q1", "q0"},
			want:    []string{"q0", "q1", "q2"},
		},
		{
			name:    "lexicographicNotNumeric",
			members: []string{"q2", "q10"},
			want:    []string{"q10", "q2"},
		},
		{
			name:    "singleton",
			members: []string{"q0"},
			want:    []string{"q0"},
		},
		{
			name:    "empty",
			members: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonical(tt.members))
		})
	}

	t.Run("neverNil", func(t *testing.T) {
		assert.NotNil(t, Canonical(nil))
		assert.NotNil(t, Canonical([]string{}))
	})

	t.Run("inputNotMutated", func(t *testing.T) {
		members := []string{"q1", "q0"}
		_ = Canonical(members)
		assert.Equal(t, []string{"q1", "q0"}, members)
	})
}

func TestLabel(t *testing.T) {
	t.Run("orderIndependent", func(t *testing.T) {
		assert.Equal(t, Label([]string{"q0", "q1"}), Label([]string{"q1", "q0"}))
	})

	t.Run("commaJoined", func(t *testing.T) {
		assert.Equal(t, "q0,q1,q2", Label([]string{"q2", "q0", "q1"}))
	})

	t.Run("singleton", func(t *testing.T) {
		assert.Equal(t, "q0", Label([]string{"q0"}))
	})
}
