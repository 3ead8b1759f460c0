package switchback_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/switchbacklabs/switchback"
)

func TestByKeyUnique(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    []switchback.Key
		expected []switchback.Key
	}{
		{"Nil", nil, switchback.ByKey{}},
		{"Zero-Value", []switchback.Key{}, []switchback.Key{}},
		{"None", make([]switchback.Key, 0), []switchback.Key{}},
		{"Many-Zero", make([]switchback.Key, 99), []switchback.Key{}},
		{"Sorted", []switchback.Key{"a", "c", "e", "d"}, []switchback.Key{"a", "c", "d", "e"}},
		{"Uniqued", []switchback.Key{"a", "a", "a"}, []switchback.Key{"a"}},
		{"Filtered-Zero-Value", []switchback.Key{"", "a", "", "b", ""}, []switchback.Key{"a", "b"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			actual := switchback.ByKey(tc.input).UniqueSort()
			require.Equal(t, tc.expected, []switchback.Key(actual))
		})
	}
}
