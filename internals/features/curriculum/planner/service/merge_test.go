package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContiguousRuns(t *testing.T) {
	cases := []struct {
		name string
		keys []string
		want []Run
	}{
		{"empty", nil, nil},
		{"single", []string{"a"}, []Run{{0, 0}}},
		{"grouped", []string{"a", "a", "b", "b", "b", "c"}, []Run{{0, 1}, {2, 4}, {5, 5}}},
		{"alternating", []string{"a", "b", "a"}, []Run{{0, 0}, {1, 1}, {2, 2}}},
		{"repeated key not adjacent", []string{"a", "a", "b", "a"}, []Run{{0, 1}, {2, 2}, {3, 3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ContiguousRuns(len(tc.keys), func(i int) string { return tc.keys[i] })
			assert.Equal(t, tc.want, got)
		})
	}
}
