package reconciler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAreas(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []string
	}{
		{name: "empty", spec: "", want: nil},
		{name: "whitespace only", spec: "   ", want: nil},
		{name: "single code", spec: "25", want: []string{"25"}},
		{name: "list", spec: "25,26,27", want: []string{"25", "26", "27"}},
		{name: "range", spec: "25-28", want: []string{"25", "26", "27", "28"}},
		{
			name: "range plus code",
			spec: "25-27,40",
			want: []string{"25", "26", "27", "40"},
		},
		{name: "reversed range", spec: "28-25", want: []string{"25", "26", "27", "28"}},
		{name: "duplicates collapsed", spec: "25,25-26", want: []string{"25", "26"}},
		{name: "spaces tolerated", spec: " 25 , 26 - 27 ", want: []string{"25", "26", "27"}},
		{name: "non-numeric ignored", spec: "25,abc,26", want: []string{"25", "26"}},
		{name: "broken range ignored", spec: "25-x,40", want: []string{"40"}},
		{name: "empty parts ignored", spec: "25,,26,", want: []string{"25", "26"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAreas(tt.spec))
		})
	}
}

func TestAreaFilterMatches(t *testing.T) {
	filter := newAreaFilter([]string{"25", "26"})

	assert.True(t, filter.matches([]string{"25"}))
	assert.True(t, filter.matches([]string{"40", "26"}))
	assert.False(t, filter.matches([]string{"40"}))
	assert.False(t, filter.matches(nil))
}

func TestAreaFilterNilWhenEmpty(t *testing.T) {
	assert.Nil(t, newAreaFilter(nil))
	assert.Nil(t, newAreaFilter([]string{}))
}
