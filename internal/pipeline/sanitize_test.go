package pipeline_test

import (
	"strings"
	"testing"

	"github.com/kurochkinivan/video_sorter/internal/pipeline"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "clean", in: "Team A", want: "Team A"},
		{name: "slash", in: "Ads/Q1", want: "Ads Q1"},
		{name: "colon", in: "Team:A", want: "Team A"},
		{name: "asterisk", in: "Camp*1", want: "Camp 1"},
		{name: "backslash", in: `a\b`, want: "a b"},
		{name: "all hostile", in: `<>:"/\|?*`, want: "         "},
		{name: "empty", in: "", want: ""},
		{name: "unicode kept", in: "Победитель?", want: "Победитель "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := pipeline.Sanitize(tt.in)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, pipeline.Sanitize(got), "sanitize must be idempotent")
			assert.False(t, strings.ContainsAny(got, `<>:"/\|?*`))
		})
	}
}
