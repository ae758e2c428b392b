package stringobj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	t.Parallel()

	type put struct {
		key   string
		value interface{}
	}

	tests := []struct {
		desc string
		puts []put
		want string
	}{
		{
			desc: "empty",
			want: "{}",
		},
		{
			desc: "sorted by key",
			puts: []put{
				{"target", "%1"},
				{"detached", true},
				{"width", 80},
			},
			want: "{detached: true, target: %1, width: 80}",
		},
		{
			desc: "skip zero",
			puts: []put{
				{"name", ""},
				{"height", 0},
				{"detached", false},
				{"shell", nil},
			},
			want: "{}",
		},
		{
			desc: "mixed",
			puts: []put{
				{"name", "work"},
				{"dir", ""},
				{"windows", []string{}},
			},
			want: "{name: work, windows: []}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var b Builder
			for _, i := range tt.puts {
				b.Put(i.key, i.value)
			}

			assert.Equal(t, tt.want, b.String())
		})
	}
}
