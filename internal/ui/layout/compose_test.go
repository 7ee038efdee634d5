package layout

import (
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name   string
		blocks []Block
		want   []string
	}{
		{
			name: "empty",
			want: []string{"      ", "      ", "      "},
		},
		{
			name: "placed",
			blocks: []Block{
				{At: image.Pt(1, 0), Content: "ab"},
				{At: image.Pt(4, 1), Content: "cd\nef"},
			},
			want: []string{" ab   ", "    cd", "    ef"},
		},
		{
			name: "same row sorted by column",
			blocks: []Block{
				{At: image.Pt(4, 0), Content: "yy"},
				{At: image.Pt(0, 0), Content: "xx"},
			},
			want: []string{"xx  yy", "      ", "      "},
		},
		{
			name: "overlap dropped",
			blocks: []Block{
				{At: image.Pt(0, 0), Content: "abc"},
				{At: image.Pt(2, 0), Content: "zz"},
			},
			want: []string{"abc   ", "      ", "      "},
		},
		{
			name: "off the edge dropped whole",
			blocks: []Block{
				{At: image.Pt(5, 0), Content: "a\nbb"},
				{At: image.Pt(0, 2), Content: "q\nr"},
			},
			want: []string{"      ", "      ", "      "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Split(Compose(6, 3, tt.blocks), "\n")
			require.Len(t, got, 3)
			assert.Equal(t, tt.want, got)
		})
	}
}
