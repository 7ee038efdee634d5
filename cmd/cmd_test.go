package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: ""},
		{in: "random", want: ""},
		{in: "Random", want: ""},
		{in: "To Decimal", want: "To Decimal"},
		{in: "to decimal", want: "To Decimal"},
		{in: "Ordering", want: "Ordering"},
		{in: "Long Division", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := resolveMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "To Decimal")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func execute(t *testing.T, in string, args ...string) string {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(in))
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestStatsAndReset(t *testing.T) {
	db := filepath.Join(t.TempDir(), "drillz.db")

	out := execute(t, "", "stats", "--db", db)
	assert.Contains(t, out, "Fractions high scores")
	assert.Contains(t, out, "Inches to Feet")
	assert.Contains(t, out, "No games played yet.")

	out = execute(t, "n\n", "reset", "--db", db)
	assert.Contains(t, out, "Aborted.")

	out = execute(t, "", "reset", "--yes", "--db", db)
	assert.Contains(t, out, "All records cleared.")
}

func TestVersion(t *testing.T) {
	out := execute(t, "", "version")
	assert.Equal(t, "drillz (devel)\n", out)
}
