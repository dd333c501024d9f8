package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineType(t *testing.T) {
	tests := []struct {
		in      string
		want    LineType
		wantErr bool
	}{
		{"double", LineDouble, false},
		{"Single", LineSingle, false},
		{" rounded ", LineRounded, false},
		{"heavy", LineHeavy, false},
		{"ascii", LineASCII, false},
		{"hidden", LineHidden, false},
		{"dotted", LineDouble, true},
		{"", LineDouble, true},
	}

	for _, tt := range tests {
		got, err := ParseLineType(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, got, mustParse(t, got.String()), "String round trips")
	}
}

func mustParse(t *testing.T, name string) LineType {
	t.Helper()
	lt, err := ParseLineType(name)
	require.NoError(t, err)
	return lt
}

func TestLineType_Border(t *testing.T) {
	assert.Equal(t, "╔", LineDouble.Border().TopLeft)
	assert.Equal(t, "═", LineDouble.Border().Top)
	assert.Equal(t, "║", LineDouble.Border().Left)
	assert.Equal(t, "┌", LineSingle.Border().TopLeft)
	assert.Equal(t, "╭", LineRounded.Border().TopLeft)
	assert.Equal(t, "┏", LineHeavy.Border().TopLeft)
	assert.Equal(t, "+", LineASCII.Border().TopLeft)
	assert.Equal(t, " ", LineHidden.Border().TopLeft)

	assert.Equal(t, "unknown", LineType(42).String())
	assert.Equal(t, LineDouble.Border(), LineType(42).Border())
}
