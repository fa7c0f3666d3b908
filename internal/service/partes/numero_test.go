package partes

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearSuffix(t *testing.T) {
	assert.Equal(t, "24", YearSuffix(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "09", YearSuffix(time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "00", YearSuffix(time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestNextNumero(t *testing.T) {
	tests := []struct {
		name   string
		ultimo string
		want   string
	}{
		{name: "empty bucket starts at 1", ultimo: "", want: "00001/24"},
		{name: "increments the last numero", ultimo: "00006/24", want: "00007/24"},
		{name: "carries across the padding", ultimo: "00099/24", want: "00100/24"},
		{name: "grows past five digits", ultimo: "99999/24", want: "100000/24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextNumero(tt.ultimo, "24")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextNumero_Format(t *testing.T) {
	formato := regexp.MustCompile(`^\d{5,}/\d{2}$`)

	for _, ultimo := range []string{"", "00001/24", "00450/24", "09999/24"} {
		got, err := NextNumero(ultimo, "24")
		require.NoError(t, err)
		assert.Regexp(t, formato, got)
	}
}

// A numero we cannot parse must abort the create, never restart the bucket.
func TestNextNumero_Malformed(t *testing.T) {
	_, err := NextNumero("ABC/24", "24")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformado")
}

// Same last numero, same result; races are for the unique index to resolve.
func TestNextNumero_Deterministic(t *testing.T) {
	primero, err := NextNumero("00042/24", "24")
	require.NoError(t, err)

	segundo, err := NextNumero("00042/24", "24")
	require.NoError(t, err)

	assert.Equal(t, primero, segundo)
}
