package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

func TestNewCity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "canonical spelling", input: "Nablus", expected: "Nablus"},
		{name: "lower case is normalized", input: "ramallah", expected: "Ramallah"},
		{name: "surrounding spaces are ignored", input: "  HEBRON ", expected: "Hebron"},
		{name: "empty input means no city", input: "", expected: ""},
		{name: "blank input means no city", input: "   ", expected: ""},
		{name: "unknown city", input: "Atlantis", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city, err := kernel.NewCity(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.True(t, city.IsZero())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, city.String())
			assert.Equal(t, tt.expected == "", city.IsZero())
		})
	}
}

func TestCity_IsEqual(t *testing.T) {
	assert.True(t, kernel.MustCity("jenin").IsEqual(kernel.MustCity("Jenin")))
	assert.False(t, kernel.MustCity("Jenin").IsEqual(kernel.MustCity("Tubas")))
	assert.True(t, kernel.City{}.IsEqual(kernel.City{}))
}

func TestMustCity_PanicsOnUnknownName(t *testing.T) {
	assert.Panics(t, func() { kernel.MustCity("Gotham") })
}

func TestCities_ReturnsCopy(t *testing.T) {
	list := kernel.Cities()
	require.NotEmpty(t, list)

	list[0] = "Changed"

	assert.NotEqual(t, "Changed", kernel.Cities()[0])
}
