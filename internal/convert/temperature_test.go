package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCelsiusToFahrenheit(t *testing.T) {
	tests := []struct {
		name    string
		celsius float64
		want    float64
	}{
		{name: "freezing", celsius: 0, want: 32},
		{name: "boiling", celsius: 100, want: 212},
		{name: "equal point", celsius: -40, want: -40},
		{name: "body", celsius: 37, want: 98.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CelsiusToFahrenheit(tt.celsius), 1e-9)
		})
	}
}

func TestFahrenheitToCelsius(t *testing.T) {
	tests := []struct {
		name       string
		fahrenheit float64
		want       float64
	}{
		{name: "freezing", fahrenheit: 32, want: 0},
		{name: "boiling", fahrenheit: 212, want: 100},
		{name: "equal point", fahrenheit: -40, want: -40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, FahrenheitToCelsius(tt.fahrenheit), 1e-9)
		})
	}
}

func TestParseScale(t *testing.T) {
	for _, in := range []string{"C", "c", " celsius ", "Celsius"} {
		s, err := ParseScale(in)
		require.NoError(t, err)
		assert.Equal(t, Celsius, s)
	}
	for _, in := range []string{"F", "f", "FAHRENHEIT"} {
		s, err := ParseScale(in)
		require.NoError(t, err)
		assert.Equal(t, Fahrenheit, s)
	}

	_, err := ParseScale("K")
	assert.ErrorIs(t, err, ErrUnknownScale)
}

func TestConvert(t *testing.T) {
	c, f, err := Convert(100, Celsius)
	require.NoError(t, err)
	assert.InDelta(t, 100, c, 1e-9)
	assert.InDelta(t, 212, f, 1e-9)

	c, f, err = Convert(32, Fahrenheit)
	require.NoError(t, err)
	assert.InDelta(t, 0, c, 1e-9)
	assert.InDelta(t, 32, f, 1e-9)

	_, _, err = Convert(1, Scale("K"))
	assert.ErrorIs(t, err, ErrUnknownScale)
}
