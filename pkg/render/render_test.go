package render_test

import (
	"strings"
	"testing"

	// Packages
	chain "github.com/mutablelogic/go-toolchain/pkg/chain"
	render "github.com/mutablelogic/go-toolchain/pkg/render"
	assert "github.com/stretchr/testify/assert"
)

func Test_render_001(t *testing.T) {
	assert := assert.New(t)
	buf := new(strings.Builder)

	render.New(buf).Trace(chain.Trace{
		{Func: "add", Args: map[string]any{"a": float64(12), "b": float64(8)}, Output: float64(20)},
		{Func: "multiply", Args: map[string]any{"a": float64(20), "b": float64(8)}, Output: float64(160)},
	})

	output := buf.String()
	assert.Contains(output, "Step 1: add")
	assert.Contains(output, "Step 2: multiply")
	assert.Contains(output, "20")
	assert.Contains(output, "160")
}

func Test_render_002(t *testing.T) {
	assert := assert.New(t)
	buf := new(strings.Builder)

	// Rendering stops after the first errored entry
	render.New(buf).Trace(chain.Trace{
		{Func: "divide", Args: map[string]any{"a": float64(10), "b": float64(0)}, Error: "tool error"},
		{Func: "add", Args: map[string]any{"a": float64(1), "b": float64(1)}, Output: float64(2)},
	})

	output := buf.String()
	assert.Contains(output, "Step 1: divide")
	assert.Contains(output, "tool error")
	assert.NotContains(output, "Step 2")
}

func Test_render_003(t *testing.T) {
	assert := assert.New(t)
	buf := new(strings.Builder)

	report := `{"location":{"name":"London","country":"United Kingdom","timezone":"Europe/London"},` +
		`"current":{"observed_at":"2025-01-15T12:00","temperature":7.5,"temperature_unit":"°C",` +
		`"relative_humidity":82,"wind_speed":5.1,"wind_direction":230,"weather_description":"Overcast"},` +
		`"units":"metric","source":"Open-Meteo"}`
	render.New(buf).Trace(chain.Trace{
		{Func: "get_current_weather", Args: map[string]any{"city": "London"}, Output: report},
	})

	output := buf.String()
	assert.Contains(output, "London, United Kingdom")
	assert.Contains(output, "7.5°C")
	assert.Contains(output, "Overcast")
}

func Test_render_004(t *testing.T) {
	assert := assert.New(t)
	buf := new(strings.Builder)

	report := map[string]any{
		"location": map[string]any{"name": "London", "country": "United Kingdom"},
		"daily": []map[string]any{
			{"date": "2025-01-15", "weather_description": "Slight snow", "temp_min": -6.0, "temp_max": -1.0},
			{"date": "2025-01-16", "weather_description": "Overcast", "temp_min": -4.0, "temp_max": 0.5},
		},
	}
	render.New(buf).Trace(chain.Trace{
		{Func: "get_daily_forecast", Args: map[string]any{"city": "London"}, Output: report},
	})

	output := buf.String()
	assert.Contains(output, "2025-01-15")
	assert.Contains(output, "Slight snow")
	assert.Contains(output, "2025-01-16")
	assert.Contains(output, "Overcast")
}

func Test_render_005(t *testing.T) {
	assert := assert.New(t)
	buf := new(strings.Builder)

	render.New(buf).Status(chain.Succeeded)
	assert.Contains(buf.String(), "succeeded")

	buf.Reset()
	render.New(buf).Status(chain.Failed)
	assert.Contains(buf.String(), "failed")
}
