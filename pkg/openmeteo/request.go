package openmeteo

import (
	"fmt"
	"net/url"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// GeocodeRequest defines the input for a city name lookup
type GeocodeRequest struct {
	Name        string // City name to search for
	CountryCode string // Optional ISO-3166 country code filter
	State       string // Optional administrative region filter
	Language    string // Response language, defaults to "en"
}

// CurrentRequest defines the input for a current conditions query
type CurrentRequest struct {
	Latitude  float64
	Longitude float64
	Units     string // "metric" or "imperial"
}

// DailyRequest defines the input for a daily forecast query
type DailyRequest struct {
	Latitude  float64
	Longitude float64
	Days      int
	Units     string // "metric" or "imperial"
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
)

var (
	currentVariables = []string{
		"temperature_2m",
		"relative_humidity_2m",
		"is_day",
		"precipitation",
		"weather_code",
		"wind_speed_10m",
		"wind_direction_10m",
	}
	dailyVariables = []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_sum",
		"wind_speed_10m_max",
	}
)

///////////////////////////////////////////////////////////////////////////////
// METHODS

// Values converts GeocodeRequest to URL query parameters
func (r *GeocodeRequest) Values() url.Values {
	result := url.Values{}
	result.Set("name", r.Name)
	result.Set("count", "10")
	result.Set("format", "json")
	if r.Language != "" {
		result.Set("language", r.Language)
	} else {
		result.Set("language", "en")
	}
	return result
}

// Values converts CurrentRequest to URL query parameters
func (r *CurrentRequest) Values() url.Values {
	result := url.Values{}
	result.Set("latitude", fmt.Sprint(r.Latitude))
	result.Set("longitude", fmt.Sprint(r.Longitude))
	result.Set("current", strings.Join(currentVariables, ","))
	result.Set("timezone", "auto")
	setUnits(result, r.Units)
	return result
}

// Values converts DailyRequest to URL query parameters
func (r *DailyRequest) Values() url.Values {
	result := url.Values{}
	result.Set("latitude", fmt.Sprint(r.Latitude))
	result.Set("longitude", fmt.Sprint(r.Longitude))
	result.Set("daily", strings.Join(dailyVariables, ","))
	result.Set("forecast_days", fmt.Sprint(r.Days))
	result.Set("timezone", "auto")
	setUnits(result, r.Units)
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func setUnits(values url.Values, units string) {
	if units == UnitsImperial {
		values.Set("temperature_unit", "fahrenheit")
		values.Set("wind_speed_unit", "mph")
		values.Set("precipitation_unit", "inch")
	} else {
		values.Set("temperature_unit", "celsius")
		values.Set("wind_speed_unit", "ms")
		values.Set("precipitation_unit", "mm")
	}
}
