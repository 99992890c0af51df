package openmeteo

import (
	"encoding/json"
)

///////////////////////////////////////////////////////////////////////////////
// API RESPONSE TYPES

// Location is one geocoding result
type Location struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Admin1      string  `json:"admin1"`
	Population  int64   `json:"population"`
}

// CurrentResponse is the forecast API response for current conditions
type CurrentResponse struct {
	Timezone string `json:"timezone"`
	Current  struct {
		Time             string  `json:"time"`
		Temperature      float64 `json:"temperature_2m"`
		RelativeHumidity float64 `json:"relative_humidity_2m"`
		IsDay            int     `json:"is_day"`
		Precipitation    float64 `json:"precipitation"`
		WeatherCode      int     `json:"weather_code"`
		WindSpeed        float64 `json:"wind_speed_10m"`
		WindDirection    float64 `json:"wind_direction_10m"`
	} `json:"current"`
}

// DailyResponse is the forecast API response for daily aggregates,
// returned as parallel arrays indexed by day
type DailyResponse struct {
	Timezone string `json:"timezone"`
	Daily    struct {
		Time             []string  `json:"time"`
		WeatherCode      []int     `json:"weather_code"`
		TemperatureMax   []float64 `json:"temperature_2m_max"`
		TemperatureMin   []float64 `json:"temperature_2m_min"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
		WindSpeedMax     []float64 `json:"wind_speed_10m_max"`
	} `json:"daily"`
}

///////////////////////////////////////////////////////////////////////////////
// REPORT TYPES

// LocationInfo is the resolved location block included in tool outputs
type LocationInfo struct {
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Admin1      string  `json:"admin1,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
}

// CurrentConditions is the current weather block included in tool outputs
type CurrentConditions struct {
	ObservedAt         string  `json:"observed_at"`
	Temperature        float64 `json:"temperature"`
	TemperatureUnit    string  `json:"temperature_unit"`
	RelativeHumidity   float64 `json:"relative_humidity"`
	Precipitation      float64 `json:"precipitation"`
	WindSpeed          float64 `json:"wind_speed"`
	WindDirection      float64 `json:"wind_direction"`
	IsDay              bool    `json:"is_day"`
	WeatherCode        int     `json:"weather_code"`
	WeatherDescription string  `json:"weather_description"`
}

// DayForecast is one day of a daily forecast tool output
type DayForecast struct {
	Date               string  `json:"date"`
	WeatherCode        int     `json:"weather_code"`
	WeatherDescription string  `json:"weather_description"`
	TempMin            float64 `json:"temp_min"`
	TempMax            float64 `json:"temp_max"`
	PrecipitationSum   float64 `json:"precipitation_sum"`
	WindSpeedMax       float64 `json:"wind_speed_max"`
}

// WeatherReport is the output of the current weather tool
type WeatherReport struct {
	Location LocationInfo      `json:"location"`
	Current  CurrentConditions `json:"current"`
	Units    string            `json:"units"`
	Source   string            `json:"source"`
}

// ForecastReport is the output of the daily forecast tool
type ForecastReport struct {
	Location LocationInfo  `json:"location"`
	Daily    []DayForecast `json:"daily"`
	Units    string        `json:"units"`
	Source   string        `json:"source"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r WeatherReport) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func (r ForecastReport) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
