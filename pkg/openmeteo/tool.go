package openmeteo

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	client "github.com/mutablelogic/go-client"
	toolchain "github.com/mutablelogic/go-toolchain"
	tool "github.com/mutablelogic/go-toolchain/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// CurrentWeatherRequest defines the input for the current weather tool
type CurrentWeatherRequest struct {
	City        string `json:"city" jsonschema:"City name to look up"`
	CountryCode string `json:"country_code,omitempty" jsonschema:"Optional ISO-3166 country code (e.g. 'SE', 'US')"`
	State       string `json:"state,omitempty" jsonschema:"Optional state or region name"`
	Units       string `json:"units,omitempty" jsonschema:"Unit system, 'metric' or 'imperial'"`
	Lang        string `json:"lang,omitempty" jsonschema:"Language code (e.g. 'en', 'sv')"`
}

// DailyForecastRequest defines the input for the daily forecast tool
type DailyForecastRequest struct {
	City        string `json:"city" jsonschema:"City name to look up"`
	Days        int    `json:"days,omitempty" jsonschema:"Number of days to forecast (1-16)"`
	CountryCode string `json:"country_code,omitempty" jsonschema:"Optional ISO-3166 country code (e.g. 'SE', 'US')"`
	State       string `json:"state,omitempty" jsonschema:"Optional state or region name"`
	Units       string `json:"units,omitempty" jsonschema:"Unit system, 'metric' or 'imperial'"`
	Lang        string `json:"lang,omitempty" jsonschema:"Language code (e.g. 'en', 'sv')"`
}

type currentWeather struct {
	client *Client
}

type dailyForecast struct {
	client *Client
}

var _ tool.Tool = (*currentWeather)(nil)
var _ tool.Tool = (*dailyForecast)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultUnits = UnitsMetric
	defaultLang  = "en"
	defaultDays  = 3
	maxDays      = 16
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the weather tool set backed by the Open-Meteo API
func NewTools(opts ...client.ClientOpt) ([]tool.Tool, error) {
	// Create a client
	client, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return NewToolsWithClient(client), nil
}

// NewToolsWithClient returns the weather tool set for an existing client
func NewToolsWithClient(client *Client) []tool.Tool {
	return []tool.Tool{
		&currentWeather{client: client},
		&dailyForecast{client: client},
	}
}

///////////////////////////////////////////////////////////////////////////////
// CURRENT WEATHER

func (*currentWeather) Name() string {
	return "get_current_weather"
}

func (*currentWeather) Description() string {
	return "Get current weather for a city. Optionally disambiguate with country_code (e.g. 'SE', 'US') and state/region name. Units: 'metric' or 'imperial'."
}

// Return the JSON schema for the tool input
func (*currentWeather) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[CurrentWeatherRequest](nil)
}

// Run the tool with the given input
func (c *currentWeather) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req CurrentWeatherRequest

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, toolchain.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	// Validate required fields and apply defaults
	if req.City == "" {
		return nil, toolchain.ErrBadParameter.With("city is required")
	}
	if req.Units == "" {
		req.Units = defaultUnits
	}
	if req.Lang == "" {
		req.Lang = defaultLang
	}

	// Resolve the city to coordinates
	loc, err := c.client.Geocode(ctx, &GeocodeRequest{
		Name:        req.City,
		CountryCode: req.CountryCode,
		State:       req.State,
		Language:    req.Lang,
	})
	if err != nil {
		return nil, err
	}

	// Fetch current conditions
	current, err := c.client.Current(ctx, &CurrentRequest{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Units:     req.Units,
	})
	if err != nil {
		return nil, err
	}

	return &WeatherReport{
		Location: locationInfo(loc, current.Timezone),
		Current: CurrentConditions{
			ObservedAt:         current.Current.Time,
			Temperature:        current.Current.Temperature,
			TemperatureUnit:    temperatureUnit(req.Units),
			RelativeHumidity:   current.Current.RelativeHumidity,
			Precipitation:      current.Current.Precipitation,
			WindSpeed:          current.Current.WindSpeed,
			WindDirection:      current.Current.WindDirection,
			IsDay:              current.Current.IsDay != 0,
			WeatherCode:        current.Current.WeatherCode,
			WeatherDescription: DescribeWeatherCode(current.Current.WeatherCode),
		},
		Units:  req.Units,
		Source: "Open-Meteo",
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// DAILY FORECAST

func (*dailyForecast) Name() string {
	return "get_daily_forecast"
}

func (*dailyForecast) Description() string {
	return "Get a simple daily forecast for a city for the next 'days' days (1-16)."
}

// Return the JSON schema for the tool input
func (*dailyForecast) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[DailyForecastRequest](nil)
}

// Run the tool with the given input
func (c *dailyForecast) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req DailyForecastRequest

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, toolchain.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	// Validate required fields and apply defaults
	if req.City == "" {
		return nil, toolchain.ErrBadParameter.With("city is required")
	}
	if req.Days == 0 {
		req.Days = defaultDays
	}
	if req.Days < 1 || req.Days > maxDays {
		return nil, toolchain.ErrBadParameter.Withf("days must be between 1 and %d", maxDays)
	}
	if req.Units == "" {
		req.Units = defaultUnits
	}
	if req.Lang == "" {
		req.Lang = defaultLang
	}

	// Resolve the city to coordinates
	loc, err := c.client.Geocode(ctx, &GeocodeRequest{
		Name:        req.City,
		CountryCode: req.CountryCode,
		State:       req.State,
		Language:    req.Lang,
	})
	if err != nil {
		return nil, err
	}

	// Fetch the daily forecast
	daily, err := c.client.Daily(ctx, &DailyRequest{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Days:      req.Days,
		Units:     req.Units,
	})
	if err != nil {
		return nil, err
	}

	// Assemble one block per day
	days := make([]DayForecast, 0, len(daily.Daily.Time))
	for i, date := range daily.Daily.Time {
		day := DayForecast{Date: date}
		if i < len(daily.Daily.WeatherCode) {
			day.WeatherCode = daily.Daily.WeatherCode[i]
			day.WeatherDescription = DescribeWeatherCode(day.WeatherCode)
		}
		if i < len(daily.Daily.TemperatureMin) {
			day.TempMin = daily.Daily.TemperatureMin[i]
		}
		if i < len(daily.Daily.TemperatureMax) {
			day.TempMax = daily.Daily.TemperatureMax[i]
		}
		if i < len(daily.Daily.PrecipitationSum) {
			day.PrecipitationSum = daily.Daily.PrecipitationSum[i]
		}
		if i < len(daily.Daily.WindSpeedMax) {
			day.WindSpeedMax = daily.Daily.WindSpeedMax[i]
		}
		days = append(days, day)
	}

	return &ForecastReport{
		Location: locationInfo(loc, daily.Timezone),
		Daily:    days,
		Units:    req.Units,
		Source:   "Open-Meteo",
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func locationInfo(loc *Location, timezone string) LocationInfo {
	return LocationInfo{
		Name:        loc.Name,
		Country:     loc.Country,
		CountryCode: loc.CountryCode,
		Admin1:      loc.Admin1,
		Latitude:    loc.Latitude,
		Longitude:   loc.Longitude,
		Timezone:    timezone,
	}
}

func temperatureUnit(units string) string {
	if units == UnitsImperial {
		return "°F"
	}
	return "°C"
}
