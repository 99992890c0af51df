/*
openmeteo implements an API client for the Open-Meteo geocoding and
forecast services
https://open-meteo.com/en/docs
*/
package openmeteo

import (
	"context"
	"sort"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	toolchain "github.com/mutablelogic/go-toolchain"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	geocoding *client.Client
	forecast  *client.Client
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	geocodingEndPoint = "https://geocoding-api.open-meteo.com/v1"
	forecastEndPoint  = "https://api.open-meteo.com/v1"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client for the public Open-Meteo endpoints
func New(opts ...client.ClientOpt) (*Client, error) {
	return NewWithEndpoints(geocodingEndPoint, forecastEndPoint, opts...)
}

// NewWithEndpoints creates a new client with explicit endpoints
func NewWithEndpoints(geocoding, forecast string, opts ...client.ClientOpt) (*Client, error) {
	geocodingClient, err := client.New(append([]client.ClientOpt{client.OptEndpoint(geocoding)}, opts...)...)
	if err != nil {
		return nil, err
	}
	forecastClient, err := client.New(append([]client.ClientOpt{client.OptEndpoint(forecast)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return &Client{
		geocoding: geocodingClient,
		forecast:  forecastClient,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Geocode resolves a city name to a location, disambiguated by optional
// country code and administrative region, then by largest population.
func (c *Client) Geocode(ctx context.Context, req *GeocodeRequest) (*Location, error) {
	var response struct {
		Results []Location `json:"results"`
	}

	// Request -> Response
	if err := c.geocoding.DoWithContext(ctx, nil, &response, client.OptPath("search"), client.OptQuery(req.Values())); err != nil {
		return nil, err
	}

	return chooseMatch(response.Results, req.CountryCode, req.State)
}

// Current returns current conditions for a geographic position
func (c *Client) Current(ctx context.Context, req *CurrentRequest) (*CurrentResponse, error) {
	var response CurrentResponse

	// Request -> Response
	if err := c.forecast.DoWithContext(ctx, nil, &response, client.OptPath("forecast"), client.OptQuery(req.Values())); err != nil {
		return nil, err
	}

	return &response, nil
}

// Daily returns a day-by-day forecast for a geographic position
func (c *Client) Daily(ctx context.Context, req *DailyRequest) (*DailyResponse, error) {
	var response DailyResponse

	// Request -> Response
	if err := c.forecast.DoWithContext(ctx, nil, &response, client.OptPath("forecast"), client.OptQuery(req.Values())); err != nil {
		return nil, err
	}

	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// chooseMatch picks the best geocoding match. A country or region filter
// which eliminates every candidate is ignored; the largest population
// wins among the remaining candidates.
func chooseMatch(results []Location, countryCode, state string) (*Location, error) {
	if len(results) == 0 {
		return nil, toolchain.ErrNotFound.With("no matching locations found")
	}

	filtered := results
	if countryCode != "" {
		cc := strings.ToUpper(strings.TrimSpace(countryCode))
		matched := filter(filtered, func(loc Location) bool {
			return strings.ToUpper(loc.CountryCode) == cc
		})
		if len(matched) > 0 {
			filtered = matched
		}
	}
	if state != "" {
		s := strings.ToLower(strings.TrimSpace(state))
		matched := filter(filtered, func(loc Location) bool {
			return strings.ToLower(loc.Admin1) == s
		})
		if len(matched) > 0 {
			filtered = matched
		}
	}

	// Prefer largest population if multiple remain
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Population > filtered[j].Population
	})
	return &filtered[0], nil
}

func filter(locations []Location, fn func(Location) bool) []Location {
	result := make([]Location, 0, len(locations))
	for _, loc := range locations {
		if fn(loc) {
			result = append(result, loc)
		}
	}
	return result
}
