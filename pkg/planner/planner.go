package planner

import (
	"context"

	// Packages
	chain "github.com/mutablelogic/go-toolchain/pkg/chain"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Planner turns a natural language question into an ordered plan of
// calls to a fixed set of tools
type Planner struct {
	client  *Client
	model   string
	system  string
	allowed []string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const mathSystemPrompt = `You are a math tool-calling assistant. ` +
	`Given a user question, break it into a step-by-step chain of JSON tool calls. ` +
	`Allowed tools: add, subtract, multiply, divide. ` +
	`Each tool call should be a JSON object: {"func":..., "a":..., "b":...}. ` +
	`Output a JSON array in correct calculation order. ` +
	`Use the result of a previous step as "a" or "b" in later steps as needed, by referring to it as RESULT_N where N is the 1-based step index.
Example: What is (12 + 8) * 8?
[{"func":"add","a":12,"b":8}, {"func":"multiply","a":"RESULT_1","b":8}]
`

const weatherSystemPrompt = `You are a weather tool-calling assistant. ` +
	`Given a user request, output a JSON array of tool calls in execution order. ` +
	`Allowed tools:
 - get_current_weather(city, country_code?, state?, units?, lang?)
 - get_daily_forecast(city, days, country_code?, state?, units?, lang?)
Rules:
 - Output ONLY a valid JSON array, no commentary.
 - Include parameters using the exact names above.
 - If units are not specified by the user, prefer 'metric'.
 - If language not specified, prefer 'en'.
 - If user asks for a multi-day outlook, use get_daily_forecast with an integer 'days'.
 - Later steps may refer to prior outputs as RESULT_N (1-based).
Examples:
Q: What's the weather in Stockholm right now?
[{"func":"get_current_weather","city":"Stockholm","country_code":"SE","units":"metric"}]
Q: Weather in London today and 5-day forecast.
[{"func":"get_current_weather","city":"London","country_code":"GB","units":"metric"}, {"func":"get_daily_forecast","city":"London","country_code":"GB","days":5,"units":"metric"}]`

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewMathPlanner creates a planner over the arithmetic tools
func NewMathPlanner(client *Client, model string) *Planner {
	return &Planner{
		client:  client,
		model:   model,
		system:  mathSystemPrompt,
		allowed: []string{"add", "subtract", "multiply", "divide"},
	}
}

// NewWeatherPlanner creates a planner over the weather tools
func NewWeatherPlanner(client *Client, model string) *Planner {
	return &Planner{
		client:  client,
		model:   model,
		system:  weatherSystemPrompt,
		allowed: []string{"get_current_weather", "get_daily_forecast"},
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Tools returns the allow-list of tool names the planner may emit
func (p *Planner) Tools() []string {
	return p.allowed
}

// Plan asks the model for a plan and parses the completion into an
// ordered sequence of tool calls
func (p *Planner) Plan(ctx context.Context, question string) ([]chain.ToolCall, error) {
	text, err := p.client.Complete(ctx, p.model, p.system, question)
	if err != nil {
		return nil, err
	}
	return chain.ParsePlan(text, p.allowed...)
}
