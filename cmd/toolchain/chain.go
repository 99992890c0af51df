package main

import (
	"os"
	"strings"

	// Packages
	chain "github.com/mutablelogic/go-toolchain/pkg/chain"
	planner "github.com/mutablelogic/go-toolchain/pkg/planner"
	render "github.com/mutablelogic/go-toolchain/pkg/render"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type SolveCmd struct {
	Question []string `arg:"" help:"Arithmetic question in plain English"`
}

type WeatherCmd struct {
	Question []string `arg:"" help:"Weather question in plain English"`
}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *SolveCmd) Run(ctx *Globals) error {
	completions, err := ctx.plannerClient()
	if err != nil {
		return err
	}
	return runChain(ctx,
		planner.NewMathPlanner(completions, ctx.Model),
		join(cmd.Question),
		chain.WithNumericCoercion(),
	)
}

func (cmd *WeatherCmd) Run(ctx *Globals) error {
	completions, err := ctx.plannerClient()
	if err != nil {
		return err
	}
	return runChain(ctx,
		planner.NewWeatherPlanner(completions, ctx.Model),
		join(cmd.Question),
		chain.WithDefaults(ctx.weatherDefaults()),
	)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// runChain plans the question, executes the plan against the tool
// server and renders the trace
func runChain(ctx *Globals, p *planner.Planner, question string, opts ...chain.Opt) error {
	plan, err := p.Plan(ctx.ctx, question)
	if err != nil {
		return err
	}

	// Connect to the tool server
	conn, err := ctx.toolClient()
	if err != nil {
		return err
	}
	defer conn.Close()

	executor, err := chain.NewExecutor(chain.NewInvoker(conn), opts...)
	if err != nil {
		return err
	}
	trace, status := executor.Run(ctx.ctx, plan)

	out := render.New(os.Stdout)
	out.Trace(trace)
	out.Status(status)
	return nil
}

// weatherDefaults builds the per-function defaults for a weather chain
func (g *Globals) weatherDefaults() chain.Defaults {
	units, lang, days := g.Weather.Units, g.Weather.Lang, g.Weather.Days
	if units == "" {
		units = "metric"
	}
	if lang == "" {
		lang = "en"
	}
	if days == 0 {
		days = 5
	}
	return chain.Defaults{
		"get_current_weather": {"units": units, "lang": lang},
		"get_daily_forecast":  {"units": units, "lang": lang, "days": days},
	}
}

func join(words []string) string {
	return strings.Join(words, " ")
}
