package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	client "github.com/mutablelogic/go-client"
	mcp "github.com/mutablelogic/go-toolchain/pkg/mcp"
	mcpclient "github.com/mutablelogic/go-toolchain/pkg/mcp/client"
	planner "github.com/mutablelogic/go-toolchain/pkg/planner"
	version "github.com/mutablelogic/go-toolchain/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Endpoints
	URL       string `name:"url" env:"MCP_BASE_URL" help:"Tool server URL"`
	Model     string `name:"model" env:"OPENAI_MODEL" help:"Chat completions model"`
	OpenAIKey string `name:"openai-api-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`

	// Configuration file
	Config string `name:"config" type:"path" help:"YAML configuration file"`

	// Weather defaults
	Weather WeatherDefaults `embed:"" prefix:"weather-"`

	// Context
	ctx context.Context
}

type WeatherDefaults struct {
	Units string `name:"units" env:"WEATHER_DEFAULT_UNITS" help:"Default unit system (metric or imperial)"`
	Lang  string `name:"lang" env:"WEATHER_DEFAULT_LANG" help:"Default language code"`
	Days  int    `name:"days" env:"WEATHER_DEFAULT_DAYS" help:"Default forecast days"`
}

type CLI struct {
	Globals

	// Chain commands
	Solve   SolveCmd   `cmd:"" help:"Plan and execute an arithmetic question"`
	Weather WeatherCmd `cmd:"" help:"Plan and execute a weather question"`

	// Tool server commands
	Tools ToolsCmd   `cmd:"" help:"Return a list of tools from the tool server"`
	Call  CallCmd    `cmd:"" help:"Call one tool with JSON arguments"`
	Ver   VersionCmd `cmd:"" name:"version" help:"Print the version"`
}

type VersionCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Plan-then-execute tool chain runner"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	// Create a context which ends on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Apply the configuration file, then fall back to defaults
	if cli.Globals.Config != "" {
		config, err := LoadConfig(cli.Globals.Config)
		cmd.FatalIfErrorf(err)
		config.Apply(&cli.Globals)
	}
	if cli.Globals.URL == "" {
		cli.Globals.URL = "http://127.0.0.1:8000/mcp"
	}

	// Run the command
	cmd.FatalIfErrorf(cmd.Run(&cli.Globals))
}

func (VersionCmd) Run(ctx *Globals) error {
	_, err := os.Stdout.Write(version.JSON(execName()))
	return err
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// clientOpts returns options shared by all outbound connections
func (g *Globals) clientOpts() []client.ClientOpt {
	opts := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	return opts
}

// toolClient connects to the tool server
func (g *Globals) toolClient() (*mcpclient.Client, error) {
	return mcpclient.New(g.URL, mcp.ClientInfo{Name: execName(), Version: version.Version()}, g.clientOpts()...)
}

// plannerClient connects to the chat completions service
func (g *Globals) plannerClient() (*planner.Client, error) {
	return planner.New(g.OpenAIKey, g.clientOpts()...)
}

func execName() string {
	name, err := os.Executable()
	if err != nil {
		panic(err)
	}
	return filepath.Base(name)
}
