package main

import (
	"encoding/json"
	"fmt"
	"os"

	// Packages
	mcp "github.com/mutablelogic/go-toolchain/pkg/mcp"
	render "github.com/mutablelogic/go-toolchain/pkg/render"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ToolsCmd struct{}

type CallCmd struct {
	Name string `arg:"" help:"Tool name"`
	Args string `arg:"" optional:"" help:"Tool arguments as a JSON object"`
}

// toolTable renders tool listings as a terminal table
type toolTable []*mcp.Tool

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ToolsCmd) Run(ctx *Globals) error {
	conn, err := ctx.toolClient()
	if err != nil {
		return err
	}
	defer conn.Close()

	tools, err := conn.ListTools(ctx.ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, render.Render(toolTable(tools)))
	return nil
}

func (cmd *CallCmd) Run(ctx *Globals) error {
	args := map[string]any{}
	if cmd.Args != "" {
		if err := json.Unmarshal([]byte(cmd.Args), &args); err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}
	}

	conn, err := ctx.toolClient()
	if err != nil {
		return err
	}
	defer conn.Close()

	response, err := conn.CallTool(ctx.ctx, cmd.Name, args)
	if err != nil {
		return err
	}
	if response.Error {
		return fmt.Errorf("tool %q reported an error: %v", cmd.Name, response.TextOutput())
	}

	output := response.TextOutput()
	if data, err := json.MarshalIndent(output, "", "  "); err == nil {
		fmt.Fprintln(os.Stdout, string(data))
	} else {
		fmt.Fprintln(os.Stdout, output)
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// TABLE DATA

func (toolTable) Header() []string {
	return []string{"Tool", "Description"}
}

func (t toolTable) Len() int {
	return len(t)
}

func (t toolTable) Row(i int) []any {
	return []any{render.Bold{Value: t[i].Name}, t[i].Description}
}
