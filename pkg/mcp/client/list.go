package client

import (
	"context"
	"encoding/json"

	// Packages
	mcp "github.com/mutablelogic/go-toolchain/pkg/mcp"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListTools returns the tools exposed by the MCP server, performing the
// initialize handshake first if needed. The result is cached for
// subsequent schema validation in CallTool.
func (c *Client) ListTools(ctx context.Context) ([]*mcp.Tool, error) {
	if err := c.init(ctx); err != nil {
		return nil, err
	}

	resp, err := c.doRPC(ctx, mcp.MessageTypeListTools, mcp.RequestList{})
	if err != nil {
		return nil, err
	}

	var result mcp.ResponseListTools
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		return nil, err
	}

	// Cache tools by name
	c.mu.Lock()
	c.tools = make(map[string]*mcp.Tool, len(result.Tools))
	for _, tool := range result.Tools {
		c.tools[tool.Name] = tool
	}
	c.mu.Unlock()

	return result.Tools, nil
}
