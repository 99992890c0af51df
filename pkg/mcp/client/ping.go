package client

import (
	"context"

	// Packages
	mcp "github.com/mutablelogic/go-toolchain/pkg/mcp"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Ping sends a ping request to the MCP server, performing the
// initialize handshake first if needed.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.init(ctx); err != nil {
		return err
	}
	_, err := c.doRPC(ctx, mcp.MessageTypePing, nil)
	return err
}
