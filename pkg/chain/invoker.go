package chain

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-toolchain/pkg/mcp/client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type toolInvoker struct {
	client *client.Client
}

var _ Invoker = (*toolInvoker)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewInvoker adapts a tool server connection to the remote tool
// boundary consumed by the executor
func NewInvoker(client *client.Client) Invoker {
	return &toolInvoker{client: client}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (t *toolInvoker) Invoke(ctx context.Context, name string, args map[string]any) (any, bool, error) {
	response, err := t.client.CallTool(ctx, name, args)
	if err != nil {
		return nil, false, err
	}
	return response.TextOutput(), response.Error, nil
}
