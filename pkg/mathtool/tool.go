/*
mathtool implements the arithmetic tools exposed by the math MCP server:
add, subtract, multiply and divide over two numeric operands.
*/
package mathtool

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	toolchain "github.com/mutablelogic/go-toolchain"
	tool "github.com/mutablelogic/go-toolchain/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// BinaryOpRequest defines the input for all arithmetic tools
type BinaryOpRequest struct {
	A float64 `json:"a" jsonschema:"First operand"`
	B float64 `json:"b" jsonschema:"Second operand"`
}

type addTool struct{}

type subtractTool struct{}

type multiplyTool struct{}

type divideTool struct{}

var _ tool.Tool = (*addTool)(nil)
var _ tool.Tool = (*subtractTool)(nil)
var _ tool.Tool = (*multiplyTool)(nil)
var _ tool.Tool = (*divideTool)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the arithmetic tool set
func NewTools() []tool.Tool {
	return []tool.Tool{
		&addTool{},
		&subtractTool{},
		&multiplyTool{},
		&divideTool{},
	}
}

///////////////////////////////////////////////////////////////////////////////
// ADD

func (*addTool) Name() string {
	return "add"
}

func (*addTool) Description() string {
	return "Add two numbers"
}

func (*addTool) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[BinaryOpRequest](nil)
}

func (*addTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	req, err := decodeOperands(input)
	if err != nil {
		return nil, err
	}
	return req.A + req.B, nil
}

///////////////////////////////////////////////////////////////////////////////
// SUBTRACT

func (*subtractTool) Name() string {
	return "subtract"
}

func (*subtractTool) Description() string {
	return "Subtract b from a"
}

func (*subtractTool) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[BinaryOpRequest](nil)
}

func (*subtractTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	req, err := decodeOperands(input)
	if err != nil {
		return nil, err
	}
	return req.A - req.B, nil
}

///////////////////////////////////////////////////////////////////////////////
// MULTIPLY

func (*multiplyTool) Name() string {
	return "multiply"
}

func (*multiplyTool) Description() string {
	return "Multiply two numbers"
}

func (*multiplyTool) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[BinaryOpRequest](nil)
}

func (*multiplyTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	req, err := decodeOperands(input)
	if err != nil {
		return nil, err
	}
	return req.A * req.B, nil
}

///////////////////////////////////////////////////////////////////////////////
// DIVIDE

func (*divideTool) Name() string {
	return "divide"
}

func (*divideTool) Description() string {
	return "Divide a by b"
}

func (*divideTool) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[BinaryOpRequest](nil)
}

func (*divideTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	req, err := decodeOperands(input)
	if err != nil {
		return nil, err
	}
	if req.B == 0 {
		return nil, toolchain.ErrBadParameter.With("division by zero is not allowed")
	}
	return req.A / req.B, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func decodeOperands(input json.RawMessage) (*BinaryOpRequest, error) {
	var req BinaryOpRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, toolchain.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	return &req, nil
}
