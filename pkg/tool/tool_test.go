package tool_test

import (
	"context"
	"encoding/json"
	"testing"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	tool "github.com/mutablelogic/go-toolchain/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

type stubTool struct {
	name   string
	schema *jsonschema.Schema
	result any
}

func (s *stubTool) Name() string                        { return s.name }
func (s *stubTool) Description() string                 { return "stub" }
func (s *stubTool) Schema() (*jsonschema.Schema, error) { return s.schema, nil }
func (s *stubTool) Run(_ context.Context, _ json.RawMessage) (any, error) {
	return s.result, nil
}

func Test_toolkit_001(t *testing.T) {
	assert := assert.New(t)

	tk, err := tool.NewToolkit(&stubTool{name: "my_tool"})
	assert.NoError(err)
	assert.NotNil(tk)
	assert.Len(tk.Tools(), 1)
	assert.Contains(tk.Names(), "my_tool")
	assert.NotNil(tk.Lookup("my_tool"))
	assert.Nil(tk.Lookup("other_tool"))
}

func Test_toolkit_002(t *testing.T) {
	assert := assert.New(t)

	// Invalid name
	_, err := tool.NewToolkit(&stubTool{name: "not a name"})
	assert.Error(err)

	// Duplicate name
	_, err = tool.NewToolkit(&stubTool{name: "my_tool"}, &stubTool{name: "my_tool"})
	assert.Error(err)
}

func Test_toolkit_003(t *testing.T) {
	assert := assert.New(t)

	tk, err := tool.NewToolkit(&stubTool{name: "my_tool", result: "done"})
	assert.NoError(err)

	// Run by name
	out, err := tk.Run(context.Background(), "my_tool", nil)
	assert.NoError(err)
	assert.Equal("done", out)

	// Unknown tool
	_, err = tk.Run(context.Background(), "other_tool", nil)
	assert.Error(err)
}

func Test_toolkit_004(t *testing.T) {
	assert := assert.New(t)

	// Schema validation failure: input with wrong type
	schema, err := jsonschema.For[struct {
		Value float64 `json:"value"`
	}](nil)
	assert.NoError(err)

	tk, err := tool.NewToolkit(&stubTool{name: "typed_tool", schema: schema})
	assert.NoError(err)

	_, err = tk.Run(context.Background(), "typed_tool", json.RawMessage(`{"value":"not a number"}`))
	assert.Error(err)

	_, err = tk.Run(context.Background(), "typed_tool", json.RawMessage(`{"value":42}`))
	assert.NoError(err)
}
