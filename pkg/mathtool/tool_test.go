package mathtool_test

import (
	"context"
	"encoding/json"
	"testing"

	// Packages
	mathtool "github.com/mutablelogic/go-toolchain/pkg/mathtool"
	tool "github.com/mutablelogic/go-toolchain/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

func Test_tools_001(t *testing.T) {
	assert := assert.New(t)

	tools := mathtool.NewTools()
	assert.Len(tools, 4)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name())
		assert.NotEmpty(tool.Description())

		schema, err := tool.Schema()
		assert.NoError(err)
		assert.NotNil(schema)
		assert.Contains(schema.Properties, "a")
		assert.Contains(schema.Properties, "b")
	}

	assert.Contains(names, "add")
	assert.Contains(names, "subtract")
	assert.Contains(names, "multiply")
	assert.Contains(names, "divide")
}

func Test_tools_002(t *testing.T) {
	assert := assert.New(t)

	toolkit, err := tool.NewToolkit(mathtool.NewTools()...)
	assert.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"add", `{"a":12,"b":8}`, 20},
		{"subtract", `{"a":15,"b":3}`, 12},
		{"multiply", `{"a":20,"b":8}`, 160},
		{"divide", `{"a":10,"b":4}`, 2.5},
	}
	for _, test := range tests {
		out, err := toolkit.Run(context.Background(), test.name, json.RawMessage(test.input))
		assert.NoError(err, test.name)
		assert.Equal(test.expected, out, test.name)
	}
}

func Test_tools_003(t *testing.T) {
	assert := assert.New(t)

	toolkit, err := tool.NewToolkit(mathtool.NewTools()...)
	assert.NoError(err)

	// Division by zero is a tool error
	_, err = toolkit.Run(context.Background(), "divide", json.RawMessage(`{"a":10,"b":0}`))
	assert.Error(err)
	assert.Contains(err.Error(), "division by zero")
}

func Test_tools_004(t *testing.T) {
	assert := assert.New(t)

	// Missing operands decode to zero values when the tool is run directly
	for _, tl := range mathtool.NewTools() {
		if tl.Name() != "add" {
			continue
		}
		out, err := tl.Run(context.Background(), json.RawMessage(`{"a":5}`))
		assert.NoError(err)
		assert.Equal(float64(5), out)
	}
}
