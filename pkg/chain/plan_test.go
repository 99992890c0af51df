package chain_test

import (
	"testing"

	// Packages
	toolchain "github.com/mutablelogic/go-toolchain"
	chain "github.com/mutablelogic/go-toolchain/pkg/chain"
	assert "github.com/stretchr/testify/assert"
)

var mathFuncs = []string{"add", "subtract", "multiply", "divide"}

func Test_plan_001(t *testing.T) {
	assert := assert.New(t)
	plan, err := chain.ParsePlan(`[{"func":"add","a":12,"b":8},{"func":"multiply","a":"RESULT_1","b":8}]`, mathFuncs...)
	if assert.NoError(err) {
		assert.Len(plan, 2)
		assert.Equal("add", plan[0].Func)
		assert.Equal(map[string]any{"a": float64(12), "b": float64(8)}, plan[0].Args)
		assert.Equal("multiply", plan[1].Func)
		assert.Equal("RESULT_1", plan[1].Args["a"])
	}
}

func Test_plan_002(t *testing.T) {
	assert := assert.New(t)

	// Markdown code fences are stripped before parsing
	plan, err := chain.ParsePlan("```json\n[{\"func\":\"add\",\"a\":1,\"b\":2}]\n```", mathFuncs...)
	if assert.NoError(err) {
		assert.Len(plan, 1)
		assert.Equal("add", plan[0].Func)
	}

	// A bare fence without a language tag is also stripped
	plan, err = chain.ParsePlan("```\n[{\"func\":\"subtract\",\"a\":5,\"b\":3}]\n```", mathFuncs...)
	if assert.NoError(err) {
		assert.Len(plan, 1)
		assert.Equal("subtract", plan[0].Func)
	}
}

func Test_plan_003(t *testing.T) {
	assert := assert.New(t)

	// Not JSON
	_, err := chain.ParsePlan("the model refused to answer", mathFuncs...)
	assert.ErrorIs(err, toolchain.ErrMalformedPlan)
	assert.ErrorContains(err, "the model refused to answer")

	// JSON, but not an array
	_, err = chain.ParsePlan(`{"func":"add","a":1,"b":2}`, mathFuncs...)
	assert.ErrorIs(err, toolchain.ErrMalformedPlan)
}

func Test_plan_004(t *testing.T) {
	assert := assert.New(t)

	// Step is not an object
	_, err := chain.ParsePlan(`[42]`, mathFuncs...)
	assert.ErrorIs(err, toolchain.ErrInvalidStep)

	// Missing function name
	_, err = chain.ParsePlan(`[{"a":1,"b":2}]`, mathFuncs...)
	assert.ErrorIs(err, toolchain.ErrInvalidStep)

	// Unknown function name rejects the entire plan
	_, err = chain.ParsePlan(`[{"func":"add","a":1,"b":2},{"func":"modulo","a":1,"b":2}]`, mathFuncs...)
	assert.ErrorIs(err, toolchain.ErrInvalidStep)
	assert.ErrorContains(err, "step 2")
	assert.ErrorContains(err, "modulo")
}

func Test_plan_005(t *testing.T) {
	assert := assert.New(t)
	_, err := chain.ParsePlan(`[]`, mathFuncs...)
	assert.ErrorIs(err, toolchain.ErrEmptyPlan)
}

func Test_plan_006(t *testing.T) {
	assert := assert.New(t)

	// A JSON null is well-formed but not an array, so it is malformed
	// rather than empty
	_, err := chain.ParsePlan(`null`, mathFuncs...)
	assert.ErrorIs(err, toolchain.ErrMalformedPlan)
	assert.NotErrorIs(err, toolchain.ErrEmptyPlan)
}
