package chain_test

import (
	"testing"

	// Packages
	toolchain "github.com/mutablelogic/go-toolchain"
	chain "github.com/mutablelogic/go-toolchain/pkg/chain"
	assert "github.com/stretchr/testify/assert"
)

func Test_resolve_001(t *testing.T) {
	assert := assert.New(t)
	prior := map[int]any{1: 20, 2: 14}

	// Non-reference values pass through unchanged
	for _, value := range []any{42, 3.14, "London", true, nil, "RESULTING"} {
		resolved, err := chain.ResolveRef(value, prior)
		if assert.NoError(err) {
			assert.Equal(value, resolved)
		}
	}
}

func Test_resolve_002(t *testing.T) {
	assert := assert.New(t)
	prior := map[int]any{1: 20, 2: 14}

	resolved, err := chain.ResolveRef("RESULT_2", prior)
	if assert.NoError(err) {
		assert.Equal(14, resolved)
	}

	// Structured outputs are substituted as-is
	prior[3] = map[string]any{"temperature": -3.5}
	resolved, err = chain.ResolveRef("RESULT_3", prior)
	if assert.NoError(err) {
		assert.Equal(map[string]any{"temperature": -3.5}, resolved)
	}
}

func Test_resolve_003(t *testing.T) {
	assert := assert.New(t)
	prior := map[int]any{1: 20, 2: 14}

	// Forward or out-of-range reference
	_, err := chain.ResolveRef("RESULT_3", prior)
	assert.ErrorIs(err, toolchain.ErrBadReference)

	// Numeric suffix does not parse
	_, err = chain.ResolveRef("RESULT_abc", prior)
	assert.ErrorIs(err, toolchain.ErrBadReference)
}

func Test_coerce_001(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(int64(42), chain.CoerceNumber("42"))
	assert.Equal(3.14, chain.CoerceNumber("3.14"))
	assert.Equal("London", chain.CoerceNumber("London"))
	assert.Equal("4.2.1", chain.CoerceNumber("4.2.1"))
	assert.Equal(42, chain.CoerceNumber(42))
	assert.Equal(true, chain.CoerceNumber(true))
}

func Test_defaults_001(t *testing.T) {
	assert := assert.New(t)
	defaults := chain.Defaults{
		"get_daily_forecast": {"units": "metric", "lang": "en", "days": 5},
	}

	// Missing defaults are filled in, supplied values are kept
	args := defaults.Apply("get_daily_forecast", map[string]any{"city": "London", "units": "imperial"})
	assert.Equal(map[string]any{"city": "London", "units": "imperial", "lang": "en", "days": 5}, args)

	// Functions without defaults pass through unchanged
	args = defaults.Apply("add", map[string]any{"a": 1, "b": 2})
	assert.Equal(map[string]any{"a": 1, "b": 2}, args)

	// The input mapping is not modified
	input := map[string]any{"city": "Paris"}
	defaults.Apply("get_daily_forecast", input)
	assert.Equal(map[string]any{"city": "Paris"}, input)
}
