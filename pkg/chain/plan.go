/*
chain implements a plan-then-execute runner for ordered sequences of
tool calls, where later steps can reference the outputs of earlier ones.
*/
package chain

import (
	"encoding/json"
	"regexp"
	"slices"
	"strings"

	// Packages
	toolchain "github.com/mutablelogic/go-toolchain"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ToolCall is one planned step: a tool name and its named arguments
type ToolCall struct {
	Func string         `json:"func"`
	Args map[string]any `json:"args,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	fence = regexp.MustCompile("(?m)^```[a-zA-Z0-9]*\n|\n```$")
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ParsePlan turns model output into an ordered sequence of tool calls.
// The text is expected to contain a JSON array of objects, optionally
// wrapped in a markdown code fence; each object carries a 'func' key
// naming a tool from the allow-list, with remaining keys as arguments.
func ParsePlan(text string, allowed ...string) ([]ToolCall, error) {
	stripped := fence.ReplaceAllString(strings.TrimSpace(text), "")

	// The plan must be a JSON array
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(stripped), &elements); err != nil {
		return nil, toolchain.ErrMalformedPlan.Withf("%v in %q", err, text)
	}
	if elements == nil {
		// A JSON null unmarshals without error but is not an array
		return nil, toolchain.ErrMalformedPlan.Withf("plan is not an array in %q", text)
	}
	if len(elements) == 0 {
		return nil, toolchain.ErrEmptyPlan.With("plan contains no steps")
	}

	// Each element must be an object with an allowed 'func' key
	plan := make([]ToolCall, 0, len(elements))
	for i, element := range elements {
		var fields map[string]any
		if err := json.Unmarshal(element, &fields); err != nil {
			return nil, toolchain.ErrInvalidStep.Withf("step %d is not an object", i+1)
		}
		name, ok := fields["func"].(string)
		if !ok || name == "" {
			return nil, toolchain.ErrInvalidStep.Withf("step %d is missing a function name", i+1)
		}
		if !slices.Contains(allowed, name) {
			return nil, toolchain.ErrInvalidStep.Withf("step %d calls unsupported function %q", i+1, name)
		}

		// Remaining keys become the argument mapping
		args := make(map[string]any, len(fields)-1)
		for key, value := range fields {
			if key != "func" {
				args[key] = value
			}
		}
		plan = append(plan, ToolCall{Func: name, Args: args})
	}

	return plan, nil
}
