package chain

import (
	"context"
	"encoding/json"

	// Packages
	toolchain "github.com/mutablelogic/go-toolchain"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Invoker is the remote tool boundary: it calls a tool by name with
// named arguments and returns the output, a flag indicating the tool
// reported a logical failure, or a transport error.
type Invoker interface {
	Invoke(ctx context.Context, name string, args map[string]any) (any, bool, error)
}

// Status is the terminal state of a chain run
type Status int

// StepResult is one entry in the execution trace
type StepResult struct {
	Func   string         `json:"func"`
	Args   map[string]any `json:"args"`
	Output any            `json:"output,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// Trace is the ordered record of step results for one chain run
type Trace []*StepResult

// Executor drives a plan through resolution, default-filling and remote
// invocation, stopping on the first failure
type Executor struct {
	invoker  Invoker
	defaults Defaults
	coerce   bool
}

// Opt is a function which modifies executor behaviour
type Opt func(*Executor) error

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Pending Status = iota
	Running
	Succeeded
	Failed
)

// NoOutput marks a step which ran but returned nothing, so that later
// back-references and display code can distinguish it from "never ran"
const NoOutput = "<no output>"

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewExecutor creates an executor which invokes tools through the given
// remote boundary
func NewExecutor(invoker Invoker, opts ...Opt) (*Executor, error) {
	executor := &Executor{invoker: invoker}
	if invoker == nil {
		return nil, toolchain.ErrBadParameter.With("missing invoker")
	}
	for _, opt := range opts {
		if err := opt(executor); err != nil {
			return nil, err
		}
	}
	return executor, nil
}

// WithDefaults sets the per-function default arguments for a run
func WithDefaults(defaults Defaults) Opt {
	return func(e *Executor) error {
		e.defaults = defaults
		return nil
	}
}

// WithNumericCoercion normalizes numeric-looking string literals to
// numbers before invocation. Back-reference outputs are never coerced.
func WithNumericCoercion() Opt {
	return func(e *Executor) error {
		e.coerce = true
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

func (t Trace) String() string {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Run executes the plan one step at a time, in order, and returns the
// accumulated trace with the terminal status. Execution halts at the
// first failing step; the trace then carries that step's error in its
// final entry and all earlier entries are successful.
func (e *Executor) Run(ctx context.Context, plan []ToolCall) (Trace, Status) {
	status := Pending
	trace := make(Trace, 0, len(plan))
	prior := make(map[int]any, len(plan))

	for i, call := range plan {
		status = Running

		// Resolve back-references against prior successful outputs,
		// coercing numeric-looking string literals when configured
		args := make(map[string]any, len(call.Args))
		var failure string
		for name, value := range call.Args {
			resolved, err := ResolveRef(value, prior)
			if err != nil {
				failure = "execution error: " + err.Error()
				break
			}
			if e.coerce && !IsRef(value) {
				resolved = CoerceNumber(resolved)
			}
			args[name] = resolved
		}
		if failure != "" {
			trace = append(trace, &StepResult{Func: call.Func, Args: args, Error: failure})
			return trace, Failed
		}

		// Fill in defaults, then record the step before invocation
		args = e.defaults.Apply(call.Func, args)
		result := &StepResult{Func: call.Func, Args: args}
		trace = append(trace, result)

		// Invoke the remote tool. This is the only suspension point;
		// there is never more than one request in flight.
		output, isError, err := e.invoker.Invoke(ctx, call.Func, args)
		if err != nil {
			result.Error = "execution error: " + err.Error()
			return trace, Failed
		}
		if isError {
			result.Error = "tool error"
			return trace, Failed
		}
		if output == nil {
			output = NoOutput
		}

		// Record the output and make it available to later steps
		result.Output = output
		prior[i+1] = output
	}

	if status == Pending {
		return trace, status
	}
	return trace, Succeeded
}
