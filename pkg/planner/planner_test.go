package planner_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	client "github.com/mutablelogic/go-client"
	toolchain "github.com/mutablelogic/go-toolchain"
	planner "github.com/mutablelogic/go-toolchain/pkg/planner"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SERVER

// newTestCompletions serves a fixed completion and records the request
func newTestCompletions(t *testing.T, completion string) (*planner.Client, *map[string]any) {
	t.Helper()
	var request map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": completion}},
			},
		})
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	c, err := planner.New("test-key", client.OptEndpoint(ts.URL))
	if err != nil {
		t.Fatal(err)
	}
	return c, &request
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_planner_001(t *testing.T) {
	assert := assert.New(t)
	_, err := planner.New("")
	assert.ErrorIs(err, toolchain.ErrBadParameter)
}

func Test_planner_002(t *testing.T) {
	assert := assert.New(t)
	c, request := newTestCompletions(t, `[{"func":"add","a":12,"b":8},{"func":"multiply","a":"RESULT_1","b":8}]`)

	plan, err := planner.NewMathPlanner(c, "").Plan(context.TODO(), "What is (12 + 8) * 8?")
	if assert.NoError(err) {
		assert.Len(plan, 2)
		assert.Equal("add", plan[0].Func)
		assert.Equal("multiply", plan[1].Func)
	}

	// The request carries the question at temperature zero
	assert.Equal(float64(0), (*request)["temperature"])
	messages := (*request)["messages"].([]any)
	assert.Len(messages, 2)
	assert.Equal("system", messages[0].(map[string]any)["role"])
	assert.Contains(messages[1].(map[string]any)["content"], "(12 + 8) * 8")
}

func Test_planner_003(t *testing.T) {
	assert := assert.New(t)

	// Fenced output is accepted
	c, _ := newTestCompletions(t, "```json\n[{\"func\":\"get_current_weather\",\"city\":\"London\"}]\n```")
	plan, err := planner.NewWeatherPlanner(c, "gpt-4").Plan(context.TODO(), "Weather in London?")
	if assert.NoError(err) {
		assert.Len(plan, 1)
		assert.Equal("get_current_weather", plan[0].Func)
		assert.Equal("London", plan[0].Args["city"])
	}
}

func Test_planner_004(t *testing.T) {
	assert := assert.New(t)

	// The weather planner rejects arithmetic tools
	c, _ := newTestCompletions(t, `[{"func":"add","a":1,"b":2}]`)
	_, err := planner.NewWeatherPlanner(c, "").Plan(context.TODO(), "What is 1 + 2?")
	assert.ErrorIs(err, toolchain.ErrInvalidStep)
}
