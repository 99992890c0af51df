package mcp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	mcp "github.com/mutablelogic/go-toolchain/pkg/mcp"
	tool "github.com/mutablelogic/go-toolchain/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

type echoTool struct{}

func (echoTool) Name() string        { return "echo" }
func (echoTool) Description() string { return "Echo the input value" }
func (echoTool) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[struct {
		Value string `json:"value"`
	}](nil)
}
func (echoTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}
	return map[string]any{"value": req.Value}, nil
}

func newTestServer(t *testing.T) *mcp.Server {
	t.Helper()
	toolkit, err := tool.NewToolkit(echoTool{})
	if err != nil {
		t.Fatal(err)
	}
	server, err := mcp.New("test-server", "0.0.0", mcp.WithToolkit(toolkit))
	if err != nil {
		t.Fatal(err)
	}
	return server
}

func process(t *testing.T, server *mcp.Server, method string, id any, params any) *mcp.Response {
	t.Helper()
	var payload json.RawMessage
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			t.Fatal(err)
		}
		payload = data
	}
	data, err := json.Marshal(mcp.Request{Version: mcp.RPCVersion, Method: method, ID: id, Payload: payload})
	if err != nil {
		t.Fatal(err)
	}
	respData, err := server.Process(context.Background(), data)
	if err != nil {
		t.Fatal(err)
	}
	if respData == nil {
		return nil
	}
	var resp mcp.Response
	if err := json.Unmarshal(respData, &resp); err != nil {
		t.Fatal(err)
	}
	return &resp
}

func Test_server_001(t *testing.T) {
	assert := assert.New(t)
	server := newTestServer(t)

	resp := process(t, server, mcp.MessageTypeInitialize, 1, mcp.RequestInitialize{
		ProtocolVersion: mcp.ProtocolVersion,
		ClientInfo:      mcp.ClientInfo{Name: "test", Version: "0.0.0"},
	})
	assert.NotNil(resp)
	assert.Nil(resp.Err)

	var result mcp.ResponseInitialize
	assert.NoError(json.Unmarshal(resp.Result, &result))
	assert.Equal("test-server", result.ServerInfo.Name)
	assert.Equal(mcp.ProtocolVersion, result.Version)
}

func Test_server_002(t *testing.T) {
	assert := assert.New(t)
	server := newTestServer(t)

	// Notifications have no response
	resp := process(t, server, mcp.NotificationTypeInitialize, nil, nil)
	assert.Nil(resp)

	// Ping returns an empty object
	resp = process(t, server, mcp.MessageTypePing, 2, nil)
	assert.NotNil(resp)
	assert.Nil(resp.Err)
}

func Test_server_003(t *testing.T) {
	assert := assert.New(t)
	server := newTestServer(t)

	resp := process(t, server, mcp.MessageTypeListTools, 3, nil)
	assert.NotNil(resp)
	assert.Nil(resp.Err)

	var result mcp.ResponseListTools
	assert.NoError(json.Unmarshal(resp.Result, &result))
	assert.Len(result.Tools, 1)
	assert.Equal("echo", result.Tools[0].Name)
	assert.NotNil(result.Tools[0].InputSchema)
}

func Test_server_004(t *testing.T) {
	assert := assert.New(t)
	server := newTestServer(t)

	// Successful tool call
	resp := process(t, server, mcp.MessageTypeCallTool, 4, mcp.RequestToolCall{
		Name:      "echo",
		Arguments: map[string]any{"value": "hello"},
	})
	assert.NotNil(resp)
	assert.Nil(resp.Err)

	var result mcp.ResponseToolCall
	assert.NoError(json.Unmarshal(resp.Result, &result))
	assert.False(result.Error)
	output := result.TextOutput()
	assert.Equal(map[string]any{"value": "hello"}, output)
}

func Test_server_005(t *testing.T) {
	assert := assert.New(t)
	server := newTestServer(t)

	// Tool failure surfaces as isError, not a JSON-RPC error
	resp := process(t, server, mcp.MessageTypeCallTool, 5, mcp.RequestToolCall{
		Name:      "missing",
		Arguments: map[string]any{},
	})
	assert.NotNil(resp)
	assert.Nil(resp.Err)

	var result mcp.ResponseToolCall
	assert.NoError(json.Unmarshal(resp.Result, &result))
	assert.True(result.Error)
	assert.NotEmpty(result.Content)
}

func Test_server_006(t *testing.T) {
	assert := assert.New(t)
	server := newTestServer(t)

	// Unknown method is a JSON-RPC error
	resp := process(t, server, "bogus/method", 6, nil)
	assert.NotNil(resp)
	assert.NotNil(resp.Err)
	assert.Equal(mcp.ErrorCodeMethodNotFound, resp.Err.Code)

	// Malformed JSON is a parse error
	data, err := server.Process(context.Background(), []byte("{not json"))
	assert.NoError(err)
	var parseResp mcp.Response
	assert.NoError(json.Unmarshal(data, &parseResp))
	assert.NotNil(parseResp.Err)
	assert.Equal(mcp.ErrorCodeParse, parseResp.Err.Code)
}

func Test_server_007(t *testing.T) {
	assert := assert.New(t)
	server := newTestServer(t)

	// Session lifecycle
	id := server.NewSession()
	assert.NotEmpty(id)
	assert.True(server.HasSession(id))
	server.EndSession(id)
	assert.False(server.HasSession(id))
	assert.False(server.HasSession("unknown"))
}

func Test_server_008(t *testing.T) {
	assert := assert.New(t)
	server := newTestServer(t)

	// Many requests immediately followed by EOF, so requests are still
	// in flight when the read loop ends
	var input strings.Builder
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&input, `{"jsonrpc":"2.0","id":%d,"method":"ping"}`+"\n", i)
	}

	var output bytes.Buffer
	err := server.RunStdio(context.Background(), strings.NewReader(input.String()), &output)
	assert.NoError(err)

	// Every request receives a response before the server returns
	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	assert.Len(lines, 20)
	for _, line := range lines {
		var response mcp.Response
		assert.NoError(json.Unmarshal([]byte(line), &response))
		assert.Nil(response.Err)
	}
}
