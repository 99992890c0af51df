/*
client implements an MCP client that communicates with a remote MCP
server over the Streamable HTTP transport, using one JSON-RPC 2.0
message per POST request.
*/
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"

	// Packages
	client "github.com/mutablelogic/go-client"
	mcp "github.com/mutablelogic/go-toolchain/pkg/mcp"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is an MCP client that communicates with a remote MCP server
// over HTTP using JSON-RPC 2.0 messages.
type Client struct {
	*client.Client
	id          atomic.Int64
	mu          sync.Mutex
	initialized bool
	sessionId   string
	url         string // server endpoint URL
	server      mcp.ResponseInitialize
	clientInfo  mcp.ClientInfo
	tools       map[string]*mcp.Tool // cached tools by name
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// MCP Streamable HTTP requires both JSON and SSE in Accept header
	mcpAccept = "application/json, text/event-stream"

	// Session header assigned by the server at initialize
	sessionHeader = "Mcp-Session-Id"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new MCP client with the given server URL, client info, and options.
func New(url string, info mcp.ClientInfo, opts ...client.ClientOpt) (*Client, error) {
	c := new(Client)
	c.clientInfo = info
	c.url = url

	// Set endpoint and user agent from client info
	defaults := []client.ClientOpt{
		client.OptEndpoint(url),
		client.OptUserAgent(info.Name + "/" + info.Version),
	}
	if httpClient, err := client.New(append(defaults, opts...)...); err != nil {
		return nil, err
	} else {
		c.Client = httpClient
	}
	return c, nil
}

// Close terminates the MCP session. It sends a DELETE request with the
// session identifier to the server to end the session. It is a no-op if
// the client has not been initialized.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return nil
	}

	// Send DELETE with session ID to terminate the session
	if c.sessionId != "" {
		if err := c.DoWithContext(
			context.Background(),
			client.MethodDelete,
			nil,
			client.OptReqHeader(sessionHeader, c.sessionId),
		); err != nil {
			return err
		}
	}

	// Reset state
	c.initialized = false
	c.sessionId = ""
	c.server = mcp.ResponseInitialize{}
	c.tools = nil

	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ServerInfo returns the server information from the MCP handshake.
// Returns nil if the client has not yet been initialized.
func (c *Client) ServerInfo() *mcp.ResponseInitialize {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return nil
	}
	return &c.server
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// init performs the MCP initialize handshake if not already done. The
// initialize request is sent as a raw HTTP request so that the session
// identifier can be captured from the response headers.
func (c *Client) init(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Already initialized
	if c.initialized {
		return nil
	}

	// Build the initialize request
	params, err := json.Marshal(mcp.RequestInitialize{
		ProtocolVersion: mcp.ProtocolVersion,
		Capabilities:    map[string]any{},
		ClientInfo:      c.clientInfo,
	})
	if err != nil {
		return err
	}
	data, err := json.Marshal(mcp.Request{
		Version: mcp.RPCVersion,
		Method:  mcp.MessageTypeInitialize,
		ID:      c.id.Add(1),
		Payload: params,
	})
	if err != nil {
		return err
	}

	// Send initialize and capture the session ID from response headers
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", mcpAccept)
	httpResp, err := c.Client.Client.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return mcp.NewError(mcp.ErrorCodeInternalError, "unexpected response status", httpResp.Status)
	}
	c.sessionId = httpResp.Header.Get(sessionHeader)

	// Decode the result into server info
	var resp mcp.Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return err
	}
	if resp.Err != nil {
		return resp.Err
	}
	if err := json.Unmarshal(resp.Result, &c.server); err != nil {
		return err
	}

	// Send initialized notification (no ID = notification)
	notifPayload, err := client.NewJSONRequestEx(http.MethodPost, mcp.Request{
		Version: mcp.RPCVersion,
		Method:  mcp.NotificationTypeInitialize,
	}, mcpAccept)
	if err != nil {
		return err
	}

	// Build request options: include session ID header if we have one
	var notifOpts []client.RequestOpt
	if c.sessionId != "" {
		notifOpts = append(notifOpts, client.OptReqHeader(sessionHeader, c.sessionId))
	}

	// Notifications return no content, pass nil for out
	if err := c.DoWithContext(ctx, notifPayload, nil, notifOpts...); err != nil {
		return err
	}

	c.initialized = true
	return nil
}

// doRPC sends one JSON-RPC request and returns the decoded response.
// Returns the JSON-RPC error as a Go error when the server reports one.
func (c *Client) doRPC(ctx context.Context, method string, params any) (*mcp.Response, error) {
	var payload json.RawMessage
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return nil, err
		}
		payload = data
	}

	req, err := client.NewJSONRequestEx(http.MethodPost, mcp.Request{
		Version: mcp.RPCVersion,
		Method:  method,
		ID:      c.id.Add(1),
		Payload: payload,
	}, mcpAccept)
	if err != nil {
		return nil, err
	}

	var opts []client.RequestOpt
	c.mu.Lock()
	if c.sessionId != "" {
		opts = append(opts, client.OptReqHeader(sessionHeader, c.sessionId))
	}
	c.mu.Unlock()

	var resp mcp.Response
	if err := c.DoWithContext(ctx, req, &resp, opts...); err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	return &resp, nil
}
