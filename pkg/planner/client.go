/*
planner asks a chat-completions language model to decompose a natural
language question into an ordered plan of tool calls
*/
package planner

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	toolchain "github.com/mutablelogic/go-toolchain"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client calls an OpenAI-compatible chat completions endpoint
type Client struct {
	*client.Client
}

type reqChatCompletion struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type respChatCompletion struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint     = "https://api.openai.com/v1"
	defaultModel = "gpt-3.5-turbo"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a completions client, with an API key as the first
// argument. Pass client.OptEndpoint to use a different compatible
// service.
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	if apiKey == "" {
		return nil, toolchain.ErrBadParameter.With("missing API key")
	}
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endPoint),
		client.OptReqToken(client.Token{Scheme: client.Bearer, Value: apiKey}),
	}, opts...)
	c, err := client.New(opts...)
	if err != nil {
		return nil, err
	}
	return &Client{Client: c}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Complete sends the system and user messages to the model at
// temperature zero and returns the raw completion text
func (c *Client) Complete(ctx context.Context, model, system, user string) (string, error) {
	if model == "" {
		model = defaultModel
	}

	req, err := client.NewJSONRequest(reqChatCompletion{
		Model: model,
		Messages: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}

	// Request -> Response
	var resp respChatCompletion
	if err := c.DoWithContext(ctx, req, &resp, client.OptPath("chat", "completions")); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", toolchain.ErrInternalServerError.With("no completion returned")
	}
	return resp.Choices[0].Message.Content, nil
}
