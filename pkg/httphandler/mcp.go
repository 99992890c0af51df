package httphandler

import (
	"encoding/json"
	"io"
	"net/http"

	// Packages
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
	mcp "github.com/mutablelogic/go-toolchain/pkg/mcp"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// SessionHeader carries the session identifier assigned at initialize
	SessionHeader = "Mcp-Session-Id"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /mcp
func MCPHandler(srv *mcp.Server) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/mcp", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost:
				handlePost(srv, w, r)
			case http.MethodDelete:
				// Terminate the session named in the header
				if id := r.Header.Get(SessionHeader); id != "" {
					srv.EndSession(id)
				}
				w.WriteHeader(http.StatusOK)
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Post: &openapi.Operation{
				Description: "Process one MCP JSON-RPC message",
			},
			Delete: &openapi.Operation{
				Description: "Terminate an MCP session",
			},
		})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func handlePost(srv *mcp.Server, w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		_ = httpresponse.Error(w, httpresponse.ErrBadRequest.With(err))
		return
	}

	// Peek at the method to apply the session rules: initialize starts a
	// new session, everything else must present a known session identifier.
	var request mcp.Request
	if err := json.Unmarshal(body, &request); err != nil {
		_ = httpresponse.Error(w, httpresponse.ErrBadRequest.With(err))
		return
	}

	var sessionId string
	if request.Method == mcp.MessageTypeInitialize {
		sessionId = srv.NewSession()
	} else if sessionId = r.Header.Get(SessionHeader); sessionId == "" || !srv.HasSession(sessionId) {
		_ = httpresponse.Error(w, httpresponse.ErrNotFound.With("unknown session"))
		return
	}

	// Dispatch the message
	response, err := srv.Process(r.Context(), body)
	if err != nil {
		_ = httpresponse.Error(w, err)
		return
	}

	// Echo the session identifier on every response
	w.Header().Set(SessionHeader, sessionId)

	// Notifications have no response body
	if response == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), json.RawMessage(response))
}
