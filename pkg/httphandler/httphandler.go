/*
httphandler exposes an MCP server over the Streamable HTTP transport:
one JSON-RPC message per POST, with sessions tracked through the
Mcp-Session-Id header.
*/
package httphandler

import (
	"errors"
	"net/http"

	// Packages
	server "github.com/mutablelogic/go-server"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	mcp "github.com/mutablelogic/go-toolchain/pkg/mcp"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Router interface {
	RegisterFunc(path string, handler http.HandlerFunc, middleware bool, spec *openapi.PathItem) error
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// RegisterHandlers registers the MCP endpoint on the router.
func RegisterHandlers(srv *mcp.Server, router server.HTTPRouter, middleware bool) error {
	var result error

	// Convenience function to register a handler and accumulate any errors
	register := func(path string, handler http.HandlerFunc, spec *openapi.PathItem) {
		result = errors.Join(result, router.(Router).RegisterFunc(path, handler, middleware, spec))
	}

	// Register handlers
	register(MCPHandler(srv))

	// Return any errors
	return result
}
