package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	httpserver "github.com/mutablelogic/go-server/pkg/httpserver"
	httphandler "github.com/mutablelogic/go-toolchain/pkg/httphandler"
	mathtool "github.com/mutablelogic/go-toolchain/pkg/mathtool"
	mcp "github.com/mutablelogic/go-toolchain/pkg/mcp"
	tool "github.com/mutablelogic/go-toolchain/pkg/tool"
	version "github.com/mutablelogic/go-toolchain/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type CLI struct {
	Addr   string `name:"addr" default:"localhost:8000" help:"Address to listen on"`
	Prefix string `name:"prefix" default:"/" help:"Path prefix for the router"`
	Origin string `name:"origin" default:"*" help:"Allowed CORS origin"`
	Stdio  bool   `name:"stdio" help:"Serve over stdin and stdout instead of HTTP"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Arithmetic tool server"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Make the toolkit and the tool server
	toolkit, err := tool.NewToolkit(mathtool.NewTools()...)
	cmd.FatalIfErrorf(err)
	srv, err := mcp.New(execName(), version.Version(), mcp.WithToolkit(toolkit))
	cmd.FatalIfErrorf(err)

	// Serve until interrupted
	if cli.Stdio {
		cmd.FatalIfErrorf(srv.RunStdio(ctx, os.Stdin, os.Stdout))
	} else {
		cmd.FatalIfErrorf(serve(ctx, &cli, srv))
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func serve(ctx context.Context, cli *CLI, srv *mcp.Server) error {
	router, err := httprouter.NewRouter(ctx, cli.Prefix, cli.Origin, "Math Tool Server", version.Version())
	if err != nil {
		return err
	} else if err := httphandler.RegisterHandlers(srv, router, false); err != nil {
		return err
	}

	httpserver, err := httpserver.New(cli.Addr, router, nil)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%s@%s started on %s\n", execName(), version.Version(), cli.Addr)
	defer fmt.Fprintf(os.Stderr, "%s@%s stopped\n", execName(), version.Version())
	return httpserver.Run(ctx)
}

func execName() string {
	name, err := os.Executable()
	if err != nil {
		panic(err)
	}
	return filepath.Base(name)
}
