package main

import (
	"fmt"
	"os"

	"github.com/ironsheep/edge-tools-mcp/internal/config"
	"github.com/ironsheep/edge-tools-mcp/internal/logger"
	"github.com/ironsheep/edge-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("edge-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("edge-tools-mcp - MCP server for Prewitt and Canny edge detection")
			fmt.Println()
			fmt.Println("Usage: edge-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug      Log level (debug, info, warn, error)\n", config.EnvLogLevel)
			fmt.Printf("  %s=console   Human-readable logs instead of JSON\n", config.EnvLogFormat)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Logs are written to stderr.")
			return
		}
	}

	cfg := config.FromEnv()
	// stdout carries the MCP protocol.
	log := logger.New(os.Stderr, cfg.LogLevel, cfg.ConsoleLog)
	log.Info("starting", map[string]interface{}{
		"version":    Version,
		"build_time": BuildTime,
		"commit":     GitCommit,
	})

	srv := server.New(server.WithLogger(log))
	if err := srv.Run(); err != nil {
		log.Error("server stopped", err, nil)
		os.Exit(1)
	}
}
