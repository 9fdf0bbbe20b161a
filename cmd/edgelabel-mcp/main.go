package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/edgelabel-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// logLevelEnv selects the log level (debug, info, warn, error).
const logLevelEnv = "EDGELABEL_MCP_LOG_LEVEL"

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("edgelabel-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("edgelabel-mcp - MCP server for edge detection and component labelling")
			fmt.Println()
			fmt.Println("Usage: edgelabel-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug    Enable debug logging (text format)\n", logLevelEnv)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	logger := initLogger(os.Getenv(logLevelEnv))
	logger.WithFields(logrus.Fields{
		"version":    Version,
		"build_time": BuildTime,
		"commit":     GitCommit,
	}).Debug("starting edgelabel-mcp")

	srv := server.New(logger)
	if err := srv.Run(); err != nil {
		logger.WithError(err).Fatal("server error")
	}
}

// initLogger writes to stderr, since stdout is reserved for the protocol.
// The default is JSON at info level; debug switches to text output.
func initLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	if level == "" {
		return logger
	}
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logger.WithField("value", level).Warn("unknown log level, using info")
		return logger
	}
	logger.SetLevel(lvl)
	if lvl >= logrus.DebugLevel {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
