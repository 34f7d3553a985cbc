package cmd

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/m-calder/crewctl/internal/events"
	"github.com/m-calder/crewctl/internal/mcptools"
	"github.com/m-calder/crewctl/internal/schedule"
	"github.com/m-calder/crewctl/internal/weather"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes crew operations
tools over stdio transport.

Available tools:
  - lookup_shifts: Filter the shift roster by weekday and crew member
  - list_crew: List the distinct crew members on the roster
  - weather_lookup: Web search for current weather at a location
  - natural_events: Recent natural events from NASA EONET

Example usage in an MCP client config:
  {
    "mcpServers": {
      "crewctl": {
        "command": "/path/to/crewctl",
        "args": ["serve"]
      }
    }
  }`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Log to stderr (stdout is reserved for MCP protocol)
	logger := log.New(os.Stderr, "", log.LstdFlags)

	timeout, err := appConfig.Timeout()
	if err != nil {
		return err
	}

	if appConfig.TavilyAPIKey == "" {
		logger.Printf("warning: tavily_api_key is not set; weather_lookup will fail at request time")
	}

	deps := mcptools.Deps{
		Schedule: schedule.New(appConfig.ScheduleFile),
		Weather: weather.New(appConfig.TavilyAPIKey).
			WithHTTPClient(&http.Client{Timeout: timeout}),
		Events: events.New(timeout),
		Logger: logger,
	}
	server := mcptools.CreateServer(deps)

	logger.Printf("Starting crewctl MCP server (stdio transport)")
	logger.Printf("Schedule file: %s", appConfig.ScheduleFile)

	// Run server with stdio transport
	// This blocks until the transport is closed
	return server.Run(context.Background(), &mcp.StdioTransport{})
}
