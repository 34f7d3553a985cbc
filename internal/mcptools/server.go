package mcptools

import (
	"context"
	"io"
	"log"

	"github.com/m-calder/crewctl/internal/events"
	"github.com/m-calder/crewctl/internal/schedule"
	"github.com/m-calder/crewctl/internal/weather"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Deps carries the collaborators the tools need. Credentials and data
// locations are injected here, never read from the environment inside a
// handler.
type Deps struct {
	Schedule *schedule.Store
	Weather  *weather.Client
	Events   *events.Client
	Logger   *log.Logger // nil disables invocation logging
}

// NewCrewMCPServer creates an in-memory MCP server exposing the crew tools.
// Returns the server and a client transport for connecting to it.
func NewCrewMCPServer(deps Deps) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateServer(deps)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateServer creates an MCP server with the crew tools registered.
// Registration happens exactly once, here, and performs no I/O; duplicate
// detection is the server's concern.
func CreateServer(deps Deps) *mcp.Server {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "crewctl",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "lookup_shifts",
		Title:       "Look up crew shifts",
		Description: "Filter the crew shift roster by weekday and crew member name",
	}, ShiftsHandler(logger, deps.Schedule))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_crew",
		Title:       "List crew members",
		Description: "List the distinct crew members on the shift roster",
	}, CrewHandler(logger, deps.Schedule))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "weather_lookup",
		Title:       "Look up weather",
		Description: "Search the web for current weather at a location",
	}, WeatherHandler(logger, deps.Weather))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "natural_events",
		Title:       "Recent natural events",
		Description: "Query NASA EONET for recent natural events such as storms and wildfires",
	}, EventsHandler(logger, deps.Events))

	return server
}
