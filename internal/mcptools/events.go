package mcptools

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/m-calder/crewctl/internal/events"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// EventsHandler returns the handler function for the natural_events MCP tool.
func EventsHandler(logger *log.Logger, client *events.Client) func(context.Context, *mcp.CallToolRequest, EventsInput) (*mcp.CallToolResult, EventsOutput, error) {
	return toolHandler(logger, "natural_events", failEvents, func(ctx context.Context, in EventsInput) (EventsOutput, string, error) {
		q := events.Query{Limit: in.Limit, Days: in.Days, Status: in.Status}.Normalized()

		found, err := client.Recent(ctx, q)
		if err != nil {
			return EventsOutput{}, "", err
		}

		results := make([]EventResult, 0, len(found))
		for _, ev := range found {
			results = append(results, EventResult{
				ID:         ev.ID,
				Title:      ev.Title,
				Categories: ev.Categories,
				Date:       ev.Date,
			})
		}

		out := EventsOutput{Events: results}
		if len(results) == 0 {
			return out, fmt.Sprintf("No %s natural events reported in the last %d days.", q.Status, q.Days), nil
		}
		return out, formatEvents(results), nil
	})
}

func failEvents(msg string) EventsOutput {
	return EventsOutput{Events: []EventResult{}, Error: msg}
}

func formatEvents(results []EventResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d natural event(s).\n", len(results))
	for _, ev := range results {
		fmt.Fprintf(&b, "\n%s\n", ev.Title)
		fmt.Fprintf(&b, "  ID: %s\n", ev.ID)
		if len(ev.Categories) > 0 {
			fmt.Fprintf(&b, "  Categories: %s\n", strings.Join(ev.Categories, ", "))
		}
		if ev.Date != "" {
			fmt.Fprintf(&b, "  Last update: %s\n", ev.Date)
		}
	}
	return b.String()
}
