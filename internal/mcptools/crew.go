package mcptools

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/m-calder/crewctl/internal/schedule"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CrewHandler returns the handler function for the list_crew MCP tool.
func CrewHandler(logger *log.Logger, store *schedule.Store) func(context.Context, *mcp.CallToolRequest, CrewInput) (*mcp.CallToolResult, CrewOutput, error) {
	return toolHandler(logger, "list_crew", failCrew, func(ctx context.Context, in CrewInput) (CrewOutput, string, error) {
		records, err := store.Load()
		if err != nil {
			return CrewOutput{}, "", err
		}

		crew := schedule.Crew(records)
		out := CrewOutput{Crew: crew}
		if len(crew) == 0 {
			return out, "No crew members found: the schedule is empty.", nil
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%d crew member(s) on the schedule.\n", len(crew))
		for _, name := range crew {
			fmt.Fprintf(&b, "  - %s\n", name)
		}
		return out, b.String(), nil
	})
}

func failCrew(msg string) CrewOutput {
	return CrewOutput{Crew: []string{}, Error: msg}
}
