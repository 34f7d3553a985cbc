package mcptools

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/m-calder/crewctl/internal/schedule"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ShiftsHandler returns the handler function for the lookup_shifts MCP tool.
func ShiftsHandler(logger *log.Logger, store *schedule.Store) func(context.Context, *mcp.CallToolRequest, ShiftsInput) (*mcp.CallToolResult, ShiftsOutput, error) {
	return toolHandler(logger, "lookup_shifts", failShifts, func(ctx context.Context, in ShiftsInput) (ShiftsOutput, string, error) {
		records, err := store.Load()
		if err != nil {
			return ShiftsOutput{}, "", err
		}

		matches := schedule.Filter(records, schedule.Options{Day: in.Day, Name: in.Name})
		results := make([]ShiftResult, 0, len(matches))
		for _, rec := range matches {
			results = append(results, ShiftResult{
				Date:       rec.Date,
				Day:        rec.Day,
				CrewMember: rec.CrewMember,
				Role:       rec.Role,
				ShiftStart: rec.ShiftStart,
				ShiftEnd:   rec.ShiftEnd,
				Activity:   rec.Activity,
				Location:   rec.Location,
				Notes:      rec.Notes,
			})
		}

		out := ShiftsOutput{Results: results}
		if len(results) == 0 {
			return out, noShiftsText(in), nil
		}
		return out, formatShifts(results), nil
	})
}

func failShifts(msg string) ShiftsOutput {
	return ShiftsOutput{Results: []ShiftResult{}, Error: msg}
}

// formatShifts renders one paragraph per shift. Every field of the
// structured result appears here; nothing is dropped from the text form.
func formatShifts(results []ShiftResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d shift(s).\n", len(results))
	for _, r := range results {
		fmt.Fprintf(&b, "\n%s (%s)\n", r.Day, r.Date)
		fmt.Fprintf(&b, "  Crew: %s, %s\n", r.CrewMember, r.Role)
		fmt.Fprintf(&b, "  Shift: %s to %s UTC\n", r.ShiftStart, r.ShiftEnd)
		fmt.Fprintf(&b, "  Activity: %s\n", r.Activity)
		fmt.Fprintf(&b, "  Location: %s\n", r.Location)
		if r.Notes != "" {
			fmt.Fprintf(&b, "  Notes: %s\n", r.Notes)
		}
	}
	return b.String()
}

// noShiftsText names the filters that found nothing.
func noShiftsText(in ShiftsInput) string {
	var filters []string
	if in.Day != "" {
		filters = append(filters, fmt.Sprintf("day=%q", in.Day))
	}
	if in.Name != "" {
		filters = append(filters, fmt.Sprintf("name=%q", in.Name))
	}
	if len(filters) == 0 {
		return "No shifts found: the schedule is empty."
	}
	return "No shifts matched " + strings.Join(filters, " and ") + "."
}
