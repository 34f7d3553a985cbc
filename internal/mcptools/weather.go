package mcptools

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/m-calder/crewctl/internal/weather"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// notFound is the sentinel for weather conditions absent from the answer.
// Absence of data is a normal outcome, distinct from a request failure.
const notFound = "not found"

// WeatherHandler returns the handler function for the weather_lookup MCP tool.
func WeatherHandler(logger *log.Logger, client *weather.Client) func(context.Context, *mcp.CallToolRequest, WeatherInput) (*mcp.CallToolResult, WeatherOutput, error) {
	return toolHandler(logger, "weather_lookup", failWeather, func(ctx context.Context, in WeatherInput) (WeatherOutput, string, error) {
		if strings.TrimSpace(in.Location) == "" {
			return WeatherOutput{}, "", errors.New("location must not be empty")
		}

		report, err := client.Current(ctx, in.Location, in.Date)
		if err != nil {
			return WeatherOutput{}, "", err
		}

		out := WeatherOutput{
			Location:      in.Location,
			Date:          in.Date,
			Summary:       orNotFound(report.Answer),
			Temperature:   orNotFound(report.Temperature),
			Wind:          orNotFound(report.Wind),
			Precipitation: orNotFound(report.Precipitation),
		}
		return out, formatWeather(out), nil
	})
}

func failWeather(msg string) WeatherOutput {
	return WeatherOutput{Error: msg}
}

func orNotFound(s string) string {
	if s == "" {
		return notFound
	}
	return s
}

func formatWeather(out WeatherOutput) string {
	var b strings.Builder
	if out.Date != "" {
		fmt.Fprintf(&b, "Weather for %s on %s:\n", out.Location, out.Date)
	} else {
		fmt.Fprintf(&b, "Weather for %s:\n", out.Location)
	}
	fmt.Fprintf(&b, "  Summary: %s\n", out.Summary)
	fmt.Fprintf(&b, "  Temperature: %s\n", out.Temperature)
	fmt.Fprintf(&b, "  Wind: %s\n", out.Wind)
	fmt.Fprintf(&b, "  Precipitation: %s\n", out.Precipitation)
	return b.String()
}
