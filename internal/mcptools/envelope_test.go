package mcptools

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestToolHandlerSuccess(t *testing.T) {
	h := toolHandler(discardLogger(), "demo", failCrew, func(ctx context.Context, in CrewInput) (CrewOutput, string, error) {
		return CrewOutput{Crew: []string{"Jane Doe"}}, "one crew member", nil
	})

	res, out, err := h(context.Background(), nil, CrewInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Error("success must not set IsError")
	}
	if len(res.Content) != 1 {
		t.Fatalf("expected one content block, got %d", len(res.Content))
	}
	if res.Content[0].(*mcp.TextContent).Text != "one crew member" {
		t.Errorf("unexpected text: %v", res.Content[0])
	}
	if out.Error != "" || len(out.Crew) != 1 {
		t.Errorf("unexpected output: %+v", out)
	}
}

func TestToolHandlerConvertsErrors(t *testing.T) {
	h := toolHandler(discardLogger(), "demo", failCrew, func(ctx context.Context, in CrewInput) (CrewOutput, string, error) {
		return CrewOutput{}, "", errors.New("roster unreadable")
	})

	res, out, err := h(context.Background(), nil, CrewInput{})
	if err != nil {
		t.Fatalf("errors must not escape the handler boundary, got %v", err)
	}
	if !res.IsError {
		t.Error("expected IsError")
	}
	text := res.Content[0].(*mcp.TextContent).Text
	if !strings.HasPrefix(text, failurePrefix) || !strings.Contains(text, "roster unreadable") {
		t.Errorf("unexpected failure text: %q", text)
	}
	if out.Error != "roster unreadable" {
		t.Errorf("unexpected structured error: %q", out.Error)
	}
	if out.Crew == nil {
		t.Error("failure output must keep the list non-nil")
	}
}

func TestToolHandlerConvertsPanics(t *testing.T) {
	h := toolHandler(discardLogger(), "demo", failCrew, func(ctx context.Context, in CrewInput) (CrewOutput, string, error) {
		panic("index out of range")
	})

	res, out, err := h(context.Background(), nil, CrewInput{})
	if err != nil {
		t.Fatalf("panics must not escape the handler boundary, got %v", err)
	}
	if res == nil || !res.IsError {
		t.Fatal("expected a failure envelope")
	}
	if !strings.Contains(out.Error, "index out of range") {
		t.Errorf("unexpected structured error: %q", out.Error)
	}
	if len(res.Content) == 0 {
		t.Error("failure envelope must still carry content")
	}
}
