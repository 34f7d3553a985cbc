package mcptools

import (
	"context"
	"fmt"
	"log"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// failurePrefix starts the text block of every failure envelope.
const failurePrefix = "Request failed: "

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

// toolFunc is the body of a tool: it produces the structured output and the
// rendered text block, or an error.
type toolFunc[In, Out any] func(ctx context.Context, in In) (Out, string, error)

// toolHandler wraps a tool body into an MCP handler. It is the single point
// where errors and panics become failure envelopes: every path out of a
// handler resolves to a result with non-empty content, and no fault crosses
// the tool boundary.
//
// fail builds the failure-shaped output for the tool's declared schema.
func toolHandler[In, Out any](logger *log.Logger, name string, fail func(msg string) Out, fn toolFunc[In, Out]) func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, Out, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, in In) (res *mcp.CallToolResult, out Out, err error) {
		id := invocationID()
		defer func() {
			if r := recover(); r != nil {
				msg := fmt.Sprintf("internal error: %v", r)
				logger.Printf("tool %s [%s]: panic: %v", name, id, r)
				out = fail(msg)
				res = failureResult(msg, out)
				err = nil
			}
		}()

		out, text, ferr := fn(ctx, in)
		if ferr != nil {
			logger.Printf("tool %s [%s]: %v", name, id, ferr)
			out = fail(ferr.Error())
			return failureResult(ferr.Error(), out), out, nil
		}
		logger.Printf("tool %s [%s]: ok", name, id)
		return textResult(text, out), out, nil
	}
}

func textResult(text string, structured any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: text}},
		StructuredContent: structured,
	}
}

func failureResult(msg string, structured any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: failurePrefix + msg}},
		StructuredContent: structured,
		IsError:           true,
	}
}

func invocationID() string {
	id, err := gonanoid.Generate(idAlphabet, idLength)
	if err != nil {
		return "unknown"
	}
	return id
}
