package routes

import (
	"encoding/json"
	"errors"

	"github.com/labstack/echo/v4"
)

// The assistant platform wraps every request in a tool-call envelope; the
// first call's id has to be echoed back as toolCallId in every response.

type toolFunction struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

type toolCall struct {
	ID       string       `json:"id"`
	Function toolFunction `json:"function"`
}

type envelopeMessage struct {
	ToolCalls      []toolCall `json:"toolCalls"`
	ToolCallsSnake []toolCall `json:"tool_calls"`
}

type toolEnvelope struct {
	Message envelopeMessage `json:"message"`
}

var errNoToolCall = errors.New("request envelope carries no tool call")

// unwrap extracts the first tool call from the request body and, when args
// is non-nil, decodes the call's arguments into it. The returned id may be
// set even when decoding fails, so error responses can still correlate.
func unwrap(c echo.Context, args any) (string, error) {
	var env toolEnvelope
	if err := c.Bind(&env); err != nil {
		return "", err
	}

	calls := env.Message.ToolCalls
	if len(calls) == 0 {
		calls = env.Message.ToolCallsSnake
	}
	if len(calls) == 0 {
		return "", errNoToolCall
	}

	call := calls[0]
	if args == nil {
		return call.ID, nil
	}

	raw := call.Function.Arguments
	// Some platforms ship arguments as a JSON-encoded string rather than
	// an object; unquote before decoding.
	if len(raw) > 0 && raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return call.ID, err
		}
		raw = json.RawMessage(inner)
	}
	if len(raw) == 0 {
		return call.ID, errors.New("tool call has no arguments")
	}

	if err := json.Unmarshal(raw, args); err != nil {
		return call.ID, err
	}
	return call.ID, nil
}
