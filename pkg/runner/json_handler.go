package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/hanoi/pkg/domain"
)

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
// Every action is written as one line: {"type": "...", "payload": ...}.
type JSONHandler struct {
	Writer  io.Writer
	Encoder *json.Encoder

	pump *linePump
}

// inputEnvelope is the object form accepted on input: {"input": "A C"}.
type inputEnvelope struct {
	Input *string `json:"input"`
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Writer:  w,
		Encoder: json.NewEncoder(w),
		pump:    newLinePump(r),
	}
}

func (h *JSONHandler) Output(ctx context.Context, actions []domain.ActionRequest) error {
	for _, act := range actions {
		if err := h.Encoder.Encode(act); err != nil {
			return err
		}
	}
	return nil
}

// Input accepts a JSON string, an {"input": ...} object, or raw text.
// Oversize or malformed lines are reported with a SYSTEM_MESSAGE and skipped.
func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	for {
		text, err := h.pump.next(ctx)
		if err == nil {
			text, err = decodeInput(text)
		}
		if isRejectedInput(err) {
			msg := domain.ActionRequest{
				Type:    domain.ActionSystemMessage,
				Payload: fmt.Sprintf("Error: %v. Please try again.", err),
			}
			if err := h.Encoder.Encode(msg); err != nil {
				return "", err
			}
			continue
		}
		if err != nil {
			return "", err
		}
		return text, nil
	}
}

// Close stops reading input.
func (h *JSONHandler) Close() error {
	return h.pump.Close()
}

func decodeInput(text string) (string, error) {
	text = strings.TrimSpace(text)

	var val string
	if err := json.Unmarshal([]byte(text), &val); err == nil {
		return SanitizeInput(val)
	}

	var env inputEnvelope
	if err := json.Unmarshal([]byte(text), &env); err == nil && env.Input != nil {
		return SanitizeInput(*env.Input)
	}

	return SanitizeInput(text)
}
