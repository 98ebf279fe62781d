package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/hanoi/internal/presentation/tui"
	"github.com/aretw0/hanoi/pkg/domain"
)

// TextHandler implements the standard console interface.
type TextHandler struct {
	Writer        io.Writer
	Renderer      ContentRenderer
	BoardRenderer BoardRenderer

	pump *linePump
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the markdown renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerBoard configures the board renderer.
func WithTextHandlerBoard(board BoardRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.BoardRenderer = board
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer: w,
		pump:   newLinePump(r),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) Output(ctx context.Context, actions []domain.ActionRequest) error {
	for _, act := range actions {
		switch act.Type {
		case domain.ActionRenderContent:
			if msg, ok := act.Payload.(string); ok {
				fmt.Fprintln(h.Writer, strings.TrimSpace(h.render(msg)))
			}
		case domain.ActionRenderBoard, domain.ActionGameOver:
			if snap, ok := act.Payload.(domain.Snapshot); ok {
				fmt.Fprint(h.Writer, h.board(snap))
			}
		case domain.ActionSystemMessage:
			if msg, ok := act.Payload.(string); ok {
				fmt.Fprintln(h.Writer, msg)
			}
		case domain.ActionRequestInput:
			if req, ok := act.Payload.(domain.InputRequest); ok {
				fmt.Fprint(h.Writer, req.Prompt+" ")
			}
		}
	}
	return nil
}

func (h *TextHandler) Input(ctx context.Context) (string, error) {
	for {
		text, err := h.pump.next(ctx)
		if err == nil {
			text, err = SanitizeInput(text)
		}
		if isRejectedInput(err) {
			fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n> ", err)
			continue
		}
		if err != nil {
			return "", err
		}
		return text, nil
	}
}

// Close stops reading input.
func (h *TextHandler) Close() error {
	return h.pump.Close()
}

func (h *TextHandler) render(markdown string) string {
	if h.Renderer == nil {
		return markdown
	}
	rendered, err := h.Renderer(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}

func (h *TextHandler) board(snap domain.Snapshot) string {
	if h.BoardRenderer != nil {
		return h.BoardRenderer(snap)
	}
	var sb strings.Builder
	tui.WriteListing(&sb, snap)
	return sb.String()
}
