package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/hanoi/internal/logging"
	"github.com/aretw0/hanoi/internal/presentation/tui"
	"github.com/aretw0/hanoi/pkg/runner"
)

// ShowRules prints the instructions, styled when out supports it.
func ShowRules(out io.Writer, color string) error {
	if out == nil {
		out = os.Stdout
	}

	text := runner.DefaultRules
	profile := tui.Profile(color, out)
	if render := newContentRenderer(out, profile, logging.NewNop()); render != nil {
		rendered, err := render(text)
		if err != nil {
			return fmt.Errorf("failed to render rules: %w", err)
		}
		text = rendered
	}

	_, err := fmt.Fprintln(out, strings.TrimSpace(text))
	return err
}
