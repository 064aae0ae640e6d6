package card

import (
	"context"
	"io"
	"strings"
	"time"
)

// Animate writes text one line at a time, pausing delay between lines.
// It stops early when ctx is done; the lines written so far stay written.
func Animate(ctx context.Context, w io.Writer, text string, delay time.Duration) error {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 && delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
