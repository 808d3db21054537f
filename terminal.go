package contribgif

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"time"
)

// Terminal moves the cursor so a multi-line preview can be redrawn in place.
type Terminal interface {
	ResetCursor(rows int)
	ShowCursor(show bool)
}

type Xterm struct {
	Writer io.Writer
}

// Move the cursor to the beginning of the line and up rows
func (term *Xterm) ResetCursor(rows int) {
	fmt.Fprintf(term.Writer, "\033[999D\033[%dA", rows)
}

func (term *Xterm) ShowCursor(show bool) {
	if show {
		io.WriteString(term.Writer, "\033[?12l\033[?25h")
	} else {
		io.WriteString(term.Writer, "\033[?25l")
	}
}

/*
PlayPreview plays frames once as braille, redrawing each one over the last.
Every frame stays on screen for delay. The cursor is hidden while playing and
the last frame is left in place. Cancelling ctx stops between frames.
*/
func PlayPreview(ctx context.Context, w io.Writer, frames []*image.RGBA, cols int, delay time.Duration) error {
	term := &Xterm{Writer: w}
	term.ShowCursor(false)
	defer term.ShowCursor(true)

	var buf bytes.Buffer
	for i, frame := range frames {
		buf.Reset()
		if err := Preview(&buf, frame, cols); err != nil {
			return err
		}
		rows := bytes.Count(buf.Bytes(), []byte{'\n'})
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
		if i == len(frames)-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		term.ResetCursor(rows)
	}
	return nil
}
