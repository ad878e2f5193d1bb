package input

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

const (
	byteCtrlC  = 0x03
	byteEscape = 0x1b
)

// EnterRawMode puts the terminal behind f into raw mode so single key
// presses arrive without Enter. The returned func restores the old state.
func EnterRawMode(f *os.File) (restore func(), err error) {
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() { _ = term.Restore(fd, oldState) }, nil
}

// DecodeKeys reads a raw-mode terminal byte stream and emits one RawInput per
// recognised key until r is exhausted or ctx is cancelled. Arrow keys arrive
// as CSI (ESC [ A) or SS3 (ESC O A) sequences.
func DecodeKeys(ctx context.Context, r io.Reader, out chan<- RawInput) error {
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		code := decodeKey(br, b)
		if code == "" {
			continue
		}

		select {
		case out <- RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// decodeKey turns the first byte of a key press, plus whatever of its escape
// sequence is already buffered, into a binding code. Unknown keys return "".
func decodeKey(br *bufio.Reader, first byte) string {
	switch {
	case first == byteCtrlC:
		return "ctrl_c"
	case first == byteEscape:
		return readEscapeSequence(br)
	case first == '\r' || first == '\n':
		return ""
	case first >= 32 && first < 127:
		return strings.ToLower(string(first))
	}
	return ""
}

func readEscapeSequence(br *bufio.Reader) string {
	// A lone ESC press arrives on its own; sequences arrive in one write.
	if br.Buffered() == 0 {
		return "escape"
	}

	b2, err := br.ReadByte()
	if err != nil {
		return "escape"
	}
	if b2 != '[' && b2 != 'O' {
		_ = br.UnreadByte()
		return "escape"
	}

	b3, err := br.ReadByte()
	if err != nil {
		return ""
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	// Unknown escape sequence - discard it
	return ""
}

// browserKeys maps DOM KeyboardEvent.key values to binding codes. Only the
// arrows are accepted; restart has its own message type.
var browserKeys = map[string]string{
	"ArrowUp":    "arrow_up",
	"ArrowDown":  "arrow_down",
	"ArrowLeft":  "arrow_left",
	"ArrowRight": "arrow_right",
}

// BrowserCode converts a DOM arrow key name to a binding code, or "" for any other key.
func BrowserCode(key string) string {
	return browserKeys[key]
}
