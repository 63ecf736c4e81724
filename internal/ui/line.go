package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beachday/beachday/internal/trip"
)

// LinePrompter asks questions the way a classic stdin script does: the
// prompt is written as-is with no trailing newline and one line of input is
// read back. Messages are written one per line, unstyled.
type LinePrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewLinePrompter creates a LinePrompter reading answers from in and writing
// prompts and messages to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(in), writer: out}
}

// Ask writes the question prompt and returns the next input line without
// its line terminator. A final line with no terminator is still returned;
// end of input before any data is io.ErrUnexpectedEOF.
func (p *LinePrompter) Ask(ctx context.Context, q trip.Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(p.writer, q.Prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := p.readLine(ctx)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", io.ErrUnexpectedEOF
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// lineResult carries one ReadString result across goroutines.
type lineResult struct {
	line string
	err  error
}

// readLine reads up to and including the next newline, or returns the
// context error if ctx is cancelled first. A read abandoned on cancel is
// never resumed.
func (p *LinePrompter) readLine(ctx context.Context) (string, error) {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := p.reader.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if r.err != nil && !errors.Is(r.err, io.EOF) {
			return r.line, fmt.Errorf("read answer: %w", r.err)
		}
		return r.line, r.err
	}
}

// Say writes the message text followed by a newline. Tone is ignored.
func (p *LinePrompter) Say(m trip.Message) error {
	_, err := fmt.Fprintln(p.writer, m.Text)
	return err
}
