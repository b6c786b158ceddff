package machine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyProgram indicates the program contained no sendable lines.
	ErrEmptyProgram = errors.New("program has no sendable lines")
	// ErrController indicates the controller acknowledged a line with an error.
	ErrController = errors.New("controller reported error")
)

// Send streams a program to the controller line by line, waiting for an
// "ok" acknowledgement after each one. Blank lines and pure-comment lines
// are not sent. Send returns the number of acknowledged lines; on a
// controller error it reports the offending line.
func Send(ctx context.Context, port Port, program string) (int, error) {
	lines := sendableLines(program)
	if len(lines) == 0 {
		return 0, ErrEmptyProgram
	}
	reader := bufio.NewReader(port)
	sent := 0
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		if _, err := port.Write([]byte(line + "\n")); err != nil {
			return sent, fmt.Errorf("write %q: %w", line, err)
		}
		reply, err := reader.ReadString('\n')
		if err != nil {
			return sent, fmt.Errorf("read acknowledgement for %q: %w", line, err)
		}
		reply = strings.TrimSpace(reply)
		if !strings.EqualFold(reply, "ok") {
			return sent, fmt.Errorf("%w: %q for line %q", ErrController, reply, line)
		}
		sent++
		tracer().Debugf("sent %q", line)
	}
	tracer().Infof("program done, %d lines acknowledged", sent)
	return sent, nil
}

// sendableLines strips blank and comment-only lines; the controller does
// not need them and some firmwares choke on bare comments.
func sendableLines(program string) []string {
	var lines []string
	for _, raw := range strings.Split(program, "\n") {
		line := raw
		if i := strings.IndexByte(line, ';'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "(") && strings.HasSuffix(line, ")") {
			continue
		}
		lines = append(lines, strings.TrimSpace(raw))
	}
	return lines
}
