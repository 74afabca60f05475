// SPDX-License-Identifier: MPL-2.0

package jvm

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
)

// maxLineBytes bounds a single relayed line. Lines longer than this
// make the reader stop with bufio.ErrTooLong, which is handled like any
// other read error: logged, then treated as end-of-stream.
const maxLineBytes = 1 << 20

type (
	// streamID tags a line with the child stream it was read from.
	streamID int

	// streamEvent is one message on the rendezvous channel: either a
	// line tagged with its source stream, or an end-of-stream sentinel
	// (eof set, line empty).
	streamEvent struct {
		source streamID
		line   string
		eof    bool
	}
)

const (
	childStdout streamID = iota
	childStderr
)

func (id streamID) String() string {
	if id == childStderr {
		return "stderr"
	}
	return "stdout"
}

// MergeStreams relays the child's two output streams to the parent's
// writers until both are exhausted. Lines read from childOut go to
// parentOut, lines from childErr go to parentErr, each written as a
// discrete newline-terminated unit.
//
// One reader goroutine drains each child stream into a shared
// unbuffered channel, so every publish blocks until the consuming loop
// is ready: lines from the same stream arrive in the order the child
// produced them, while lines from different streams interleave in
// whatever order their publishes are consumed. Each reader publishes
// one end-of-stream sentinel when its stream closes; MergeStreams
// returns after consuming exactly two, regardless of arrival order.
//
// Read errors are logged and treated as end-of-stream for the affected
// reader only; they never abort relaying from the other stream.
func MergeStreams(childOut, childErr io.Reader, parentOut, parentErr io.Writer) {
	// Capacity zero on purpose: the channel is a rendezvous point and
	// the sole synchronization between the two readers and the consumer.
	events := make(chan streamEvent)

	go drainLines(childStdout, childOut, events)
	go drainLines(childStderr, childErr, events)

	for remaining := 2; remaining > 0; {
		ev := <-events
		if ev.eof {
			remaining--
			continue
		}

		w := parentOut
		if ev.source == childStderr {
			w = parentErr
		}
		if _, err := fmt.Fprintln(w, ev.line); err != nil {
			slog.Debug("failed to relay child output line", "stream", ev.source.String(), "error", err)
		}
	}
}

// drainLines reads r line by line, publishing each line to events, and
// finishes with a single end-of-stream sentinel. A read error is logged
// and then handled exactly like end-of-stream.
func drainLines(source streamID, r io.Reader, events chan<- streamEvent) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		events <- streamEvent{source: source, line: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		slog.Error("failed reading child process output", "stream", source.String(), "error", err)
	}

	events <- streamEvent{source: source, eof: true}
}
