// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"jvmlaunch/internal/issue"
)

func TestNewServiceError_PanicsOnNilErr(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("newServiceError(nil, ...) did not panic")
		}
	}()
	newServiceError(nil, issue.LaunchFailedId, "")
}

func TestServiceError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	svcErr := newServiceError(cause, 0, "")

	if svcErr.Error() != "boom" {
		t.Errorf("Error() = %q, want %q", svcErr.Error(), "boom")
	}
	if !errors.Is(svcErr, cause) {
		t.Error("errors.Is(svcErr, cause) = false, want true")
	}
}

func TestRenderServiceError(t *testing.T) {
	t.Parallel()

	t.Run("nil renders nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		renderServiceError(&buf, nil)
		if buf.Len() != 0 {
			t.Errorf("output = %q, want empty", buf.String())
		}
	})

	t.Run("styled message precedes issue help", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		svcErr := newServiceError(errors.New("boom"), issue.JavaNotFoundId, "styled header\n")
		renderServiceError(&buf, svcErr)

		out := buf.String()
		if !strings.HasPrefix(out, "styled header\n") {
			t.Errorf("output %q does not start with the styled message", out)
		}
		if len(out) == len("styled header\n") {
			t.Error("expected issue help text after the styled message")
		}
	})

	t.Run("zero issue id renders only the styled message", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		renderServiceError(&buf, newServiceError(errors.New("boom"), 0, "just this\n"))
		if buf.String() != "just this\n" {
			t.Errorf("output = %q, want %q", buf.String(), "just this\n")
		}
	})
}
