/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetDebug(false)
	})

	Warn("no rule matched %q", "x(1)")
	Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "warn") || !strings.Contains(out, `no rule matched "x(1)"`) {
		t.Errorf("expected warning in output, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message should be hidden by default, got %q", out)
	}

	buf.Reset()
	SetDebug(true)
	Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("expected debug message after SetDebug(true), got %q", buf.String())
	}
}

func TestLogger_Discard(t *testing.T) {
	SetOutput(io.Discard)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	// Must not panic or write anywhere.
	Warn("silent")
}
