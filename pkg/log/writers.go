// Copyright 2013 Google Inc. All Rights Reserved.
// Copyright 2018 Irfan Sharif.
// Copyright 2018 The Kura Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Portions of this code originated in the github.com/golang/glog package.

package log

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	// timestampLayout is the layout of the second field of every log line.
	timestampLayout = "2006-01-02 15:04:05"
	// filenameLayout names the log file after the time the Logger was built.
	filenameLayout = "2006-01-02_15-04-05"
)

// logDir returns the directory file sinks are created in, <root>/output/logs.
func logDir(root string) string {
	return filepath.Join(root, "output", "logs")
}

// logFilename generates a name for a log file of the form
// <year>-<month>-<day>_<hour>-<minute>-<second>.log, e.g.
// 2018-04-10_22-43-54.log.
//
// Two Loggers created within the same second get the same name. Files are
// opened for appending, so both end up writing into one file.
func logFilename(t time.Time) string {
	return t.Format(filenameLayout) + ".log"
}

// openLogFile creates the log directory under root (if absent) and opens a
// file named after t within it for appending.
func openLogFile(root string, t time.Time) (*os.File, error) {
	dir := logDir(root)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &DirectoryCreationError{Dir: dir, Err: err}
	}

	path := filepath.Join(dir, logFilename(t))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}
	return f, nil
}

// multiWriter multiplexes writes to every enabled sink.
type multiWriter struct {
	ws []io.Writer
}

// We do a best effort write on all the writers, but return (n, err)
// conservatively. i.e. we return the smallest n across all the writers, and
// the last non-nil error, if any. A failing sink does not stop the write to
// the ones after it, nor is anything undone on the ones before it.
func (m *multiWriter) WriteString(s string) (n int, err error) {
	n = len(s) // Optimistic estimation.
	for _, w := range m.ws {
		nbytes, er := io.WriteString(w, s)
		if nbytes < n {
			n = nbytes
		}
		if er != nil {
			err = er
		}
	}
	return n, err
}

var tagColors = map[Severity]*color.Color{
	Debug:   color.New(color.FgCyan),
	Info:    color.New(color.FgGreen),
	Warning: color.New(color.FgYellow),
	Error:   color.New(color.FgRed),
}

// isTerminal reports whether w is a terminal. Only *os.File writers can be.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// colorWriter colours the leading [Level] tag of each line written through
// it. It is only installed over terminal consoles; color.NoColor (set from
// NO_COLOR, or by the user) still turns colouring off. Lines without a tag
// (exception frames) are never altered.
type colorWriter struct {
	w io.Writer
}

func (c *colorWriter) Write(b []byte) (int, error) {
	return c.WriteString(string(b))
}

func (c *colorWriter) WriteString(s string) (int, error) {
	if color.NoColor {
		return io.WriteString(c.w, s)
	}
	for sev, col := range tagColors {
		tag := sev.tag()
		if strings.HasPrefix(s, tag) {
			if _, err := io.WriteString(c.w, col.Sprint(tag)+s[len(tag):]); err != nil {
				return 0, err
			}
			return len(s), nil
		}
	}
	return io.WriteString(c.w, s)
}
