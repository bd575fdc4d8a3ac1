// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in licenses/BSD-golang.txt.

// Portions of this file are additionally subject to the following
// license and copyright.
//
// Copyright 2018 Irfan Sharif.
// Copyright 2018 The Kura Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Portions of this code originated in the standard library 'log' package.

package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Facility is the set of operations code that logs should depend on.
// *Logger implements it.
type Facility interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Warningf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
	Exception(err error)
	Finish() error
}

// Config determines which sinks a Logger writes to, and what it filters out.
type Config struct {
	EnableConsole bool     // Write to the console (os.Stdout unless overridden).
	EnableFile    bool     // Write to <RootDir>/output/logs/<timestamp>.log.
	MinSeverity   Severity // Lines below this severity are dropped.
	RootDir       string   // Project root; also names the marker stripped from frame paths.

	// Colorize colours the [Level] tag of console lines when the console is
	// a terminal. File lines are never coloured.
	Colorize bool
}

// Logger is the concrete logger type. It writes each log line to the
// console and/or to a log file, dropping lines below its minimum severity.
//
// A Logger is safe for concurrent use; every line (and every exception
// block) is written out to both sinks before the next one is started.
type Logger struct {
	minSeverity Severity
	marker      string           // Project root segment stripped from frame paths, optional
	now         func() time.Time // Source of timestamps, time.Now outside of tests

	mu      sync.Mutex
	console io.Writer // nil if disabled
	file    *os.File  // nil if disabled, or once finished
	path    string
}

var _ Facility = (*Logger)(nil)

const (
	newline         string = "\n"
	exceptionMarker string = "== From catch! =="
)

// configure sets up the default options for the Logger: console output to
// os.Stdout, wall-clock timestamps and the last element of the root
// directory as the project marker.
func configure(l *Logger, cfg Config) {
	l.console = os.Stdout
	l.now = time.Now
	l.marker = markerFor(cfg.RootDir)
}

// New returns a new Logger for the given configuration. Options, if any,
// override the defaults set up by configure.
//
// If the file sink is enabled, the log directory is created (pre-existing
// directories are fine) and the log file is opened before New returns. A
// *DirectoryCreationError or *FileOpenError is returned if either fails, in
// which case there is no Logger.
func New(cfg Config, options ...option) (*Logger, error) {
	if !cfg.MinSeverity.Valid() {
		return nil, errors.Wrapf(ErrInvalidSeverity, "minimum severity %d", int(cfg.MinSeverity))
	}

	l := &Logger{minSeverity: cfg.MinSeverity}
	configure(l, cfg)

	// Overrides.
	for _, option := range options {
		option(l)
	}

	if !cfg.EnableConsole {
		l.console = nil
	} else if cfg.Colorize && isTerminal(l.console) {
		l.console = &colorWriter{w: l.console}
	}

	if cfg.EnableFile {
		f, err := openLogFile(cfg.RootDir, l.now())
		if err != nil {
			return nil, err
		}
		l.file = f
		l.path = f.Name()
	}
	return l, nil
}

// Path returns the path of the log file, or "" if file logging is disabled.
func (l *Logger) Path() string {
	return l.path
}

// Debugf logs at Debug severity. Arguments are handled in the manner of
// fmt.Printf; a newline is appended at the end.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.writeLog(Debug, format, v...)
}

// Infof logs at Info severity. Arguments are handled in the manner of
// fmt.Printf; a newline is appended at the end.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.writeLog(Info, format, v...)
}

// Warningf logs at Warning severity. Arguments are handled in the manner of
// fmt.Printf; a newline is appended at the end.
func (l *Logger) Warningf(format string, v ...interface{}) {
	l.writeLog(Warning, format, v...)
}

// Errorf logs at Error severity. Arguments are handled in the manner of
// fmt.Printf; a newline is appended at the end.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.writeLog(Error, format, v...)
}

// Finish flushes and closes the log file. Subsequent calls are no-ops, as
// are file writes made after it; the console sink, if enabled, keeps
// working.
func (l *Logger) Finish() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	f := l.file
	l.file = nil

	ferr := flush(f)
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", l.path)
	}
	if ferr != nil {
		return errors.Wrapf(ferr, "flushing %s", l.path)
	}
	return nil
}

// Logger.writeLog is only to be called from Logger.{Debug,Info,Warning,Error}f.
// We use a depth of two to retrieve the caller immediately preceding it.
func (l *Logger) writeLog(sev Severity, format string, v ...interface{}) {
	if sev < l.minSeverity {
		return
	}

	msg := fmt.Sprintf(format, v...)
	fn, line := caller(2)
	l.writeLine(l.compose(sev, l.now(), fn, line, msg))
}

// compose lays out a single log line:
//
//   [Level]<TAB>yyyy-mm-dd hh:mm:ss<TAB>function:line<TAB>message
//   [Info]	2018-04-19 06:33:04	main.run:42	serving on port 10669
func (l *Logger) compose(sev Severity, t time.Time, fn string, line int, msg string) string {
	var b strings.Builder
	b.WriteString(sev.tag())
	b.WriteByte('\t')
	b.WriteString(t.Format(timestampLayout))
	b.WriteByte('\t')
	fmt.Fprintf(&b, "%s:%d", fn, line)
	b.WriteByte('\t')
	b.WriteString(msg)
	return b.String()
}

// writeLine writes text, followed by a newline, to each enabled sink.
func (l *Logger) writeLine(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writeLineLocked(text)
}

// writeLineLocked is writeLine for callers already holding l.mu. Write
// errors are dropped; logging never interrupts the caller.
func (l *Logger) writeLineLocked(text string) {
	sinks := &multiWriter{}
	if l.console != nil {
		sinks.ws = append(sinks.ws, l.console)
	}
	if l.file != nil {
		sinks.ws = append(sinks.ws, l.file)
	}
	_, _ = sinks.WriteString(text + newline)
}

// markerFor returns the directory name identifying the project root within
// absolute source paths, e.g. "leveled" for a root of /src/leveled.
func markerFor(root string) string {
	if root == "" {
		return ""
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	base := filepath.Base(root)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return base
}

// relative strips everything up to and including the last occurrence of the
// project marker segment from file. Paths without the marker are returned
// verbatim.
func (l *Logger) relative(file string) string {
	if l.marker == "" {
		return file
	}
	seg := "/" + l.marker + "/"
	i := strings.LastIndex(filepath.ToSlash(file), seg)
	if i < 0 {
		return file
	}
	return file[i+len(seg):]
}

// caller returns the function name and line number of the caller's
// caller's call site.
//
// e.go: 32 func e() {
// e.go: 33     f()
// e.go: 34 }
//
// f.go: 11 func f() {
// f.go: 12      g()
// f.go: 13 }
//
// g.go: 25 func g() {
// g.go: 26 	{
// g.go: 27         // Request caller one level above.
// g.go: 28 		fn, line := caller(1)
// g.go: 29 		fmt.Println(fmt.Sprintf("%s: %d", fn, line)) // main.f: 12
// g.go: 30 	}
// g.go: 31 	{
// g.go: 32         // Request caller two levels above.
// g.go: 33 		fn, line := caller(2)
// g.go: 34 		fmt.Println(fmt.Sprintf("%s: %d", fn, line)) // main.e: 33
// g.go: 35 	}
// g.go: 36 }
//
func caller(depth int) (fn string, line int) {
	pcs := make([]uintptr, 1)
	// +2 to account for runtime.Callers and the call to caller itself.
	if runtime.Callers(depth+2, pcs) == 0 {
		return "[???]", -1
	}
	// CallersFrames, unlike runtime.FuncForPC, names the right function
	// when the level wrapper was inlined into its caller.
	frame, _ := runtime.CallersFrames(pcs).Next()
	return funcName(frame.Function), frame.Line
}

// funcName drops the import path from a fully qualified function name,
// leaving pkg.Func or pkg.(*T).Method.
func funcName(full string) string {
	if i := strings.LastIndex(full, "/"); i >= 0 && i+1 < len(full) {
		return full[i+1:]
	}
	return full
}
