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

package log

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

// Frame is a single entry of a captured stack trace.
type Frame struct {
	Function string
	File     string
	Line     int
}

// Exception is an error carrying an identifier and the stack it was captured
// at, innermost frame first.
type Exception struct {
	ID      string
	Message string
	Frames  []Frame
}

func (e *Exception) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.ID + " " + e.Message
}

// Capture returns an Exception with the current goroutine's stack, starting
// at the caller of Capture.
func Capture(id, message string) *Exception {
	return &Exception{ID: id, Message: message, Frames: callers(1)}
}

// Wrap returns an Exception for err under the given identifier. If err
// carries a stack trace (as errors from github.com/pkg/errors do) that
// trace is used, otherwise the stack is captured at the caller of Wrap.
func Wrap(err error, id string) *Exception {
	if err == nil {
		return nil
	}
	frames := stackOf(err)
	if frames == nil {
		frames = callers(1)
	}
	return &Exception{ID: id, Message: err.Error(), Frames: frames}
}

// Exception records err at Error severity along with its stack. Two tagged
// lines (a marker and "<id> <message>") are followed, per frame, by a blank
// line, the frame's location and the text of the source line it points at.
// Source lines that can't be read are rendered as "<source unavailable>".
//
// The block is written out in one piece; concurrent log lines land before
// or after it, never inside.
func (l *Logger) Exception(err error) {
	if err == nil {
		return
	}
	exc := exceptionOf(err)
	if exc == nil {
		// A typed nil, e.g. Wrap(nil, id).
		return
	}
	fn, line := caller(1)

	l.mu.Lock()
	defer l.mu.Unlock()

	if Error >= l.minSeverity {
		now := l.now()
		l.writeLineLocked(l.compose(Error, now, fn, line, exceptionMarker))
		l.writeLineLocked(l.compose(Error, now, fn, line, exc.Error()))
	}

	// Frames go out raw; they're part of an Error record already.
	for _, f := range exc.Frames {
		l.writeLineLocked("")
		l.writeLineLocked(fmt.Sprintf("Error in %s (%s) on line %d", f.Function, l.relative(f.File), f.Line))
		text, rerr := sourceLine(f.File, f.Line)
		if rerr != nil {
			text = sourceUnavailable
		}
		l.writeLineLocked(text)
	}
}

// exceptionOf converts an arbitrary error into an Exception. An *Exception
// anywhere in the chain is used as is. Otherwise the identifier is taken
// from an ID() method if err has one, and from the type of its root cause if
// not. A nil *Exception in the chain yields nil.
func exceptionOf(err error) *Exception {
	var exc *Exception
	if errors.As(err, &exc) {
		return exc
	}

	id := fmt.Sprintf("%T", errors.Cause(err))
	if ider, ok := err.(interface{ ID() string }); ok {
		id = ider.ID()
	}
	return &Exception{ID: id, Message: err.Error(), Frames: stackOf(err)}
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackOf returns the frames of the innermost stack trace in err's chain, or
// nil if there isn't one. The innermost trace is the one closest to where
// the failure originated.
func stackOf(err error) []Frame {
	var st errors.StackTrace
	for err != nil {
		if t, ok := err.(stackTracer); ok {
			st = t.StackTrace()
		}
		err = unwrap(err)
	}
	if st == nil {
		return nil
	}

	// errors.Frame holds the same return addresses runtime.Callers does.
	pcs := make([]uintptr, len(st))
	for i, f := range st {
		pcs[i] = uintptr(f)
	}
	return framesOf(pcs)
}

func unwrap(err error) error {
	switch e := err.(type) {
	case interface{ Unwrap() error }:
		return e.Unwrap()
	case interface{ Cause() error }:
		return e.Cause()
	}
	return nil
}

// callers returns the current goroutine's stack, skipping the given number
// of frames above the caller of callers.
func callers(skip int) []Frame {
	pcs := make([]uintptr, 64)
	// +2 for runtime.Callers and callers itself.
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}

	return framesOf(pcs[:n])
}

// framesOf expands return addresses into frames, inlined calls included.
func framesOf(pcs []uintptr) []Frame {
	if len(pcs) == 0 {
		return nil
	}
	var frames []Frame
	it := runtime.CallersFrames(pcs)
	for {
		f, more := it.Next()
		frames = append(frames, Frame{
			Function: funcName(f.Function),
			File:     f.File,
			Line:     f.Line,
		})
		if !more {
			break
		}
	}
	return frames
}
