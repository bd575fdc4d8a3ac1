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

import "fmt"

// DirectoryCreationError is returned by New when the log directory could not
// be created. No Logger is returned alongside it.
type DirectoryCreationError struct {
	Dir string
	Err error
}

func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf("creating log directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryCreationError) Cause() error  { return e.Err }
func (e *DirectoryCreationError) Unwrap() error { return e.Err }

// FileOpenError is returned by New when the log file could not be opened for
// appending. No Logger is returned alongside it.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("opening log file %s: %v", e.Path, e.Err)
}

func (e *FileOpenError) Cause() error  { return e.Err }
func (e *FileOpenError) Unwrap() error { return e.Err }

// SourceLineReadError describes a frame whose source line could not be
// recovered. It never leaves Logger.Exception; the frame is rendered with a
// placeholder instead.
type SourceLineReadError struct {
	File string
	Line int
	Err  error
}

func (e *SourceLineReadError) Error() string {
	return fmt.Sprintf("reading %s:%d: %v", e.File, e.Line, e.Err)
}

func (e *SourceLineReadError) Cause() error  { return e.Err }
func (e *SourceLineReadError) Unwrap() error { return e.Err }
