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
	"io"
	"strings"
	"time"
)

type option func(l *Logger)

// Console redirects the console sink to w (os.Stdout by default). It has no
// effect unless Config.EnableConsole is set.
func Console(w io.Writer) option {
	return func(l *Logger) {
		l.console = w
	}
}

// Clock replaces time.Now as the source of timestamps, both for log lines
// and for naming the log file.
func Clock(now func() time.Time) option {
	return func(l *Logger) {
		l.now = now
	}
}

// ProjectMarker sets the directory name marking the project root in
// exception frame paths; everything up to and including its last occurrence
// is stripped. An empty segment disables stripping.
func ProjectMarker(segment string) option {
	return func(l *Logger) {
		l.marker = strings.Trim(segment, "/")
	}
}
