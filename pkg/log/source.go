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
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const sourceUnavailable = "<source unavailable>"

var errNoSuchLine = errors.New("no such line")

// sourceLine reads the text of the given (1-indexed) line of file, as it is
// on disk at the time of the call. Every failure is reported as a
// *SourceLineReadError.
func sourceLine(file string, line int) (string, error) {
	if line < 1 {
		return "", &SourceLineReadError{File: file, Line: line, Err: errNoSuchLine}
	}

	f, err := os.Open(file)
	if err != nil {
		return "", &SourceLineReadError{File: file, Line: line, Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20) // Generated code has long lines.
	for n := 1; scanner.Scan(); n++ {
		if n == line {
			return strings.TrimRight(scanner.Text(), "\r"), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", &SourceLineReadError{File: file, Line: line, Err: err}
	}
	return "", &SourceLineReadError{File: file, Line: line, Err: errNoSuchLine}
}
