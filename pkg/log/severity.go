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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Severity is the level a log line is tagged with, and the level a Logger
// filters on. Severities are totally ordered by their numeric value.
type Severity int

const (
	Debug   Severity = 10
	Info    Severity = 20
	Warning Severity = 30
	Error   Severity = 40
)

// ErrInvalidSeverity is returned for values outside of {Debug, Info, Warning,
// Error}.
var ErrInvalidSeverity = errors.New("invalid severity")

var severityNames = map[Severity]string{
	Debug:   "Debug",
	Info:    "Info",
	Warning: "Warning",
	Error:   "Error",
}

// Valid reports whether s is one of the four defined severities.
func (s Severity) Valid() bool {
	_, ok := severityNames[s]
	return ok
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "Severity(" + strconv.Itoa(int(s)) + ")"
}

// tag is the bracketed form used as the first field of a log line, e.g.
// "[Error]".
func (s Severity) tag() string {
	return "[" + s.String() + "]"
}

// ParseSeverity maps a (case-insensitive) severity name to its Severity.
// "warn" is accepted as a shorthand for Warning.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "warning", "warn":
		return Warning, nil
	case "error":
		return Error, nil
	}
	return 0, errors.Wrapf(ErrInvalidSeverity, "%q", name)
}

// Set implements flag.Value, so that a Severity can be bound to a command
// line flag (-level info).
func (s *Severity) Set(name string) error {
	sev, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = sev
	return nil
}
