// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in licenses/BSD-golang.txt.

// Portions of this file are additionally subject to the following
// license and copyright.
//
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

// Portions of this code originated in the Go source code, under cmd/go/internal/base.

package cli

import (
	"flag"
	"strings"
)

// A Command is a sub-command of the program, like 'leveled emit'. If Run is
// nil, it's a documentation pseudo-command only reachable through
// '<program> help <topic>'.
type Command struct {
	// Run runs the command. The args are the arguments after the command
	// name, to be parsed with cmd.FlagSet. Flag parsing errors should be
	// returned as ParseError(err) so that Process can print usage for them.
	Run func(cmd *Command, args []string) error

	// UsageLine is the one-line usage message. The first word in the line is
	// taken to be the command name.
	UsageLine string

	// Short is the description shown in the '<program> help' listing.
	Short string

	// Long is the description shown by '<program> help <command>'.
	Long string

	// FlagSet holds the flags specific to the command, typically defined by
	// Run before parsing args. Its output is discarded; Process prints flag
	// errors and defaults itself.
	FlagSet flag.FlagSet
}

type Commands []*Command

// Name returns the command's name: the first word in the usage line.
func (c *Command) Name() string {
	name := c.UsageLine
	if i := strings.Index(name, " "); i >= 0 {
		name = name[:i]
	}
	return name
}

// Runnable reports whether the command can be run; otherwise it is a
// documentation pseudo-command such as 'format'.
func (c *Command) Runnable() bool {
	return c.Run != nil
}

// lookup returns the command with the given name, if any.
func (cs Commands) lookup(name string) *Command {
	for _, cmd := range cs {
		if cmd.Name() == name {
			return cmd
		}
	}
	return nil
}

type parseError struct {
	err error
}

func (e parseError) Error() string { return e.err.Error() }

// ParseError marks err as a flag parsing error, for which Process prints the
// command's usage and exits with status 2 rather than propagating it.
func ParseError(err error) error {
	return parseError{err}
}
