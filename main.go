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

package main

import (
	"fmt"
	"os"

	"github.com/kurafs/leveled/doc"
	"github.com/kurafs/leveled/pkg/cli"

	"github.com/kurafs/leveled/cmd/emit"
	"github.com/kurafs/leveled/cmd/raise"
)

func main() {
	// We aggregate all the top-level commands (i.e. 'leveled <command> ...')
	// as needed.
	var commands cli.Commands
	commands = append(commands, emit.EmitCmd)
	commands = append(commands, raise.RaiseCmd)

	// We also include a documentation pseudo-command for the log formats.
	commands = append(commands, doc.FormatCmd)

	abstract := "Leveled writes leveled log lines to the console and to log files."
	if err := cli.Process(abstract, commands); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
