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

package cli

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
)

// Process is the entry point for CLI commands. os.Args are matched against
// commands and the matching one, if any, is run. There are no root level
// flags; invoking the program without arguments prints the full usage.
//
// Usage errors (unknown commands or help topics, bad flags) are printed to
// os.Stderr and followed by os.Exit(2). Errors returned by a command's Run
// are propagated to the caller. Everything else is printed to os.Stdout.
func Process(abstract string, commands Commands) error {
	code, err := process(os.Args[0], os.Args[1:], abstract, commands, os.Stdout, os.Stderr)
	if code != 0 {
		os.Exit(code)
	}
	return err
}

// process is Process with its inputs and outputs made explicit. It returns
// the status the program should exit with, if non-zero, along with the error
// of the command that ran.
func process(program string, args []string, abstract string, commands Commands, stdout, stderr io.Writer) (int, error) {
	for _, cmd := range commands {
		cmd.FlagSet.SetOutput(ioutil.Discard)
	}

	if len(args) == 0 {
		printFullUsage(stdout, program, abstract, commands)
		return 0, nil
	}

	name := args[0]
	if (name == "help" || name == "-h") && len(args) == 1 {
		printFullUsage(stdout, program, abstract, commands)
		return 0, nil
	}

	if name == "help" {
		if len(args) > 2 {
			fmt.Fprintf(stderr, "Usage: %s help [command]\n\n", program)
			fmt.Fprintln(stderr, "Too many arguments given.")
			return 2, nil
		}
		cmd := commands.lookup(args[1])
		if cmd == nil {
			fmt.Fprintf(stderr, "Unknown help topic '%s'\n\n", args[1])
			fmt.Fprintf(stderr, "Run '%s help' for available topics.\n", program)
			return 2, nil
		}
		tmpl(stdout, helpTemplate, program, "", cmd)
		return 0, nil
	}

	cmd := commands.lookup(name)
	if cmd == nil || !cmd.Runnable() {
		fmt.Fprintf(stderr, "Unknown command '%s'\n\n", name)
		fmt.Fprintf(stderr, "Run '%s help' for available commands.\n", program)
		return 2, nil
	}

	err := cmd.Run(cmd, args[1:])
	perr, ok := err.(parseError)
	if !ok {
		return 0, err
	}

	// '-h' surfaces as flag.ErrHelp; asking for help isn't a usage error.
	if strings.Contains(perr.Error(), "help requested") {
		printCommandHelp(stdout, program, cmd)
		return 0, nil
	}
	printParseError(stderr, program, cmd, perr)
	return 2, nil
}
