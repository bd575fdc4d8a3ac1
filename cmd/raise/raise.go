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

package raise

import (
	"strings"

	"github.com/kurafs/leveled/pkg/cli"
	"github.com/kurafs/leveled/pkg/log"
	"github.com/pkg/errors"
)

var RaiseCmd = &cli.Command{
	Run:       raiseCmdRun,
	UsageLine: "raise [-id id] [-min level] [-console] [-file] [-root dir] message...",
	Short:     "record an error along with its stack",
	Long: `
Raise fails on purpose with the given message, catches the error and records
it, identified by -id, along with the stack it was raised from. Each frame is
followed by the line of source it points at, when the file can be read.

Paths are shown relative to -root when they fall within it. See 'leveled help
format' for the layout of the exception block.
`,
}

func raiseCmdRun(cmd *cli.Command, args []string) error {
	min := log.Debug
	var (
		console, file bool
		root, id      string
	)
	cmd.FlagSet.StringVar(&id, "id", "raise:failed", "Identifier the error is recorded under")
	cmd.FlagSet.Var(&min, "min", "Minimum severity emitted (debug|info|warning|error)")
	cmd.FlagSet.BoolVar(&console, "console", true, "Log to standard output")
	cmd.FlagSet.BoolVar(&file, "file", false, "Log to a timestamped file under <root>/output/logs")
	cmd.FlagSet.StringVar(&root, "root", ".", "Project root directory")
	if err := cmd.FlagSet.Parse(args); err != nil {
		return cli.ParseError(err)
	}

	logger, err := log.New(log.Config{
		EnableConsole: console,
		EnableFile:    file,
		MinSeverity:   min,
		RootDir:       root,
	})
	if err != nil {
		return err
	}

	if err := fail(strings.Join(cmd.FlagSet.Args(), " ")); err != nil {
		logger.Exception(log.Wrap(err, id))
	}
	return logger.Finish()
}

// fail returns an error carrying the stack of its call.
func fail(msg string) error {
	return errors.New(msg)
}
