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

package emit

import (
	"strings"

	"github.com/kurafs/leveled/pkg/cli"
	"github.com/kurafs/leveled/pkg/log"
)

var EmitCmd = &cli.Command{
	Run:       emitCmdRun,
	UsageLine: "emit [-level level] [-min level] [-console] [-file] [-root dir] [-color] message...",
	Short:     "log a message at a given severity",
	Long: `
Emit logs its arguments, joined by spaces, as a single line at the severity
given by -level. The line is dropped if -level is below -min.

With -file, the line is appended to <root>/output/logs/<timestamp>.log; the
directory is created if it doesn't exist. See 'leveled help format' for the
layout of the line.
`,
}

func emitCmdRun(cmd *cli.Command, args []string) error {
	level, min := log.Info, log.Debug
	var (
		console, file, colorize bool
		root                    string
	)
	cmd.FlagSet.Var(&level, "level", "Severity to log the message at (debug|info|warning|error)")
	cmd.FlagSet.Var(&min, "min", "Minimum severity emitted (debug|info|warning|error)")
	cmd.FlagSet.BoolVar(&console, "console", true, "Log to standard output")
	cmd.FlagSet.BoolVar(&file, "file", false, "Log to a timestamped file under <root>/output/logs")
	cmd.FlagSet.StringVar(&root, "root", ".", "Project root directory")
	cmd.FlagSet.BoolVar(&colorize, "color", false, "Colour severity tags on a terminal")
	if err := cmd.FlagSet.Parse(args); err != nil {
		return cli.ParseError(err)
	}

	logger, err := log.New(log.Config{
		EnableConsole: console,
		EnableFile:    file,
		MinSeverity:   min,
		RootDir:       root,
		Colorize:      colorize,
	})
	if err != nil {
		return err
	}

	msg := strings.Join(cmd.FlagSet.Args(), " ")
	// The message is passed as an argument, never as the format, so '%' in
	// user input comes out as is.
	switch level {
	case log.Debug:
		logger.Debugf("%s", msg)
	case log.Info:
		logger.Infof("%s", msg)
	case log.Warning:
		logger.Warningf("%s", msg)
	case log.Error:
		logger.Errorf("%s", msg)
	}
	return logger.Finish()
}
