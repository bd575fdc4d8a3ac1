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

// Package cli dispatches '<program> <command> [arguments]' invocations to
// sub-commands, git style, and renders their help. Commands parse their own
// flags with the standard flag package.
//
// Example (from the leveled binary):
//
//      var commands cli.Commands
//      commands = append(commands, emit.EmitCmd)
//      commands = append(commands, raise.RaiseCmd)
//      commands = append(commands, doc.FormatCmd)
//
//      abstract := "Leveled writes leveled log lines to the console and to log files."
//      if err := cli.Process(abstract, commands); err != nil {
//              os.Exit(1)
//      }
//
// which generates:
//
//      $ leveled help
//      Leveled writes leveled log lines to the console and to log files.
//
//      Usage:
//
//          leveled command [arguments]
//
//      The commands are:
//
//              emit                   log a message at a given severity
//              raise                  record an error along with its stack
//
//      Use 'leveled help [command]' for more information about a command.
//
//      Additional help topics:
//
//              format                 log line and exception block formats
//
//      Use "leveled help [topic]" for more information about that topic.
//
// Individual commands also have their own '-h' switches listing their flags.
package cli
