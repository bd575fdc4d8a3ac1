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

// Package log implements leveled logging to the console and to a log file.
// Every line is tagged with its severity, a timestamp and the function and
// line number it was logged from:
//
//      [Info]	2018-04-19 06:33:04	main.run:42	serving on port 10669
//
// Lines below the Logger's minimum severity are dropped before any
// formatting takes place.
//
// Basic example:
//
//      logger, err := log.New(log.Config{
//              EnableConsole: true,
//              EnableFile:    true,
//              MinSeverity:   log.Info,
//              RootDir:       "/path/to/project",
//      })
//      if err != nil {
//              ...
//      }
//      defer logger.Finish()
//
//      logger.Infof("hello, %s", "world")
//
// With the file sink enabled, lines are appended to
// <RootDir>/output/logs/<yyyy-mm-dd_hh-mm-ss>.log, named after the time the
// Logger was created. The directory is created if need be.
//
// Errors can be recorded along with their stack trace, using either an
// Exception or any error carrying a github.com/pkg/errors stack:
//
//      if err := run(); err != nil {
//              logger.Exception(log.Wrap(err, "run:failed"))
//      }
//
// which, for every frame, prints where it is and the line of source there:
//
//      [Error]	2018-04-19 06:33:04	main.main:12	== From catch! ==
//      [Error]	2018-04-19 06:33:04	main.main:12	run:failed connection refused
//
//      Error in main.run (cmd/main.go) on line 27
//              conn, err := dial(addr)
package log
