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

package doc

import "github.com/kurafs/leveled/pkg/cli"

var FormatCmd = &cli.Command{
	UsageLine: "format",
	Short:     "log line and exception block formats",
	Long: `
Every log line has four tab separated fields:

    [<Level>]  <yyyy-mm-dd hh:mm:ss>  <function>:<line>  <message>

where Level is one of Debug, Info, Warning or Error (in increasing order of
severity) and function:line is where the logging call was made from. Lines
below the configured minimum severity are dropped.

An error recorded along with its stack is logged as two Error lines, the
marker "== From catch! ==" and "<id> <message>", followed by three lines per
stack frame:

    <blank>
    Error in <function> (<file>) on line <line>
    <the text of that line, or "<source unavailable>">

File logs are written to <root>/output/logs/<yyyy-mm-dd_hh-mm-ss>.log, named
after the time logging started.
`,
}
