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
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kurafs/leveled/pkg/cli"
)

func TestRaise(t *testing.T) {
	root, err := ioutil.TempDir("", "raise")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(root)

	args := []string{"-console=false", "-file", "-root", root, "-id", "X:bad", "failed"}
	if err := raiseCmdRun(&cli.Command{}, args); err != nil {
		t.Fatal(err)
	}

	files, err := filepath.Glob(filepath.Join(root, "output", "logs", "*.log"))
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one log file, got %v (%v)", files, err)
	}
	b, err := ioutil.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	out := string(b)

	for _, want := range []string{
		"\traise.raiseCmdRun:",
		"\t== From catch! ==\n",
		"\tX:bad failed\n",
		"\nError in raise.fail (",
		"\treturn errors.New(msg)\n",
		"\nError in raise.raiseCmdRun (",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %s", want, out)
		}
	}
}
