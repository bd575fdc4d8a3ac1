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
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
)

var epoch = time.Date(2018, time.April, 19, 6, 33, 4, 0, time.Local)

func fixedClock() time.Time { return epoch }

func consoleLogger(t *testing.T, min Severity) (*Logger, *bytes.Buffer) {
	t.Helper()
	buffer := new(bytes.Buffer)
	logger, err := New(Config{EnableConsole: true, MinSeverity: min}, Console(buffer), Clock(fixedClock))
	if err != nil {
		t.Fatal(err)
	}
	return logger, buffer
}

func tempRoot(t *testing.T) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "leveled")
	if err != nil {
		t.Fatal(err)
	}
	return dir
}

func lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestInfoLog(t *testing.T) {
	logger, buffer := consoleLogger(t, Info)
	{
		logger.Infof("info")
		regex := "^\\[Info\\]\t2018-04-19 06:33:04\tlog\\.TestInfoLog:\\d+\tinfo\n$"
		match, err := regexp.Match(regex, buffer.Bytes())
		if err != nil {
			t.Error(err)
		}
		if !match {
			t.Errorf("expected pattern: %q, got: %q", regex, buffer.String())
		}
		buffer.Reset()
	}
	{
		logger.Infof("%t %d %s", true, 1, "infof")
		regex := "^\\[Info\\]\t.*\ttrue 1 infof\n$"
		match, err := regexp.Match(regex, buffer.Bytes())
		if err != nil {
			t.Error(err)
		}
		if !match {
			t.Errorf("expected pattern: %q, got: %q", regex, buffer.String())
		}
		buffer.Reset()
	}
}

func TestConsoleOnlyScenario(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger, err := New(Config{
		EnableConsole: true,
		EnableFile:    false,
		MinSeverity:   Info,
		RootDir:       "anything",
	}, Console(buffer))
	if err != nil {
		t.Fatal(err)
	}

	logger.Debugf("x")
	logger.Infof("y=%d", 5)

	got := lines(buffer.String())
	if len(got) != 1 {
		t.Fatalf("expected exactly one line, got %d: %q", len(got), buffer.String())
	}
	if !strings.Contains(got[0], "[Info]") || !strings.Contains(got[0], "y=5") {
		t.Errorf("expected [Info] line with y=5, got: %q", got[0])
	}
	if logger.Path() != "" {
		t.Errorf("expected no log file, got %s", logger.Path())
	}
}

func TestFilteringInvariant(t *testing.T) {
	severities := []Severity{Debug, Info, Warning, Error}
	for _, min := range severities {
		for _, sev := range severities {
			logger, buffer := consoleLogger(t, min)
			switch sev {
			case Debug:
				logger.Debugf("m")
			case Info:
				logger.Infof("m")
			case Warning:
				logger.Warningf("m")
			case Error:
				logger.Errorf("m")
			}

			want := 0
			if sev >= min {
				want = 1
			}
			if got := len(lines(buffer.String())); got != want {
				t.Errorf("min=%s sev=%s: expected %d lines, got %d", min, sev, want, got)
			}
		}
	}
}

func TestCallSite(t *testing.T) {
	logger, buffer := consoleLogger(t, Debug)

	// The log statement must directly follow the call to runtime.Caller.
	_, _, line, _ := runtime.Caller(0)
	logger.Warningf("here")

	want := fmt.Sprintf("\tlog.TestCallSite:%d\t", line+1)
	if !strings.Contains(buffer.String(), want) {
		t.Errorf("expected call site %q, got: %q", want, buffer.String())
	}
}

type service struct {
	logger Facility
}

func (s *service) serve() {
	s.logger.Errorf("serving")
}

func TestCallSiteMethod(t *testing.T) {
	logger, buffer := consoleLogger(t, Debug)
	(&service{logger: logger}).serve()

	if !strings.Contains(buffer.String(), "\tlog.(*service).serve:") {
		t.Errorf("expected method call site, got: %q", buffer.String())
	}
}

func TestMessageIsNotReformatted(t *testing.T) {
	logger, buffer := consoleLogger(t, Debug)
	logger.Infof("%s", "100%d %s\\n")

	if !strings.HasSuffix(buffer.String(), "\t100%d %s\\n\n") {
		t.Errorf("expected message written verbatim, got: %q", buffer.String())
	}
}

func TestFormatMismatch(t *testing.T) {
	logger, buffer := consoleLogger(t, Debug)
	format := "%d"
	logger.Infof(format)

	if !strings.Contains(buffer.String(), "%!d(MISSING)") {
		t.Errorf("expected fmt's missing-argument marker, got: %q", buffer.String())
	}
}

func TestConsoleDisabled(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger, err := New(Config{MinSeverity: Debug}, Console(buffer))
	if err != nil {
		t.Fatal(err)
	}
	logger.Errorf("nowhere")
	if buffer.Len() != 0 {
		t.Errorf("expected disabled console to stay empty, got: %q", buffer.String())
	}
}

func TestInvalidSeverity(t *testing.T) {
	_, err := New(Config{EnableConsole: true, MinSeverity: Severity(15)})
	if errors.Cause(err) != ErrInvalidSeverity {
		t.Errorf("expected ErrInvalidSeverity, got: %v", err)
	}
}

func TestFileScenario(t *testing.T) {
	root := tempRoot(t)
	defer os.RemoveAll(root)

	logger, err := New(Config{
		EnableConsole: false,
		EnableFile:    true,
		MinSeverity:   Debug,
		RootDir:       root,
	}, Clock(fixedClock))
	if err != nil {
		t.Fatal(err)
	}

	logger.Errorf("boom")
	if err := logger.Finish(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(root, "output", "logs", "2018-04-19_06-33-04.log")
	if logger.Path() != path {
		t.Errorf("expected log file %s, got %s", path, logger.Path())
	}
	b, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := lines(string(b))
	if len(got) != 1 {
		t.Fatalf("expected one line, got %d: %q", len(got), b)
	}
	if !strings.HasPrefix(got[0], "[Error]\t") || !strings.HasSuffix(got[0], "boom") {
		t.Errorf("expected [Error] line ending in boom, got: %q", got[0])
	}
}

func TestBothSinks(t *testing.T) {
	root := tempRoot(t)
	defer os.RemoveAll(root)

	buffer := new(bytes.Buffer)
	logger, err := New(Config{
		EnableConsole: true,
		EnableFile:    true,
		MinSeverity:   Debug,
		RootDir:       root,
	}, Console(buffer), Clock(fixedClock))
	if err != nil {
		t.Fatal(err)
	}
	logger.Debugf("both")
	logger.Finish()

	b, err := ioutil.ReadFile(logger.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != buffer.String() {
		t.Errorf("expected identical sink contents, file: %q, console: %q", b, buffer.String())
	}
}

func TestOrdering(t *testing.T) {
	root := tempRoot(t)
	defer os.RemoveAll(root)

	logger, err := New(Config{EnableFile: true, MinSeverity: Info, RootDir: root})
	if err != nil {
		t.Fatal(err)
	}
	const n = 50
	for i := 0; i < n; i++ {
		logger.Debugf("filtered %d", i)
		logger.Infof("line %d", i)
	}
	logger.Finish()

	b, err := ioutil.ReadFile(logger.Path())
	if err != nil {
		t.Fatal(err)
	}
	got := lines(string(b))
	if len(got) != n {
		t.Fatalf("expected %d lines, got %d", n, len(got))
	}
	for i, l := range got {
		if !strings.HasSuffix(l, fmt.Sprintf("\tline %d", i)) {
			t.Errorf("line %d out of order: %q", i, l)
		}
	}
}

func TestDirectoryCreationIdempotent(t *testing.T) {
	root := tempRoot(t)
	defer os.RemoveAll(root)

	for i := 0; i < 2; i++ {
		at := epoch.Add(time.Duration(i) * time.Second)
		logger, err := New(Config{EnableFile: true, MinSeverity: Debug, RootDir: root},
			Clock(func() time.Time { return at }))
		if err != nil {
			t.Fatalf("construction %d: %v", i, err)
		}
		logger.Finish()
	}

	entries, err := ioutil.ReadDir(logDir(root))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("expected two log files, got %d", len(entries))
	}
}

func TestDirectoryCreationError(t *testing.T) {
	root := tempRoot(t)
	defer os.RemoveAll(root)

	// A regular file where the output directory should be.
	if err := ioutil.WriteFile(filepath.Join(root, "output"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	logger, err := New(Config{EnableFile: true, MinSeverity: Debug, RootDir: root})
	if logger != nil {
		t.Error("expected no Logger on failure")
	}
	var derr *DirectoryCreationError
	if !errors.As(err, &derr) {
		t.Fatalf("expected *DirectoryCreationError, got: %v", err)
	}
	if derr.Dir != logDir(root) {
		t.Errorf("expected dir %s, got %s", logDir(root), derr.Dir)
	}
}

func TestFileOpenError(t *testing.T) {
	root := tempRoot(t)
	defer os.RemoveAll(root)

	// A directory where the log file should be.
	if err := os.MkdirAll(filepath.Join(logDir(root), logFilename(epoch)), 0755); err != nil {
		t.Fatal(err)
	}

	logger, err := New(Config{EnableFile: true, MinSeverity: Debug, RootDir: root}, Clock(fixedClock))
	if logger != nil {
		t.Error("expected no Logger on failure")
	}
	var ferr *FileOpenError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected *FileOpenError, got: %v", err)
	}
}

func TestFinishIdempotent(t *testing.T) {
	root := tempRoot(t)
	defer os.RemoveAll(root)

	buffer := new(bytes.Buffer)
	logger, err := New(Config{EnableConsole: true, EnableFile: true, MinSeverity: Debug, RootDir: root},
		Console(buffer))
	if err != nil {
		t.Fatal(err)
	}
	logger.Infof("before")

	if err := logger.Finish(); err != nil {
		t.Fatal(err)
	}
	if err := logger.Finish(); err != nil {
		t.Errorf("expected second Finish to be a no-op, got: %v", err)
	}

	logger.Infof("after")

	b, err := ioutil.ReadFile(logger.Path())
	if err != nil {
		t.Fatal(err)
	}
	if got := lines(string(b)); len(got) != 1 {
		t.Errorf("expected file untouched after Finish, got: %q", b)
	}
	if got := lines(buffer.String()); len(got) != 2 {
		t.Errorf("expected console to keep working after Finish, got: %q", buffer.String())
	}
}

func TestConcurrentLines(t *testing.T) {
	logger, buffer := consoleLogger(t, Debug)

	const goroutines, each = 8, 100
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < each; i++ {
				logger.Infof("g%d-%d", g, i)
			}
		}(g)
	}
	wg.Wait()

	got := lines(buffer.String())
	if len(got) != goroutines*each {
		t.Fatalf("expected %d lines, got %d", goroutines*each, len(got))
	}
	regex := regexp.MustCompile("^\\[Info\\]\t[^\t]+\t[^\t]+:\\d+\tg\\d+-\\d+$")
	for _, l := range got {
		if !regex.MatchString(l) {
			t.Errorf("malformed line: %q", l)
		}
	}
}
