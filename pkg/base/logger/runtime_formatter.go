// Package logger contains logrus formatters used by provider
package logger

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// FunctionKey holds the function field
const FunctionKey = "function"

// FileKey holds the file field
const FileKey = "file"

const (
	logrusStackJump          = 4
	logrusFieldlessStackJump = 6
	// sourceRoot is the first directory of repository paths kept in FileKey field
	sourceRoot = "/pkg/"
)

// RuntimeFormatter decorates log entries with function name and file:line of the caller.
// Only entries with level up to MaxLevel are decorated, e.g. MaxLevel=ErrorLevel decorates error, fatal and panic
type RuntimeFormatter struct {
	ChildFormatter logrus.Formatter
	MaxLevel       logrus.Level
}

// Format the current log entry by adding the function name and line number of the caller.
func (f *RuntimeFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	data := logrus.Fields{}
	if f.MaxLevel >= entry.Level {
		function, file, line := f.getCurrentPosition(entry)
		packageEnd := strings.LastIndex(function, ".")
		functionName := function[packageEnd+1:]

		data[FunctionKey] = functionName
		data[FileKey] = trimSourcePath(file) + ":" + line
	}
	for k, v := range entry.Data {
		data[k] = v
	}
	entry.Data = data

	return f.ChildFormatter.Format(entry)
}

func (f *RuntimeFormatter) getCurrentPosition(entry *logrus.Entry) (string, string, string) {
	skip := logrusStackJump
	if len(entry.Data) == 0 {
		skip = logrusFieldlessStackJump
	}
	for {
		pc, file, line, ok := runtime.Caller(skip)
		if !ok {
			return "", "", ""
		}
		function := runtime.FuncForPC(pc).Name()
		if strings.Contains(function, "sirupsen/logrus.") {
			skip++
			continue
		}
		return function, file, strconv.Itoa(line)
	}
}

// trimSourcePath cuts build machine specific prefix, /root/src/lvm-provider/pkg/lvresource/reconcile.go
// becomes pkg/lvresource/reconcile.go
func trimSourcePath(file string) string {
	if idx := strings.LastIndex(file, sourceRoot); idx != -1 {
		return file[idx+1:]
	}
	return file
}
