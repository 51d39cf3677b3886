package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogType groups log lines by the part of the gateway that wrote them.
var LogType = struct {
	Startup   string
	Transcode string
	Web       string
	Queue     string
	Records   string
	Lossy     string
}{
	Startup:   "startup",
	Transcode: "transcode",
	Web:       "web",
	Queue:     "queue",
	Records:   "records",
	Lossy:     "lossy",
}

// LoggingFormat is one structured log line. Fill it in as the work goes on,
// then Print it or turn it into an error.
type LoggingFormat struct {
	Type     string
	Path     string
	Function string
	Level    logrus.Level
	Message  string
	Error    error
	fields   logrus.Fields
}

// AddField attaches a key/value pair to the line.
func (l *LoggingFormat) AddField(key string, value interface{}) {
	if l.fields == nil {
		l.fields = logrus.Fields{}
	}
	l.fields[key] = value
}

func (l *LoggingFormat) entry() *logrus.Entry {
	fields := logrus.Fields{}
	for k, v := range l.fields {
		fields[k] = v
	}
	if l.Type != "" {
		fields["type"] = l.Type
	}
	if l.Path != "" {
		fields["path"] = l.Path
	}
	if l.Function != "" {
		fields["function"] = l.Function
	}
	e := logrus.WithFields(fields)
	if l.Error != nil {
		e = e.WithError(l.Error)
	}
	return e
}

// Print writes the line at its level. A zero Level logs at info.
func (l *LoggingFormat) Print() {
	level := l.Level
	if level == logrus.PanicLevel {
		level = logrus.InfoLevel
	}
	l.entry().Log(level, l.Message)
}

// ToError logs the line and returns it as an error wrapping Error.
func (l *LoggingFormat) ToError() error {
	if l.Level == logrus.PanicLevel {
		l.Level = logrus.ErrorLevel
	}
	l.Print()
	prefix := strings.Trim(l.Path+"."+l.Function, ".")
	if prefix != "" {
		prefix += ": "
	}
	if l.Error != nil {
		return fmt.Errorf("%s%s: %w", prefix, l.Message, l.Error)
	}
	return fmt.Errorf("%s%s", prefix, l.Message)
}

// initLogging configures the standard logrus logger from LOG_LEVEL.
func initLogging(level string) {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}
