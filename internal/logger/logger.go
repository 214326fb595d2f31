// Package logger configures the process-wide logrus logger.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

type LogOptions struct {
	// Verbose switches to debug level.
	Verbose bool
	// DisableColor if true will disable outputting colors.
	DisableColor bool
	// HideLogTime drops the timestamp prefix.
	HideLogTime bool
	// Output defaults to stderr when nil.
	Output io.Writer
}

func Init(options LogOptions) {
	if options.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	if options.Output != nil {
		logrus.SetOutput(options.Output)
	}
	logrus.SetFormatter(&Formatter{
		DisableColor: options.DisableColor,
		HideLogTime:  options.HideLogTime,
	})
}

const (
	colorRed    = 31
	colorYellow = 33
	colorBlue   = 36
	colorGray   = 37
)

const defaultTimestampFormat = "2006-01-02 15:04:05"

func colorByLevel(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return colorGray
	case logrus.WarnLevel:
		return colorYellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return colorRed
	default:
		return colorBlue
	}
}

// Formatter prints "<time> [LEVEL] message key=value ..." lines.
type Formatter struct {
	DisableColor    bool
	HideLogTime     bool
	TimestampFormat string
}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	if !f.HideLogTime {
		tf := f.TimestampFormat
		if tf == "" {
			tf = defaultTimestampFormat
		}
		b.WriteString(entry.Time.Format(tf))
		b.WriteByte(' ')
	}

	line := fmt.Sprintf("[%s] %s", strings.ToUpper(entry.Level.String()), entry.Message)
	for _, k := range slices.Sorted(maps.Keys(entry.Data)) {
		line += fmt.Sprintf(" %s=%v", k, entry.Data[k])
	}

	if f.DisableColor {
		b.WriteString(line)
	} else {
		fmt.Fprintf(b, "\033[%dm%s\033[0m", colorByLevel(entry.Level), line)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
