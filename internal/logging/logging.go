package logging

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logLevelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
	"FATAL": zerolog.FatalLevel,
}

// ParseLevel maps a level name to zerolog's, falling back to info.
func ParseLevel(level string) zerolog.Level {
	if l, ok := logLevelMatches[strings.ToUpper(strings.TrimSpace(level))]; ok {
		return l
	}
	return zerolog.InfoLevel
}

// Setup points the global logger at out: human readable when out is a
// terminal, JSON lines otherwise.
func Setup(out *os.File, level string) {
	zerolog.SetGlobalLevel(ParseLevel(level))
	log.Logger = zerolog.New(writer(out, isTerminal(out))).With().Timestamp().Logger()
}

func writer(out io.Writer, terminal bool) io.Writer {
	if !terminal {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:                out,
		TimeFormat:         "2006-01-02 15:04:05",
		FormatErrFieldName: func(i interface{}) string { return fmt.Sprintf("%s=", i) },
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) && runtime.GOOS != "windows"
}
