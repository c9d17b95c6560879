package tombola

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogColorMode int8

const (
	COLOR_NEVER  LogColorMode = -1
	COLOR_AUTO   LogColorMode = 0
	COLOR_ALWAYS LogColorMode = 1
)

func (c *LogColorMode) String() string {
	if *c > 0 {
		return "always"
	} else if *c < 0 {
		return "never"
	} else {
		return "auto"
	}
}

func (c *LogColorMode) Set(val string) error {
	switch strings.ToLower(val) {
	case "always":
		*c = COLOR_ALWAYS
		return nil
	case "never":
		*c = COLOR_NEVER
		return nil
	case "auto":
		*c = COLOR_AUTO
		return nil
	default:
		return fmt.Errorf("Invalid color mode '%s'. Valid color modes are 'never', 'auto' or 'always'", val)
	}
}

func (c *LogColorMode) Type() string {
	return "string"
}

func (c *LogColorMode) UnmarshalText(text []byte) error {
	return c.Set(string(text))
}

func (c LogColorMode) enabled(w io.Writer) bool {
	switch {
	case c > 0:
		return true
	case c < 0:
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

type LogVerbosity int8

const (
	LOG_QUIET   LogVerbosity = -1
	LOG_DEFAULT LogVerbosity = 0
	LOG_VERBOSE LogVerbosity = 1
)

func (v *LogVerbosity) String() string {
	if *v > 0 {
		return "verbose"
	} else if *v < 0 {
		return "quiet"
	} else {
		return "default"
	}
}

func (v *LogVerbosity) Set(val string) error {
	switch strings.ToLower(val) {
	case "verbose", "debug":
		*v = LOG_VERBOSE
		return nil
	case "quiet", "warn":
		*v = LOG_QUIET
		return nil
	case "default", "info", "":
		*v = LOG_DEFAULT
		return nil
	default:
		return fmt.Errorf("Invalid log verbosity '%s'. Valid verbosities are 'quiet', 'default' or 'verbose'", val)
	}
}

func (v *LogVerbosity) Type() string {
	return "string"
}

func (v *LogVerbosity) UnmarshalText(text []byte) error {
	return v.Set(string(text))
}

func (v LogVerbosity) Level() zapcore.Level {
	if v > 0 {
		return zapcore.DebugLevel
	} else if v < 0 {
		return zapcore.WarnLevel
	}
	return zapcore.InfoLevel
}

// NewLogger builds a console logger writing to w.
func NewLogger(verbosity LogVerbosity, color LogColorMode, w io.Writer) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	if color.enabled(w) {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(w)),
		verbosity.Level(),
	)
	return zap.New(core)
}
