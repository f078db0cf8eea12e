package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap sugared logger writing to stderr
type Logger struct {
	*zap.SugaredLogger
}

// verbose enables debug output, including blocks dropped by the parser
func NewLogger(verbose bool) *Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if !verbose {
		encoderCfg.TimeKey = ""
		encoderCfg.CallerKey = ""
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		level,
	)

	return &Logger{SugaredLogger: zap.New(core).Sugar()}
}

// discards everything
func NewNop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}
