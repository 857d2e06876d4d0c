package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLoggingConfig_PrepareFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "uitree.log")
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "normal", Destination: dest, Mode: "overwrite"},
	}

	log, err := conf.Prepare(nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Debug("hidden message")
	log.Info("visible message", zap.String("key", "value"))
	_ = log.Sync()

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("unable to read log: %v", err)
	}
	if !strings.Contains(string(data), "visible message") {
		t.Errorf("log does not contain info message:\n%s", data)
	}
	if strings.Contains(string(data), "hidden message") {
		t.Errorf("log should not contain debug message at normal level:\n%s", data)
	}
}

func TestLoggingConfig_PrepareDisabled(t *testing.T) {
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "none"},
	}
	log, err := conf.Prepare(nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected all cores to be disabled")
	}
}

func TestLoggingConfig_PrepareWithReport(t *testing.T) {
	rpt := newTestReport(t)
	defer rpt.Close()

	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "none", Destination: filepath.Join(t.TempDir(), "uitree.log"), Mode: "append"},
	}
	log, err := conf.Prepare(rpt)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("report forces debug file log")
	}
	if _, ok := rpt.entries["final.log"]; !ok {
		t.Error("log file should be stored in report")
	}
}

func TestConsoleEnc_DropsVerboseErrors(t *testing.T) {
	enc := newEncoder(zap.NewDevelopmentEncoderConfig())
	err := multierr.Combine(errors.New("first"), errors.New("second"))

	buf, e := enc.EncodeEntry(zapcore.Entry{Message: "failed"}, []zapcore.Field{zap.Error(err)})
	if e != nil {
		t.Fatalf("EncodeEntry() error = %v", e)
	}
	out := buf.String()
	if strings.Contains(out, "errorVerbose") {
		t.Errorf("console output should not have verbose error:\n%s", out)
	}
	if !strings.Contains(out, "first; second") {
		t.Errorf("console output lost error message:\n%s", out)
	}
}
