package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logrus.Level{
		"Trace":   logrus.TraceLevel,
		"Info":    logrus.InfoLevel,
		"Warn":    logrus.WarnLevel,
		"Error":   logrus.ErrorLevel,
		"Fatal":   logrus.FatalLevel,
		"Debug":   logrus.DebugLevel,
		"verbose": logrus.DebugLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitWritesJSONToConfiguredFile(t *testing.T) {
	dir := t.TempDir()
	props := "logFilename=game.log\nlevel=Warn\nconsole=false\n"
	if err := os.WriteFile(filepath.Join(dir, "logger.properties"), []byte(props), 0o644); err != nil {
		t.Fatal(err)
	}

	l := &Logger{}
	if err := l.Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer logrus.SetOutput(os.Stderr)

	l.Info("filtered out")
	l.Warn("玩家 1 得分")

	data, err := os.ReadFile(filepath.Join(dir, "game.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1:\n%s", len(lines), data)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(lines[0], &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "玩家 1 得分" || entry["level"] != "warning" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestInitWithoutPropertiesUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	l := &Logger{}
	if err := l.Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer logrus.SetOutput(os.Stderr)

	if logrus.GetLevel() != logrus.InfoLevel {
		t.Errorf("default level = %v, want info", logrus.GetLevel())
	}
	l.Info("hello")
	if _, err := os.Stat(filepath.Join(dir, "pong.log")); err != nil {
		t.Errorf("default log file not written: %v", err)
	}
}

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{}
	l.SetOutput(&buf)
	defer logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.InfoLevel)

	l.Info("match started")
	if !bytes.Contains(buf.Bytes(), []byte(`"msg":"match started"`)) {
		t.Errorf("output = %s", buf.String())
	}
}
