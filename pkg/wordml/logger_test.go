package wordml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/benjaminschreck/go-wordml/pkg/wordml/oxml"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name           string
		level          LogLevel
		expectedOutput []string
		notExpected    []string
	}{
		{
			name:           "debug level shows all messages",
			level:          LogDebug,
			expectedOutput: []string{"[DEBUG] debug message", "[INFO] info message", "[WARN] warn message"},
		},
		{
			name:           "info level hides debug messages",
			level:          LogInfo,
			expectedOutput: []string{"[INFO] info message", "[WARN] warn message"},
			notExpected:    []string{"[DEBUG]"},
		},
		{
			name:           "warn level shows only warnings",
			level:          LogWarn,
			expectedOutput: []string{"[WARN] warn message"},
			notExpected:    []string{"[DEBUG]", "[INFO]"},
		},
		{
			name:        "error level hides warnings",
			level:       LogError,
			notExpected: []string{"message"},
		},
		{
			name:        "off hides everything",
			level:       LogOff,
			notExpected: []string{"message"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.level)
			logger.Debug("debug message")
			logger.Info("info message")
			logger.Warn("warn message")

			output := buf.String()
			for _, expected := range tt.expectedOutput {
				if !strings.Contains(output, expected) {
					t.Errorf("Expected output to contain %q, got: %s", expected, output)
				}
			}
			for _, notExpected := range tt.notExpected {
				if strings.Contains(output, notExpected) {
					t.Errorf("Expected output NOT to contain %q, got: %s", notExpected, output)
				}
			}
		})
	}
}

func TestLoggerChildrenShareLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogInfo)
	child := logger.WithField("path", "document.xml")

	logger.SetLevel(LogDebug)
	if child.Level() != LogDebug {
		t.Fatalf("child level = %v, want DEBUG", child.Level())
	}
	child.Debug("loaded part")
	if !strings.Contains(buf.String(), "[DEBUG] loaded part path=document.xml") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogInfo)

	child := logger.WithField("style", "Heading1").WithFields(Fields{"op": "set", "index": 2})
	child.Info("applied")
	logger.Info("parent")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], "applied index=2 op=set style=Heading1") {
		t.Errorf("fields not written in key order: %s", lines[0])
	}
	if strings.Contains(lines[1], "style=") {
		t.Errorf("child fields leaked into parent: %s", lines[1])
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   LogDebug,
		"INFO":    LogInfo,
		" warn ":  LogWarn,
		"error":   LogError,
		"off":     LogOff,
		"unknown": LogInfo,
	}
	for in, want := range cases {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if LogLevel(99).String() != "UNKNOWN" {
		t.Error("unexpected name for out-of-range level")
	}
}

func TestGlobalLoggerReceivesLookupFailures(t *testing.T) {
	var buf bytes.Buffer
	original := GetLogger()
	SetLogger(NewLogger(&buf, LogDebug))
	defer SetLogger(original)

	p := NewParagraph(oxml.NewP(), &testParent{styles: NewStyleSheet()})
	if err := p.SetStyle("Ghost"); err == nil {
		t.Fatal("expected a lookup error")
	}
	if !strings.Contains(buf.String(), "style lookup failed") || !strings.Contains(buf.String(), "style=Ghost") {
		t.Errorf("lookup failure not logged: %s", buf.String())
	}

	buf.Reset()
	r := NewRun(oxml.NewR(), p)
	if err := r.SetStyle("Phantom"); err == nil {
		t.Fatal("expected a lookup error")
	}
	if !strings.Contains(buf.String(), "style lookup failed") || !strings.Contains(buf.String(), "style=Phantom") {
		t.Errorf("run lookup failure not logged: %s", buf.String())
	}

	buf.Reset()
	el, err := oxml.ParseString(`<w:p><w:pPr><w:jc w:val="sideways"/></w:pPr></w:p>`)
	if err != nil {
		t.Fatal(err)
	}
	NewParagraph(oxml.AsP(el), nil).Alignment()
	if !strings.Contains(buf.String(), "[WARN] ignoring paragraph alignment") {
		t.Errorf("bad alignment not logged: %s", buf.String())
	}
}
