package logger

import (
	"bytes"
	"context"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetFlags(0)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetFlags(log.LstdFlags)
		SetLevelFromString("info")
	})
	return &buf
}

func TestSetLevelFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{input: "debug", expected: LevelDebug},
		{input: " DEBUG ", expected: LevelDebug},
		{input: "info", expected: LevelInfo},
		{input: "warning", expected: LevelWarn},
		{input: "warn", expected: LevelWarn},
		{input: "error", expected: LevelError},
		{input: "", expected: LevelInfo},
		{input: "verbose", expected: LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			SetLevelFromString(tt.input)
			t.Cleanup(func() { SetLevelFromString("info") })
			assert.Equal(t, tt.expected, Level(currentLevel.Load()))
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := captureOutput(t)
	SetLevelFromString("warn")

	Debugf("debug %d", 1)
	Infof("info %d", 2)
	Warnf("warn %d", 3)
	Errorf("error %d", 4)

	assert.Equal(t, "[WARN] warn 3\n[ERROR] error 4\n", buf.String())
	assert.False(t, EnabledDebug())
}

func TestRequestID(t *testing.T) {
	assert.Equal(t, "-", RequestID(context.Background()))

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
		AwsRequestID: "c6af9ac6-7b61-11e6-9a41-93e812345678",
	})
	assert.Equal(t, "c6af9ac6-7b61-11e6-9a41-93e812345678", RequestID(ctx))
}

func TestInitFromEnv(t *testing.T) {
	t.Cleanup(func() { SetLevelFromString("info") })

	t.Setenv("LOG_LEVEL", "error")
	InitFromEnv()
	assert.Equal(t, LevelError, Level(currentLevel.Load()))

	t.Setenv("LOG_LEVEL", "")
	InitFromEnv()
	assert.Equal(t, LevelInfo, Level(currentLevel.Load()))
}

func TestOutputReportsCaller(t *testing.T) {
	buf := captureOutput(t)
	SetFlags(log.Lshortfile)

	Infof("from test")
	Errorf("also from test")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "logger_test.go:"), "got %q", line)
	}
	assert.Contains(t, lines[0], "[INFO] from test")
	assert.Contains(t, lines[1], "[ERROR] also from test")
}
