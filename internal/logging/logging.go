package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	slogmulti "github.com/samber/slog-multi"
)

var (
	mu      sync.Mutex
	logFile *os.File
	logger  = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

// Init routes logging to stdout as text and, when logPath is set, to logPath
// as JSON lines. debug lowers the level on both outputs.
func Init(logPath string, debug bool) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	if logPath == "" {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		return nil
	}

	if dir := filepath.Dir(logPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	logFile = file
	logger = NewWithWriters(os.Stdout, file, level)
	slog.SetDefault(logger)
	return nil
}

// NewWithWriters fans out to a text handler on console and a JSON handler on file.
func NewWithWriters(console, file io.Writer, level slog.Level) *slog.Logger {
	consoleHandler := slog.NewTextHandler(console, &slog.HandlerOptions{Level: level})
	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return slog.New(slogmulti.Fanout(consoleHandler, fileHandler))
}

func Close() error {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Logger returns the current process logger.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

func LogEvent(format string, args ...any) {
	Logger().Info(fmt.Sprintf(format, args...))
}

func LogDebug(format string, args ...any) {
	Logger().Debug(fmt.Sprintf(format, args...))
}

// LogRequest records one served HTTP request.
func LogRequest(requestID, method, path string, status int, elapsed time.Duration) {
	Logger().Info(buildRequestMessage(method, path, status),
		slog.String("request_id", requestID),
		slog.Int("status", status),
		slog.Duration("duration", elapsed),
	)
}

func buildRequestMessage(method, path string, status int) string {
	m := strings.ToUpper(strings.TrimSpace(method))
	if m == "" {
		m = "GET"
	}
	p := strings.TrimSpace(path)
	if p == "" {
		p = "/"
	}
	return fmt.Sprintf("[HTTP] %s %s %d", m, p, status)
}
