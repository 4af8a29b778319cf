package logs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/reusee/bf/cmds"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

type Logger = *slog.Logger

type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}

var levelFlag = cmds.Var[string]("-log-level")

func init() {
	for _, name := range []string{"debug", "info", "warn", "error"} {
		cmds.Define("-log-"+name, cmds.Func(func() {
			*levelFlag = name
		}).Desc("set log level to "+name))
	}
}

func parseLevel(str string) (slog.Level, error) {
	var l slog.Level
	if str == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(str)); err != nil {
		return l, fmt.Errorf("bad log level %q: %w", str, err)
	}
	return l, nil
}

func (Module) Logger(
	writer Writer,
) Logger {
	level := new(slog.LevelVar)
	l, levelErr := parseLevel(*levelFlag)
	level.Set(l)

	var handlers []slog.Handler

	isSystemdService := false
	if cgroupPath, err := getCgroupPath(); err == nil {
		isSystemdService = strings.HasSuffix(path.Dir(cgroupPath), ".service")
	}

	var terminalHandler slog.Handler
	if !isSystemdService {
		terminalHandler = slog.NewTextHandler(writer, &slog.HandlerOptions{
			Level: level,
		})
		handlers = append(handlers, terminalHandler)
	}

	journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
		Level: level,
		ReplaceGroup: func(key string) string {
			return toJournalKey(key)
		},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
	if err != nil {
		if terminalHandler != nil && terminalHandler.Enabled(context.Background(), slog.LevelDebug) {
			record := slog.NewRecord(time.Now(), slog.LevelDebug, "systemd journal unavailable", 0)
			record.Add("error", err)
			_ = terminalHandler.Handle(context.Background(), record)
		}
	} else {
		handlers = append(handlers, journalHandler)
	}

	logger := slog.New(&spanHandler{
		Handler: slogmulti.Fanout(handlers...),
	})
	if levelErr != nil {
		logger.Warn("log level", "error", levelErr)
	}
	return logger
}

func toJournalKey(str string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, strings.ToUpper(str))
}

func getCgroupPath() (string, error) {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return "", err
	}
	parts := strings.Split(strings.TrimSpace(string(content)), ":")
	if len(parts) >= 3 {
		return parts[2], nil
	}
	return "", nil
}
