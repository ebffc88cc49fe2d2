// Package logging provides structured logging channels for Lakbay
// operations, one slog logger per logical subsystem.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Channel represents a logical logging channel for different system components
type Channel string

const (
	ChannelSystem   Channel = "system"
	ChannelStartup  Channel = "startup"
	ChannelShutdown Channel = "shutdown"

	ChannelAuth   Channel = "auth"
	ChannelMap    Channel = "map"
	ChannelShare  Channel = "share"
	ChannelRender Channel = "render"

	ChannelDatabase Channel = "database"
	ChannelCache    Channel = "cache"
	ChannelPerf     Channel = "performance"
)

var allChannels = []Channel{
	ChannelSystem, ChannelStartup, ChannelShutdown,
	ChannelAuth, ChannelMap, ChannelShare, ChannelRender,
	ChannelDatabase, ChannelCache, ChannelPerf,
}

// LoggerConfig contains configuration options for the channeled logger
type LoggerConfig struct {
	OutputToFile    bool   `json:"outputToFile"`
	OutputToConsole bool   `json:"outputToConsole"`
	LogDirectory    string `json:"logDirectory"`
	JSONFormat      bool   `json:"jsonFormat"`

	DefaultLevel  slog.Level             `json:"defaultLevel"`
	ChannelLevels map[Channel]slog.Level `json:"channelLevels"`
}

// DefaultLoggerConfig returns a sensible default configuration
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: true,
		LogDirectory:    "logs",
		JSONFormat:      true,
		DefaultLevel:    slog.LevelInfo,
		ChannelLevels:   make(map[Channel]slog.Level),
	}
}

// ChanneledLogger provides structured logging with multiple channels
type ChanneledLogger struct {
	channels map[Channel]*slog.Logger
	config   *LoggerConfig
	mu       sync.RWMutex
}

// NewChanneledLogger creates a new channeled logger with the given configuration
func NewChanneledLogger(config *LoggerConfig) (*ChanneledLogger, error) {
	if config == nil {
		config = DefaultLoggerConfig()
	}

	logger := &ChanneledLogger{
		channels: make(map[Channel]*slog.Logger),
		config:   config,
	}

	for _, channel := range allChannels {
		ch, err := logger.buildChannel(channel)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize %s channel: %w", channel, err)
		}
		logger.channels[channel] = ch
	}
	return logger, nil
}

func (l *ChanneledLogger) buildChannel(channel Channel) (*slog.Logger, error) {
	var writers []io.Writer
	if l.config.OutputToConsole {
		writers = append(writers, os.Stdout)
	}
	if l.config.OutputToFile {
		if err := os.MkdirAll(l.config.LogDirectory, 0755); err != nil {
			return nil, err
		}
		path := filepath.Join(l.config.LogDirectory, string(channel)+".log")
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		writers = append(writers, file)
	}
	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	level := l.config.DefaultLevel
	if override, ok := l.config.ChannelLevels[channel]; ok {
		level = override
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if l.config.JSONFormat {
		handler = slog.NewJSONHandler(io.MultiWriter(writers...), opts)
	} else {
		handler = slog.NewTextHandler(io.MultiWriter(writers...), opts)
	}
	return slog.New(handler).With("channel", string(channel)), nil
}

// Channel returns the logger for an arbitrary channel, falling back to the
// system channel for unknown names.
func (l *ChanneledLogger) Channel(channel Channel) *slog.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if logger, ok := l.channels[channel]; ok {
		return logger
	}
	return l.channels[ChannelSystem]
}

func (l *ChanneledLogger) System() *slog.Logger   { return l.Channel(ChannelSystem) }
func (l *ChanneledLogger) Startup() *slog.Logger  { return l.Channel(ChannelStartup) }
func (l *ChanneledLogger) Shutdown() *slog.Logger { return l.Channel(ChannelShutdown) }
func (l *ChanneledLogger) Auth() *slog.Logger     { return l.Channel(ChannelAuth) }
func (l *ChanneledLogger) Map() *slog.Logger      { return l.Channel(ChannelMap) }
func (l *ChanneledLogger) Share() *slog.Logger    { return l.Channel(ChannelShare) }
func (l *ChanneledLogger) Render() *slog.Logger   { return l.Channel(ChannelRender) }
func (l *ChanneledLogger) Database() *slog.Logger { return l.Channel(ChannelDatabase) }
func (l *ChanneledLogger) Cache() *slog.Logger    { return l.Channel(ChannelCache) }
func (l *ChanneledLogger) Perf() *slog.Logger     { return l.Channel(ChannelPerf) }
