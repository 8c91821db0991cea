package server

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ritrovo/ritrovo/internal/xtime"
	"github.com/ritrovo/ritrovo/server/auth"
	"github.com/ritrovo/ritrovo/server/checkin"
	"github.com/ritrovo/ritrovo/server/database"
	"github.com/ritrovo/ritrovo/server/notify"
)

func LoadConfig(cfgPath string) (Config, error) {
	file, err := os.Open(cfgPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	cfg := defaultConfig()
	if _, err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config file: %w", err)
	}

	return cfg, nil
}

func defaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:     slog.LevelInfo,
			Format:    LogFormatText,
			AddSource: false,
		},
		Server: ServerConfig{
			Addr: ":8085",
		},
		Database: database.Config{
			Host:     "localhost",
			Port:     5432,
			Username: "postgres",
			Password: "password",
			Database: "ritrovo",
		},
		Attendance: checkin.Config{
			MemberTokenTTL: xtime.Duration(1 * time.Hour),
			EventTokenTTL:  xtime.Duration(12 * time.Hour),
			Tolerance:      xtime.Duration(3 * time.Hour),
			QREvery:        xtime.Duration(1 * time.Second),
			QRBurst:        10,
		},
	}
}

type Config struct {
	Log           LogConfig       `toml:"log"`
	Server        ServerConfig    `toml:"server"`
	Database      database.Config `toml:"database"`
	Auth          auth.Config     `toml:"auth"`
	Attendance    checkin.Config  `toml:"attendance"`
	Notifications notify.Config   `toml:"notifications"`
}

func (c Config) String() string {
	return fmt.Sprintf("Log: %s\nServer: %s\nDatabase: %s\nAuth: %s\nAttendance: %s\nNotifications: %s",
		c.Log,
		c.Server,
		c.Database,
		c.Auth,
		c.Attendance,
		c.Notifications,
	)
}

type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    LogFormat  `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

func (c LogConfig) String() string {
	return fmt.Sprintf("\n Level: %s\n Format: %s\n AddSource: %t",
		c.Level,
		c.Format,
		c.AddSource,
	)
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

func (c ServerConfig) String() string {
	return fmt.Sprintf("\n Address: %s",
		c.Addr,
	)
}
