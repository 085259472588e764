package config

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const mask = "********"

// PrintConfig writes the effective configuration to stdout with secrets masked.
func PrintConfig(cfg *Config) {
	FprintConfig(os.Stdout, cfg)
}

func FprintConfig(w io.Writer, cfg *Config) {
	var b strings.Builder
	line := func(key string, value any) {
		fmt.Fprintf(&b, "  %-26s %v\n", key, value)
	}

	b.WriteString("configuration:\n")
	line("mode", cfg.Mode)
	line("dataset.path", cfg.Dataset.Path)
	line("dataset.sheet", orDefault(cfg.Dataset.Sheet, "<first sheet>"))
	line("analytics.engine", cfg.Analytics.Engine)
	line("server.port", cfg.Server.Port)
	line("server.shutdown_timeout", cfg.Server.ShutdownTimeout)
	line("database", fmt.Sprintf("%s@%s:%s/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	line("database.password", secret(cfg.Database.Password))
	line("database.max_conns", cfg.Database.MaxConns)
	line("rabbitmq", fmt.Sprintf("%s@%s:%s", cfg.RabbitMQ.User, cfg.RabbitMQ.Host, cfg.RabbitMQ.Port))
	line("rabbitmq.password", secret(cfg.RabbitMQ.Password))
	line("rabbitmq.exchange", cfg.RabbitMQ.Exchange)
	line("report.publish", cfg.Report.Publish)
	line("report.output", orDefault(cfg.Report.Output, "<stdout>"))
	line("log.level", cfg.Log.Level)

	fmt.Fprint(w, b.String())
}

func secret(s string) string {
	if s == "" {
		return ""
	}
	return mask
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
