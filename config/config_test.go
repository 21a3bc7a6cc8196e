package config

import (
	"strings"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 3000 {
		t.Fatalf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.Addr() != "0.0.0.0:3000" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSOrigins)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadTLSDomains(t *testing.T) {
	t.Setenv("TLS_DOMAINS", "example.com,example2.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.TLSDomains) != 2 || cfg.TLSDomains[1] != "example2.com" {
		t.Fatalf("unexpected tls domains %v", cfg.TLSDomains)
	}
}

func TestConfig_MySQLDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "not configured",
			cfg:  Config{MySQLPort: 3306, MySQLUser: "root"},
			want: "",
		},
		{
			name: "unparseable raw dsn is passed through",
			cfg:  Config{MySQLDSNRaw: "not a dsn"},
			want: "not a dsn",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.MySQLDSN(); got != tt.want {
				t.Errorf("Config.MySQLDSN() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfig_MySQLDSNRaw(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"without parseTime", "u:p@tcp(h:1)/d"},
		{"parseTime off", "u:p@tcp(h:1)/d?parseTime=false&charset=utf8mb4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{MySQLDSNRaw: tt.raw, MySQLHost: "other", MySQLDatabase: "other"}
			parsed, err := mysql.ParseDSN(cfg.MySQLDSN())
			if err != nil {
				t.Fatalf("parse dsn: %v", err)
			}
			if parsed.Addr != "h:1" || parsed.User != "u" || parsed.Passwd != "p" || parsed.DBName != "d" {
				t.Fatalf("raw dsn not used: %+v", parsed)
			}
			if !parsed.ParseTime {
				t.Fatal("expected parseTime")
			}
		})
	}
}

func TestConfig_MySQLDSNFromParts(t *testing.T) {
	cfg := Config{
		MySQLHost:     "db.local",
		MySQLPort:     3307,
		MySQLUser:     "blog",
		MySQLPassword: "secret",
		MySQLDatabase: "posts_db",
	}
	parsed, err := mysql.ParseDSN(cfg.MySQLDSN())
	if err != nil {
		t.Fatalf("parse dsn: %v", err)
	}
	if parsed.Addr != "db.local:3307" || parsed.User != "blog" || parsed.Passwd != "secret" || parsed.DBName != "posts_db" {
		t.Fatalf("unexpected dsn %+v", parsed)
	}
	if !parsed.ParseTime {
		t.Fatal("expected parseTime")
	}
	if parsed.Loc != time.Local {
		t.Fatalf("expected local time zone, got %v", parsed.Loc)
	}
}
