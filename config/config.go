package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-sql-driver/mysql"
)

type Config struct {
	Port        int      `env:"PORT" envDefault:"3000"`
	BindAddress string   `env:"BIND_ADDRESS" envDefault:"0.0.0.0"`
	TLSDomains  []string `env:"TLS_DOMAINS" envSeparator:","` // e.g. "example.com,example2.com"
	DebugMode   bool     `env:"DEBUG_MODE" envDefault:"true"`
	StaticDir   string   `env:"STATIC_DIR" envDefault:"public"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	SessionKey  string   `env:"SESSION_KEY" envDefault:"change me before going live"`

	// MySQL will be used if MYSQL_DSN is set or if it can be built from the discrete fields below
	MySQLDSNRaw   string `env:"MYSQL_DSN"`
	MySQLHost     string `env:"MYSQL_HOST"`
	MySQLPort     int    `env:"MYSQL_PORT" envDefault:"3306"`
	MySQLUser     string `env:"MYSQL_USER" envDefault:"root"`
	MySQLPassword string `env:"MYSQL_PASSWORD"`
	MySQLDatabase string `env:"MYSQL_DATABASE"`

	// SQLite will be used if MySQL is not configured and this is set
	SQLiteFile string `env:"SQLITE_FILE"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Addr is the address the HTTP server listens on.
func (c Config) Addr() string {
	return net.JoinHostPort(c.BindAddress, strconv.Itoa(c.Port))
}

// MySQLDSN returns MYSQL_DSN, or a DSN assembled from the MYSQL_* fields.
// Post dates are scanned into time.Time, so parseTime is always turned on.
// Empty string means MySQL is not configured.
func (c Config) MySQLDSN() string {
	if c.MySQLDSNRaw != "" {
		dsn, err := mysql.ParseDSN(c.MySQLDSNRaw)
		if err != nil {
			// let the driver report it on connect
			return c.MySQLDSNRaw
		}
		dsn.ParseTime = true
		return dsn.FormatDSN()
	}
	if c.MySQLHost == "" || c.MySQLDatabase == "" {
		return ""
	}
	dsn := mysql.NewConfig()
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(c.MySQLHost, strconv.Itoa(c.MySQLPort))
	dsn.User = c.MySQLUser
	dsn.Passwd = c.MySQLPassword
	dsn.DBName = c.MySQLDatabase
	dsn.ParseTime = true
	dsn.Loc = time.Local
	dsn.Params = map[string]string{"charset": "utf8mb4"}
	return dsn.FormatDSN()
}
