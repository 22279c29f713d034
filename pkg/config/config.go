package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const DefaultBatchSize = 1000

type DBConfig struct {
	Type         string `yaml:"type" toml:"type"`
	Host         string `yaml:"host" toml:"host"`
	Port         int    `yaml:"port" toml:"port"`
	Instance     string `yaml:"instance" toml:"instance"` // SQL Server named instance
	Username     string `yaml:"username" toml:"username"`
	Password     string `yaml:"password" toml:"password"`
	DatabaseName string `yaml:"database_name" toml:"database_name"`
	DSN          string `yaml:"dsn" toml:"dsn"` // optional explicit DSN
	Timeout      int    `yaml:"timeout" toml:"timeout"` // connect timeout in seconds
}

// DumpConfig mirrors the mysqldump switches; the zero value dumps
// everything without DROP TABLE.
type DumpConfig struct {
	Tables        []string `yaml:"tables" toml:"tables"`
	ExcludeTables []string `yaml:"exclude_tables" toml:"exclude_tables"`
	NoData        bool     `yaml:"no_data" toml:"no_data"`
	NoCreateInfo  bool     `yaml:"no_create_info" toml:"no_create_info"`
	NoIndices     bool     `yaml:"no_indices" toml:"no_indices"`
	AddDropTable  bool     `yaml:"add_drop_table" toml:"add_drop_table"`
	BatchSize     int      `yaml:"batch_size" toml:"batch_size"`
	Workers       int      `yaml:"workers" toml:"workers"`
	SortTables    bool     `yaml:"sort_tables" toml:"sort_tables"`
}

type OutputConfig struct {
	Path     string `yaml:"path" toml:"path"`         // empty or "-" is stdout
	Compress string `yaml:"compress" toml:"compress"` // none, gzip, zstd, lz4
}

type LogConfig struct {
	Level      string `yaml:"level" toml:"level"`
	Format     string `yaml:"format" toml:"format"`
	File       string `yaml:"file" toml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days"`
}

type AppConfig struct {
	Database DBConfig     `yaml:"database" toml:"database"`
	Dump     DumpConfig   `yaml:"dump" toml:"dump"`
	Output   OutputConfig `yaml:"output" toml:"output"`
	Log      LogConfig    `yaml:"log" toml:"log"`
}

// LoadFile loads config from path, TOML for .toml files and YAML otherwise.
func LoadFile(path string) (AppConfig, error) {
	var cfg AppConfig
	f, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(f, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("parse %s: %w", path, err)
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(f, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings that cannot be defaulted.
func (c AppConfig) Validate() error {
	if c.Database.Type == "" {
		return errors.New("database.type is required")
	}
	if c.Database.DSN == "" && NormalizeDriver(c.Database.Type) != "sqlite" && c.Database.DatabaseName == "" {
		return errors.New("database.database_name or database.dsn is required")
	}
	if c.Dump.BatchSize < 0 {
		return fmt.Errorf("dump.batch_size must not be negative, got %d", c.Dump.BatchSize)
	}
	if c.Dump.Workers < 0 {
		return fmt.Errorf("dump.workers must not be negative, got %d", c.Dump.Workers)
	}
	switch strings.ToLower(c.Output.Compress) {
	case "", "none", "gzip", "zstd", "lz4":
	default:
		return fmt.Errorf("unsupported output.compress: %s", c.Output.Compress)
	}
	return nil
}

// NormalizeDriver maps common aliases to canonical keys (keeps backwards compat).
func NormalizeDriver(d string) string {
	switch strings.ToLower(strings.TrimSpace(d)) {
	case "postgresql", "pg", "postgres":
		return "postgres"
	case "mysql", "mariadb":
		return "mysql"
	case "sqlite", "sqlite3":
		return "sqlite"
	case "mssql", "sqlserver":
		return "sqlserver"
	case "godror", "oracle":
		return "godror"
	default:
		return strings.ToLower(d)
	}
}

// BuildDriverAndDSN produces a driver name and DSN string for supported DB types.
func BuildDriverAndDSN(db DBConfig) (driver string, dsn string, err error) {
	// If explicit DSN provided, user must also set Type to choose driver or we guess
	t := NormalizeDriver(db.Type)

	if db.DSN != "" {
		return t, db.DSN, nil
	}

	switch t {
	case "postgres":
		driver = "postgres"
		// simple URL form
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			db.Username, db.Password, db.Host, db.Port, db.DatabaseName)
	case "mysql":
		driver = "mysql"
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
			db.Username, db.Password, db.Host, db.Port, db.DatabaseName)
	case "sqlite":
		driver = "sqlite"
		if db.DatabaseName == "" {
			return "", "", fmt.Errorf("sqlite needs a file path in database_name")
		}
		dsn = fmt.Sprintf("file:%s?mode=ro", db.DatabaseName)
	case "sqlserver":
		driver = "sqlserver"
		u := url.URL{
			Scheme:   "sqlserver",
			User:     url.UserPassword(db.Username, db.Password),
			Host:     db.Host,
			RawQuery: url.Values{"database": {db.DatabaseName}}.Encode(),
		}
		// a named instance resolves its port through the browser service
		if db.Instance != "" {
			u.Path = "/" + db.Instance
		} else if db.Port != 0 {
			u.Host = fmt.Sprintf("%s:%d", db.Host, db.Port)
		}
		dsn = u.String()
	case "godror":
		driver = "godror"
		// simple EZCONNECT style; may need adjustments per environment
		dsn = fmt.Sprintf("%s/%s@%s:%d/%s",
			db.Username, db.Password, db.Host, db.Port, db.DatabaseName)
	default:
		err = fmt.Errorf("unsupported database type: %s", db.Type)
	}
	return
}
