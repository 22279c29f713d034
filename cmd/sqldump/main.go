package main

import (
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"

	"sqldump/internal/db"
	_ "sqldump/internal/db/extractors"
	"sqldump/internal/dump"
	"sqldump/internal/logger"
	"sqldump/internal/output"
	"sqldump/pkg/config"
)

const (
	defaultDriver  = "sqlserver"
	defaultUser    = "SA"
	defaultHost    = "localhost"
	defaultTimeout = 10
)

// listFlag collects repeated or comma separated values.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			*l = append(*l, s)
		}
	}
	return nil
}

type cliFlags struct {
	configPath string
	driver     string
	dsn        string
	database   string
	user       string
	password   string
	host       string
	port       int
	instance   string
	timeout    int

	tables       listFlag
	ignore       listFlag
	noData       bool
	noCreateInfo bool
	noIndices    bool
	addDropTable bool
	batchSize    int
	workers      int
	sortTables   bool

	resultFile string
	compress   string
	logLevel   string
	logFile    string
	charset    string

	set map[string]bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		logger.Fatal("%v", err)
	}
}

func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{set: map[string]bool{}}
	fs := flag.NewFlagSet("sqldump", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: sqldump [options] [table ...]\n\nDumps tables as SQL statements, in the manner of mysqldump.\n\n")
		fs.PrintDefaults()
	}

	fs.StringVar(&f.configPath, "config", "", "path to config file (.yaml or .toml)")
	fs.StringVar(&f.driver, "driver", "", "db driver (sqlserver,postgres,mysql,sqlite,godror), default "+defaultDriver)
	fs.StringVar(&f.dsn, "dsn", "", "explicit dsn, overrides the connection flags")
	fs.StringVar(&f.database, "B", "", "the database to dump")
	fs.StringVar(&f.user, "u", "", "the user to connect as, default "+defaultUser)
	fs.StringVar(&f.password, "p", "", "the password of the user")
	fs.StringVar(&f.host, "h", "", "the host to connect to, default "+defaultHost)
	fs.IntVar(&f.port, "P", 0, "the port to connect to")
	fs.StringVar(&f.instance, "path", "", "the named instance to connect to (sqlserver)")
	fs.IntVar(&f.timeout, "timeout", 0, fmt.Sprintf("db connect timeout seconds, default %d", defaultTimeout))

	fs.Var(&f.tables, "t", "tables to dump, repeatable or comma separated")
	fs.Var(&f.ignore, "ignore-table", "glob of tables to skip, repeatable or comma separated")
	fs.BoolVar(&f.noData, "d", false, "no row information, dump only the table structure")
	fs.BoolVar(&f.noCreateInfo, "no-create-info", false, "no CREATE TABLE statements")
	fs.BoolVar(&f.noIndices, "no-indices", false, "no PRIMARY KEY constraints and no CREATE INDEX statements")
	fs.BoolVar(&f.addDropTable, "add-drop-table", false, "add a DROP TABLE statement before each CREATE TABLE statement")
	fs.IntVar(&f.batchSize, "batch-size", 0, fmt.Sprintf("rows per INSERT statement, default %d", config.DefaultBatchSize))
	fs.IntVar(&f.workers, "workers", 0, "tables dumped in parallel, default 1")
	fs.BoolVar(&f.sortTables, "sort-tables", false, "sort listed tables by name")

	fs.StringVar(&f.resultFile, "r", "", "write the dump to this file instead of stdout")
	fs.StringVar(&f.compress, "compress", "", "compress output: none, gzip, zstd, lz4 (default from file extension)")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&f.logFile, "log-file", "", "write logs to this rotating file instead of stderr")
	fs.StringVar(&f.charset, "default-character-set", "", "accepted for mysqldump compatibility and ignored")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	for _, t := range fs.Args() {
		_ = f.tables.Set(t)
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

// apply overlays command line values on the file config.
func (f *cliFlags) apply(cfg *config.AppConfig) {
	d := &cfg.Database
	d.Type = cmp.Or(f.driver, d.Type, defaultDriver)
	d.DSN = cmp.Or(f.dsn, d.DSN)
	d.DatabaseName = cmp.Or(f.database, d.DatabaseName)
	d.Username = cmp.Or(f.user, d.Username, defaultUser)
	d.Password = cmp.Or(f.password, d.Password)
	d.Host = cmp.Or(f.host, d.Host, defaultHost)
	d.Port = cmp.Or(f.port, d.Port)
	d.Instance = cmp.Or(f.instance, d.Instance)
	d.Timeout = cmp.Or(f.timeout, d.Timeout, defaultTimeout)

	dc := &cfg.Dump
	if len(f.tables) > 0 {
		dc.Tables = f.tables
	}
	dc.ExcludeTables = append(dc.ExcludeTables, f.ignore...)
	if f.set["d"] {
		dc.NoData = f.noData
	}
	if f.set["no-create-info"] {
		dc.NoCreateInfo = f.noCreateInfo
	}
	if f.set["no-indices"] {
		dc.NoIndices = f.noIndices
	}
	if f.set["add-drop-table"] {
		dc.AddDropTable = f.addDropTable
	}
	if f.set["sort-tables"] {
		dc.SortTables = f.sortTables
	}
	dc.BatchSize = cmp.Or(f.batchSize, dc.BatchSize, config.DefaultBatchSize)
	dc.Workers = cmp.Or(f.workers, dc.Workers, 1)

	cfg.Output.Path = cmp.Or(f.resultFile, cfg.Output.Path)
	cfg.Output.Compress = cmp.Or(f.compress, cfg.Output.Compress)
	cfg.Log.Level = cmp.Or(f.logLevel, cfg.Log.Level)
	cfg.Log.File = cmp.Or(f.logFile, cfg.Log.File)
}

func dumpOptions(dc config.DumpConfig) dump.Options {
	return dump.Options{
		IncludeData:        !dc.NoData,
		IncludeCreateTable: !dc.NoCreateInfo,
		IncludeIndexes:     !dc.NoIndices,
		AddDropTable:       dc.AddDropTable,
		BatchSize:          dc.BatchSize,
	}
}

func run(args []string) error {
	f, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	var cfg config.AppConfig
	if f.configPath != "" {
		if cfg, err = config.LoadFile(f.configPath); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	f.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Setup(logger.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	}); err != nil {
		return err
	}
	defer logger.Sync()
	if f.charset != "" {
		logger.Debug("ignoring -default-character-set=%s", f.charset)
	}

	driver, dsn, err := config.BuildDriverAndDSN(cfg.Database)
	if err != nil {
		return fmt.Errorf("error building DSN: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("registered dialects: %v", db.RegisteredDialects())
	src, err := db.Connect(ctx, driver, dsn, cfg.Database.Timeout)
	if err != nil {
		return err
	}
	defer src.Close()
	logger.Info("connected to %s database %s", src.Driver(), cfg.Database.DatabaseName)

	out, err := output.Open(cfg.Output.Path, cfg.Output.Compress)
	if err != nil {
		return err
	}
	sink := dump.NewWriterSink(out)

	d := dump.Dumper{
		Source:     src,
		Options:    dumpOptions(cfg.Dump),
		Workers:    cfg.Dump.Workers,
		Exclude:    cfg.Dump.ExcludeTables,
		SortTables: cfg.Dump.SortTables,
	}
	_, dumpErr := d.DumpDatabase(ctx, cfg.Dump.Tables, sink)
	closeErr := out.Close()
	if err := errors.Join(dumpErr, closeErr); err != nil {
		discard(cfg.Output.Path)
		return fmt.Errorf("dump failed, output is incomplete: %w", err)
	}

	logger.Info("wrote %s to %s", humanize.Bytes(uint64(sink.Written())), cmp.Or(cfg.Output.Path, "stdout"))
	return nil
}

// discard removes a partial dump file so it cannot be mistaken for a valid one.
func discard(path string) {
	if path == "" || path == "-" {
		return
	}
	if err := os.Remove(path); err != nil {
		logger.Warn("remove partial dump %s: %v", path, err)
		return
	}
	logger.Warn("removed partial dump %s", path)
}
