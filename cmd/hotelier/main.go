package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/glebarez/sqlite"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BahriaResearchLab/hotelier/internal/console"
	"github.com/BahriaResearchLab/hotelier/internal/store/filestore"
	"github.com/BahriaResearchLab/hotelier/internal/store/gormstore"
	"github.com/BahriaResearchLab/hotelier/pkg/hotel"
)

const (
	flagDataDir      = "data-dir"
	flagDatabaseURL  = "database-url"
	flagStayNights   = "stay-nights"
	flagRoomLimit    = "room-limit"
	flagBookingLimit = "booking-limit"
	flagStaffLimit   = "staff-limit"

	configKeyDataDir      = "data_dir"
	configKeyDatabaseURL  = "database_url"
	configKeyStayNights   = "stay_nights"
	configKeyRoomLimit    = "room_limit"
	configKeyBookingLimit = "booking_limit"
	configKeyStaffLimit   = "staff_limit"

	defaultDataDir      = "data"
	defaultStayNights   = 3
	defaultRoomLimit    = 100
	defaultBookingLimit = 100
	defaultStaffLimit   = 50
)

type runtimeConfig struct {
	DataDir      string
	DatabaseURL  string
	StayNights   int
	RoomLimit    int
	BookingLimit int
	StaffLimit   int
}

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hotelier: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := &runtimeConfig{}
	cmd := &cobra.Command{
		Use:           "hotelier",
		Short:         "Interactive hotel room, booking, and revenue manager",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg)
		},
	}

	cmd.Flags().String(flagDataDir, defaultDataDir, "Directory holding the flat-file state")
	cmd.Flags().String(flagDatabaseURL, "", "Optional database backend (sqlite path or postgres:// DSN); empty uses flat files")
	cmd.Flags().Int(flagStayNights, defaultStayNights, "Flat nightly count charged per stay")
	cmd.Flags().Int(flagRoomLimit, defaultRoomLimit, "Maximum number of rooms")
	cmd.Flags().Int(flagBookingLimit, defaultBookingLimit, "Maximum number of active bookings")
	cmd.Flags().Int(flagStaffLimit, defaultStaffLimit, "Maximum number of staff entries")

	return cmd
}

func loadConfig(cmd *cobra.Command, cfg *runtimeConfig) error {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	bindings := map[string]string{
		configKeyDataDir:      "HOTELIER_DATA_DIR",
		configKeyDatabaseURL:  "HOTELIER_DATABASE_URL",
		configKeyStayNights:   "HOTELIER_STAY_NIGHTS",
		configKeyRoomLimit:    "HOTELIER_ROOM_LIMIT",
		configKeyBookingLimit: "HOTELIER_BOOKING_LIMIT",
		configKeyStaffLimit:   "HOTELIER_STAFF_LIMIT",
	}
	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			return err
		}
	}

	flags := map[string]string{
		configKeyDataDir:      flagDataDir,
		configKeyDatabaseURL:  flagDatabaseURL,
		configKeyStayNights:   flagStayNights,
		configKeyRoomLimit:    flagRoomLimit,
		configKeyBookingLimit: flagBookingLimit,
		configKeyStaffLimit:   flagStaffLimit,
	}
	for key, flag := range flags {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return err
		}
	}

	cfg.DataDir = viper.GetString(configKeyDataDir)
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir
	}
	cfg.DatabaseURL = viper.GetString(configKeyDatabaseURL)
	cfg.StayNights = viper.GetInt(configKeyStayNights)
	cfg.RoomLimit = viper.GetInt(configKeyRoomLimit)
	cfg.BookingLimit = viper.GetInt(configKeyBookingLimit)
	cfg.StaffLimit = viper.GetInt(configKeyStaffLimit)
	return nil
}

func run(ctx context.Context, cfg *runtimeConfig) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("logger init: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store, logbook, operationLogger, cleanup, err := openBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	credentials, err := filestore.OpenCredentials(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("credentials init: %w", err)
	}

	service, err := hotel.NewService(store, logbook,
		hotel.WithOperationLogger(operationLogger),
		hotel.WithStayNights(cfg.StayNights),
		hotel.WithRoomLimit(cfg.RoomLimit),
		hotel.WithGuestLimit(cfg.BookingLimit),
		hotel.WithStaffLimit(cfg.StaffLimit),
	)
	if err != nil {
		return fmt.Errorf("service init: %w", err)
	}
	if err := service.Load(ctx); err != nil {
		logger.Warn("state load failed, starting empty", zap.Error(err))
	}

	logger.Info("session starting",
		zap.String("data_dir", cfg.DataDir),
		zap.Bool("database_backend", cfg.DatabaseURL != ""),
	)
	if err := console.New(service, credentials, os.Stdin, os.Stdout).Run(ctx); err != nil {
		return err
	}
	if err := service.Flush(ctx); err != nil {
		return fmt.Errorf("final save: %w", err)
	}
	logger.Info("session ended")
	return nil
}

func openBackend(ctx context.Context, cfg *runtimeConfig, logger *zap.Logger) (hotel.Store, hotel.Logbook, hotel.OperationLogger, func(), error) {
	zapLogger := &zapOperationLogger{logger: logger}
	if cfg.DatabaseURL == "" {
		store, err := filestore.New(cfg.DataDir)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("filestore init: %w", err)
		}
		return store, store, zapLogger, func() {}, nil
	}

	gormDB, cleanup, err := openDatabase(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("database open: %w", err)
	}
	if err := gormstore.Migrate(gormDB); err != nil {
		cleanup()
		return nil, nil, nil, nil, err
	}
	store := gormstore.New(gormDB)
	combined := &auditOperationLogger{console: zapLogger, store: store}
	return store, store, combined, cleanup, nil
}

func openDatabase(ctx context.Context, dsn string) (*gorm.DB, func(), error) {
	driver, sqlitePath, err := resolveDriver(dsn)
	if err != nil {
		return nil, nil, err
	}

	var db *gorm.DB
	switch driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{})
	default:
		return nil, nil, fmt.Errorf("unsupported database scheme %q", driver)
	}
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = sqlDB.Close() }
	return db.WithContext(ctx), cleanup, nil
}

func resolveDriver(dsn string) (string, string, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "postgres", "", nil
	}
	if strings.HasPrefix(dsn, "sqlite://") {
		parsed, err := url.Parse(dsn)
		if err != nil {
			return "", "", fmt.Errorf("parse sqlite url: %w", err)
		}
		path := parsed.Path
		if path == "" {
			path = parsed.Host
		}
		if path == "" || path == "/" {
			path = "hotelier.db"
		}
		sqlitePath, err := normalizeSQLitePath(path)
		return "sqlite", sqlitePath, err
	}
	// Treat everything else as a direct sqlite path.
	sqlitePath, err := normalizeSQLitePath(dsn)
	return "sqlite", sqlitePath, err
}

func normalizeSQLitePath(path string) (string, error) {
	if path == ":memory:" {
		return path, nil
	}
	if strings.HasPrefix(path, "/") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", err
		}
		return path, nil
	}
	abs := filepath.Join(".", path)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}
	return abs, nil
}

// zapOperationLogger forwards domain operation logs to zap.
type zapOperationLogger struct {
	logger *zap.Logger
}

func (adapter *zapOperationLogger) LogOperation(ctx context.Context, entry hotel.OperationLog) {
	fields := []zap.Field{
		zap.String("operation", entry.Operation),
		zap.String("status", entry.Status),
	}
	if entry.Guest.String() != "" {
		fields = append(fields, zap.String("guest", entry.Guest.String()))
	}
	if entry.Phone.String() != "" {
		fields = append(fields, zap.String("phone", entry.Phone.String()))
	}
	if !entry.Room.IsZero() {
		fields = append(fields, zap.Int("room", entry.Room.Int()))
	}
	if entry.Amount != 0 {
		fields = append(fields, zap.Float64("amount", entry.Amount))
	}
	if entry.Error != nil {
		fields = append(fields, zap.Error(entry.Error))
		adapter.logger.Warn("operation failed", fields...)
		return
	}
	adapter.logger.Info("operation completed", fields...)
}

// auditOperationLogger mirrors successful operations into the database
// booking_events table on top of console logging.
type auditOperationLogger struct {
	console hotel.OperationLogger
	store   *gormstore.Store
}

func (adapter *auditOperationLogger) LogOperation(ctx context.Context, entry hotel.OperationLog) {
	adapter.console.LogOperation(ctx, entry)
	if entry.Error != nil {
		return
	}
	details := map[string]any{"status": entry.Status}
	if entry.Guest.String() != "" {
		details["guest"] = entry.Guest.String()
	}
	if entry.Phone.String() != "" {
		details["phone"] = entry.Phone.String()
	}
	if !entry.Room.IsZero() {
		details["room"] = entry.Room.Int()
	}
	if entry.Amount != 0 {
		details["amount"] = entry.Amount
	}
	_ = adapter.store.AppendEvent(ctx, entry.Operation, details)
}
