package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"

	"meditrack/config"
	"meditrack/internal/delivery/console"
	"meditrack/internal/domain/repository"
	"meditrack/internal/infrastructure/csvstore"
	"meditrack/internal/infrastructure/database"
	repositoryImpl "meditrack/internal/repository"
	"meditrack/internal/service"
	"meditrack/internal/usecase"
	"meditrack/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Options carries command line overrides. Empty fields keep the configured value.
type Options struct {
	LoadData bool
	DataDir  string
	Storage  string

	In  io.Reader
	Out io.Writer
}

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	Console     *console.Console
	DataUsecase usecase.DataUsecase

	loadData bool
}

// New creates a new App instance with all dependencies initialized
func New(opts Options) (*App, error) {
	app := &App{loadData: opts.LoadData}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.DataDir != "" {
		cfg.Storage.DataDir = opts.DataDir
	}
	if opts.Storage != "" {
		cfg.Storage.Driver = opts.Storage
	}
	app.Config = cfg

	// Setup logger
	if err := setupLogger(cfg.Log); err != nil {
		return nil, err
	}
	log := logrus.StandardLogger()
	log.Debugf("Configuration loaded: env=%s, storage=%s", cfg.App.Env, cfg.Storage.Driver)

	archive, err := app.initializeArchive(log)
	if err != nil {
		return nil, err
	}

	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	app.initializeConsole(log, archive, opts.In, opts.Out)

	return app, nil
}

// setupLogger configures the logrus logger. Output goes to stderr so log
// lines stay out of the console transcript.
func setupLogger(cfg config.LogConfig) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(level)
	return nil
}

// initializeArchive opens the storage selected by STORAGE_DRIVER
func (app *App) initializeArchive(log *logrus.Logger) (repository.ClinicArchive, error) {
	switch app.Config.Storage.Driver {
	case config.StorageDriverCSV:
		log.Debugf("Using CSV storage in %s", app.Config.Storage.DataDir)
		return csvstore.NewCSVArchive(app.Config.Storage.DataDir, log), nil

	case config.StorageDriverPostgres:
		db, err := database.NewPostgresConnection(app.Config.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
		return repositoryImpl.NewPostgresArchive(db), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", app.Config.Storage.Driver)
	}
}

func (app *App) initializeConsole(log *logrus.Logger, archive repository.ClinicArchive, in io.Reader, out io.Writer) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	doctorRepo := repositoryImpl.NewDoctorRepository()
	patientRepo := repositoryImpl.NewPatientRepository()
	appointmentRepo := repositoryImpl.NewAppointmentRepository()
	auditLogRepo := repositoryImpl.NewAuditLogRepository()

	// Initialize services
	idGenerator := service.NewIDGenerator()
	auditService := service.NewAuditService(log, auditLogRepo)
	recommendationService := service.NewRecommendationService()

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(log, customValidator, idGenerator, doctorRepo, auditService)
	patientUsecase := usecase.NewPatientUsecase(log, customValidator, idGenerator, patientRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, idGenerator, appointmentRepo, doctorUsecase, patientUsecase, auditService)
	dataUsecase := usecase.NewDataUsecase(log, archive, doctorUsecase, patientUsecase, appointmentUsecase, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(auditService)

	app.DataUsecase = dataUsecase
	app.Console = console.NewConsole(
		in, out, log, customValidator,
		doctorUsecase, patientUsecase, appointmentUsecase, dataUsecase, auditLogUsecase,
		recommendationService,
	)
}

// Run loads saved data when requested and then hands control to the console
func (app *App) Run(ctx context.Context) error {
	if app.loadData {
		app.DataUsecase.LoadInitialData(ctx)
	}
	return app.Console.Run(ctx)
}

// Close closes the database connection, if any
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
