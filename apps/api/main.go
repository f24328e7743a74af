package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof" // register /debug/pprof handlers
	"os"
	"path/filepath"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/iiskills/shiksha/apps/api/echo"
	"github.com/iiskills/shiksha/core"
	"github.com/iiskills/shiksha/core/admin"
	"github.com/iiskills/shiksha/core/certificate"
	"github.com/iiskills/shiksha/core/course"
	"github.com/iiskills/shiksha/core/otp"
	"github.com/iiskills/shiksha/core/quiz"
	"github.com/iiskills/shiksha/core/user"
	logsvc "github.com/iiskills/shiksha/services/logger"
	pdfsvc "github.com/iiskills/shiksha/services/pdf"
	smssvc "github.com/iiskills/shiksha/services/sms"
	"github.com/iiskills/shiksha/storage/database"
	inmemdb "github.com/iiskills/shiksha/storage/database/inmem"
	sqlxrepos "github.com/iiskills/shiksha/storage/database/sqlx"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up repositories; OTP entries are ephemeral and always stay in memory
	memDB := inmemdb.Open()
	otpRepo := inmemdb.NewOTPRepository(memDB)
	userRepo, closeDB, err := setUpUserRepository(conf, memDB)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	defer closeDB()

	// set up reference data
	dataDir := filepath.Join(conf.WorkDir, conf.DataDir)
	if err = os.MkdirAll(dataDir, 0755); err != nil {
		logger.Fatal(fmt.Sprintf("creating data dir: %v", err), err)
	}
	courseCatalog := course.LoadCatalog(filepath.Join(dataDir, "modules.json"), logger)
	quizCatalog := quiz.LoadCatalog(filepath.Join(dataDir, "quiz.json"), logger)

	// set up services
	smsSvc := smssvc.NewConsoleService(conf)
	usrSvc := user.NewService(userRepo)
	otpSvc := otp.NewService(otpRepo, conf.OTP.Length, conf.OTP.Expiry)
	quizSvc := quiz.NewService(quizCatalog, usrSvc)
	certSvc := certificate.NewService(usrSvc, conf.CourseName)
	adminSvc := admin.NewService(usrSvc, conf.Admin.PasswordHash)
	pdfGen := pdfsvc.NewCertificateGenerator(conf.AppName)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:          conf,
			Logger:        logger,
			UserSvc:       usrSvc,
			OTPSvc:        otpSvc,
			QuizSvc:       quizSvc,
			CertSvc:       certSvc,
			AdminSvc:      adminSvc,
			CourseCatalog: courseCatalog,
			QuizCatalog:   quizCatalog,
			PDFGen:        pdfGen,
			SMSSvc:        smsSvc,
			Validate:      validate,
			Translator:    translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

// setUpUserRepository picks the storage backend: postgres when enabled,
// otherwise the in-memory tables shared with the OTP store.
func setUpUserRepository(conf *core.Config, memDB *inmemdb.DB) (user.Repository, func(), error) {
	if !conf.Database.Enabled {
		return inmemdb.NewUserRepository(memDB), func() {}, nil
	}

	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, nil, err
	}
	db, err := database.Open(conf)
	if err != nil {
		return nil, nil, err
	}
	if err = database.Migrate(db.DB); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return sqlxrepos.NewUserRepository(db), func() { _ = db.Close() }, nil
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
