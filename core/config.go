package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kat-co/vala"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug           bool
		TestMode        bool
		Env             string // DEV (default), TEST, QA, PROD
		AppName         string
		Build           string
		SecretKey       []byte
		FrontendBaseURL string
		CourseName      string
		DataDir         string // location of modules.json & quiz.json
		WorkDir         string
		RollbarToken    string

		Server   serverConfig
		OTP      otpConfig
		Admin    adminConfig
		Database databaseConfig
	}

	serverConfig struct {
		Host                      string
		Addr                      string
		DebugHost                 string
		ShutdownTimeout           time.Duration
		JWTExpirationDelta        time.Duration
		JWTRefreshExpirationDelta time.Duration
	}

	otpConfig struct {
		Length int
		Expiry time.Duration
	}

	adminConfig struct {
		// PasswordHash is a bcrypt hash; generate one with `admin hashpassword`.
		PasswordHash string
	}

	databaseConfig struct {
		Enabled       bool
		Engine        string
		Host          string
		Port          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		Name          string
		DisableTLS    bool
	}
)

func (c databaseConfig) Address() string { return c.Host + ":" + c.Port }

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Shiksha")
	conf.SetDefault("build", "dev")
	conf.SetDefault("secretKey", "x8#2m$vq)wel+57=dz&uoxh2(h!x)#*c2(#yg4h^$cegm2emy")
	conf.SetDefault("frontendBaseURL", "http://localhost:3000")
	conf.SetDefault("courseName", "Data Science & AI/ML for Indian Job Market")
	conf.SetDefault("dataDir", "data")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverAddr", ":8000")
	conf.SetDefault("serverDebugHost", "localhost:4000")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("jwtExpirationDelta", 24*time.Hour)
	conf.SetDefault("jwtRefreshExpirationDelta", 4*time.Hour)
	conf.SetDefault("otpLength", 6)
	conf.SetDefault("otpExpiry", 5*time.Minute)
	// default password: "phil123" - change it right away via `admin hashpassword`
	conf.SetDefault("adminPasswordHash", "$2a$10$GJA7TEIS1/eG2B1yPyVYY.Kum2G1lXo9MeYLMUYQj0ffIHH1mQMcm")
	conf.SetDefault("databaseEnabled", false)
	conf.SetDefault("databaseEngine", "postgres")
	conf.SetDefault("databaseHost", "localhost")
	conf.SetDefault("databasePort", "5432")
	conf.SetDefault("databaseUser", "shiksha")
	conf.SetDefault("databasePassword", "")
	conf.SetDefault("databaseAdminUser", "")
	conf.SetDefault("databaseAdminPassword", "")
	conf.SetDefault("databaseName", "shiksha")
	conf.SetDefault("databaseDisableTLS", true)

	var testMode bool
	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		testMode = true
	}
	conf.SetEnvPrefix(env)

	wd := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	c := &Config{
		Debug:           conf.GetBool("debug"),
		TestMode:        testMode,
		Env:             env,
		AppName:         conf.GetString("appName"),
		Build:           conf.GetString("build"),
		SecretKey:       []byte(conf.GetString("secretKey")),
		FrontendBaseURL: conf.GetString("frontendBaseURL"),
		CourseName:      conf.GetString("courseName"),
		DataDir:         conf.GetString("dataDir"),
		WorkDir:         wd,
		RollbarToken:    conf.GetString("rollbarToken"),
		Server: serverConfig{
			Host:                      conf.GetString("serverHost"),
			Addr:                      conf.GetString("serverAddr"),
			DebugHost:                 conf.GetString("serverDebugHost"),
			ShutdownTimeout:           conf.GetDuration("serverShutdownTimeout"),
			JWTExpirationDelta:        conf.GetDuration("jwtExpirationDelta"),
			JWTRefreshExpirationDelta: conf.GetDuration("jwtRefreshExpirationDelta"),
		},
		OTP: otpConfig{
			Length: conf.GetInt("otpLength"),
			Expiry: conf.GetDuration("otpExpiry"),
		},
		Admin: adminConfig{
			PasswordHash: conf.GetString("adminPasswordHash"),
		},
		Database: databaseConfig{
			Enabled:       conf.GetBool("databaseEnabled"),
			Engine:        conf.GetString("databaseEngine"),
			Host:          conf.GetString("databaseHost"),
			Port:          conf.GetString("databasePort"),
			User:          conf.GetString("databaseUser"),
			Password:      conf.GetString("databasePassword"),
			AdminUser:     conf.GetString("databaseAdminUser"),
			AdminPassword: conf.GetString("databaseAdminPassword"),
			Name:          conf.GetString("databaseName"),
			DisableTLS:    conf.GetBool("databaseDisableTLS"),
		},
	}

	if !c.Debug {
		if err := c.check(); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	return c
}

// check enforces required settings outside DEV mode.
func (c *Config) check() error {
	checks := vala.BeginValidation().Validate(
		vala.StringNotEmpty(string(c.SecretKey), "secretKey"),
		vala.StringNotEmpty(c.Admin.PasswordHash, "adminPasswordHash"),
		vala.StringNotEmpty(c.Server.Addr, "serverAddr"),
	)
	if c.Database.Enabled {
		checks = checks.Validate(
			vala.StringNotEmpty(c.Database.Host, "databaseHost"),
			vala.StringNotEmpty(c.Database.User, "databaseUser"),
			vala.StringNotEmpty(c.Database.Name, "databaseName"),
		)
	}
	return checks.Check()
}

// Getwd tries to find the project root.
// go-test changes the working directory to the test package being run during tests...
// see: https://stackoverflow.com/questions/23847003/golang-tests-and-working-directory
func Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	currDir := wd
	for {
		if _, err := os.Stat(filepath.Join(currDir, "go.mod")); err == nil {
			return currDir
		}
		newDir := filepath.Dir(currDir)
		if newDir == string(os.PathSeparator) || newDir == currDir {
			return wd
		}
		currDir = newDir
	}
}
