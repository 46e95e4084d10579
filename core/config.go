package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Conf holds the application configuration. It is loaded once at startup from
// defaults, an optional config/.env.<env> file and ENV-prefixed environment
// variables.
var Conf *Config

type Config struct {
	Debug    bool
	TestMode bool
	Env      string
	AppName  string
	Build    string

	SecretKey string
	WorkDir   string
	DataDir   string

	DefaultFromEmail mail.Address
	SendgridAPIKey   string
	RollbarToken     string

	Gemini struct {
		APIKey string
		Model  string
	}

	Server struct {
		Host                      string
		Addr                      string
		JWTExpirationDelta        time.Duration
		JWTRefreshExpirationDelta time.Duration
	}
}

func init() {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "FitManage")
	v.SetDefault("secretKey", "t$k3y-ch4ng3-m3-1n-pr0d-0r-3ls3!")
	v.SetDefault("dataDir", "data")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("serverAddr", ":8000")
	v.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	v.SetDefault("jwtRefreshExpirationDelta", 4*time.Hour)
	v.SetDefault("geminiModel", "gemini-3-pro-preview")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}
	v.SetEnvPrefix(env)

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
	v.AutomaticEnv()

	host, _ := os.Hostname()

	Conf = &Config{
		Debug:     v.GetBool("debug"),
		TestMode:  env == "TEST",
		Env:       env,
		AppName:   v.GetString("appName"),
		Build:     v.GetString("build"),
		SecretKey: v.GetString("secretKey"),
		WorkDir:   wd,
		DataDir:   v.GetString("dataDir"),
		DefaultFromEmail: mail.Address{
			Name:    v.GetString("appName"),
			Address: v.GetString("defaultFromEmail"),
		},
		SendgridAPIKey: v.GetString("sendgridApiKey"),
		RollbarToken:   v.GetString("rollbarToken"),
	}
	Conf.Gemini.APIKey = v.GetString("geminiApiKey")
	Conf.Gemini.Model = v.GetString("geminiModel")
	Conf.Server.Host = host
	Conf.Server.Addr = v.GetString("serverAddr")
	Conf.Server.JWTExpirationDelta = v.GetDuration("jwtExpirationDelta")
	Conf.Server.JWTRefreshExpirationDelta = v.GetDuration("jwtRefreshExpirationDelta")
}
