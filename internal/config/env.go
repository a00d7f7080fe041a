package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultMaxBodyBytes = 64 * 1024

type Env struct {
	AppAddr            string   `yaml:"app_addr"`
	GinMode            string   `yaml:"gin_mode"`
	LogLevel           string   `yaml:"log_level"`
	LogDevelopment     bool     `yaml:"log_development"`
	Timezone           string   `yaml:"timezone"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	MaxBodyBytes       int64    `yaml:"max_body_bytes"`
}

// Default returns the settings used when nothing is configured.
func Default() Env {
	return Env{
		AppAddr:  ":8080",
		LogLevel: "info",
		Timezone: "Local",
		CORSAllowedOrigins: []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		},
		MaxBodyBytes: defaultMaxBodyBytes,
	}
}

// LoadEnv reads .env (if present), then the YAML file named by TRUCKQR_CONFIG
// (if set), then environment variables. Later sources win.
func LoadEnv() (Env, error) {
	_ = godotenv.Load()

	env := Default()
	if path := strings.TrimSpace(os.Getenv("TRUCKQR_CONFIG")); path != "" {
		if err := env.mergeFile(path); err != nil {
			return Env{}, err
		}
	}
	if err := env.mergeEnviron(); err != nil {
		return Env{}, err
	}
	return env, nil
}

func (e *Env) mergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var fileEnv Env
	if err := yaml.Unmarshal(raw, &fileEnv); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	e.AppAddr = firstNonEmpty(fileEnv.AppAddr, e.AppAddr)
	e.GinMode = firstNonEmpty(fileEnv.GinMode, e.GinMode)
	e.LogLevel = firstNonEmpty(fileEnv.LogLevel, e.LogLevel)
	e.Timezone = firstNonEmpty(fileEnv.Timezone, e.Timezone)
	if fileEnv.LogDevelopment {
		e.LogDevelopment = true
	}
	if len(fileEnv.CORSAllowedOrigins) > 0 {
		e.CORSAllowedOrigins = fileEnv.CORSAllowedOrigins
	}
	if fileEnv.MaxBodyBytes > 0 {
		e.MaxBodyBytes = fileEnv.MaxBodyBytes
	}
	return nil
}

func (e *Env) mergeEnviron() error {
	e.AppAddr = firstNonEmpty(strings.TrimSpace(os.Getenv("APP_ADDR")), e.AppAddr)
	e.GinMode = firstNonEmpty(strings.TrimSpace(os.Getenv("GIN_MODE")), e.GinMode)
	e.LogLevel = firstNonEmpty(strings.TrimSpace(os.Getenv("LOG_LEVEL")), e.LogLevel)
	e.Timezone = firstNonEmpty(strings.TrimSpace(os.Getenv("APP_TIMEZONE")), e.Timezone)

	if raw := strings.TrimSpace(os.Getenv("LOG_DEVELOPMENT")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("LOG_DEVELOPMENT: %w", err)
		}
		e.LogDevelopment = v
	}

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		origins := []string{}
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		e.CORSAllowedOrigins = origins
	}

	if raw := strings.TrimSpace(os.Getenv("MAX_BODY_BYTES")); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return fmt.Errorf("MAX_BODY_BYTES must be a positive integer, got %q", raw)
		}
		e.MaxBodyBytes = n
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
