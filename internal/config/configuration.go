package config

import (
	"gopkg.in/yaml.v3"
	"os"
	"time"
)

type Configuration struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Redis    RedisConfig    `yaml:"redis"`
	SMTP     SMTPConfig     `yaml:"smtp"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	Concurrency   int           `yaml:"concurrency"`
	RequestConfig RequestConfig `yaml:"requestConfig"`
	LogConfig     LogConfig     `yaml:"logConfig"`
	CleanConfig   CleanConfig   `yaml:"cleanConfig"`
}

type RequestConfig struct {
	// SizeLimit is the maximum request body in megabytes.
	SizeLimit int `yaml:"sizeLimit"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type CleanConfig struct {
	Schedule  string        `yaml:"schedule"`
	Retention time.Duration `yaml:"retention"`
}

type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite".
	Driver string `yaml:"driver"`
	// DSN overrides the DB_* environment variables when set.
	DSN string `yaml:"dsn"`
}

type AuthConfig struct {
	AllowedEmails []string      `yaml:"allowedEmails"`
	JWTSecret     string        `yaml:"jwtSecret"`
	SessionTTL    time.Duration `yaml:"sessionTTL"`
	LoginTokenTTL time.Duration `yaml:"loginTokenTTL"`
	// RedirectURL is used when a sign-in request carries no redirect target.
	RedirectURL string `yaml:"redirectURL"`
	// AllowedRedirects lists the targets a login link may point at. An entry
	// without a path admits every path on its origin.
	AllowedRedirects []string `yaml:"allowedRedirects"`
}

// Redirects returns AllowedRedirects, falling back to RedirectURL alone.
func (a AuthConfig) Redirects() []string {
	if len(a.AllowedRedirects) > 0 {
		return a.AllowedRedirects
	}
	if a.RedirectURL == "" {
		return nil
	}
	return []string{a.RedirectURL}
}

type RedisConfig struct {
	URL string `yaml:"url"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	FromName string `yaml:"fromName"`
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	config := Default()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}
	return config, nil
}

// Default returns the values used for keys missing from the configuration file.
func Default() *Configuration {
	return &Configuration{
		Server: ServerConfig{
			Port:          8080,
			Concurrency:   256,
			RequestConfig: RequestConfig{SizeLimit: 1},
			LogConfig: LogConfig{
				Level:  "info",
				Format: "text",
				Output: "stdout",
			},
			CleanConfig: CleanConfig{
				Schedule:  "@daily",
				Retention: 30 * 24 * time.Hour,
			},
		},
		Database: DatabaseConfig{Driver: "postgres"},
		Auth: AuthConfig{
			SessionTTL:    7 * 24 * time.Hour,
			LoginTokenTTL: 15 * time.Minute,
			RedirectURL:   "http://localhost:8080/auth/callback",
		},
		Redis: RedisConfig{URL: "redis://localhost:6379/0"},
		SMTP:  SMTPConfig{Port: "587", FromName: "Moving List"},
	}
}
