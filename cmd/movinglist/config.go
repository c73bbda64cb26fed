package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyServerURL     = "server_url"
	cfgKeySessionFile   = "session_file"
	cfgKeyRedirectURL   = "redirect_url"
	cfgKeyAllowedEmails = "allowed_emails"
	cfgKeyTimeout       = "timeout"
)

type clientConfig struct {
	ServerURL     string
	SessionFile   string
	RedirectURL   string
	AllowedEmails []string
	Timeout       time.Duration
}

// defaultConfigDir is ~/.movinglist, or .movinglist in the working directory
// when the home directory is unknown.
func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".movinglist"
	}
	return filepath.Join(home, ".movinglist")
}

// loadConfig reads config.yaml from configDir. A missing file is not an
// error; MOVINGLIST_* environment variables override file values.
func loadConfig(configDir string) (clientConfig, error) {
	v := viper.New()
	v.SetDefault(cfgKeyServerURL, "http://localhost:8080")
	v.SetDefault(cfgKeySessionFile, filepath.Join(configDir, "session.json"))
	v.SetDefault(cfgKeyRedirectURL, "")
	v.SetDefault(cfgKeyAllowedEmails, []string{})
	v.SetDefault(cfgKeyTimeout, 10*time.Second)

	v.SetEnvPrefix("movinglist")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return clientConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	return clientConfig{
		ServerURL:     v.GetString(cfgKeyServerURL),
		SessionFile:   v.GetString(cfgKeySessionFile),
		RedirectURL:   v.GetString(cfgKeyRedirectURL),
		AllowedEmails: v.GetStringSlice(cfgKeyAllowedEmails),
		Timeout:       v.GetDuration(cfgKeyTimeout),
	}, nil
}
