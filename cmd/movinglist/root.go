package main

import (
	"MovingList/internal/client"
	"MovingList/internal/inventory"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

var (
	flagConfigDir string
	flagLogLevel  string
	flagJSON      bool
)

var (
	api *client.Client
	app *inventory.App
)

var rootCmd = &cobra.Command{
	Use:           "movinglist",
	Short:         "Keep track of what went into which moving box",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log := logrus.New()
		log.SetOutput(os.Stderr)
		level, err := logrus.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		log.SetLevel(level)

		configDir := flagConfigDir
		if configDir == "" {
			configDir = defaultConfigDir()
		}
		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		if len(cfg.AllowedEmails) == 0 {
			log.Debug("allowed_emails is empty, the server alone decides who may sign in")
		}

		api, err = client.New(client.Config{
			ServerURL:   cfg.ServerURL,
			SessionFile: cfg.SessionFile,
			Timeout:     cfg.Timeout,
		}, log)
		if err != nil {
			return err
		}
		app = inventory.NewApp(api, api, inventory.Options{
			AllowedEmails: cfg.AllowedEmails,
			RedirectTo:    cfg.RedirectURL,
		}, log)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil {
			app.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: ~/.movinglist)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(boxCmd)
	rootCmd.AddCommand(itemCmd)
}

var errNotSignedIn = errors.New("not signed in, run `movinglist login <email>` first")

// exitCode separates mistakes the user can fix from everything else.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, inventory.ErrValidation),
		errors.Is(err, inventory.ErrAuthorization),
		errors.Is(err, inventory.ErrNotFound),
		errors.Is(err, errNotSignedIn),
		errors.Is(err, client.ErrUnauthorized),
		errors.Is(err, errBadArgument):
		return exitUserError
	}
	return exitSysError
}

// start loads the collection and fails when nobody is signed in.
func start(cmd *cobra.Command) error {
	signedIn, err := app.Start(cmd.Context())
	if err != nil {
		return err
	}
	if !signedIn {
		return errNotSignedIn
	}
	return nil
}
