package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dante/internal/api"
	"dante/internal/app"
	"dante/internal/domain"
	"dante/internal/logging"
	"dante/internal/output"
)

var (
	cfgFile string
	appCtx  *app.App
	printer = output.NewPrinter(output.ColorAuto)
)

func Execute() error {
	root := &cobra.Command{
		Use:           "dante",
		Short:         "Business administration client for the DANTE server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			mode, err := output.ParseColorMode(cfg.Color)
			if err != nil {
				return err
			}
			printer = output.NewPrinter(mode)

			log, err := logging.NewCLI(cfg.Verbose)
			if err != nil {
				return err
			}
			if cfg.Backend == app.BackendFile {
				if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
					return err
				}
			}
			appCtx, err = app.New(cfg, log)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				_ = appCtx.Close()
				_ = appCtx.Log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ~/.dante/config.yaml)")
	pf.String("home", "", "state dir (default ~/.dante)")
	pf.String("api-url", "", "server base URL (e.g. http://127.0.0.1:5000)")
	pf.String("backend", "", "session storage: file, redis or memory")
	pf.String("redis-addr", "", "redis address for the redis backend")
	pf.StringP("passphrase", "p", "", "encrypt stored session state with this passphrase")
	pf.Duration("timeout", 0, "per-request timeout")
	pf.String("color", "", "color output: auto, always or never")
	pf.BoolP("verbose", "v", false, "debug logging")

	root.AddCommand(
		companyCmd(),
		userCmd(),
		logoutCmd(),
		whoamiCmd(),
		clientsCmd(),
		productsCmd(),
		categoriesCmd(),
		messagesCmd(),
		ticketsCmd(),
		chatCmd(),
	)

	err := root.Execute()
	if err != nil {
		printer.Error("%s", describe(err))
	}
	return err
}

// describe turns service errors into one line for the terminal.
func describe(err error) string {
	var verr *domain.ValidationError
	var aerr *api.Error
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "not logged in: run 'dante company login' or 'dante user login'"
	case errors.As(err, &verr):
		return verr.Error()
	case errors.As(err, &aerr):
		if aerr.Status == 401 {
			return fmt.Sprintf("unauthorized: %s", aerr.Message)
		}
		return fmt.Sprintf("server said %d: %s", aerr.Status, aerr.Message)
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	default:
		return err.Error()
	}
}
