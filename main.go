// main.go
//
// Entry point for the bowling scorer.
// Commands:
//   - (root): run the HTTP server, or the console with --console.
//   - serve: run the HTTP server (form page, JSON API, metrics).
//   - console: read one line from stdin and print the score table.
//   - score: score the rolls given as arguments, joined into one line.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/bowling/internal/config"
	"github.com/robalobadob/bowling/internal/console"
	"github.com/robalobadob/bowling/internal/examples"
	"github.com/robalobadob/bowling/internal/httpserver"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. With no subcommand the form server is
// started; --console switches to the terminal front-end.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var (
		useConsole bool
		cfg        config.Config
	)

	root := &cobra.Command{
		Use:           "bowling",
		Short:         "Ten-pin bowling scorer",
		Long:          "Scores a line of bowling rolls, written as notation (X 7/ 9-) or integers (10 7 3 9 0).",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = setup(cmd.ErrOrStderr())
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if useConsole {
				return runConsole(cfg, in, out, errOut)
			}
			return runServe(cfg)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.Flags().BoolVar(&useConsole, "console", false, "read one line from stdin instead of serving the form")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the scoring form and JSON API",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cfg)
			},
		},
		&cobra.Command{
			Use:   "console",
			Short: "Read one line from stdin and print the frame scores",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConsole(cfg, in, out, errOut)
			},
		},
		&cobra.Command{
			Use:   "score <rolls...>",
			Short: "Score the rolls given as arguments",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c := console.New(in, out, errOut, nil)
				if !c.Score(strings.Join(args, " ")) {
					return errRejected
				}
				return nil
			},
		},
	)
	return root
}

// errRejected makes `score` exit non-zero after the error was already printed.
var errRejected = errors.New("line rejected")

// setup loads configuration, sets the global log level and points the
// global logger at logOut.
func setup(logOut io.Writer) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: logOut})
	return cfg, nil
}

func runServe(cfg config.Config) error {
	ex, err := examples.Load(cfg.ExamplesFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to load examples")
		return err
	}
	srv, err := httpserver.New(cfg, ex, prometheus.NewRegistry())
	if err != nil {
		log.Error().Err(err).Msg("failed to build server")
		return err
	}
	log.Info().Str("addr", cfg.Addr()).Msg("starting bowling server")
	if err := srv.Start(); err != nil {
		log.Error().Err(err).Msg("server exited")
		return err
	}
	return nil
}

func runConsole(cfg config.Config, in io.Reader, out, errOut io.Writer) error {
	ex, err := examples.Load(cfg.ExamplesFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to load examples")
		return err
	}
	if err := console.New(in, out, errOut, ex).Run(); err != nil {
		log.Error().Err(err).Msg("console")
		return err
	}
	return nil
}
