// Command hanoi plays the Tower of Hanoi with push buttons, the keyboard or the built-in solver.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"hanoi/agent"
	"hanoi/engine"
	"hanoi/game"
	"hanoi/meta"
	"hanoi/metrics"
)

const usage = "hanoi [-q] [-d disks] [-i buttons|keyboard|solver] [-t]"

// usageError marks errors caused by bad command-line values.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func setupLogging(w io.Writer) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(w, "hanoi: failed to load .env: %v\n", err)
	}

	level := zerolog.WarnLevel
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if lvl, err := zerolog.ParseLevel(v); err == nil {
			level = lvl
		}
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
}

func newCommand(stdin *os.File, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "hanoi",
		Usage:     "play the Tower of Hanoi",
		UsageText: usage,
		Writer:    stdout,
		ErrWriter: stderr,
		OnUsageError: func(ctx context.Context, cmd *cli.Command, err error, isSubcommand bool) error {
			return usageError{err}
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only print the final summary",
			},
			&cli.IntFlag{
				Name:    "disks",
				Aliases: []string{"d"},
				Usage:   fmt.Sprintf("number of disks (%d-%d)", meta.MinDisks, meta.MaxDisks),
				Value:   meta.DefaultDisks,
				Sources: cli.EnvVars("HANOI_DISKS"),
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "where moves come from: buttons, keyboard or solver",
				Value:   string(agent.Keyboard),
				Sources: cli.EnvVars("HANOI_INPUT"),
			},
			&cli.BoolFlag{
				Name:    "time",
				Aliases: []string{"t"},
				Usage:   "report wall and CPU time (always on for the solver)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return play(ctx, cmd, stdin, stdout)
		},
	}
}

func play(ctx context.Context, cmd *cli.Command, stdin *os.File, stdout io.Writer) error {
	kind, err := agent.ParseKind(cmd.String("input"))
	if err != nil {
		return usageError{err}
	}
	state, err := game.NewGameState(int(cmd.Int("disks")))
	if err != nil {
		return usageError{err}
	}

	quiet := cmd.Bool("quiet")
	delay := meta.SolverDelay
	if quiet {
		delay = 0
	}

	a, err := agent.New(ctx, kind, state, agent.Config{
		In:          stdin,
		Out:         stdout,
		SolverDelay: delay,
	})
	if errors.Is(err, context.Canceled) {
		log.Info().Msg("interrupted before the game started")
		return nil
	}
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Error().Err(err).Msg("failed to release input")
		}
	}()

	options := []engine.Option{engine.WithOutput(stdout), engine.WithQuiet(quiet)}
	if kind == agent.Solver || cmd.Bool("time") {
		options = append(options, engine.WithTiming(metrics.NewCollector()))
	}

	_, err = engine.New(state, a, options...).Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info().Msg("interrupted")
		return nil
	}
	return err
}

func run(ctx context.Context, args []string, stdin *os.File, stdout, stderr io.Writer) int {
	setupLogging(stderr)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := newCommand(stdin, stdout, stderr).Run(ctx, args); err != nil {
		fmt.Fprintf(stderr, "hanoi: %v\n", err)
		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprintf(stderr, "usage: %s\n", usage)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr))
}
