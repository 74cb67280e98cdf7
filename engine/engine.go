// Package engine runs a game: it asks the agent for rods, applies them and reports progress.
package engine

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"hanoi/agent"
	"hanoi/game"
	"hanoi/metrics"
)

type Option func(e *Engine)

// WithOutput sets where the diagram and messages are written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		if w != nil {
			e.out = w
		}
	}
}

// WithQuiet suppresses everything but the final summary.
func WithQuiet(quiet bool) Option {
	return func(e *Engine) {
		e.quiet = quiet
	}
}

// WithTiming collects timing with c and adds it to the final summary.
func WithTiming(c metrics.Collector) Option {
	return func(e *Engine) {
		if c != nil {
			e.collector = c
			e.timed = true
		}
	}
}

type Engine struct {
	State     *game.GameState
	Agent     agent.Agent
	out       io.Writer
	quiet     bool
	timed     bool
	collector metrics.Collector
}

func New(state *game.GameState, a agent.Agent, options ...Option) *Engine {
	e := &Engine{
		State:     state,
		Agent:     a,
		out:       os.Stdout,
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays until the puzzle is solved or the agent fails, for instance because ctx was cancelled.
func (e *Engine) Run(ctx context.Context) (metrics.GameMetric, error) {
	e.collector.Start(e.State.Disks)
	log.Info().Int("disks", e.State.Disks).Str("optimal", e.State.Optimal.String()).Msg("game started")

	if !e.quiet {
		fmt.Fprintf(e.out, "A %d disk puzzle, this can be solved in %s moves.\n\n", e.State.Disks, e.State.Optimal)
		if err := e.State.Render(e.out); err != nil {
			return e.collector.Complete(e.State.Moves, false), err
		}
		fmt.Fprintln(e.out)
	}

	for !e.State.Solved() {
		rod, err := e.Agent.NextRod(ctx)
		if err != nil {
			log.Info().Err(err).Uint64("moves", e.State.Moves).Msg("game stopped")
			return e.collector.Complete(e.State.Moves, false), fmt.Errorf("failed to get next rod: %w", err)
		}

		out := e.State.Play(rod)
		e.collector.Record(out)
		log.Debug().
			Str("rod", rod.String()).
			Str("action", out.Type.String()).
			Uint16("disk", uint16(out.Disk)).
			Uint64("moves", e.State.Moves).
			Msg("action played")

		if !e.quiet {
			if err := e.show(out); err != nil {
				return e.collector.Complete(e.State.Moves, false), err
			}
		}
	}

	metric := e.collector.Complete(e.State.Moves, true)
	log.Info().Uint64("moves", metric.TotalMoves).Msg("game won")
	e.report(metric)
	return metric, nil
}
