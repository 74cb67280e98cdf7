package searcher

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"hanoi/game"
)

type Option func(s *Iterative)

// WithDelay pauses before each pick-up so a viewer can follow the moves.
func WithDelay(delay time.Duration) Option {
	return func(s *Iterative) {
		if delay > 0 {
			s.delay = delay
		}
	}
}

// Iterative plays the optimal solution one rod selection at a time using constant state:
// odd moves carry the smallest disk one step in a fixed direction, even moves make the single
// legal move between the two other rods. Every move is emitted as a pick-up followed by a placement.
type Iterative struct {
	view      game.View
	direction direction
	smallest  game.Rod // Rod currently holding disk 1
	oddMove   bool     // Next move belongs to the smallest disk
	placing   bool     // A pick-up was emitted; target is next
	target    game.Rod
	delay     time.Duration
}

// NewIterative creates a solver for a freshly set up puzzle observed through view.
// The solver assumes it is the only agent playing the game.
func NewIterative(view game.View, options ...Option) *Iterative {
	s := &Iterative{
		view:      view,
		direction: directionFor(view.DiskCount()),
		smallest:  game.RodA,
		oddMove:   true,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Iterative) NextRod(ctx context.Context) (game.Rod, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if s.placing {
		s.placing = false
		return s.target, nil
	}

	if err := s.pause(ctx); err != nil {
		return 0, err
	}

	from, to, err := s.nextMove()
	if err != nil {
		return 0, err
	}
	log.Debug().Msgf("solver moves %s -> %s", from, to)

	s.target = to
	s.placing = true
	return from, nil
}

// nextMove returns the source and destination of the next move of the optimal solution.
func (s *Iterative) nextMove() (from, to game.Rod, err error) {
	if s.oddMove {
		from = s.smallest
		to = s.step(from)
		s.smallest = to
		s.oddMove = false
		return from, to, nil
	}

	x, y := s.step(s.smallest), s.step(s.step(s.smallest))
	from, to, ok := s.legalBetween(x, y)
	if !ok {
		return 0, 0, fmt.Errorf("%w: rods %s and %s are empty", ErrNoMove, x, y)
	}
	s.oddMove = true
	return from, to, nil
}

func (s *Iterative) step(rod game.Rod) game.Rod {
	return game.Rod((int(rod) + int(s.direction)) % int(game.NumRods))
}

// legalBetween finds the one legal move between two rods: the smaller top goes onto the larger
// one, or onto the rod that is empty.
func (s *Iterative) legalBetween(x, y game.Rod) (from, to game.Rod, ok bool) {
	dx, hasX := s.view.Peek(x)
	dy, hasY := s.view.Peek(y)
	switch {
	case !hasX && !hasY:
		return 0, 0, false
	case !hasX:
		return y, x, true
	case !hasY:
		return x, y, true
	case dx < dy:
		return x, y, true
	default:
		return y, x, true
	}
}

func (s *Iterative) pause(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Close is a no-op; the solver holds no device.
func (s *Iterative) Close() error {
	return nil
}
