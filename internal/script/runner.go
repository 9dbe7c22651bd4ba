package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/grid/internal/store"
)

// Result summarizes a replay
type Result struct {
	Name    string
	State   store.State
	Refs    Refs
	Steps   int
	Ignored []string
}

// Runner replays scripts against a store
type Runner struct {
	store  *store.Store
	logger *slog.Logger
}

// NewRunner creates a runner dispatching into s
func NewRunner(s *store.Store, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{store: s, logger: logger}
}

// Run dispatches every step in order. It stops at the first step that
// cannot be converted or when ctx is cancelled; steps already dispatched
// stay applied.
func (r *Runner) Run(ctx context.Context, sc *Script) (Result, error) {
	if sc == nil || len(sc.Steps) == 0 {
		return Result{}, ErrEmptyScript
	}

	res := Result{Name: sc.Name, Refs: Refs{}}
	r.logger.Debug("script start", "name", sc.Name, "steps", len(sc.Steps))
	start := time.Now()

	for index, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			res.State = r.store.State()
			return res, fmt.Errorf("step %d: %w", index+1, err)
		}

		action, err := step.Action(res.Refs)
		if err != nil {
			res.State = r.store.State()
			return res, step.errorf(index, err)
		}

		kind := action.Kind()
		if step.As != "" {
			if !isAdd(kind) {
				res.State = r.store.State()
				return res, step.errorf(index, ErrInvalidBinding)
			}
			if _, taken := res.Refs[step.As]; taken {
				res.State = r.store.State()
				return res, step.errorf(index, fmt.Errorf("%w: %s", ErrDuplicateBinding, step.As))
			}
		}

		if _, ok := action.(store.Unknown); ok {
			r.logger.Warn("unknown action type", "step", index+1, "type", step.Type, "line", step.Line)
			res.Ignored = append(res.Ignored, step.Type)
		}

		next := r.store.Dispatch(action)
		res.Steps++

		if step.As != "" {
			id, ok := createdID(kind, next)
			if !ok {
				return res, step.errorf(index, errors.New("no record was created"))
			}
			res.Refs[step.As] = id
		}
	}

	res.State = r.store.State()
	r.logger.Debug("script done", "name", sc.Name, "steps", res.Steps, "elapsed", time.Since(start))
	return res, nil
}

// RunFile parses a script file and runs it
func (r *Runner) RunFile(ctx context.Context, path string) (Result, error) {
	sc, err := ParseFile(path)
	if err != nil {
		return Result{}, err
	}
	return r.Run(ctx, sc)
}

func isAdd(kind store.Kind) bool {
	return kind == store.KindAddProject || kind == store.KindAddColumn || kind == store.KindAddCard
}
