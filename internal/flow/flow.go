// Package flow runs the onboarding question sequence. Instead of one file
// per screen the whole flow is an ordered list of step descriptors walked
// by a single engine; every transition is unconditional (step i always
// routes to step i+1), which is a property of the flow, not a limitation.
package flow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
)

// StateCompleted is the terminal state id. Advancing a completed flow is a
// no-op, not an error.
const StateCompleted = "completed"

type Kind string

const (
	KindSingle  Kind = "single"
	KindMulti   Kind = "multi"
	KindText    Kind = "text"
	KindNumeric Kind = "numeric"
	KindInfo    Kind = "info"
)

// Step describes one question screen. Steps flagged Persist have their
// answer saved immediately on advance instead of waiting for the final
// flush, so a crash mid-flow loses at most the current screen's input.
type Step struct {
	ID       string   `json:"id"`
	Prompt   string   `json:"prompt"`
	Kind     Kind     `json:"kind"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
	Persist  bool     `json:"-"`
}

// Answer carries the user's input for one step; which field matters
// depends on the step's Kind.
type Answer struct {
	Choice  string   `json:"choice,omitempty"`
	Choices []string `json:"choices,omitempty"`
	Text    string   `json:"text,omitempty"`
	Number  *float64 `json:"number,omitempty"`
}

var (
	ErrUnknownStep    = errors.New("unknown step")
	ErrOutOfOrder     = errors.New("step is not the current step")
	ErrAnswerRequired = errors.New("answer required")
)

// Saver persists a single step's answer. Failures are logged and
// swallowed by the engine; navigation never blocks on storage.
type Saver func(ctx context.Context, stepID string, ans Answer) error

// Completer marks onboarding as done and flushes the accumulated answers.
// It must be idempotent; the engine may be completed at most once but the
// completion write itself is re-runnable.
type Completer func(ctx context.Context, answers map[string]Answer) error

type Engine struct {
	mu        sync.Mutex
	steps     []Step
	index     map[string]int
	answers   map[string]Answer
	current   int
	done      bool
	saver     Saver
	completer Completer
}

func NewEngine(steps []Step, saver Saver, completer Completer) (*Engine, error) {
	if len(steps) == 0 {
		return nil, errors.New("flow needs at least one step")
	}
	index := make(map[string]int, len(steps))
	for i, s := range steps {
		if s.ID == "" || s.ID == StateCompleted {
			return nil, fmt.Errorf("invalid step id %q", s.ID)
		}
		if _, dup := index[s.ID]; dup {
			return nil, fmt.Errorf("duplicate step id %q", s.ID)
		}
		index[s.ID] = i
	}
	return &Engine{
		steps:     steps,
		index:     index,
		answers:   make(map[string]Answer),
		saver:     saver,
		completer: completer,
	}, nil
}

// Current returns the id of the step awaiting an answer, or
// StateCompleted once the flow has finished.
func (e *Engine) Current() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.done {
		return StateCompleted
	}
	return e.steps[e.current].ID
}

// CurrentStep returns the full descriptor for the current step.
func (e *Engine) CurrentStep() (Step, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.done {
		return Step{}, false
	}
	return e.steps[e.current], true
}

// Answers returns a copy of everything collected so far.
func (e *Engine) Answers() map[string]Answer {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]Answer, len(e.answers))
	for k, v := range e.answers {
		out[k] = v
	}
	return out
}

// Advance records the answer for stepID and returns the next step id.
// stepID must be the current step. The save for a Persist step completes
// before the transition is returned, but a save failure never stops the
// flow; it is logged and the user moves on.
func (e *Engine) Advance(ctx context.Context, stepID string, ans Answer) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.done {
		return StateCompleted, nil
	}
	if _, ok := e.index[stepID]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStep, stepID)
	}

	step := e.steps[e.current]
	if step.ID != stepID {
		return "", fmt.Errorf("%w: got %q, expected %q", ErrOutOfOrder, stepID, step.ID)
	}

	if err := validate(step, ans); err != nil {
		return "", err
	}

	e.answers[step.ID] = ans

	if step.Persist && e.saver != nil {
		if err := e.saver(ctx, step.ID, ans); err != nil {
			log.Printf("flow: failed to save answer for %s: %v", step.ID, err)
		}
	}

	if e.current == len(e.steps)-1 {
		e.done = true
		if e.completer != nil {
			if err := e.completer(ctx, e.copyAnswersLocked()); err != nil {
				log.Printf("flow: completion write failed: %v", err)
			}
		}
		return StateCompleted, nil
	}

	e.current++
	return e.steps[e.current].ID, nil
}

func (e *Engine) copyAnswersLocked() map[string]Answer {
	out := make(map[string]Answer, len(e.answers))
	for k, v := range e.answers {
		out[k] = v
	}
	return out
}

// validate enforces the continue gate: single-select needs one choice,
// multi-select at least one, free text must be non-blank after trimming,
// numeric must be present.
func validate(step Step, ans Answer) error {
	if !step.Required {
		return nil
	}
	switch step.Kind {
	case KindSingle:
		if ans.Choice == "" {
			return fmt.Errorf("%w: %s", ErrAnswerRequired, step.ID)
		}
	case KindMulti:
		if len(ans.Choices) == 0 {
			return fmt.Errorf("%w: %s", ErrAnswerRequired, step.ID)
		}
	case KindText:
		if strings.TrimSpace(ans.Text) == "" {
			return fmt.Errorf("%w: %s", ErrAnswerRequired, step.ID)
		}
	case KindNumeric:
		if ans.Number == nil {
			return fmt.Errorf("%w: %s", ErrAnswerRequired, step.ID)
		}
	}
	return nil
}
