package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/sanhariharan/invesplannner/domain"
)

// TextModel is a loaded text-generation model. Implementations must be safe
// for concurrent use.
type TextModel interface {
	Generate(ctx context.Context, prompt string, maxLength int, temperature float32) (string, error)
}

// ModelLoader creates a TextModel. It may be slow; LazyModel calls it at most
// once per initialisation attempt.
type ModelLoader func(ctx context.Context) (TextModel, error)

type ModelState int

const (
	ModelUninitialized ModelState = iota
	ModelInitializing
	ModelReady
	ModelFailed
)

func (s ModelState) String() string {
	switch s {
	case ModelUninitialized:
		return "uninitialized"
	case ModelInitializing:
		return "initializing"
	case ModelReady:
		return "ready"
	case ModelFailed:
		return "failed"
	}
	return "unknown"
}

type initAttempt struct {
	done  chan struct{}
	model TextModel
	err   error
}

// LazyModel loads a TextModel on first use and shares it afterwards. Callers
// arriving while a load is in flight wait for that same load. A failed load is
// retried by the next caller.
type LazyModel struct {
	load        ModelLoader
	initTimeout time.Duration
	log         zerolog.Logger

	mu      sync.Mutex
	state   ModelState
	model   TextModel
	attempt *initAttempt
}

func NewLazyModel(load ModelLoader, initTimeout time.Duration, log zerolog.Logger) *LazyModel {
	return &LazyModel{
		load:        load,
		initTimeout: initTimeout,
		log:         log.With().Str("component", "model").Logger(),
	}
}

func (m *LazyModel) State() ModelState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Get returns the ready model, starting or joining its initialisation. The
// load itself is not cancelled when ctx is; only this caller stops waiting.
func (m *LazyModel) Get(ctx context.Context) (TextModel, error) {
	m.mu.Lock()
	switch m.state {
	case ModelReady:
		model := m.model
		m.mu.Unlock()
		return model, nil
	case ModelUninitialized, ModelFailed:
		m.state = ModelInitializing
		m.attempt = &initAttempt{done: make(chan struct{})}
		go m.initialize(context.WithoutCancel(ctx), m.attempt)
	}
	attempt := m.attempt
	m.mu.Unlock()

	select {
	case <-attempt.done:
		return attempt.model, attempt.err
	case <-ctx.Done():
		return nil, &domain.CapabilityError{Op: "initialize", Err: ctx.Err()}
	}
}

func (m *LazyModel) initialize(ctx context.Context, attempt *initAttempt) {
	if m.initTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.initTimeout)
		defer cancel()
	}

	start := time.Now()
	model, err := m.load(ctx)
	if err == nil && model == nil {
		err = domain.ErrModelNotConfigured
	}

	m.mu.Lock()
	if err != nil {
		m.state = ModelFailed
		attempt.err = &domain.CapabilityError{Op: "initialize", Err: err}
		m.log.Warn().Err(err).Msg("text model initialization failed")
	} else {
		m.state = ModelReady
		m.model = model
		attempt.model = model
		m.log.Info().Dur("took", time.Since(start)).Msg("text model ready")
	}
	m.mu.Unlock()

	close(attempt.done)
}
