package decode

import (
	"context"
	"image"
	"log/slog"
	"time"

	"github.com/rxscan/rxscan/internal/barcode"
	"github.com/rxscan/rxscan/internal/common"
	"github.com/rxscan/rxscan/internal/preprocess"
	"github.com/rxscan/rxscan/internal/utils"
)

// Event describes one finished strategy attempt. Observers receive
// events in strict strategy order.
type Event struct {
	Strategy string
	Index    int // 0-based position in the cascade
	Total    int
	Valid    bool
	Err      error
	Elapsed  time.Duration
}

// Observer is notified after each attempt; used for progress
// streaming and metrics.
type Observer func(Event)

// Pipeline runs the strategy cascade against a source image. Each
// attempt derives its own buffer from the original, so no state is
// shared between attempts.
type Pipeline struct {
	backend    barcode.Backend
	strategies []Strategy
	observer   Observer
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithStrategies overrides the default cascade (tests only; the
// production order is fixed).
func WithStrategies(strategies []Strategy) Option {
	return func(p *Pipeline) {
		if len(strategies) > 0 {
			p.strategies = strategies
		}
	}
}

// WithObserver registers a per-attempt callback.
func WithObserver(fn Observer) Option {
	return func(p *Pipeline) { p.observer = fn }
}

// WithLogger overrides the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// New builds a pipeline around the given backend using the default
// strategy cascade.
func New(backend barcode.Backend, cfg Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		backend:    backend,
		strategies: DefaultStrategies(cfg),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// DecodeBytes decodes an in-memory image and runs the cascade.
// An undecodable source image is a ProcessingError, distinct from
// ErrNoSymbol.
func (p *Pipeline) DecodeBytes(ctx context.Context, data []byte) (Outcome, error) {
	img, _, err := utils.DecodeImageBytes(data)
	if err != nil {
		return Outcome{}, &ProcessingError{Stage: "read-image", Err: err}
	}
	return p.Decode(ctx, img)
}

// DecodeFile loads an image file and runs the cascade.
func (p *Pipeline) DecodeFile(ctx context.Context, path string) (Outcome, error) {
	img, _, err := utils.LoadImage(path)
	if err != nil {
		return Outcome{}, &ProcessingError{Stage: "read-image", Err: err}
	}
	return p.Decode(ctx, img)
}

// Decode evaluates the strategies strictly in order and returns the
// first valid decode. Per-attempt backend failures advance to the
// next strategy; only source-image problems abort early. When no
// strategy succeeds the outcome is Exhausted and the error is
// ErrNoSymbol.
func (p *Pipeline) Decode(ctx context.Context, img image.Image) (Outcome, error) {
	out := Outcome{State: StatePending}
	total := len(p.strategies)

	for i, st := range p.strategies {
		out.Attempts = i + 1

		timer := common.NewNamedTimer(st.Name)
		results, err := p.attempt(ctx, img, st)
		elapsed := timer.Stop()

		if err != nil {
			// Engine gave up or the recipe failed; a normal miss.
			p.logger.Debug("decode attempt failed",
				"strategy", st.Name, "error", err, timer.Attr())
			p.observe(Event{Strategy: st.Name, Index: i, Total: total, Err: err, Elapsed: elapsed})
			continue
		}

		if text, ok := firstValid(results); ok {
			out.State = StateSucceeded
			out.Payload = text
			out.Strategy = st.Name
			p.logger.Info("decode succeeded",
				"strategy", st.Name, "attempts", out.Attempts, timer.Attr())
			p.observe(Event{Strategy: st.Name, Index: i, Total: total, Valid: true, Elapsed: elapsed})
			return out, nil
		}

		p.logger.Debug("decode attempt yielded no valid symbol",
			"strategy", st.Name, "results", len(results), timer.Attr())
		p.observe(Event{Strategy: st.Name, Index: i, Total: total, Elapsed: elapsed})
	}

	out.State = StateExhausted
	p.logger.Info("decode exhausted all strategies", "attempts", out.Attempts)
	return out, ErrNoSymbol
}

// attempt derives this strategy's image from the original and invokes
// the backend.
func (p *Pipeline) attempt(ctx context.Context, img image.Image, st Strategy) ([]barcode.Result, error) {
	derived := img
	if st.Recipe != nil {
		var err error
		derived, err = preprocess.Apply(img, *st.Recipe)
		if err != nil {
			return nil, err
		}
	}
	if st.Rotation != 0 {
		derived = preprocess.Rotate(derived, st.Rotation)
	}
	return p.backend.Decode(ctx, derived, st.Opts)
}

func (p *Pipeline) observe(ev Event) {
	if p.observer != nil {
		p.observer(ev)
	}
}

// firstValid filters backend results and returns the first usable
// payload text.
func firstValid(results []barcode.Result) (string, bool) {
	for _, r := range results {
		if r.Valid() {
			return r.Text, true
		}
	}
	return "", false
}
