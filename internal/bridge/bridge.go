package bridge

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/nerrad567/solbridge/internal/infrastructure/logging"
	"github.com/nerrad567/solbridge/internal/inverter"
)

// Fetcher retrieves one raw telemetry document from the inverter.
// Implementations must bound the call with their own timeout so a hung
// network call cannot stall the loop.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// Publisher delivers one plain-text message to an MQTT topic.
// A lost broker connection must surface as an error from PublishString,
// never as a panic or a blocked call.
type Publisher interface {
	PublishString(topic, payload string) error
}

// Recorder is the optional time-series sink for numeric measurements.
// Writes are fire-and-forget; a failing recorder never affects the cycle.
type Recorder interface {
	WriteMeasurement(serial, measurementType, unit string, value float64)
}

// Options configures a Bridge.
type Options struct {
	// Fetcher retrieves telemetry documents. Required.
	Fetcher Fetcher

	// Publisher delivers measurement messages. Required.
	Publisher Publisher

	// Recorder is the optional InfluxDB sink. May be nil.
	Recorder Recorder

	// Logger for cycle and publish logging. Defaults to logging.Default().
	Logger *logging.Logger

	// PollInterval is how long to sleep after each completed cycle.
	PollInterval time.Duration

	// MaxErrors is the consecutive fetch/decode failure ceiling.
	MaxErrors int
}

// Bridge drives the fetch→decode→publish loop and accounts for
// consecutive cycle failures.
//
// Cycles execute strictly sequentially: cycle N+1 does not begin until
// cycle N, including all of its publish attempts, has completed. The
// error counter is owned exclusively by the loop, so no locking is
// needed.
//
// Failure semantics:
//   - A fetch or decode failure is one cycle failure and increments the
//     consecutive error counter.
//   - Any successful cycle resets the counter to zero; the ceiling counts
//     consecutive failures, not lifetime totals.
//   - A publish failure for an individual measurement is logged and
//     skipped. It neither aborts the remaining measurements in the cycle
//     nor counts toward the ceiling.
//   - When the counter reaches MaxErrors, Run returns ErrTooManyErrors
//     and the process exits non-zero.
type Bridge struct {
	fetcher   Fetcher
	publisher Publisher
	recorder  Recorder
	logger    *logging.Logger

	pollInterval time.Duration
	maxErrors    int

	// errorCount is the number of consecutive failed cycles.
	// Touched only by Run's single flow.
	errorCount int
}

// New creates a Bridge from the given options.
//
// Returns:
//   - *Bridge: ready to Run
//   - error: if a required collaborator or bound is missing
func New(opts Options) (*Bridge, error) {
	if opts.Fetcher == nil {
		return nil, fmt.Errorf("%w: fetcher is required", ErrInvalidOptions)
	}
	if opts.Publisher == nil {
		return nil, fmt.Errorf("%w: publisher is required", ErrInvalidOptions)
	}
	if opts.PollInterval <= 0 {
		return nil, fmt.Errorf("%w: poll interval must be positive", ErrInvalidOptions)
	}
	if opts.MaxErrors < 1 {
		return nil, fmt.Errorf("%w: max errors must be at least 1", ErrInvalidOptions)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Bridge{
		fetcher:      opts.Fetcher,
		publisher:    opts.Publisher,
		recorder:     opts.Recorder,
		logger:       logger.With("component", "bridge"),
		pollInterval: opts.PollInterval,
		maxErrors:    opts.MaxErrors,
	}, nil
}

// Run executes poll cycles until the context is cancelled or the
// consecutive error ceiling is reached.
//
// Returns:
//   - nil: on context cancellation (graceful shutdown)
//   - ErrTooManyErrors: when MaxErrors consecutive cycles have failed
func (b *Bridge) Run(ctx context.Context) error {
	b.logger.Info("poll loop started",
		"poll_interval", b.pollInterval,
		"max_errors", b.maxErrors,
	)

	for {
		err := b.RunCycle(ctx)

		// A cycle aborted by shutdown is not a telemetry failure.
		if ctx.Err() != nil {
			b.logger.Info("poll loop stopping")
			return nil
		}

		if err != nil {
			b.errorCount++
			b.logger.Error("cycle failed",
				"error", err,
				"consecutive_errors", b.errorCount,
				"max_errors", b.maxErrors,
			)
			if b.errorCount >= b.maxErrors {
				b.logger.Error("consecutive error ceiling reached, terminating",
					"consecutive_errors", b.errorCount,
				)
				return fmt.Errorf("%w: %d consecutive cycle failures", ErrTooManyErrors, b.errorCount)
			}
		} else {
			b.errorCount = 0
		}

		// Fixed sleep after the cycle completes; cycle duration is not
		// subtracted from the interval.
		select {
		case <-ctx.Done():
			b.logger.Info("poll loop stopping")
			return nil
		case <-time.After(b.pollInterval):
		}
	}
}

// RunCycle executes exactly one fetch→decode→publish pass.
//
// It does not touch the consecutive error counter; Run owns that state.
// A returned error means the cycle failed as a whole (fetch or decode).
// Publish failures for individual measurements are logged and skipped.
func (b *Bridge) RunCycle(ctx context.Context) error {
	data, err := b.fetcher.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetching document: %w", err)
	}

	reading, err := inverter.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}

	serial := reading.Device.Serial
	published := 0
	skipped := 0
	failed := 0

	for _, m := range reading.Measurements {
		// A measurement without a value has nothing to publish.
		if m.Value == "" {
			skipped++
			continue
		}

		topic := inverter.TopicFor(serial, m.Type)
		payload := inverter.PayloadFor(m.Value, m.Unit)

		if pubErr := b.publisher.PublishString(topic, payload); pubErr != nil {
			failed++
			b.logger.Warn("publish failed",
				"topic", topic,
				"error", pubErr,
			)
			continue
		}
		published++
		b.logger.Debug("published", "topic", topic, "payload", payload)

		b.record(serial, m)
	}

	b.logger.Info("cycle complete",
		"device", reading.Device.Name,
		"serial", serial,
		"published", published,
		"skipped", skipped,
		"publish_failures", failed,
	)

	return nil
}

// record forwards a numeric measurement to the time-series sink.
// Non-numeric values (status strings, etc.) are published to MQTT only.
func (b *Bridge) record(serial string, m inverter.Measurement) {
	if b.recorder == nil {
		return
	}
	value, err := strconv.ParseFloat(m.Value, 64)
	if err != nil {
		return
	}
	b.recorder.WriteMeasurement(serial, m.Type, m.Unit, value)
}

// ConsecutiveErrors returns the current consecutive failure count.
// Only meaningful between cycles; Run is the sole writer.
func (b *Bridge) ConsecutiveErrors() int {
	return b.errorCount
}
