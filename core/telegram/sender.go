package telegram

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"shelfbot/core/logger"
)

var (
	// ErrQueueClosed is returned when enqueue is attempted after Close.
	ErrQueueClosed = errors.New("telegram sender: queue closed")
	// ErrQueueFull indicates the queue is saturated and the job was not accepted.
	ErrQueueFull = errors.New("telegram sender: queue full")
)

// SenderOptions control the outbound dispatch queue.
type SenderOptions struct {
	QueueSize int
	Workers   int
}

type sendJob struct {
	ctx context.Context
	run func() error
}

// Sender executes outbound Telegram calls on a worker pool, so conversation
// handling never waits on a slow network send.
type Sender struct {
	jobs chan sendJob
	stop chan struct{}
	once sync.Once
	wg   sync.WaitGroup
	errs atomic.Uint64
}

// NewSender starts a sender with sane defaults if options are zeroed.
func NewSender(opts SenderOptions) *Sender {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 256
	}
	if opts.Workers <= 0 {
		opts.Workers = 4
	}

	s := &Sender{
		jobs: make(chan sendJob, opts.QueueSize),
		stop: make(chan struct{}),
	}
	s.wg.Add(opts.Workers)
	for i := 0; i < opts.Workers; i++ {
		go s.worker()
	}
	return s
}

// Enqueue schedules the provided send for asynchronous execution.
func (s *Sender) Enqueue(ctx context.Context, run func() error) error {
	if run == nil {
		return errors.New("telegram sender: nil run function")
	}
	select {
	case <-s.stop:
		return ErrQueueClosed
	default:
	}

	select {
	case s.jobs <- sendJob{ctx: ctx, run: run}:
		return nil
	default:
		return ErrQueueFull
	}
}

// ErrorCount returns the number of failed sends.
func (s *Sender) ErrorCount() uint64 {
	return s.errs.Load()
}

// Close stops the workers after draining queued jobs.
func (s *Sender) Close() {
	s.once.Do(func() {
		close(s.stop)
		close(s.jobs)
		s.wg.Wait()
	})
}

func (s *Sender) worker() {
	defer s.wg.Done()
	for j := range s.jobs {
		if err := j.ctx.Err(); err != nil {
			continue
		}
		if err := j.run(); err != nil {
			s.errs.Add(1)
			logger.TG.Warn("send failed",
				slog.String("event", "send.fail"),
				slog.String("err", err.Error()),
			)
		}
	}
}
