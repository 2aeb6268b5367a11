// Package scheduler runs the daily billing jobs on a cron clock in the
// billing timezone.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"voice_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

var (
	ErrUnknownJob   = errors.New("unknown scheduler job")
	ErrDuplicateJob = errors.New("scheduler job already registered")
	ErrJobLocked    = errors.New("scheduler job is running elsewhere")
)

// JobFunc is the body of a scheduled job.
type JobFunc func(ctx context.Context) error

type JobStatus struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Schedule  string     `json:"schedule"`
	NextRun   *time.Time `json:"next_run_time,omitempty"`
	LastRun   *time.Time `json:"last_run_time,omitempty"`
	LastError string     `json:"last_error,omitempty"`
}

type Status struct {
	Running  bool        `json:"running"`
	Timezone string      `json:"timezone"`
	Jobs     []JobStatus `json:"jobs"`
}

type job struct {
	id      string
	name    string
	spec    string
	fn      JobFunc
	entryID cron.EntryID

	lastRun time.Time
	lastErr string
}

// Scheduler owns a cron instance and its jobs. Every run takes a lock first
// so only one replica executes a job at a time.
type Scheduler struct {
	mu      sync.Mutex
	cron    *cron.Cron
	loc     *time.Location
	locker  interfaces.ILocker
	lockTTL time.Duration
	jobs    map[string]*job
	running bool
	now     func() time.Time
}

func New(loc *time.Location, locker interfaces.ILocker, lockTTL time.Duration) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	if lockTTL <= 0 {
		lockTTL = 10 * time.Minute
	}
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		loc:     loc,
		locker:  locker,
		lockTTL: lockTTL,
		jobs:    map[string]*job{},
		now:     time.Now,
	}
}

// Register adds a job under a unique id. spec is a standard five-field cron
// expression evaluated in the scheduler's location.
func (s *Scheduler) Register(id, name, spec string, fn JobFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateJob, id)
	}
	j := &job{id: id, name: name, spec: spec, fn: fn}
	entryID, err := s.cron.AddFunc(spec, func() {
		if err := s.run(context.Background(), j); err != nil && !errors.Is(err, ErrJobLocked) {
			log.Error().Err(err).Str("job", id).Msg("[scheduler][cron] job failed")
		}
	})
	if err != nil {
		return fmt.Errorf("job %s: invalid schedule %q: %w", id, spec, err)
	}
	j.entryID = entryID
	s.jobs[id] = j
	return nil
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.cron.Start()
	s.running = true
	log.Info().Str("timezone", s.loc.String()).Int("jobs", len(s.jobs)).Msg("[scheduler][cron] started")
}

// Stop prevents new runs and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	done := s.cron.Stop()
	s.mu.Unlock()

	select {
	case <-done.Done():
		log.Info().Msg("[scheduler][cron] stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunNow executes a job immediately, still honouring the lock.
func (s *Scheduler) RunNow(ctx context.Context, id string) error {
	s.mu.Lock()
	j, ok := s.jobs[id]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJob, id)
	}
	return s.run(ctx, j)
}

// RunAll executes every job once in id order. Used for run-on-startup.
func (s *Scheduler) RunAll(ctx context.Context) error {
	s.mu.Lock()
	ids := make([]string, 0, len(s.jobs))
	for id := range s.jobs {
		ids = append(ids, id)
	}
	s.mu.Unlock()
	sort.Strings(ids)

	var errs []error
	for _, id := range ids {
		if err := s.RunNow(ctx, id); err != nil && !errors.Is(err, ErrJobLocked) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{Running: s.running, Timezone: s.loc.String(), Jobs: make([]JobStatus, 0, len(s.jobs))}
	for _, j := range s.jobs {
		js := JobStatus{ID: j.id, Name: j.name, Schedule: j.spec, LastError: j.lastErr}
		if s.running {
			if next := s.cron.Entry(j.entryID).Next; !next.IsZero() {
				next = next.In(s.loc)
				js.NextRun = &next
			}
		}
		if !j.lastRun.IsZero() {
			last := j.lastRun
			js.LastRun = &last
		}
		st.Jobs = append(st.Jobs, js)
	}
	sort.Slice(st.Jobs, func(a, b int) bool { return st.Jobs[a].ID < st.Jobs[b].ID })
	return st
}

func (s *Scheduler) run(ctx context.Context, j *job) error {
	runID := uuid.NewString()
	logger := log.With().Str("job", j.id).Str("run_id", runID).Logger()
	ctx = logger.WithContext(ctx)

	release, ok, err := s.locker.TryLock(ctx, j.id, s.lockTTL)
	if err != nil {
		s.record(j, err)
		return fmt.Errorf("job %s: acquire lock: %w", j.id, err)
	}
	if !ok {
		logger.Info().Msg("[scheduler][job] skipped, lock held elsewhere")
		return ErrJobLocked
	}
	defer func() {
		if err := release(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("[scheduler][job] lock release failed")
		}
	}()

	started := s.now()
	logger.Info().Msg("[scheduler][job] start")
	err = j.fn(ctx)
	s.record(j, err)
	if err != nil {
		logger.Error().Err(err).Dur("took", s.now().Sub(started)).Msg("[scheduler][job] failed")
		return err
	}
	logger.Info().Dur("took", s.now().Sub(started)).Msg("[scheduler][job] done")
	return nil
}

func (s *Scheduler) record(j *job, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j.lastRun = s.now()
	j.lastErr = ""
	if err != nil {
		j.lastErr = err.Error()
	}
}
