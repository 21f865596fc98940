package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"streamsched/internal/models"
	"streamsched/internal/providers"
	"streamsched/internal/settings"
	"streamsched/internal/settings/interfaces"
	"streamsched/internal/structures"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/atomic"
)

var (
	// ErrConfirmationRequired is returned for a destructive operation that
	// was not confirmed. Nothing is applied.
	ErrConfirmationRequired = errors.New("confirmation required")
	// ErrStoreUnavailable wraps every failed load or save.
	ErrStoreUnavailable = settings.ErrUnavailable
)

const (
	MessageLoadFailed = "Could not load the stream schedule from the settings store. Showing the built-in schedule."
	MessageLoadEmpty  = "No stream schedule stored yet. Showing the built-in schedule."
	MessageSaved      = "Schedule saved."
	MessageLoaded     = "Schedule loaded."

	publicCachePrefix = "schedule:public:"
)

type SyncOp string

const (
	OpLoad SyncOp = "load"
	OpSave SyncOp = "save"
)

// SyncResult is the outcome of one store round trip.
type SyncResult struct {
	Op        SyncOp        `json:"op"`
	OK        bool          `json:"ok"`
	Reachable bool          `json:"reachable"`
	Err       error         `json:"-"`
	Message   string        `json:"message,omitempty"`
	At        time.Time     `json:"at"`
	Duration  time.Duration `json:"durationNs"`
}

// State is a consistent snapshot of the sync bookkeeping.
type State struct {
	Dirty          bool        `json:"dirty"`
	StoreReachable bool        `json:"storeReachable"`
	Banner         string      `json:"banner,omitempty"`
	Revision       uint64      `json:"revision"`
	Days           int         `json:"days"`
	Streams        int         `json:"streams"`
	LastLoad       *SyncResult `json:"lastLoad,omitempty"`
	LastSave       *SyncResult `json:"lastSave,omitempty"`
}

// MutateFunc transforms a schedule the way the models.Mutator methods do.
type MutateFunc func(models.Schedule) (models.Schedule, bool, error)

type ScheduleServiceInterface interface {
	Load(ctx context.Context) SyncResult
	Save(ctx context.Context) SyncResult
	Schedule() models.Schedule
	Published() (models.Schedule, uint64)
	PublicCacheKey(version uint64) string
	State() State
	Dirty() bool
	StoreReachable() bool
	Mutator() models.Mutator
	Apply(fn MutateFunc) (models.Schedule, bool, error)
	AddStream(w models.Weekday, entry models.StreamEntry) (models.Schedule, bool, error)
	EditStream(orig models.Weekday, index int, entry models.StreamEntry, newW models.Weekday) (models.Schedule, bool, error)
	DeleteStream(w models.Weekday, index int, confirmed bool) (models.Schedule, bool, error)
	Reset(confirmed bool) (models.Schedule, error)
}

// ScheduleService owns the working schedule and keeps it in sync with the
// settings store. Mutations are serialized by mu; store I/O runs without it.
type ScheduleService struct {
	mu        sync.Mutex
	working   models.Schedule
	published models.Schedule
	pubVer    uint64
	dirty     bool
	revision  uint64
	lastLoad  *SyncResult
	lastSave  *SyncResult
	reachable *atomic.Bool

	store   interfaces.StoreInterface
	key     string
	timeout time.Duration
	mutator models.Mutator
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	cache   providers.CacheProviderInterface
}

// NewScheduleService starts from the built-in default schedule. Call Load to
// pick up the stored one.
func NewScheduleService(conf *structures.Config, store interfaces.StoreInterface, logger providers.Logger, metrics providers.MetricsProviderInterface, cache providers.CacheProviderInterface) ScheduleServiceInterface {
	key := conf.Store.Key
	if key == "" {
		key = providers.DefaultStoreKey
	}
	def := models.DefaultSchedule()
	s := &ScheduleService{
		working:   def,
		published: def,
		reachable: atomic.NewBool(false),
		store:     store,
		key:       key,
		timeout:   conf.Store.Timeout,
		mutator:   models.NewMutator(policyFromConfig(conf.Schedule.EmptyDay, logger)),
		logger:    logger,
		metrics:   metrics,
		cache:     cache,
	}
	metrics.SetStreamsTotal(def.TotalStreamCount())
	metrics.SetDirty(false)
	metrics.SetStoreReachable(false)
	return s
}

func policyFromConfig(c structures.EmptyDayConfig, logger providers.Logger) models.Policy {
	policy := models.DefaultPolicy
	if c.OnDelete != "" {
		if p, err := models.ParseEmptyDayPolicy(c.OnDelete); err == nil {
			policy.OnDelete = p
		} else {
			logger.Warnf(providers.TypeApp, "schedule.emptyDay.onDelete: %v, using %s", err, policy.OnDelete)
		}
	}
	if c.OnMove != "" {
		if p, err := models.ParseEmptyDayPolicy(c.OnMove); err == nil {
			policy.OnMove = p
		} else {
			logger.Warnf(providers.TypeApp, "schedule.emptyDay.onMove: %v, using %s", err, policy.OnMove)
		}
	}
	return policy
}

func (s *ScheduleService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func unavailable(err error) error {
	if errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}

// Load fetches the stored schedule. A non-empty stored schedule replaces the
// working copy; anything else keeps it and marks the store unreachable.
func (s *ScheduleService) Load(ctx context.Context) SyncResult {
	s.mu.Lock()
	rev := s.revision
	s.mu.Unlock()

	start := time.Now()
	ctx, cancel := s.withTimeout(ctx)
	raw, found, err := s.store.Get(ctx, s.key)
	cancel()
	elapsed := time.Since(start)
	s.metrics.ObserveStoreDuration(string(OpLoad), elapsed)

	res := SyncResult{Op: OpLoad, At: start, Duration: elapsed}
	var loaded models.Schedule
	switch {
	case err != nil:
		res.Err = unavailable(err)
		res.Message = MessageLoadFailed
		s.logger.Warnf(providers.TypeStore, "Load %s failed: %v", s.key, err)
	case !found:
		res.Err = fmt.Errorf("%w: %s is not set", ErrStoreUnavailable, s.key)
		res.Message = MessageLoadEmpty
		s.logger.Infof(providers.TypeStore, "Load %s: no stored value", s.key)
	default:
		var normalized bool
		loaded, normalized, err = models.DecodeSchedule(raw)
		if err != nil {
			res.Err = unavailable(err)
			res.Message = MessageLoadFailed
			s.logger.Errorf(providers.TypeStore, "Load %s: undecodable value: %v", s.key, err)
			break
		}
		if loaded.IsEmpty() {
			res.Err = fmt.Errorf("%w: %s holds an empty schedule", ErrStoreUnavailable, s.key)
			res.Message = MessageLoadEmpty
			s.logger.Infof(providers.TypeStore, "Load %s: stored schedule is empty", s.key)
			break
		}
		if normalized {
			s.logger.Warnf(providers.TypeStore, "Load %s: stored schedule was not canonical and has been normalized", s.key)
		}
		res.OK = true
		res.Reachable = true
		res.Message = MessageLoaded
	}

	if !res.OK {
		s.metrics.IncStoreFailures(string(OpLoad))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if res.OK {
		if s.revision == rev {
			s.working = loaded
			s.setDirty(false)
		} else {
			s.logger.Warnf(providers.TypeStore, "Load %s: working schedule changed during load, keeping local edits", s.key)
		}
		s.publish(loaded)
		s.metrics.SetStreamsTotal(s.working.TotalStreamCount())
	}
	s.setReachable(res.OK)
	s.lastLoad = &res
	return res
}

// Save writes a snapshot of the working schedule. dirty is cleared only when
// no mutation happened while the write was in flight.
func (s *ScheduleService) Save(ctx context.Context) SyncResult {
	s.mu.Lock()
	snapshot := s.working
	rev := s.revision
	s.mu.Unlock()

	start := time.Now()
	res := SyncResult{Op: OpSave, At: start}

	data, err := json.Marshal(snapshot)
	if err == nil {
		ctx, cancel := s.withTimeout(ctx)
		err = s.store.Save(ctx, s.key, data)
		cancel()
	}
	res.Duration = time.Since(start)
	s.metrics.ObserveStoreDuration(string(OpSave), res.Duration)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		res.Err = unavailable(err)
		res.Message = fmt.Sprintf("Could not save the stream schedule: %v", err)
		s.metrics.IncStoreFailures(string(OpSave))
		s.logger.Errorf(providers.TypeStore, "Save %s failed: %v", s.key, err)
		s.setReachable(false)
		s.lastSave = &res
		return res
	}

	res.OK = true
	res.Reachable = true
	res.Message = MessageSaved
	if s.revision == rev {
		s.setDirty(false)
	}
	s.publish(snapshot)
	s.setReachable(true)
	s.lastSave = &res
	s.logger.Infof(providers.TypeStore, "Saved %s: %d days, %d streams in %s", s.key, snapshot.Len(), snapshot.TotalStreamCount(), res.Duration)
	return res
}

func (s *ScheduleService) setDirty(dirty bool) {
	s.dirty = dirty
	s.metrics.SetDirty(dirty)
}

func (s *ScheduleService) setReachable(reachable bool) {
	s.reachable.Store(reachable)
	s.metrics.SetStoreReachable(reachable)
}

// publish must be called with mu held.
func (s *ScheduleService) publish(sched models.Schedule) {
	s.cache.Del(s.PublicCacheKey(s.pubVer))
	s.published = sched
	s.pubVer++
}

func (s *ScheduleService) Schedule() models.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.working
}

// Published returns the last synchronized schedule and its version. The
// version changes on every successful load or save.
func (s *ScheduleService) Published() (models.Schedule, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.published, s.pubVer
}

func (s *ScheduleService) PublicCacheKey(version uint64) string {
	return publicCachePrefix + strconv.FormatUint(version, 10)
}

func (s *ScheduleService) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func (s *ScheduleService) StoreReachable() bool {
	return s.reachable.Load()
}

func (s *ScheduleService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{
		Dirty:          s.dirty,
		StoreReachable: s.reachable.Load(),
		Revision:       s.revision,
		Days:           s.working.Len(),
		Streams:        s.working.TotalStreamCount(),
	}
	if s.lastLoad != nil {
		r := *s.lastLoad
		st.LastLoad = &r
	}
	if s.lastSave != nil {
		r := *s.lastSave
		st.LastSave = &r
	}
	if !st.StoreReachable {
		st.Banner = s.bannerLocked()
	}
	return st
}

// bannerLocked picks the message of the most recent failed round trip.
func (s *ScheduleService) bannerLocked() string {
	var latest *SyncResult
	for _, r := range []*SyncResult{s.lastLoad, s.lastSave} {
		if r == nil || r.OK {
			continue
		}
		if latest == nil || r.At.After(latest.At) {
			latest = r
		}
	}
	if latest == nil {
		return MessageLoadFailed
	}
	return latest.Message
}

func (s *ScheduleService) Mutator() models.Mutator {
	return s.mutator
}

// Apply runs fn against the working schedule under the service lock and
// adopts its result when it reports a change.
func (s *ScheduleService) Apply(fn MutateFunc) (models.Schedule, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(fn)
}

func (s *ScheduleService) applyLocked(fn MutateFunc) (models.Schedule, bool, error) {
	next, changed, err := fn(s.working)
	if err != nil {
		return s.working, false, err
	}
	if !changed {
		return s.working, false, nil
	}
	s.working = next
	s.revision++
	s.setDirty(true)
	s.metrics.SetStreamsTotal(next.TotalStreamCount())
	return next, true, nil
}

func (s *ScheduleService) AddStream(w models.Weekday, entry models.StreamEntry) (models.Schedule, bool, error) {
	return s.Apply(func(cur models.Schedule) (models.Schedule, bool, error) {
		return s.mutator.AddStream(cur, w, entry)
	})
}

func (s *ScheduleService) EditStream(orig models.Weekday, index int, entry models.StreamEntry, newW models.Weekday) (models.Schedule, bool, error) {
	return s.Apply(func(cur models.Schedule) (models.Schedule, bool, error) {
		return s.mutator.EditStream(cur, orig, index, entry, newW)
	})
}

// DeleteStream removes one entry. Removing the last real stream of a day
// needs confirmed.
func (s *ScheduleService) DeleteStream(w models.Weekday, index int, confirmed bool) (models.Schedule, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !confirmed && s.working.WouldEmptyDay(w, index) {
		return s.working, false, fmt.Errorf("%w: deleting the last stream of %s", ErrConfirmationRequired, w)
	}
	return s.applyLocked(func(cur models.Schedule) (models.Schedule, bool, error) {
		return s.mutator.DeleteStream(cur, w, index)
	})
}

// Reset replaces the working schedule with the built-in default and always
// marks it dirty.
func (s *ScheduleService) Reset(confirmed bool) (models.Schedule, error) {
	if !confirmed {
		return s.Schedule(), fmt.Errorf("%w: reset to the default schedule", ErrConfirmationRequired)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next, _, err := s.applyLocked(func(models.Schedule) (models.Schedule, bool, error) {
		return s.mutator.ResetToDefault(), true, nil
	})
	s.logger.Infof(providers.TypeApp, "Schedule reset to default")
	return next, err
}
