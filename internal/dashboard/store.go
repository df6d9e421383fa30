// Package dashboard owns the authoritative in-memory view state: the leave
// request collection, the load/error lifecycle, and the derived
// filtered+sorted projection consumed by presentation code.
package dashboard

import (
	"context"
	"net/http"
	"sync"

	"github.com/GFDaniel/Leave-Request-Dashboard/internal/domain"
	"github.com/GFDaniel/Leave-Request-Dashboard/internal/query"
	"github.com/GFDaniel/Leave-Request-Dashboard/internal/remote"
	"github.com/GFDaniel/Leave-Request-Dashboard/internal/shared/apperror"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrAlreadyResolved rejects a status transition on a request that is no
// longer Pending. Approved and Rejected are final.
var ErrAlreadyResolved = apperror.New(
	apperror.CodeInvalidState,
	"leave request already resolved",
	http.StatusConflict,
)

// Snapshot is the read model handed to presentation collaborators.
type Snapshot struct {
	Requests    []domain.LeaveRequest
	Filtered    []domain.LeaveRequest
	Loading     bool
	Err         string
	Filters     domain.FilterOptions
	SortOptions domain.SortOptions
}

// Store holds the dashboard state. Entities enter the collection only as
// confirmed adapter responses, never speculatively, and every mutation is a
// whole-entity replace keyed by id. Overlapping mutations on the same id
// are last-write-wins; the remote store is the source of truth.
type Store struct {
	svc    remote.Service
	logger *zap.Logger

	mu       sync.RWMutex
	requests []domain.LeaveRequest
	loading  bool
	lastErr  string
	filters  domain.FilterOptions
	sortOpts domain.SortOptions

	loadGroup singleflight.Group
}

// NewStore builds the store and runs the initial Load before returning. A
// failed first load leaves an empty collection and the error state set.
func NewStore(ctx context.Context, svc remote.Service, logger ...*zap.Logger) *Store {
	l := zap.L().Named("dashboard.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.store")
	}
	s := &Store{
		svc:      svc,
		logger:   l,
		sortOpts: domain.DefaultSortOptions(),
	}
	s.Load(ctx)
	return s
}

// Load replaces the whole collection with a fresh fetch. On failure the
// collection stays untouched and the error state carries the safe message;
// the error is never returned to the caller. Concurrent refreshes collapse
// into a single fetch.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	result, err, shared := s.loadGroup.Do("load", func() (any, error) {
		return s.svc.List(ctx)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = apperror.SafeMessage(err)
		s.logger.Warn("load leave requests failed", zap.Error(err))
		return
	}
	s.requests = result.([]domain.LeaveRequest)
	s.logger.Debug("load leave requests success",
		zap.Int("count", len(s.requests)),
		zap.Bool("shared_fetch", shared),
	)
}

// Approve moves the request to Approved via the remote store. The local
// entry changes only after the call succeeds.
func (s *Store) Approve(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusApproved)
}

// Reject moves the request to Rejected via the remote store.
func (s *Store) Reject(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusRejected)
}

func (s *Store) transition(ctx context.Context, id string, status domain.LeaveStatus) error {
	s.clearError()

	if current, ok := s.find(id); ok && current.Status.IsTerminal() {
		s.setError(ErrAlreadyResolved)
		s.logger.Warn("status transition rejected",
			zap.String("leave_id", id),
			zap.String("current_status", string(current.Status)),
		)
		return ErrAlreadyResolved
	}

	updated, err := s.svc.UpdateStatus(ctx, id, status)
	if err != nil {
		s.setError(err)
		s.logger.Warn("status transition failed",
			zap.String("leave_id", id),
			zap.String("target_status", string(status)),
			zap.Error(err),
		)
		return err
	}

	s.replace(updated)
	s.logger.Info("status transition success",
		zap.String("leave_id", id),
		zap.String("status", string(updated.Status)),
	)
	return nil
}

// Create sends the draft to the remote store and prepends the confirmed
// entity. Status is forced to Pending regardless of the caller's input. The
// error is returned so a form-level caller can stay open on failure.
func (s *Store) Create(ctx context.Context, draft domain.LeaveRequestDraft) error {
	s.clearError()

	draft.Status = domain.StatusPending
	created, err := s.svc.Create(ctx, draft)
	if err != nil {
		s.setError(err)
		s.logger.Warn("create request failed", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.requests = append([]domain.LeaveRequest{created}, s.requests...)
	s.mu.Unlock()

	s.logger.Info("create request success", zap.String("leave_id", created.ID))
	return nil
}

// Update sends a sparse patch and replaces the matching entity with the
// server-confirmed result. Like Create, the error is also returned.
func (s *Store) Update(ctx context.Context, id string, patch domain.LeaveRequestPatch) error {
	s.clearError()

	// An empty patch has nothing to send; skip the round trip.
	if patch.IsZero() {
		return nil
	}

	updated, err := s.svc.Update(ctx, id, patch)
	if err != nil {
		s.setError(err)
		s.logger.Warn("update request failed", zap.String("leave_id", id), zap.Error(err))
		return err
	}

	s.replace(updated)
	s.logger.Info("update request success", zap.String("leave_id", updated.ID))
	return nil
}

// SetFilters replaces the filter options; the projection picks them up on
// its next read.
func (s *Store) SetFilters(opts domain.FilterOptions) {
	s.mu.Lock()
	s.filters = opts
	s.mu.Unlock()
}

// SetSortOptions replaces the sort options.
func (s *Store) SetSortOptions(opts domain.SortOptions) {
	s.mu.Lock()
	s.sortOpts = opts
	s.mu.Unlock()
}

// Requests returns a copy of the authoritative collection.
func (s *Store) Requests() []domain.LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.LeaveRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// Filtered recomputes the projection on every read, so it is always
// consistent with the current collection, filters, and sort options. The
// elements are copied under the lock; replace writes entries in place, so
// filtering the shared backing array outside the lock would race with it.
func (s *Store) Filtered() []domain.LeaveRequest {
	s.mu.RLock()
	requests := make([]domain.LeaveRequest, len(s.requests))
	copy(requests, s.requests)
	filters := s.filters
	sortOpts := s.sortOpts
	s.mu.RUnlock()

	return query.Sort(query.Filter(requests, filters), sortOpts)
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last operation's safe error message, or "".
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Store) Filters() domain.FilterOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

func (s *Store) SortOptions() domain.SortOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortOpts
}

// Snapshot captures the full read model in one consistent view.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	requests := make([]domain.LeaveRequest, len(s.requests))
	copy(requests, s.requests)
	snap := Snapshot{
		Requests:    requests,
		Loading:     s.loading,
		Err:         s.lastErr,
		Filters:     s.filters,
		SortOptions: s.sortOpts,
	}
	s.mu.RUnlock()

	snap.Filtered = query.Sort(query.Filter(snap.Requests, snap.Filters), snap.SortOptions)
	return snap
}

func (s *Store) clearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *Store) setError(err error) {
	s.mu.Lock()
	s.lastErr = apperror.SafeMessage(err)
	s.mu.Unlock()
}

func (s *Store) find(id string) (domain.LeaveRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, req := range s.requests {
		if req.ID == id {
			return req, true
		}
	}
	return domain.LeaveRequest{}, false
}

// replace swaps the entity with the same id, keeping collection order. A
// response for an id no longer present is dropped.
func (s *Store) replace(updated domain.LeaveRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, req := range s.requests {
		if req.ID == updated.ID {
			s.requests[i] = updated
			return
		}
	}
}
