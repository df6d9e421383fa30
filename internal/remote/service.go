// Package remote is the adapter between the canonical leave request model
// and the remote record store. It owns every network call and converts the
// store's loosely-typed wire shape into domain entities and back.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/GFDaniel/Leave-Request-Dashboard/internal/domain"
	remoteerrors "github.com/GFDaniel/Leave-Request-Dashboard/internal/remote/errors"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]domain.LeaveRequest, error)
	GetByID(ctx context.Context, id string) (domain.LeaveRequest, error)
	Create(ctx context.Context, draft domain.LeaveRequestDraft) (domain.LeaveRequest, error)
	Update(ctx context.Context, id string, patch domain.LeaveRequestPatch) (domain.LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.LeaveStatus) (domain.LeaveRequest, error)
}

type service struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewService builds the HTTP-backed adapter. client may be nil; a default
// client with a modest timeout is used then. No retry happens at this
// layer: a failed call surfaces immediately and the caller decides.
func NewService(baseURL string, client *http.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("remote.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("remote.service")
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &service{baseURL: baseURL, client: client, logger: l}
}

func (s *service) List(ctx context.Context) ([]domain.LeaveRequest, error) {
	s.logger.Debug("list leave requests requested")

	var recs []record
	if err := s.do(ctx, http.MethodGet, "/leave_requests", nil, &recs); err != nil {
		s.logger.Error("list leave requests failed", zap.Error(err))
		return nil, remoteerrors.FetchFailed(err)
	}

	s.logger.Debug("list leave requests success", zap.Int("count", len(recs)))
	return toDomainList(recs), nil
}

func (s *service) GetByID(ctx context.Context, id string) (domain.LeaveRequest, error) {
	s.logger.Debug("get leave request requested", zap.String("leave_id", id))

	var rec record
	if err := s.do(ctx, http.MethodGet, "/leave_requests/"+id, nil, &rec); err != nil {
		s.logger.Error("get leave request failed", zap.String("leave_id", id), zap.Error(err))
		return domain.LeaveRequest{}, remoteerrors.FetchByIDFailed(err, id)
	}

	return toDomain(rec), nil
}

func (s *service) Create(ctx context.Context, draft domain.LeaveRequestDraft) (domain.LeaveRequest, error) {
	s.logger.Debug("create leave request requested",
		zap.String("employee_name", draft.EmployeeName),
		zap.String("start_date", draft.StartDate),
		zap.String("end_date", draft.EndDate),
	)

	var rec record
	if err := s.do(ctx, http.MethodPost, "/leave_requests", toCreatePayload(draft), &rec); err != nil {
		s.logger.Error("create leave request failed", zap.Error(err))
		return domain.LeaveRequest{}, remoteerrors.CreateFailed(err)
	}

	created := toDomain(rec)
	s.logger.Info("create leave request success", zap.String("leave_id", created.ID))
	return created, nil
}

func (s *service) Update(ctx context.Context, id string, patch domain.LeaveRequestPatch) (domain.LeaveRequest, error) {
	s.logger.Debug("update leave request requested", zap.String("leave_id", id))

	var rec record
	if err := s.do(ctx, http.MethodPut, "/leave_requests/"+id, toUpdatePayload(patch), &rec); err != nil {
		s.logger.Error("update leave request failed", zap.String("leave_id", id), zap.Error(err))
		return domain.LeaveRequest{}, remoteerrors.UpdateFailed(err)
	}

	updated := toDomain(rec)
	s.logger.Info("update leave request success",
		zap.String("leave_id", updated.ID),
		zap.String("status", string(updated.Status)),
	)
	return updated, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, status domain.LeaveStatus) (domain.LeaveRequest, error) {
	return s.Update(ctx, id, domain.StatusPatch(status))
}

// do runs one JSON round trip. Any non-2xx response or transport fault is
// returned as a plain error for the caller to wrap with its operation's
// safe message.
func (s *service) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %d from %s %s", resp.StatusCode, method, path)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
