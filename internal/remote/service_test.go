package remote_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GFDaniel/Leave-Request-Dashboard/internal/domain"
	"github.com/GFDaniel/Leave-Request-Dashboard/internal/remote"
	"github.com/GFDaniel/Leave-Request-Dashboard/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

type capturedRequest struct {
	method string
	path   string
	body   map[string]any
}

func newTestServer(t *testing.T, status int, respBody string, captured *capturedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			captured.method = r.Method
			captured.path = r.URL.Path
			raw, _ := io.ReadAll(r.Body)
			if len(raw) > 0 {
				_ = json.Unmarshal(raw, &captured.body)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success maps records to entities", func(t *testing.T) {
		var captured capturedRequest
		server := newTestServer(t, http.StatusOK, `[
			{"id":"1","name":"Alice","type_of_leave":"VACATION","date_from":"2025-04-09","date_to":"2025-04-12","status":"PENDING","reason":"","createdAt":"2025-04-01T09:15:00Z"},
			{"id":"2","name":"Bruno","type_of_leave":"UNKNOWN_CODE","date_from":"2025-04-02","date_to":"2025-04-03","status":"approved","createdAt":"2025-04-01T23:37:16.219Z"}
		]`, &captured)
		defer server.Close()

		svc := remote.NewService(server.URL, server.Client())
		got, err := svc.List(ctx)

		assert.NoError(t, err)
		assert.Equal(t, http.MethodGet, captured.method)
		assert.Equal(t, "/leave_requests", captured.path)
		assert.Len(t, got, 2)

		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, domain.TypeVacation, got[0].LeaveType)
		assert.Equal(t, "2025-04-01", got[0].DateRequested)

		// Unknown category defaults to Vacation; timestamp near midnight
		// UTC keeps its own date.
		assert.Equal(t, domain.TypeVacation, got[1].LeaveType)
		assert.Equal(t, domain.StatusApproved, got[1].Status)
		assert.Equal(t, "2025-04-01", got[1].DateRequested)
	})

	t.Run("non-2xx becomes a transport error with a safe message", func(t *testing.T) {
		server := newTestServer(t, http.StatusInternalServerError, `oops`, nil)
		defer server.Close()

		svc := remote.NewService(server.URL, server.Client())
		got, err := svc.List(ctx)

		assert.Error(t, err)
		assert.Nil(t, got)
		assert.Equal(t, "failed to fetch leave requests", apperror.SafeMessage(err))

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeTransport, appErr.Code)
	})

	t.Run("network fault becomes the same transport error", func(t *testing.T) {
		server := newTestServer(t, http.StatusOK, `[]`, nil)
		client := server.Client()
		server.Close()

		svc := remote.NewService(server.URL, client)
		_, err := svc.List(ctx)

		assert.Error(t, err)
		assert.Equal(t, "failed to fetch leave requests", apperror.SafeMessage(err))
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		var captured capturedRequest
		server := newTestServer(t, http.StatusOK,
			`{"id":"9","name":"Carla","type_of_leave":"SICK","date_from":"2025-04-02","date_to":"2025-04-03","status":"PENDING","createdAt":"2025-04-01T10:00:00Z"}`,
			&captured)
		defer server.Close()

		svc := remote.NewService(server.URL, server.Client())
		got, err := svc.GetByID(ctx, "9")

		assert.NoError(t, err)
		assert.Equal(t, "/leave_requests/9", captured.path)
		assert.Equal(t, "9", got.ID)
		assert.Equal(t, domain.TypeSick, got.LeaveType)
	})

	t.Run("not found folds into the transport error", func(t *testing.T) {
		server := newTestServer(t, http.StatusNotFound, `{}`, nil)
		defer server.Close()

		svc := remote.NewService(server.URL, server.Client())
		_, err := svc.GetByID(ctx, "9")

		assert.Error(t, err)
		assert.Equal(t, "failed to fetch leave request 9", apperror.SafeMessage(err))
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("sends the renamed payload and returns the created entity", func(t *testing.T) {
		var captured capturedRequest
		server := newTestServer(t, http.StatusCreated,
			`{"id":"3","name":"Dana","type_of_leave":"PARENTAL","date_from":"2025-05-20","date_to":"2025-06-20","status":"PENDING","reason":"","createdAt":"2025-05-01T12:00:00Z"}`,
			&captured)
		defer server.Close()

		svc := remote.NewService(server.URL, server.Client())
		got, err := svc.Create(ctx, domain.LeaveRequestDraft{
			EmployeeName: "Dana",
			LeaveType:    domain.TypeMaternity,
			StartDate:    "2025-05-20",
			EndDate:      "2025-06-20",
			Status:       domain.StatusPending,
			Reason:       "",
		})

		assert.NoError(t, err)
		assert.Equal(t, http.MethodPost, captured.method)
		assert.Equal(t, "/leave_requests", captured.path)
		assert.Equal(t, map[string]any{
			"name":          "Dana",
			"type_of_leave": "PARENTAL",
			"date_from":     "2025-05-20",
			"date_to":       "2025-06-20",
			"status":        "PENDING",
			"reason":        "",
		}, captured.body)

		assert.Equal(t, "3", got.ID)
		// PARENTAL reads back as Maternity.
		assert.Equal(t, domain.TypeMaternity, got.LeaveType)
	})

	t.Run("failure carries the create safe message", func(t *testing.T) {
		server := newTestServer(t, http.StatusBadRequest, `{}`, nil)
		defer server.Close()

		svc := remote.NewService(server.URL, server.Client())
		_, err := svc.Create(ctx, domain.LeaveRequestDraft{EmployeeName: "Dana"})

		assert.Error(t, err)
		assert.Equal(t, "failed to create leave request", apperror.SafeMessage(err))
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("sparse patch sends only the provided fields", func(t *testing.T) {
		var captured capturedRequest
		server := newTestServer(t, http.StatusOK,
			`{"id":"1","name":"Alice","type_of_leave":"VACATION","date_from":"2025-04-09","date_to":"2025-04-12","status":"APPROVED","createdAt":"2025-04-01T09:15:00Z"}`,
			&captured)
		defer server.Close()

		svc := remote.NewService(server.URL, server.Client())
		got, err := svc.Update(ctx, "1", domain.StatusPatch(domain.StatusApproved))

		assert.NoError(t, err)
		assert.Equal(t, http.MethodPut, captured.method)
		assert.Equal(t, "/leave_requests/1", captured.path)
		assert.Equal(t, map[string]any{"status": "APPROVED"}, captured.body)
		assert.Equal(t, domain.StatusApproved, got.Status)
	})

	t.Run("failure carries the update safe message", func(t *testing.T) {
		server := newTestServer(t, http.StatusBadGateway, `{}`, nil)
		defer server.Close()

		svc := remote.NewService(server.URL, server.Client())
		_, err := svc.Update(ctx, "1", domain.LeaveRequestPatch{})

		assert.Error(t, err)
		assert.Equal(t, "failed to update leave request", apperror.SafeMessage(err))
	})
}

func TestService_UpdateStatus(t *testing.T) {
	var captured capturedRequest
	server := newTestServer(t, http.StatusOK,
		`{"id":"1","name":"Alice","type_of_leave":"VACATION","date_from":"2025-04-09","date_to":"2025-04-12","status":"REJECTED","createdAt":"2025-04-01T09:15:00Z"}`,
		&captured)
	defer server.Close()

	svc := remote.NewService(server.URL, server.Client())
	got, err := svc.UpdateStatus(context.Background(), "1", domain.StatusRejected)

	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"status": "REJECTED"}, captured.body)
	assert.Equal(t, domain.StatusRejected, got.Status)
}
