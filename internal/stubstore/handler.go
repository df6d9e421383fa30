package stubstore

import (
	"net/http"

	"github.com/GFDaniel/Leave-Request-Dashboard/internal/shared/apperror"
	"github.com/GFDaniel/Leave-Request-Dashboard/internal/shared/contextutil"
	"github.com/GFDaniel/Leave-Request-Dashboard/internal/shared/response"
	stuberrors "github.com/GFDaniel/Leave-Request-Dashboard/internal/stubstore/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	repo   Repository
	logger *zap.Logger
}

func NewHandler(repo Repository, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("stubstore.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("stubstore.handler")
	}
	return &Handler{repo: repo, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("stub store request failed",
		zap.String("request_id", contextutil.GetRequestID(c.Request.Context())),
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// List responds with a raw JSON array, matching the hosted store's shape.
func (h *Handler) List(c *gin.Context) {
	recs, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (h *Handler) GetByID(c *gin.Context) {
	rec, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("stub store create validation failed", zap.Error(err))
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	// ISO dates compare lexically.
	if req.DateFrom > req.DateTo {
		h.writeError(c, stuberrors.ErrInvalidDateRange)
		return
	}

	status := req.Status
	if status == "" {
		status = "PENDING"
	}

	rec, err := h.repo.Create(c.Request.Context(), Record{
		Name:        req.Name,
		TypeOfLeave: req.TypeOfLeave,
		DateFrom:    req.DateFrom,
		DateTo:      req.DateTo,
		Status:      status,
		Reason:      req.Reason,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.logger.Info("stub store record created", zap.String("record_id", rec.ID))
	c.JSON(http.StatusCreated, rec)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("stub store update validation failed", zap.Error(err))
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	if req.DateFrom != nil && req.DateTo != nil && *req.DateFrom > *req.DateTo {
		h.writeError(c, stuberrors.ErrInvalidDateRange)
		return
	}

	rec, err := h.repo.Update(c.Request.Context(), c.Param("id"), func(rec *Record) {
		if req.Name != nil {
			rec.Name = *req.Name
		}
		if req.TypeOfLeave != nil {
			rec.TypeOfLeave = *req.TypeOfLeave
		}
		if req.DateFrom != nil {
			rec.DateFrom = *req.DateFrom
		}
		if req.DateTo != nil {
			rec.DateTo = *req.DateTo
		}
		if req.Status != nil {
			rec.Status = *req.Status
		}
		if req.Reason != nil {
			rec.Reason = *req.Reason
		}
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.logger.Info("stub store record updated",
		zap.String("record_id", rec.ID),
		zap.String("status", rec.Status),
	)
	c.JSON(http.StatusOK, rec)
}
