// Package remoteerrors defines the transport error for every remote store
// operation. Messages are fixed and safe to display; the underlying cause
// is wrapped for logging only.
package remoteerrors

import (
	"fmt"
	"net/http"

	"github.com/GFDaniel/Leave-Request-Dashboard/internal/shared/apperror"
)

func FetchFailed(err error) error {
	return apperror.Wrap(
		err,
		apperror.CodeTransport,
		"failed to fetch leave requests",
		http.StatusBadGateway,
	)
}

func FetchByIDFailed(err error, id string) error {
	return apperror.Wrap(
		err,
		apperror.CodeTransport,
		fmt.Sprintf("failed to fetch leave request %s", id),
		http.StatusBadGateway,
	)
}

func CreateFailed(err error) error {
	return apperror.Wrap(
		err,
		apperror.CodeTransport,
		"failed to create leave request",
		http.StatusBadGateway,
	)
}

func UpdateFailed(err error) error {
	return apperror.Wrap(
		err,
		apperror.CodeTransport,
		"failed to update leave request",
		http.StatusBadGateway,
	)
}
