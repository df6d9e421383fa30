package domain_test

import (
	"testing"

	"github.com/GFDaniel/Leave-Request-Dashboard/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestLeaveStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.StatusPending.IsTerminal())
	assert.True(t, domain.StatusApproved.IsTerminal())
	assert.True(t, domain.StatusRejected.IsTerminal())
}

func TestLeaveRequestPatch(t *testing.T) {
	assert.True(t, domain.LeaveRequestPatch{}.IsZero())

	patch := domain.StatusPatch(domain.StatusApproved)
	assert.False(t, patch.IsZero())
	assert.Equal(t, domain.StatusApproved, *patch.Status)
	assert.Nil(t, patch.Reason)
}

func TestDefaultSortOptions(t *testing.T) {
	opts := domain.DefaultSortOptions()
	assert.Equal(t, domain.SortByDateRequested, opts.Field)
	assert.Equal(t, domain.SortDescending, opts.Direction)
}
