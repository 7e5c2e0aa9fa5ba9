package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(25, 2, 10)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	last := BuildPagination(25, 3, 10)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)
}

func TestBuildPaginationEmptySet(t *testing.T) {
	p := BuildPagination(0, 1, 10)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestBuildPaginationPagePastEndKeepsTotals(t *testing.T) {
	p := BuildPagination(7, 9, 3)
	assert.Equal(t, int64(7), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasNext)
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", statusToErrorCode(404))
	assert.Equal(t, "VALIDATION_ERROR", statusToErrorCode(422))
	assert.Equal(t, "CONFLICT", statusToErrorCode(409))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(500))
	assert.Equal(t, "ERROR", statusToErrorCode(418))
}
