//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"casegate/internal/infra"

	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	low := errors.New("connection reset")

	t.Run("defaults to db failure", func(t *testing.T) {
		err := infra.WrapRepoErr("failed to insert unlock", low)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, low)
		assert.Contains(t, err.Error(), "DB_FAILURE: failed to insert unlock")
	})

	t.Run("explicit kind survives further wrapping", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", infra.WrapRepoErr("unlock exists", low, infra.KindDuplicateKey))
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.False(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("nil low-level error", func(t *testing.T) {
		err := infra.WrapRepoErr("unlock not found", nil, infra.KindNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Equal(t, "NOT_FOUND: unlock not found", err.Error())
	})

	t.Run("foreign error is no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(low, infra.KindDBFailure))
	})
}
