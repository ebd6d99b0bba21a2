package guard_test

import (
	"errors"
	"sync"
	"testing"

	"courierhub/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("command not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type scanRequest struct {
		token string
		guard guard.ConstructorGuard
	}
	errNotConstructed := errors.New("scanRequest must be created via newScanRequest")

	newScanRequest := func(token string) (scanRequest, error) {
		if token == "" {
			return scanRequest{}, errors.New("token is required")
		}
		return scanRequest{token: token, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_result_is_valid", func(t *testing.T) {
		req, err := newScanRequest("abc:1:ffff")

		require.NoError(t, err)
		require.NoError(t, req.guard.Validate(errNotConstructed))
	})

	t.Run("literal_is_rejected", func(t *testing.T) {
		req := scanRequest{token: "abc:1:ffff"}

		assert.Equal(t, errNotConstructed, req.guard.Validate(errNotConstructed))
	})

	t.Run("copies_keep_the_mark", func(t *testing.T) {
		req, err := newScanRequest("abc:1:ffff")
		require.NoError(t, err)

		cp := req

		require.NoError(t, cp.guard.Validate(errNotConstructed))
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.NoError(t, g.Validate(validationError))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Validate(err)
	}
}
