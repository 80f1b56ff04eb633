package redis

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConnect_Validation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty URL returns ErrEmptyConnectionURL", func(t *testing.T) {
		t.Parallel()

		client, err := Connect(ctx, Config{})
		require.Nil(t, client)
		require.ErrorIs(t, err, ErrEmptyConnectionURL)
	})

	testCases := []struct {
		name string
		url  string
	}{
		{name: "http scheme", url: "http://localhost:6379"},
		{name: "no scheme", url: "localhost:6379"},
		{name: "postgresql scheme", url: "postgresql://localhost:6379"},
		{name: "invalid port", url: "redis://localhost:notaport"},
		{name: "invalid database", url: "redis://localhost:6379/notanumber"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client, err := Connect(ctx, Config{ConnectionURL: tc.url})
			require.Nil(t, client)
			require.ErrorIs(t, err, ErrFailedToParseURL)
		})
	}
}

func TestConnect_UnsupportedScheme(t *testing.T) {
	t.Parallel()

	_, err := Connect(context.Background(), Config{ConnectionURL: "memcached://localhost:11211"})
	require.ErrorIs(t, err, ErrFailedToParseURL)
	require.ErrorIs(t, err, ErrUnsupportedScheme)

	_, err = Connect(context.Background(), Config{ConnectionURL: "redis://localhost:notaport"})
	require.ErrorIs(t, err, ErrFailedToParseURL)
	require.NotErrorIs(t, err, ErrUnsupportedScheme)
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	t.Run("applies overrides", func(t *testing.T) {
		t.Parallel()

		opts, err := parseConfig(Config{
			ConnectionURL: "redis://localhost:6379/3",
			PoolSize:      25,
			MinIdleConns:  4,
			MaxIdleTime:   15 * time.Minute,
			MaxActiveTime: 45 * time.Minute,
			ReadTimeout:   7 * time.Second,
			WriteTimeout:  8 * time.Second,
			DialTimeout:   9 * time.Second,
		})
		require.NoError(t, err)
		require.Equal(t, 3, opts.DB)
		require.Equal(t, 25, opts.PoolSize)
		require.Equal(t, 4, opts.MinIdleConns)
		require.Equal(t, 15*time.Minute, opts.ConnMaxIdleTime)
		require.Equal(t, 45*time.Minute, opts.ConnMaxLifetime)
		require.Equal(t, 7*time.Second, opts.ReadTimeout)
		require.Equal(t, 8*time.Second, opts.WriteTimeout)
		require.Equal(t, 9*time.Second, opts.DialTimeout)
	})

	t.Run("zero values keep client defaults", func(t *testing.T) {
		t.Parallel()

		opts, err := parseConfig(Config{ConnectionURL: "rediss://localhost:6379"})
		require.NoError(t, err)
		require.Zero(t, opts.PoolSize)
		require.NotNil(t, opts.TLSConfig)
	})
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := Connect(ctx, Config{
		ConnectionURL: "redis://127.0.0.1:1/0",
		RetryAttempts: 2,
		RetryInterval: 10 * time.Millisecond,
		DialTimeout:   100 * time.Millisecond,
	})
	require.Nil(t, client)
	require.ErrorIs(t, err, ErrConnectionFailed)
}

func TestHealthcheck_NilClient(t *testing.T) {
	t.Parallel()

	t.Run("nil client returns ErrHealthcheckFailed", func(t *testing.T) {
		t.Parallel()

		check := Healthcheck(nil)
		err := check(context.Background())
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrHealthcheckFailed))
	})
}

func TestShutdown_MockCloser(t *testing.T) {
	t.Parallel()

	t.Run("calls Close on the client", func(t *testing.T) {
		t.Parallel()

		mockCloser := &mockCloser{}
		shutdown := Shutdown(mockCloser)

		err := shutdown(context.Background())
		require.NoError(t, err)
		require.True(t, mockCloser.closed)
	})

	t.Run("propagates Close error", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("close error")
		mockCloser := &mockCloser{err: expectedErr}
		shutdown := Shutdown(mockCloser)

		err := shutdown(context.Background())
		require.Error(t, err)
		require.Equal(t, expectedErr, err)
		require.True(t, mockCloser.closed)
	})
}

func TestWait_ContextCancellation(t *testing.T) {
	t.Parallel()

	t.Run("cancelled context returns immediately", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		start := time.Now()
		err := wait(ctx, 10*time.Second)
		elapsed := time.Since(start)

		require.Error(t, err)
		require.Equal(t, context.Canceled, err)
		require.Less(t, elapsed, 1*time.Second, "should return immediately")
	})

	t.Run("timeout completes normally", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		duration := 50 * time.Millisecond

		start := time.Now()
		err := wait(ctx, duration)
		elapsed := time.Since(start)

		require.NoError(t, err)
		require.GreaterOrEqual(t, elapsed, duration, "should wait for the full duration")
	})

	t.Run("context cancelled during wait", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())

		go func() {
			time.Sleep(50 * time.Millisecond)
			cancel()
		}()

		start := time.Now()
		err := wait(ctx, 10*time.Second)
		elapsed := time.Since(start)

		require.Error(t, err)
		require.Equal(t, context.Canceled, err)
		require.Less(t, elapsed, 1*time.Second, "should return when context is cancelled")
		require.GreaterOrEqual(t, elapsed, 50*time.Millisecond, "should wait until cancellation")
	})
}

// mockCloser is a test double for io.Closer
type mockCloser struct {
	closed bool
	err    error
}

func (m *mockCloser) Close() error {
	m.closed = true
	return m.err
}

var _ io.Closer = (*mockCloser)(nil)
