package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronin/go-sync-keeper/internal/logger"
	"github.com/avoronin/go-sync-keeper/models"
)

// staticResolver — фиксированный base URL для тестов, без стора.
type staticResolver struct {
	base string
	err  error
}

func (s *staticResolver) Resolve(_ context.Context) (string, error) {
	return s.base, s.err
}

func newTestTransport(base string, timeout time.Duration) RelayTransport {
	return NewHTTPRelayTransport(&staticResolver{base: base}, timeout, logger.Nop())
}

func TestSend_Success_DecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/heartbeat", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"cluster_status":{"master_alive":true}}`))
	}))
	defer srv.Close()

	tr := newTestTransport(srv.URL, time.Second)

	var out models.HeartbeatResponse
	err := tr.Send(context.Background(), EndpointHeartbeat, models.HeartbeatRequest{DeviceID: "d1"}, &out)

	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.True(t, out.ClusterStatus.MasterAlive)
}

func TestSend_RateLimit_RetryAfterHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "120")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"success":false,"error":"rate_limit","message":"slow down"}`))
	}))
	defer srv.Close()

	tr := newTestTransport(srv.URL, time.Second)

	err := tr.Send(context.Background(), EndpointPush, models.PushRequest{}, nil)

	terr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindRateLimit, terr.Kind)
	assert.Equal(t, http.StatusTooManyRequests, terr.Status)
	assert.Equal(t, 120*time.Second, terr.RetryAfter)
	assert.Equal(t, "slow down", terr.Message)
	assert.True(t, terr.Retryable())
}

func TestSend_RateLimit_DefaultRetryAfter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	tr := newTestTransport(srv.URL, time.Second)

	err := tr.Send(context.Background(), EndpointPush, models.PushRequest{}, nil)

	terr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindRateLimit, terr.Kind)
	// сервер не прислал Retry-After — действует дефолт 900s
	assert.Equal(t, DefaultRetryAfter, terr.RetryAfter)
}

func TestSend_HTTPError_CarriesStatusAndMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"http_error","message":"boom"}`))
	}))
	defer srv.Close()

	tr := newTestTransport(srv.URL, time.Second)

	err := tr.Send(context.Background(), EndpointDevices, models.DevicesRequest{}, nil)

	terr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindHTTP, terr.Kind)
	assert.Equal(t, http.StatusInternalServerError, terr.Status)
	assert.Equal(t, "boom", terr.Message)
	assert.False(t, terr.Retryable())
}

func TestSend_SuccessFalseEnvelopeOn200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"http_error","message":"unknown code","httpStatus":404}`))
	}))
	defer srv.Close()

	tr := newTestTransport(srv.URL, time.Second)

	err := tr.Send(context.Background(), EndpointClaim, models.ClaimRequest{ShortCode: "XXXX-XXXX"}, nil)

	terr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindHTTP, terr.Kind)
	assert.Equal(t, http.StatusNotFound, terr.Status)
	assert.Equal(t, "unknown code", terr.Message)
}

func TestSend_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // соединение будет отклонено

	tr := newTestTransport(srv.URL, time.Second)

	err := tr.Send(context.Background(), EndpointPull, models.PullRequest{}, nil)

	terr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindNetwork, terr.Kind)
	assert.True(t, terr.Retryable())
}

func TestSend_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	tr := newTestTransport(srv.URL, 50*time.Millisecond)

	err := tr.Send(context.Background(), EndpointPull, models.PullRequest{}, nil)

	terr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindTimeout, terr.Kind)
	assert.True(t, terr.Retryable())
}

func TestSend_NoBaseURL_ConfigError(t *testing.T) {
	tr := NewHTTPRelayTransport(
		&staticResolver{err: &Error{Kind: KindConfig, Message: "no relay URL configured"}},
		time.Second,
		logger.Nop(),
	)

	err := tr.Send(context.Background(), EndpointHeartbeat, models.HeartbeatRequest{}, nil)

	terr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindConfig, terr.Kind)
	assert.False(t, terr.Retryable())
}
