package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/avoronin/go-sync-keeper/internal/logger"
	"github.com/avoronin/go-sync-keeper/models"
)

type httpRelayTransport struct {
	client   *resty.Client
	resolver BaseResolver

	logger *logger.Logger
}

// NewHTTPRelayTransport constructs the HTTP implementation of
// [RelayTransport]. Every request is bounded by timeout; the API base is
// resolved lazily per call through resolver, so a URL learned during
// pairing takes effect immediately.
func NewHTTPRelayTransport(resolver BaseResolver, timeout time.Duration, log *logger.Logger) RelayTransport {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &httpRelayTransport{
		client:   client,
		resolver: resolver,
		logger:   log,
	}
}

// Send implements [RelayTransport].
func (h *httpRelayTransport) Send(ctx context.Context, endpoint string, body any, out any) error {
	base, err := h.resolver.Resolve(ctx)
	if err != nil {
		return err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(base + "/" + strings.TrimLeft(endpoint, "/"))
	if err != nil {
		terr := classifyRequestError(err)
		h.logger.Debug().
			Str("endpoint", endpoint).
			Str("kind", string(terr.Kind)).
			Msg("relay request failed before response")
		return terr
	}

	return h.decode(endpoint, resp, out)
}

func (h *httpRelayTransport) decode(endpoint string, resp *resty.Response, out any) error {
	var env models.Envelope
	_ = json.Unmarshal(resp.Body(), &env) // best effort on failures

	code := resp.StatusCode()
	switch {
	case code == http.StatusTooManyRequests:
		return &Error{
			Kind:       KindRateLimit,
			Status:     code,
			RetryAfter: retryAfterOf(resp, env),
			Message:    failureMessage(env, resp),
		}

	case code < http.StatusOK || code >= http.StatusMultipleChoices:
		return &Error{
			Kind:    KindHTTP,
			Status:  code,
			Message: failureMessage(env, resp),
		}
	}

	// 2xx with an explicit success:false envelope is still a relay
	// rejection; the reported kind wins over the status line.
	if !env.Success {
		return envelopeError(code, env)
	}

	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return &Error{Kind: KindHTTP, Status: code, Message: "malformed relay response: " + err.Error()}
		}
	}

	h.logger.Debug().Str("endpoint", endpoint).Msg("relay request ok")
	return nil
}

func classifyRequestError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Message: err.Error()}
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &Error{Kind: KindTimeout, Message: err.Error()}
	}

	return &Error{Kind: KindNetwork, Message: err.Error()}
}

func envelopeError(status int, env models.Envelope) *Error {
	kind := KindHTTP
	if env.Error == string(KindRateLimit) {
		kind = KindRateLimit
	}

	e := &Error{
		Kind:    kind,
		Status:  status,
		Message: env.Message,
	}
	if env.HTTPStatus != 0 {
		e.Status = env.HTTPStatus
	}
	if kind == KindRateLimit {
		e.RetryAfter = DefaultRetryAfter
		if env.RetryAfter > 0 {
			e.RetryAfter = time.Duration(env.RetryAfter) * time.Second
		}
	}
	return e
}

func retryAfterOf(resp *resty.Response, env models.Envelope) time.Duration {
	if header := resp.Header().Get("Retry-After"); header != "" {
		if secs, err := strconv.Atoi(header); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	if env.RetryAfter > 0 {
		return time.Duration(env.RetryAfter) * time.Second
	}
	return DefaultRetryAfter
}

func failureMessage(env models.Envelope, resp *resty.Response) string {
	if env.Message != "" {
		return env.Message
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body != "" {
		return body
	}
	return http.StatusText(resp.StatusCode())
}
