package transport

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/avoronin/go-sync-keeper/internal/store"
)

// baseResolver resolves the relay API base lazily on every call so that a
// URL learned during pairing takes effect without restarting the client.
type baseResolver struct {
	override string
	configs  store.ConfigRepository
	fallback *BootstrapStore
}

// NewBaseResolver constructs a [BaseResolver]. override may be empty;
// fallback may be nil when no bootstrap file is configured.
func NewBaseResolver(override string, configs store.ConfigRepository, fallback *BootstrapStore) BaseResolver {
	return &baseResolver{
		override: strings.TrimSpace(override),
		configs:  configs,
		fallback: fallback,
	}
}

// Resolve implements [BaseResolver].
func (r *baseResolver) Resolve(ctx context.Context) (string, error) {
	if r.override != "" {
		return normalizeBaseURL(r.override)
	}

	if r.configs != nil {
		cfg, err := r.configs.Get(ctx)
		switch {
		case err == nil && cfg.APIURL != "":
			return normalizeBaseURL(cfg.APIURL)
		case err != nil && !errors.Is(err, store.ErrConfigNotFound):
			return "", &Error{Kind: KindConfig, Message: fmt.Sprintf("read sync config: %v", err)}
		}
	}

	if r.fallback != nil {
		u, err := r.fallback.Load()
		if err != nil {
			return "", &Error{Kind: KindConfig, Message: fmt.Sprintf("read bootstrap store: %v", err)}
		}
		if u != "" {
			return normalizeBaseURL(u)
		}
	}

	return "", &Error{Kind: KindConfig, Message: "no relay URL configured"}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", &Error{Kind: KindConfig, Message: "empty relay address"}
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", &Error{Kind: KindConfig, Message: fmt.Sprintf("invalid relay address: %v", err)}
	}
	if u.Scheme == "" || u.Host == "" {
		return "", &Error{Kind: KindConfig, Message: "relay address must include host and scheme"}
	}

	return strings.TrimRight(u.String(), "/"), nil
}
