package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultSessionTTL      = 30 * time.Minute
	defaultJanitorInterval = time.Minute
)

type Sessions struct {
	TTL             time.Duration
	Limit           int
	JanitorInterval time.Duration
}

// NewSessions reads SESSION_TTL (a Go duration, 0 disables expiry) and
// SESSION_LIMIT (0 means unlimited).
func NewSessions() (*Sessions, error) {
	s := &Sessions{
		TTL:             defaultSessionTTL,
		JanitorInterval: defaultJanitorInterval,
	}

	if ttlStr, ok := os.LookupEnv("SESSION_TTL"); ok {
		ttl, err := time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("unable to parse SESSION_TTL: %w", err)
		}
		if ttl < 0 {
			return nil, fmt.Errorf("SESSION_TTL must not be negative, got %s", ttl)
		}
		s.TTL = ttl
	}

	if limitStr, ok := os.LookupEnv("SESSION_LIMIT"); ok {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, fmt.Errorf("unable to parse SESSION_LIMIT: %w", err)
		}
		if limit < 0 {
			return nil, fmt.Errorf("SESSION_LIMIT must not be negative, got %d", limit)
		}
		s.Limit = limit
	}

	if s.TTL > 0 && s.TTL < s.JanitorInterval {
		s.JanitorInterval = s.TTL
	}

	return s, nil
}
