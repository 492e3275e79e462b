package session

import (
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"

	"github.com/harsoyo/notaris-web/internal/pkg/cache"
	"github.com/harsoyo/notaris-web/internal/pkg/env"
)

var sessionStore *session.Store

func baseConfig() session.Config {
	return session.Config{
		CookieHTTPOnly: true,
		CookieSecure:   !env.IsDev(),
		CookieSameSite: "Lax",
		Expiration:     time.Hour * 8,
		KeyLookup:      "cookie:session_id",
	}
}

// NewSessionStore creates the shared store. Sessions live in Redis database 1
// when a cache is configured and in process memory otherwise.
func NewSessionStore() *session.Store {
	cfg := baseConfig()

	if cacheClient := cache.GetClient(); cacheClient != nil {
		host := "localhost"
		port := 6379
		password := env.GetEnv("CACHE_PASSWORD", "")
		addr := cacheClient.Options().Addr
		if h, p, err := net.SplitHostPort(addr); err == nil {
			host = h
			if v, err := strconv.Atoi(p); err == nil {
				port = v
			}
		}
		// Prefer password from the underlying client if present
		if p := cacheClient.Options().Password; p != "" {
			password = p
		}

		cfg.Storage = redis.New(redis.Config{
			Host:     host,
			Port:     port,
			Password: password,
			Database: 1, // Separate database for sessions
			Reset:    false,
		})
		log.Infof("[Session] Using redis session storage at %s:%d", host, port)
	} else {
		log.Warn("[Session] CACHE_HOST not set, sessions are kept in memory")
	}

	sessionStore = session.New(cfg)
	return sessionStore
}

// NewMemoryStore creates an in-memory store and installs it as the shared one
func NewMemoryStore() *session.Store {
	cfg := baseConfig()
	cfg.CookieSecure = false
	sessionStore = session.New(cfg)
	return sessionStore
}

func GetSessionStore() *session.Store {
	return sessionStore
}
