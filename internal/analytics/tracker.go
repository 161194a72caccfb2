package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// untracked paths are never recorded.
var untracked = []string{
	"/static/", "/images/", "/admin/", "/favicon", "/privacy", "/healthz",
	"/nav/", "/links/", "/cv", "/contact-form",
}

// Tracker records page views through gin middleware.
type Tracker struct {
	store *Store
	salt  string
	log   *zap.Logger
	// LangOf reports the page language of a request, if known.
	LangOf func(c *gin.Context) string
}

// NewTracker returns a tracker with a fresh random salt, so hashes cannot
// be correlated across restarts.
func NewTracker(store *Store, log *zap.Logger) *Tracker {
	return &Tracker{store: store, salt: RandomToken(), log: log}
}

// HashIP returns a truncated salted hash of ip.
func (t *Tracker) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Middleware records GET page views in the background after the handler
// ran. Requests with "DNT: 1" and HTMX fragment requests are skipped.
func (t *Tracker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.Request.URL.Path
		if c.Request.Method != "GET" || c.Writer.Status() >= 400 {
			return
		}
		if c.GetHeader("DNT") == "1" || c.GetHeader("HX-Request") == "true" {
			return
		}
		for _, p := range untracked {
			if strings.HasPrefix(path, p) {
				return
			}
		}

		v := Visit{
			HashedIP:  t.HashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
		}
		if t.LangOf != nil {
			v.Lang = t.LangOf(c)
		}
		go t.record(v)
	}
}

func (t *Tracker) record(v Visit) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := t.store.RecordVisit(ctx, v); err != nil {
		t.log.Warn("error recording visitor", zap.Error(err))
	}
}

// RandomToken returns 32 random bytes hex encoded.
func RandomToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("analytics: crypto/rand failed: " + err.Error())
	}
	return hex.EncodeToString(b)
}
