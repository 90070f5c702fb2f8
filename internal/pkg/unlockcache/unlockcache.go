package unlockcache

import (
	"encoding/hex"
	"log/slog"
	"net/http"

	"casegate/internal/pkg/config"
	"casegate/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/securecookie"
)

// MaxEntries caps the grant count; the oldest grant is evicted beyond it.
// Long content ids can hit the byte budget first, which also evicts oldest.
const MaxEntries = 24

const (
	// maxCookieBytes is the browser limit for name=value of a single cookie.
	maxCookieBytes = 4096
	// gin query-escapes the value, which turns up to two "=" of base64 padding into "%3D"
	paddingEscapeBytes = 4
)

const contextKey = "unlockcache.entries"

type entry struct {
	ContentID string `json:"c"`
	Token     string `json:"t"`
}

type payload struct {
	Entries []entry `json:"e"`
}

// Cache remembers per browser which case studies were unlocked and with which
// token. It is a convenience only; a present URL token is always re-checked.
type Cache struct {
	codec *securecookie.SecureCookie
	cfg   config.CookieConfig
}

func New(cfg config.CookieConfig) (*Cache, error) {
	hashKey, err := decodeKey(cfg.HashKey)
	if err != nil {
		return nil, errs.Wrap(err, "invalid UNLOCK_COOKIE_HASH_KEY")
	}
	if hashKey == nil {
		slog.Warn("UNLOCK_COOKIE_HASH_KEY not set, unlock cookies will not survive a restart")
		hashKey = securecookie.GenerateRandomKey(32)
	}
	blockKey, err := decodeKey(cfg.BlockKey)
	if err != nil {
		return nil, errs.Wrap(err, "invalid UNLOCK_COOKIE_BLOCK_KEY")
	}

	codec := securecookie.New(hashKey, blockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})
	codec.MaxAge(int(cfg.MaxAge.Seconds()))
	codec.MaxLength(maxCookieBytes - len(cfg.UnlockCookieName) - 1 - paddingEscapeBytes)

	return &Cache{codec: codec, cfg: cfg}, nil
}

func decodeKey(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return hex.DecodeString(s)
}

func (c *Cache) Get(ctx *gin.Context, contentID string) (string, bool) {
	for _, e := range c.load(ctx) {
		if e.ContentID == contentID {
			return e.Token, true
		}
	}
	return "", false
}

func (c *Cache) Has(ctx *gin.Context, contentID string) bool {
	_, ok := c.Get(ctx, contentID)
	return ok
}

func (c *Cache) Set(ctx *gin.Context, contentID, token string) error {
	entries := c.load(ctx)
	next := make([]entry, 0, len(entries)+1)
	for _, e := range entries {
		if e.ContentID != contentID {
			next = append(next, e)
		}
	}
	next = append(next, entry{ContentID: contentID, Token: token})
	if len(next) > MaxEntries {
		next = next[len(next)-MaxEntries:]
	}

	encoded, err := c.encode(next)
	for err != nil && len(next) > 1 {
		// over the byte budget: drop the oldest grant, never the new one
		next = next[1:]
		encoded, err = c.encode(next)
	}
	if err != nil {
		return errs.Wrap(err, "failed to encode unlock cookie")
	}

	ctx.Set(contextKey, next)
	c.write(ctx, encoded, int(c.cfg.MaxAge.Seconds()))
	return nil
}

func (c *Cache) encode(entries []entry) (string, error) {
	return c.codec.Encode(c.cfg.UnlockCookieName, payload{Entries: entries})
}

func (c *Cache) ClearAll(ctx *gin.Context) {
	ctx.Set(contextKey, []entry{})
	c.write(ctx, "", -1)
}

// load prefers entries written earlier in the same request over the incoming cookie.
func (c *Cache) load(ctx *gin.Context) []entry {
	if v, ok := ctx.Get(contextKey); ok {
		if entries, ok := v.([]entry); ok {
			return entries
		}
	}

	raw, err := ctx.Cookie(c.cfg.UnlockCookieName)
	if err != nil || raw == "" {
		return nil
	}
	var p payload
	if err := c.codec.Decode(c.cfg.UnlockCookieName, raw, &p); err != nil {
		// tampered, expired or signed with a rotated key
		slog.Debug("ignoring unreadable unlock cookie", slog.String("error", err.Error()))
		return nil
	}
	return p.Entries
}

func (c *Cache) write(ctx *gin.Context, value string, maxAge int) {
	ctx.SetSameSite(getSameSite(c.cfg.SameSite))
	ctx.SetCookie(
		c.cfg.UnlockCookieName,
		value,
		maxAge,
		"/",
		c.cfg.Domain,
		c.cfg.Secure,
		true, // HttpOnly
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
