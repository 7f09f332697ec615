// Package auth verifies the signed identity that gates the persistence
// endpoints and applies per-identity rate limiting.
package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/eladmint/whatsapp-analyzer/pkg/logger"
	"github.com/eladmint/whatsapp-analyzer/pkg/utils"
)

type ctxIdentityKey struct{}

// Verifier checks HMAC-signed identity headers against a set of signing
// keys. It is an explicit object so tests can construct isolated instances.
type Verifier struct {
	keys map[string]struct{}
}

// NewVerifier builds a verifier over the configured signing keys.
func NewVerifier(keys []string) *Verifier {
	m := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			m[k] = struct{}{}
		}
	}
	return &Verifier{keys: m}
}

// RequireSignedIdentity verifies the X-User-ID / X-User-Signature header
// pair and injects the verified identity into the request context. Requests
// without a valid signature never reach the wrapped handler.
func (v *Verifier) RequireSignedIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := strings.TrimSpace(r.Header.Get("X-User-ID"))
		sig := strings.TrimSpace(r.Header.Get("X-User-Signature"))
		if identity == "" || sig == "" {
			logger.Warn("missing_signature_headers", "path", r.URL.Path, "remote", r.RemoteAddr)
			utils.JSONError(w, http.StatusUnauthorized, "missing signature headers")
			return
		}
		if len(v.keys) == 0 {
			logger.Error("no_signing_keys_configured")
			utils.JSONError(w, http.StatusInternalServerError, "server misconfigured: no signing secrets available")
			return
		}
		if !v.verify(identity, sig) {
			logger.Warn("invalid_signature", "user", identity)
			utils.JSONError(w, http.StatusUnauthorized, "invalid signature")
			return
		}
		ctx := context.WithValue(r.Context(), ctxIdentityKey{}, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (v *Verifier) verify(identity, sig string) bool {
	for k := range v.keys {
		mac := hmac.New(sha256.New, []byte(k))
		mac.Write([]byte(identity))
		expected := hex.EncodeToString(mac.Sum(nil))
		if hmac.Equal([]byte(expected), []byte(sig)) {
			return true
		}
	}
	return false
}

// Sign computes the signature a caller must present for the identity. Used
// by tests and client tooling.
func Sign(key, identity string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(identity))
	return hex.EncodeToString(mac.Sum(nil))
}

// IdentityFromContext returns the verified identity set by the middleware,
// or empty when the request was not signed.
func IdentityFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxIdentityKey{}).(string); ok {
		return v
	}
	return ""
}
