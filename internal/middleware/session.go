package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/alimgiray/ghprofile/pkg/config"
	"github.com/alimgiray/ghprofile/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie     = "session"
	sessionContextKey = "session"
)

// SessionData identifies the viewer widget of one browser
type SessionData struct {
	ID        string    `json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionMiddleware attaches a session to every request. Requests without a
// valid session cookie get a new one; existing sessions are extended.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionData := getSessionFromCookie(c)
		if sessionData == nil {
			sessionData = &SessionData{ID: uuid.New().String()}
			logger.WithField("session_id", sessionData.ID).Debug("new session")
		}

		if err := SetSession(c, sessionData); err != nil {
			logger.WithError(err).Error("failed to write session cookie")
		}

		c.Set(sessionContextKey, sessionData)

		c.Next()
	}
}

// getSessionFromCookie extracts and validates session data from cookie
func getSessionFromCookie(c *gin.Context) *SessionData {
	cookie, err := c.Cookie(sessionCookie)
	if err != nil {
		return nil
	}

	// Split cookie value (signature.data)
	parts := strings.Split(cookie, ".")
	if len(parts) != 2 {
		return nil
	}

	signature, data := parts[0], parts[1]

	if !verifySignature(data, signature) {
		return nil
	}

	decodedData, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		return nil
	}

	var sessionData SessionData
	if err := json.Unmarshal(decodedData, &sessionData); err != nil {
		return nil
	}

	if _, err := uuid.Parse(sessionData.ID); err != nil {
		return nil
	}

	if time.Now().After(sessionData.ExpiresAt) {
		return nil
	}

	return &sessionData
}

// SetSession writes the session cookie with a fresh expiry
func SetSession(c *gin.Context, sessionData *SessionData) error {
	ttl := config.Get().SessionTTL()
	sessionData.ExpiresAt = time.Now().Add(ttl)

	data, err := json.Marshal(sessionData)
	if err != nil {
		return err
	}

	encodedData := base64.URLEncoding.EncodeToString(data)
	signature := createSignature(encodedData)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, signature+"."+encodedData, int(ttl.Seconds()), "/", "", false, true)

	return nil
}

// createSignature creates HMAC signature for data
func createSignature(data string) string {
	h := hmac.New(sha256.New, []byte(config.Get().Session.Secret))
	h.Write([]byte(data))
	return base64.URLEncoding.EncodeToString(h.Sum(nil))
}

// verifySignature verifies HMAC signature
func verifySignature(data, signature string) bool {
	expectedSignature := createSignature(data)
	return hmac.Equal([]byte(signature), []byte(expectedSignature))
}

// GetSession retrieves session data from context
func GetSession(c *gin.Context) *SessionData {
	session, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}

	if sessionData, ok := session.(*SessionData); ok {
		return sessionData
	}

	return nil
}
