package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"runplay-store/internal/service/session"
)

type ctxKey string

const (
	sessionCtxKey ctxKey = "session"
	sessionCookie        = "runplay_session"
)

// sessionMiddleware resolves the visitor's session from the cookie, starting
// a new one when the cookie is missing or the session has expired.
func sessionMiddleware(store sessionStore, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(sessionCookie)
		sess, err := store.Lookup(id)
		if err != nil {
			if !errors.Is(err, session.ErrSessionNotFound) {
				logger.Printf("session lookup id=%s error=%v", id, err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session lookup failed"})
				return
			}
			sess, err = store.Start()
			if err != nil {
				logger.Printf("session start error=%v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session start failed"})
				return
			}
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, sess.ID, store.TTLSeconds(), "/", "", false, true)

		ctx := context.WithValue(c.Request.Context(), sessionCtxKey, sess)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func sessionFromContext(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionCtxKey).(*session.Session)
	return sess
}

func endSessionHandler(store sessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(sessionCookie)
		ended := id != "" && store.End(id)
		c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"ended": ended})
	}
}
