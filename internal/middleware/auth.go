package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jazeyttv/jazey-dev/internal/config"
	"github.com/jazeyttv/jazey-dev/internal/pkg/jwt"
	"github.com/jazeyttv/jazey-dev/internal/pkg/response"
	"golang.org/x/crypto/bcrypt"
)

const ContextKeyAdmin = "admin_user"

// AdminAuth guards admin routes. It accepts either the configured credential
// pair via X-Admin-Username/X-Admin-Password headers (or username/password
// query params), or a bearer token issued by the login endpoint.
func AdminAuth(admin config.AdminConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			claims, err := jwt.Parse(token)
			if err != nil {
				response.Unauthorized(c)
				return
			}
			c.Set(ContextKeyAdmin, claims.Username)
			c.Next()
			return
		}

		username := c.GetHeader("X-Admin-Username")
		if username == "" {
			username = c.Query("username")
		}
		password := c.GetHeader("X-Admin-Password")
		if password == "" {
			password = c.Query("password")
		}
		if !CheckCredentials(admin, username, password) {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyAdmin, username)
		c.Next()
	}
}

// CheckCredentials compares a supplied pair against the configured admin.
// An unconfigured admin (empty username or password) rejects everything.
func CheckCredentials(admin config.AdminConfig, username, password string) bool {
	if admin.Username == "" || admin.Password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(admin.Username)) == 1

	var passOK bool
	if strings.HasPrefix(admin.Password, "$2") {
		passOK = bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(admin.Password)) == 1
	}
	return userOK && passOK
}

func bearerToken(c *gin.Context) string {
	auth := strings.TrimSpace(c.GetHeader("Authorization"))
	if auth == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return auth
}
