package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/internal/resputil"
	"github.com/raids-lab/agencyos/internal/util"
)

// TokenChecker verifies a bearer token.
type TokenChecker interface {
	CheckToken(requestToken string) (util.JWTMessage, error)
}

func AuthProtected() gin.HandlerFunc {
	return AuthWith(util.GetTokenMgr())
}

// AuthWith authenticates requests with the given checker.
func AuthWith(checker TokenChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		t := strings.Split(authHeader, " ")
		if len(t) < 2 || t[0] != "Bearer" {
			resputil.HTTPError(c, http.StatusUnauthorized, "Invalid token", resputil.TokenInvalid)
			c.Abort()
			return
		}

		token, err := checker.CheckToken(t[1])
		if err != nil {
			code := resputil.TokenInvalid
			if errors.Is(err, jwt.ErrTokenExpired) {
				code = resputil.TokenExpired
			}
			resputil.HTTPError(c, http.StatusUnauthorized, err.Error(), code)
			c.Abort()
			return
		}

		util.SetJWTContext(c, token)
		c.Next()
	}
}

func requireRole(allowed ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := util.GetToken(c)
		for _, role := range allowed {
			if token.Role == role {
				c.Next()
				return
			}
		}
		resputil.HTTPError(c, http.StatusForbidden, "Role "+string(token.Role)+" not allowed", resputil.UserNotAllowed)
		c.Abort()
	}
}

func AuthAdmin() gin.HandlerFunc {
	return requireRole(model.RoleAdmin)
}

// AuthMember admits agency staff and rejects client accounts.
func AuthMember() gin.HandlerFunc {
	return requireRole(model.RoleMember, model.RoleAdmin)
}

func AuthClient() gin.HandlerFunc {
	return requireRole(model.RoleClient)
}
