package util

import (
	"errors"
	"fmt"
	"sync"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/pkg/config"
)

var ErrMissingSubject = errors.New("token has no subject")

type (
	JWTClaims struct {
		Email       string     `json:"email,omitempty"`
		Role        model.Role `json:"role,omitempty"`
		WorkspaceID string     `json:"wid,omitempty"`
		jwt.RegisteredClaims
	}
	JWTMessage struct {
		UserID      string     `json:"userId"`                // Profile ID, the "sub" claim
		Email       string     `json:"email"`                 // Login email
		Role        model.Role `json:"role"`                  // member, admin or client
		WorkspaceID string     `json:"workspaceId,omitempty"` // Workspace the session is bound to
	}
)

// TokenManager verifies tokens issued by the auth provider. It signs tokens only for
// local tooling.
type TokenManager struct {
	secretKey string
	issuer    string
}

var (
	once     sync.Once
	tokenMgr *TokenManager
)

func GetTokenMgr() *TokenManager {
	once.Do(func() {
		auth := config.GetConfig().Auth
		tokenMgr = NewTokenManager(auth.AccessTokenSecret, auth.Issuer)
	})
	return tokenMgr
}

func NewTokenManager(secretKey, issuer string) *TokenManager {
	return &TokenManager{
		secretKey: secretKey,
		issuer:    issuer,
	}
}

// CreateToken signs an HS256 token for msg valid for ttl.
func (tm *TokenManager) CreateToken(msg *JWTMessage, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		Email:       msg.Email,
		Role:        msg.Role,
		WorkspaceID: msg.WorkspaceID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   msg.UserID,
			Issuer:    tm.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(tm.secretKey))
}

func (tm *TokenManager) CheckToken(requestToken string) (JWTMessage, error) {
	claims := JWTClaims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if tm.issuer != "" {
		opts = append(opts, jwt.WithIssuer(tm.issuer))
	}
	_, err := jwt.ParseWithClaims(requestToken, &claims, func(_ *jwt.Token) (any, error) {
		return []byte(tm.secretKey), nil
	}, opts...)
	if err != nil {
		return JWTMessage{}, err
	}
	if claims.Subject == "" {
		return JWTMessage{}, ErrMissingSubject
	}

	role := claims.Role
	if role == "" {
		role = model.RoleMember
	}
	if !role.Valid() {
		return JWTMessage{}, fmt.Errorf("unknown role %q", role)
	}
	return JWTMessage{
		UserID:      claims.Subject,
		Email:       claims.Email,
		Role:        role,
		WorkspaceID: claims.WorkspaceID,
	}, nil
}
