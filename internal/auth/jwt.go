package auth

import (
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	autherrors "github.com/Vectus-Drive/backend/internal/auth/errors"
	"github.com/Vectus-Drive/backend/internal/domain"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 30 * 24 * time.Hour
)

// Claims is the decoded, validated content of one of our tokens.
type Claims struct {
	UserID    string
	Role      domain.Role
	JTI       string
	ExpiresAt time.Time
}

// TokenPair is one issued access/refresh pair. Each token carries its own jti.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshJTI       string
	RefreshExpiresAt time.Time
}

// TokenManager signs and parses HS256 tokens. Both token kinds are bound to
// the subject id and carry the role as a signed claim, so authorization never
// needs a database round-trip for role alone.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// NewTokenManagerFromEnv reads JWT_SECRET plus the TTL tunables
// ACCESS_TOKEN_TTL_SECONDS and REFRESH_TOKEN_TTL_SECONDS.
func NewTokenManagerFromEnv() *TokenManager {
	return NewTokenManager(
		os.Getenv("JWT_SECRET"),
		ttlFromEnv("ACCESS_TOKEN_TTL_SECONDS"),
		ttlFromEnv("REFRESH_TOKEN_TTL_SECONDS"),
	)
}

func ttlFromEnv(key string) time.Duration {
	secs, err := strconv.Atoi(os.Getenv(key))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

func (m *TokenManager) AccessTTL() time.Duration  { return m.accessTTL }
func (m *TokenManager) RefreshTTL() time.Duration { return m.refreshTTL }

// IssuePair signs a fresh access/refresh pair for the subject.
func (m *TokenManager) IssuePair(userID string, role domain.Role) (TokenPair, error) {
	now := time.Now()

	accessExp := now.Add(m.accessTTL)
	access, err := m.sign(userID, role, "access", uuid.NewString(), now, accessExp)
	if err != nil {
		return TokenPair{}, err
	}

	refreshJTI := uuid.NewString()
	refreshExp := now.Add(m.refreshTTL)
	refresh, err := m.sign(userID, role, "refresh", refreshJTI, now, refreshExp)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresAt:  accessExp,
		RefreshJTI:       refreshJTI,
		RefreshExpiresAt: refreshExp,
	}, nil
}

func (m *TokenManager) sign(userID string, role domain.Role, typ, jti string, iat, exp time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role.String(),
		"typ":  typ,
		"jti":  jti,
		"iat":  iat.Unix(),
		"exp":  exp.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseAccess validates an access token and returns its claims.
func (m *TokenManager) ParseAccess(tokenString string) (Claims, error) {
	return m.parse(tokenString, "access")
}

// ParseRefresh validates a refresh token and returns its claims.
func (m *TokenManager) ParseRefresh(tokenString string) (Claims, error) {
	return m.parse(tokenString, "refresh")
}

func (m *TokenManager) parse(tokenString, wantTyp string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, autherrors.ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, autherrors.ErrInvalidToken
	}

	if typ, _ := mapClaims["typ"].(string); typ != wantTyp {
		return Claims{}, autherrors.ErrInvalidToken
	}

	sub, _ := mapClaims["sub"].(string)
	jti, _ := mapClaims["jti"].(string)
	if sub == "" || jti == "" {
		return Claims{}, autherrors.ErrInvalidToken
	}

	roleStr, _ := mapClaims["role"].(string)
	role, err := domain.ParseRole(roleStr)
	if err != nil {
		return Claims{}, autherrors.ErrInvalidToken
	}

	exp, _ := mapClaims["exp"].(float64)

	return Claims{
		UserID:    sub,
		Role:      role,
		JTI:       jti,
		ExpiresAt: time.Unix(int64(exp), 0),
	}, nil
}
