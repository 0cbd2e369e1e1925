package authtoken

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims mirrors the payload minted by the external auth server.
type Claims struct {
	UserID    int64  `json:"user_id"`
	LevelName string `json:"level_name,omitempty"`
	jwt.RegisteredClaims
}

// Identity is what the HTTP layer needs from a verified token.
type Identity struct {
	UserID    int64
	LevelName string
}

type Verifier interface {
	Verify(tokenString string) (*Identity, error)
}

type hmacVerifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewHMACVerifier(secret string) Verifier {
	return &hmacVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{
			jwt.SigningMethodHS256.Alg(),
			jwt.SigningMethodHS384.Alg(),
			jwt.SigningMethodHS512.Alg(),
		})),
	}
}

func (v *hmacVerifier) Verify(tokenString string) (*Identity, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, ErrMissingToken
	}
	claims := &Claims{}
	parsed, err := v.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	userID := claims.UserID
	if userID == 0 && claims.Subject != "" {
		// Tokens minted with only a numeric subject are accepted too.
		id, convErr := strconv.ParseInt(claims.Subject, 10, 64)
		if convErr != nil {
			return nil, fmt.Errorf("%w: subject is not a user id", ErrInvalidToken)
		}
		userID = id
	}
	if userID <= 0 {
		return nil, fmt.Errorf("%w: no user id in token", ErrInvalidToken)
	}
	return &Identity{UserID: userID, LevelName: claims.LevelName}, nil
}

// Sign mints an HS256 token for the given identity. Token issuance belongs to
// the auth server; this exists for tooling and tests.
func Sign(secret string, claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
