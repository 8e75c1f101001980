package downloads

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	hashids "github.com/speps/go-hashids/v2"
)

var ErrInvalidToken = errors.New("invalid or expired download token")

// Signer provisions download references for purchased products. A reference
// is {base}/v1/store/downloads/{ref}?token={jwt}: ref is a hashid of the
// product's file handle so raw ids never appear in links, and the token is a
// short-lived HS256 JWT binding the link to the product.
type Signer struct {
	secret  string
	baseURL string
	iss     string
	ttl     time.Duration
	h       *hashids.HashID
}

func NewSigner(secret, baseURL, iss string, ttl time.Duration) (*Signer, error) {
	if secret == "" {
		return nil, errors.New("download token secret is required")
	}

	hd := hashids.NewData()
	hd.Salt = secret
	hd.MinLength = 8
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, fmt.Errorf("init hashids: %w", err)
	}

	return &Signer{
		secret:  secret,
		baseURL: baseURL,
		iss:     iss,
		ttl:     ttl,
		h:       h,
	}, nil
}

// SignURL mints a download URL for the product.
func (s *Signer) SignURL(productID string, fileID int64) (string, error) {
	ref, err := s.h.EncodeInt64([]int64{fileID})
	if err != nil {
		return "", fmt.Errorf("encode file reference: %w", err)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   productID,
		Issuer:    s.iss,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("sign download token: %w", err)
	}

	return fmt.Sprintf("%s/v1/store/downloads/%s?token=%s", s.baseURL, ref, url.QueryEscape(token)), nil
}

// Verify checks a redeemed reference and token, returning the product id
// the link was minted for and the decoded file handle.
func (s *Signer) Verify(ref, token string) (string, int64, error) {
	ids, err := s.h.DecodeInt64WithError(ref)
	if err != nil || len(ids) != 1 {
		return "", 0, ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(s.secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithIssuer(s.iss), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return "", 0, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", 0, ErrInvalidToken
	}

	return claims.Subject, ids[0], nil
}
