package orders

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ReferenceGenerator mints opaque order references attached to charge
// metadata, so a charge can be traced back to a checkout without exposing
// anything guessable.
type ReferenceGenerator struct {
	secret string
}

func NewReferenceGenerator(secret string) *ReferenceGenerator {
	return &ReferenceGenerator{secret: secret}
}

func (g *ReferenceGenerator) Generate(productID string) string {
	nonce := uuid.NewString()

	mac := hmac.New(sha256.New, []byte(g.secret))
	mac.Write([]byte(fmt.Sprintf("product:%s|nonce:%s", productID, nonce)))

	sum := mac.Sum(nil)
	tag := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(sum)

	return fmt.Sprintf(
		"BSTN-%s-%s",
		strings.ToUpper(tag[:4]),
		strings.ToUpper(nonce[:4]),
	)
}
