package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
)

// DefaultScanTokenTTL is the lifetime of a scan token when none is requested.
const DefaultScanTokenTTL = 1440 * time.Minute

const (
	scanTokenSeparator = ":"
	signatureHexLen    = 16
)

var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenInvalidSignature = errors.New("token invalid signature")
	ErrTokenExpired          = errors.New("token expired")
)

// ScanToken is a self-contained capability binding an order to a physical scan
// until ExpiresAt. Its wire form is orderId:expiresAtEpochMillis:signature.
type ScanToken struct {
	OrderID   kernel.UUID
	ExpiresAt time.Time
	Signature string
}

func (t ScanToken) String() string {
	return strings.Join([]string{
		t.OrderID.String(),
		strconv.FormatInt(t.ExpiresAt.UnixMilli(), 10),
		t.Signature,
	}, scanTokenSeparator)
}

type ScanTokenOption func(*ScanTokenService)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) ScanTokenOption {
	return func(s *ScanTokenService) {
		s.now = now
	}
}

// ScanTokenService issues and validates scan tokens. The signature is the
// first 16 hex characters of HMAC-SHA256(secret, "orderId:expiresAtEpochMillis").
// Validation needs no storage: expiry is the only way a token stops being
// valid here.
type ScanTokenService struct {
	secret []byte
	now    func() time.Time
}

func NewScanTokenService(secret string, opts ...ScanTokenOption) (*ScanTokenService, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("scan token secret")
	}
	s := &ScanTokenService{secret: []byte(secret), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue mints a token for orderID valid for ttl.
func (s *ScanTokenService) Issue(orderID kernel.UUID, ttl time.Duration) (ScanToken, error) {
	if err := orderID.Validate(); err != nil {
		return ScanToken{}, err
	}
	if ttl <= 0 {
		return ScanToken{}, errs.NewValueIsInvalidErrorWithCause("ttl", fmt.Errorf("%s is not positive", ttl))
	}

	expiresAt := s.now().Add(ttl).Truncate(time.Millisecond)
	return ScanToken{
		OrderID:   orderID,
		ExpiresAt: expiresAt,
		Signature: s.sign(orderID.String(), expiresAt.UnixMilli()),
	}, nil
}

// Validate checks a token's structure, signature and expiry and returns the
// order it was issued for. It fails with ErrTokenMalformed,
// ErrTokenInvalidSignature or ErrTokenExpired.
func (s *ScanTokenService) Validate(token string) (kernel.UUID, error) {
	parts := strings.Split(strings.TrimSpace(token), scanTokenSeparator)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return kernel.UUID{}, fmt.Errorf("%w: expected orderId:expiresAt:signature", ErrTokenMalformed)
	}
	rawOrderID, rawExpires, signature := parts[0], parts[1], parts[2]

	expiresMillis, err := strconv.ParseInt(rawExpires, 10, 64)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: expiry is not an integer", ErrTokenMalformed)
	}
	orderID, err := kernel.UUIDFromString(rawOrderID)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: order id is not a UUID", ErrTokenMalformed)
	}

	expected := s.sign(rawOrderID, expiresMillis)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return kernel.UUID{}, ErrTokenInvalidSignature
	}

	if s.now().UnixMilli() > expiresMillis {
		return kernel.UUID{}, ErrTokenExpired
	}

	return orderID, nil
}

func (s *ScanTokenService) sign(orderID string, expiresMillis int64) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(orderID + scanTokenSeparator + strconv.FormatInt(expiresMillis, 10)))
	return hex.EncodeToString(mac.Sum(nil))[:signatureHexLen]
}
