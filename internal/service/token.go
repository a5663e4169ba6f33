package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Skotchmaster/restaurant_ordering/pkg/tokens"
)

type TokenIssuer interface {
	Issue(id uint, role string) (string, error)
}

// LegacyTokens issues "<prefix>-<id>-<unix millis>" session markers. They are
// not credentials and nothing verifies them.
type LegacyTokens struct {
	Now func() time.Time
}

func (t LegacyTokens) Issue(id uint, role string) (string, error) {
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}
	prefix := "demo-token"
	if role == tokens.RoleAdmin {
		prefix = "admin-token"
	}
	return fmt.Sprintf("%s-%d-%d", prefix, id, now().UnixMilli()), nil
}

type JWTTokens struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

func (t JWTTokens) Issue(id uint, role string) (string, error) {
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}
	return tokens.Sign(strconv.FormatUint(uint64(id), 10), role, now().Add(t.TTL), t.Secret)
}
