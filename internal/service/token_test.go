package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/restaurant_ordering/pkg/tokens"
)

func TestLegacyTokens(t *testing.T) {
	issuer := LegacyTokens{Now: func() time.Time { return time.UnixMilli(1234) }}

	tok, err := issuer.Issue(7, tokens.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, "demo-token-7-1234", tok)

	tok, err = issuer.Issue(3, tokens.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "admin-token-3-1234", tok)
}

func TestJWTTokens_Expiry(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	issuer := JWTTokens{Secret: []byte("k"), TTL: 30 * time.Minute, Now: func() time.Time { return now }}

	tok, err := issuer.Issue(5, tokens.RoleCustomer)
	require.NoError(t, err)

	claims, err := tokens.ClaimsFromToken(tok, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "5", claims.Subject)
	assert.Equal(t, tokens.RoleCustomer, claims.Role)
	assert.WithinDuration(t, now.Add(30*time.Minute), claims.ExpiresAt.Time, time.Second)

	_, err = tokens.ClaimsFromToken(tok, []byte("other"))
	assert.Error(t, err)
}
