package helpers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssueVerifyRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", 24*time.Hour)

	token, exp, err := m.Issue("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now().Add(23*time.Hour)), "expiry should be about a day out")

	subject, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", subject)
}

func TestJWTVerifyExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, _, err := m.Issue("alice@example.com")
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTVerifyWrongSecret(t *testing.T) {
	issuer := NewJWTManager("right-secret", time.Hour)
	verifier := NewJWTManager("wrong-secret", time.Hour)

	token, _, err := issuer.Issue("alice@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestJWTVerifyMalformed(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	for _, tokenStr := range []string{"", "garbage", "not.a.jwt", "a.b"} {
		_, err := m.Verify(tokenStr)
		assert.ErrorIs(t, err, ErrTokenMalformed, "input %q", tokenStr)
	}
}

// Any single-character mutation of the token text must fail verification.
// The final character of each segment is skipped: base64 leaves trailing
// bits unused there, so a mutation can decode to identical bytes.
func TestJWTVerifyTamperedToken(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, _, err := m.Issue("alice@example.com")
	require.NoError(t, err)

	segments := strings.Split(token, ".")
	require.Len(t, segments, 3)

	offset := 0
	for _, seg := range segments {
		for i := 0; i < len(seg)-1; i++ {
			pos := offset + i
			mutated := []byte(token)
			if mutated[pos] == 'A' {
				mutated[pos] = 'B'
			} else {
				mutated[pos] = 'A'
			}
			_, err := m.Verify(string(mutated))
			require.Error(t, err, "mutation at byte %d verified successfully", pos)
			require.True(t,
				err == ErrTokenSignatureInvalid || err == ErrTokenMalformed || err == ErrTokenExpired,
				"mutation at byte %d: unexpected error %v", pos, err)
		}
		offset += len(seg) + 1
	}
}
