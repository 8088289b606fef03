package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cred, err := Parse("Bearer a_b")
	require.NoError(t, err)
	assert.Equal(t, "a", cred.Subject)
	assert.Equal(t, "b", cred.Role)
	assert.Equal(t, "a_b", cred.Token)
}

func TestParse_TrimsPayload(t *testing.T) {
	cred, err := Parse("Bearer   u42_Admin  ")
	require.NoError(t, err)
	assert.Equal(t, "u42", cred.Subject)
	assert.Equal(t, "Admin", cred.Role)
}

func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"no separator", "Bearer abc"},
		{"wrong scheme", "Basic xyz"},
		{"empty header", ""},
		{"empty subject", "Bearer _Admin"},
		{"empty role", "Bearer u1_"},
		{"too many parts", "Bearer u1_Admin_extra"},
		{"payload only", "u1_Admin"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.header)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestMintRoundTrip(t *testing.T) {
	cred, err := ParseToken(Mint("u7", "Engineer"))
	require.NoError(t, err)
	assert.Equal(t, "u7", cred.Subject)
	assert.Equal(t, "Engineer", cred.Role)
	assert.False(t, cred.IsAdmin())
}

func TestIsAdmin(t *testing.T) {
	cred, err := ParseToken("u1_Admin")
	require.NoError(t, err)
	assert.True(t, cred.IsAdmin())
}
