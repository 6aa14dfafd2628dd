package auth

import (
	"encoding/base64"
	"testing"

	"messenger/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *argon2Hasher {
	cfg := &config.Config{}
	cfg.PasswordHash = config.PasswordHashConfig{
		Memory:      config.DefaultHashMemory,
		Iterations:  config.DefaultHashIterations,
		Parallelism: config.DefaultHashParallelism,
		SaltLength:  config.DefaultHashSaltLength,
		KeyLength:   config.DefaultHashKeyLength,
	}

	return NewArgon2Hasher(cfg).(*argon2Hasher)
}

func TestArgon2Hasher_HashAndVerify(t *testing.T) {
	hasher := newTestHasher()

	verifier, err := hasher.Hash("Password1!")
	require.NoError(t, err)

	assert.True(t, hasher.Verify("Password1!", verifier))
	assert.False(t, hasher.Verify("wrongpass", verifier))
	assert.False(t, hasher.Verify("", verifier))
}

func TestArgon2Hasher_VerifierLayout(t *testing.T) {
	hasher := newTestHasher()

	verifier, err := hasher.Hash("Password1!")
	require.NoError(t, err)

	assert.Len(t, verifier, 192)

	blob, err := base64.StdEncoding.DecodeString(verifier)
	require.NoError(t, err)
	assert.Len(t, blob, 16+128)

	// Re-deriving with the embedded salt reproduces the stored hash.
	assert.Equal(t, blob[16:], hasher.derive("Password1!", blob[:16]))
}

func TestArgon2Hasher_SaltIsRandom(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("Password1!")
	require.NoError(t, err)
	second, err := hasher.Hash("Password1!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("Password1!", first))
	assert.True(t, hasher.Verify("Password1!", second))
}

func TestArgon2Hasher_DistinctPasswordsDoNotCrossVerify(t *testing.T) {
	hasher := newTestHasher()

	passwords := []string{"alpha1", "alpha2", "Alpha1", "bravo99", "Password1!"}
	verifiers := make([]string, len(passwords))
	for i, p := range passwords {
		v, err := hasher.Hash(p)
		require.NoError(t, err)
		verifiers[i] = v
	}

	for i, p := range passwords {
		for j, v := range verifiers {
			assert.Equal(t, i == j, hasher.Verify(p, v), "password %q against verifier %d", p, j)
		}
	}
}

func TestArgon2Hasher_MalformedVerifierFailsClosed(t *testing.T) {
	hasher := newTestHasher()

	valid, err := hasher.Hash("Password1!")
	require.NoError(t, err)
	blob, err := base64.StdEncoding.DecodeString(valid)
	require.NoError(t, err)

	tests := []struct {
		name     string
		verifier string
	}{
		{name: "empty", verifier: ""},
		{name: "not base64", verifier: "!!!not-base64!!!"},
		{name: "salt only", verifier: base64.StdEncoding.EncodeToString(blob[:16])},
		{name: "truncated hash", verifier: base64.StdEncoding.EncodeToString(blob[:len(blob)-1])},
		{name: "extra byte", verifier: base64.StdEncoding.EncodeToString(append(append([]byte{}, blob...), 0))},
		{name: "url alphabet", verifier: base64.URLEncoding.EncodeToString([]byte{0xfb, 0xff})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, hasher.Verify("Password1!", tt.verifier))
			})
		})
	}
}

func TestArgon2Hasher_EmptyPassword(t *testing.T) {
	hasher := newTestHasher()

	_, err := hasher.Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}
