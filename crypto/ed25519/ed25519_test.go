package ed25519

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeterministicSignatures(t *testing.T) {
	seed, err := hex.DecodeString("9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	require.NoError(t, err)

	priv, err := PrivKeyFromSeed(seed)
	require.NoError(t, err)

	// RFC 8032 test vector 1: empty message.
	require.Equal(t,
		"d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a",
		hex.EncodeToString(priv.PubKey().Bytes()),
	)

	sig, err := priv.Sign(nil)
	require.NoError(t, err)
	require.Equal(t,
		"e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e06522490155"+
			"5fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b",
		hex.EncodeToString(sig),
	)

	again, err := priv.Sign(nil)
	require.NoError(t, err)
	require.Equal(t, sig, again)
}

func TestGenerateAndVerify(t *testing.T) {
	priv, seed, err := GenerateKey()
	require.NoError(t, err)
	require.Len(t, seed, SeedSize)

	msg := []byte("hello world")
	sig, err := priv.Sign(msg)
	require.NoError(t, err)
	require.True(t, priv.PubKey().VerifySignature(msg, sig))
	require.False(t, priv.PubKey().VerifySignature([]byte("hello worle"), sig))

	restored, err := PrivKeyFromSeed(seed)
	require.NoError(t, err)
	require.True(t, priv.Equals(restored))
	require.True(t, priv.PubKey().Equals(restored.PubKey()))
}

func TestSeedLength(t *testing.T) {
	_, err := PrivKeyFromSeed(make([]byte, 31))
	require.ErrorIs(t, err, ErrInvalidSeed)
}

func TestZeroize(t *testing.T) {
	priv, _, err := GenerateKey()
	require.NoError(t, err)

	priv.Zeroize()
	_, err = priv.Sign([]byte("late"))
	require.ErrorIs(t, err, ErrKeyZeroized)
}
