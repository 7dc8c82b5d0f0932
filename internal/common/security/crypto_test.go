package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadCipher_RoundTrip(t *testing.T) {
	cipher, err := NewPayloadCipher([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	plaintext := []byte(`{"_id":"user-1","username":"alice"}`)
	encoded, err := cipher.Encrypt(plaintext)
	require.NoError(t, err)
	assert.NotContains(t, encoded, "alice")

	decrypted, err := cipher.Decrypt(encoded)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestPayloadCipher_WrongKeyFails(t *testing.T) {
	encryptor, err := NewPayloadCipher([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	decryptor, err := NewPayloadCipher([]byte("fedcba9876543210fedcba9876543210"))
	require.NoError(t, err)

	encoded, err := encryptor.Encrypt([]byte("payload"))
	require.NoError(t, err)

	_, err = decryptor.Decrypt(encoded)
	assert.ErrorIs(t, err, ErrCipherInvalid)
}

func TestPayloadCipher_MalformedInput(t *testing.T) {
	cipher, err := NewPayloadCipher([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	for _, encoded := range []string{"", "%%%not-base64%%%", "c2hvcnQ"} {
		_, err := cipher.Decrypt(encoded)
		assert.ErrorIs(t, err, ErrCipherInvalid)
	}
}

func TestNewPayloadCipher_RejectsBadKeyLength(t *testing.T) {
	_, err := NewPayloadCipher([]byte("too short"))
	assert.Error(t, err)
}
