package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretBox_RoundTrip(t *testing.T) {
	box, err := NewSecretBox("segredo")
	require.NoError(t, err)

	cipherText, err := box.Encrypt("EAAB-long-lived-token")
	require.NoError(t, err)
	assert.NotContains(t, cipherText, "EAAB")

	plain, err := box.Decrypt(cipherText)
	require.NoError(t, err)
	assert.Equal(t, "EAAB-long-lived-token", plain)
}

func TestSecretBox_WrongKey(t *testing.T) {
	box, _ := NewSecretBox("segredo")
	other, _ := NewSecretBox("outro")

	cipherText, err := box.Encrypt("token")
	require.NoError(t, err)

	_, err = other.Decrypt(cipherText)
	assert.ErrorIs(t, err, ErrInvalidCipher)

	_, err = box.Decrypt("lixo")
	assert.ErrorIs(t, err, ErrInvalidCipher)
}

func TestSecretBox_Empty(t *testing.T) {
	_, err := NewSecretBox("")
	assert.ErrorIs(t, err, ErrEmptyKey)

	box, _ := NewSecretBox("segredo")
	out, err := box.Encrypt("")
	require.NoError(t, err)
	assert.Empty(t, out)
}
