package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var (
	ErrEmptyKey      = errors.New("chave de criptografia não pode ser vazia")
	ErrInvalidCipher = errors.New("texto cifrado inválido")
)

// TokenCipher cifra os tokens de acesso antes de irem para o banco
type TokenCipher interface {
	Encrypt(plain string) (string, error)
	Decrypt(cipherText string) (string, error)
}

type SecretBox struct {
	key [32]byte
}

// NewSecretBox deriva uma chave de 32 bytes a partir do segredo configurado
func NewSecretBox(secret string) (*SecretBox, error) {
	if secret == "" {
		return nil, ErrEmptyKey
	}

	return &SecretBox{key: sha256.Sum256([]byte(secret))}, nil
}

func (s *SecretBox) Encrypt(plain string) (string, error) {
	if plain == "" {
		return "", nil
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", err
	}

	sealed := secretbox.Seal(nonce[:], []byte(plain), &nonce, &s.key)

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (s *SecretBox) Decrypt(cipherText string) (string, error) {
	if cipherText == "" {
		return "", nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(cipherText)
	if err != nil || len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrInvalidCipher
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", ErrInvalidCipher
	}

	return string(plain), nil
}
