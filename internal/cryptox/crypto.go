// Package cryptox implements the at-rest protection for entry secrets:
// AES-128 in CBC mode with PKCS#7 padding. Every encryption draws a fresh
// random IV, and the token is base64(IV || ciphertext), so encrypting the
// same plaintext twice yields different tokens.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/euks-jp/passkeeper/internal/common"
)

// KeySize is the AES-128 key length in bytes.
const KeySize = 16

// Cipher encrypts and decrypts entry secrets with a single symmetric key.
// The key is injected by the caller (see config.Config.EncryptionKey) and
// must be exactly KeySize bytes.
type Cipher struct {
	key []byte
}

// NewCipher returns a Cipher for the given key, or ErrorInvalidKeySize when
// the key is not a valid AES-128 key. The key is copied.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", common.ErrorInvalidKeySize, len(key), KeySize)
	}
	k := make([]byte, KeySize)
	copy(k, key)
	return &Cipher{key: k}, nil
}

// Encrypt turns a plaintext secret into an opaque, transport-safe token.
// The empty string is a valid plaintext.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorCryptoFailure, err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorCryptoFailure, err)
	}

	padded := pad([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	token := make([]byte, 0, len(iv)+len(ciphertext))
	token = append(token, iv...)
	token = append(token, ciphertext...)
	return base64.StdEncoding.EncodeToString(token), nil
}

// Decrypt parses a token produced by Encrypt: the first aes.BlockSize bytes
// are the IV, the remainder the ciphertext. A token that is not valid
// base64, too short, not block-aligned or incorrectly padded yields an
// ErrorMalformedToken-wrapped error, never garbage plaintext.
func (c *Cipher) Decrypt(token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorMalformedToken, err)
	}
	if len(raw) < 2*aes.BlockSize || (len(raw)-aes.BlockSize)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: token length %d", common.ErrorMalformedToken, len(raw))
	}

	iv, ciphertext := raw[:aes.BlockSize], raw[aes.BlockSize:]

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorCryptoFailure, err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := unpad(plaintext, aes.BlockSize)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorMalformedToken, err)
	}
	return string(unpadded), nil
}

// pad appends PKCS#7 padding: n bytes of value n, 1 <= n <= size.
func pad(b []byte, size int) []byte {
	n := size - len(b)%size
	out := make([]byte, len(b)+n)
	copy(out, b)
	for i := len(b); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// unpad strips and verifies PKCS#7 padding.
func unpad(b []byte, size int) ([]byte, error) {
	if len(b) == 0 || len(b)%size != 0 {
		return nil, errors.New("invalid padded length")
	}
	n := int(b[len(b)-1])
	if n == 0 || n > size {
		return nil, errors.New("invalid padding byte")
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, errors.New("inconsistent padding")
		}
	}
	return b[:len(b)-n], nil
}
