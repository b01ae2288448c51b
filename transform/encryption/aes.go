package encryption

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
)

// Name identifies the output format
const Name = "aes-256-cbc"

// Key and IV are embedded in the binary, so anyone holding a copy can
// decrypt the output. They exist for compatibility with files produced by
// earlier releases and must not be used to protect real data.
const (
	Key = "0123456789ABCDEF0123456789ABCDEF"
	IV  = "ABCDEF0123456789"
)

// ErrCipher is returned when the cipher cannot be set up
var ErrCipher = errors.New("cipher error")

// Encrypt encrypts data with AES-256-CBC and PKCS#7 padding under the fixed Key and IV.
// The result is always a non-empty multiple of aes.BlockSize.
func Encrypt(data []byte) ([]byte, error) {
	return encrypt(data, []byte(Key), []byte(IV))
}

func encrypt(data, key, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCipher, err)
	}
	if len(iv) != block.BlockSize() {
		return nil, fmt.Errorf("%w: invalid IV size %d", ErrCipher, len(iv))
	}

	padded := pad(data, block.BlockSize())
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)

	return out, nil
}

// pad appends PKCS#7 padding. A full block is added when data is already aligned.
func pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data), len(data)+n)
	copy(out, data)
	return append(out, bytes.Repeat([]byte{byte(n)}, n)...)
}
