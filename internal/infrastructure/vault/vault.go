package vault

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingEncryptionKey = errors.New("RAZORPAY_ENCRYPTION_KEY is required")
	ErrUnsupportedFormat    = errors.New("ciphertext is not in salted openssl format")
	ErrDecrypt              = errors.New("decryption failed")
)

var saltedPrefix = []byte("Salted__")

const (
	keyLen  = 32
	saltLen = 8
)

// Vault decrypts processor secrets stored by the dashboard. Ciphertexts use the
// OpenSSL salted layout produced by CryptoJS.AES with a passphrase:
// base64("Salted__" | salt[8] | AES-256-CBC(PKCS#7)), key and IV derived with
// EVP_BytesToKey over MD5.
type Vault struct {
	passphrase []byte
}

func NewVault(passphrase string) (*Vault, error) {
	if strings.TrimSpace(passphrase) == "" {
		return nil, ErrMissingEncryptionKey
	}
	return &Vault{passphrase: []byte(passphrase)}, nil
}

func (v *Vault) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(ciphertext))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	if len(raw) < len(saltedPrefix)+saltLen+aes.BlockSize || !bytes.HasPrefix(raw, saltedPrefix) {
		return "", ErrUnsupportedFormat
	}

	salt := raw[len(saltedPrefix) : len(saltedPrefix)+saltLen]
	body := raw[len(saltedPrefix)+saltLen:]
	if len(body)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext is not a multiple of the block size", ErrDecrypt)
	}

	key, iv := deriveKeyIV(v.passphrase, salt)
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	plain := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, body)

	plain, err = unpad(plain)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// Encrypt produces the same layout Decrypt accepts. Used to seed profiles.
func (v *Vault) Encrypt(plaintext string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key, iv := deriveKeyIV(v.passphrase, salt)
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	padded := pad([]byte(plaintext))
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)

	buf := make([]byte, 0, len(saltedPrefix)+saltLen+len(out))
	buf = append(buf, saltedPrefix...)
	buf = append(buf, salt...)
	buf = append(buf, out...)
	return base64.StdEncoding.EncodeToString(buf), nil
}

func deriveKeyIV(passphrase, salt []byte) (key, iv []byte) {
	var d, prev []byte
	for len(d) < keyLen+aes.BlockSize {
		h := md5.New()
		h.Write(prev)
		h.Write(passphrase)
		h.Write(salt)
		prev = h.Sum(nil)
		d = append(d, prev...)
	}
	return d[:keyLen], d[keyLen : keyLen+aes.BlockSize]
}

func pad(b []byte) []byte {
	n := aes.BlockSize - len(b)%aes.BlockSize
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty plaintext", ErrDecrypt)
	}
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize || n > len(b) {
		return nil, fmt.Errorf("%w: bad padding", ErrDecrypt)
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, fmt.Errorf("%w: bad padding", ErrDecrypt)
		}
	}
	return b[:len(b)-n], nil
}
