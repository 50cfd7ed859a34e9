// Package vault envelope-encrypts provider API credentials at rest. The
// symmetric key is derived from a platform-level secret so the module never
// stores a master secret of its own.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/goccy/go-json"
)

const (
	// moduleSalt namespaces the derived key to this module. Changing it
	// invalidates every stored envelope.
	moduleSalt = "certbridge-credential-v1"

	ivSize  = aes.BlockSize
	tagSize = sha256.Size

	legacySeparator = "::"
)

type Vault struct {
	key []byte
}

// New derives the vault key from the host platform's secret. An empty secret
// is a fatal configuration error, not something to fall back from.
func New(hostSecret string) (*Vault, error) {
	if hostSecret == "" {
		return nil, model.ErrKeyUnavailable
	}
	key := sha256.Sum256([]byte(hostSecret + moduleSalt))
	return &Vault{key: key[:]}, nil
}

// Encrypt seals plaintext into the authenticated envelope format:
// base64(tag || iv || ciphertext), with the HMAC-SHA256 tag covering
// iv || ciphertext.
func (v *Vault) Encrypt(plaintext []byte) (string, error) {
	iv := make([]byte, ivSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("Vault::Encrypt(): fail to generate iv: %w", err)
	}

	block, err := aes.NewCipher(v.key)
	if err != nil {
		return "", fmt.Errorf("Vault::Encrypt(): fail to create cipher: %w", err)
	}

	ciphertext := make([]byte, len(plaintext))
	cipher.NewCTR(block, iv).XORKeyStream(ciphertext, plaintext)

	mac := hmac.New(sha256.New, v.key)
	mac.Write(iv)
	mac.Write(ciphertext)
	tag := mac.Sum(nil)

	envelope := make([]byte, 0, tagSize+ivSize+len(ciphertext))
	envelope = append(envelope, tag...)
	envelope = append(envelope, iv...)
	envelope = append(envelope, ciphertext...)
	return base64.StdEncoding.EncodeToString(envelope), nil
}

// Decrypt opens either envelope format. The legacy format
// (base64(iv) || "::" || base64(ciphertext)) carries no integrity tag and is
// accepted for backward compatibility only; Encrypt never emits it. For the
// authenticated format the tag is recomputed before any decryption and a
// mismatch fails closed without revealing whether the cause was tampering or
// corruption.
func (v *Vault) Decrypt(envelope string) ([]byte, error) {
	if strings.Contains(envelope, legacySeparator) {
		return v.decryptLegacy(envelope)
	}

	raw, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return nil, model.ErrMalformedEnvelope
	}
	if len(raw) < tagSize+ivSize {
		return nil, model.ErrMalformedEnvelope
	}

	tag := raw[:tagSize]
	iv := raw[tagSize : tagSize+ivSize]
	ciphertext := raw[tagSize+ivSize:]

	mac := hmac.New(sha256.New, v.key)
	mac.Write(iv)
	mac.Write(ciphertext)
	if !hmac.Equal(tag, mac.Sum(nil)) {
		return nil, model.ErrIntegrity
	}

	return v.decrypt(iv, ciphertext)
}

func (v *Vault) decryptLegacy(envelope string) ([]byte, error) {
	parts := strings.SplitN(envelope, legacySeparator, 2)
	if len(parts) != 2 {
		return nil, model.ErrMalformedEnvelope
	}

	iv, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil || len(iv) != ivSize {
		return nil, model.ErrMalformedEnvelope
	}
	ciphertext, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, model.ErrMalformedEnvelope
	}

	return v.decrypt(iv, ciphertext)
}

func (v *Vault) decrypt(iv, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(v.key)
	if err != nil {
		return nil, fmt.Errorf("Vault::Decrypt(): fail to create cipher: %w", err)
	}
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCTR(block, iv).XORKeyStream(plaintext, ciphertext)
	return plaintext, nil
}

// EncryptMap seals a credential set. Provider adapters receive the decrypted
// form as plain data and never touch the vault themselves.
func (v *Vault) EncryptMap(credentials map[string]string) (string, error) {
	raw, err := json.Marshal(credentials)
	if err != nil {
		return "", fmt.Errorf("Vault::EncryptMap(): fail to marshal credentials: %w", err)
	}
	return v.Encrypt(raw)
}

func (v *Vault) DecryptMap(envelope string) (map[string]string, error) {
	raw, err := v.Decrypt(envelope)
	if err != nil {
		return nil, err
	}

	credentials := map[string]string{}
	if err := json.Unmarshal(raw, &credentials); err != nil {
		return nil, fmt.Errorf("decode credential set: %s%w", err, model.ErrMalformedEnvelope)
	}
	return credentials, nil
}
