package vault_test

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/certbridge/certbridge/pkg/certbridge/vault"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type VaultTestSuite struct {
	suite.Suite

	vault *vault.Vault
}

func TestVaultTestSuite(t *testing.T) {
	suite.Run(t, new(VaultTestSuite))
}

func (s *VaultTestSuite) SetupTest() {
	v, err := vault.New("host-secret")
	s.Require().NoError(err)
	s.vault = v
}

func TestNewWithEmptySecret(t *testing.T) {
	_, err := vault.New("")
	require.ErrorIs(t, err, model.ErrKeyUnavailable)
}

func (s *VaultTestSuite) TestRoundTrip() {
	plaintext := []byte(`{"auth_key":"secret-value"}`)

	envelope, err := s.vault.Encrypt(plaintext)
	s.Require().NoError(err)
	s.NotContains(envelope, "secret-value")

	decrypted, err := s.vault.Decrypt(envelope)
	s.Require().NoError(err)
	s.Equal(plaintext, decrypted)
}

func (s *VaultTestSuite) TestEncryptIsRandomized() {
	first, err := s.vault.Encrypt([]byte("payload"))
	s.Require().NoError(err)
	second, err := s.vault.Encrypt([]byte("payload"))
	s.Require().NoError(err)
	s.NotEqual(first, second)
}

func (s *VaultTestSuite) TestTamperedEnvelope() {
	envelope, err := s.vault.Encrypt([]byte("payload"))
	s.Require().NoError(err)

	raw, err := base64.StdEncoding.DecodeString(envelope)
	s.Require().NoError(err)
	raw[len(raw)-1] ^= 0x01
	tampered := base64.StdEncoding.EncodeToString(raw)

	_, err = s.vault.Decrypt(tampered)
	s.Require().ErrorIs(err, model.ErrIntegrity)
	s.Require().ErrorIs(err, model.ErrVaultError)
}

func (s *VaultTestSuite) TestMalformedEnvelope() {
	_, err := s.vault.Decrypt("not-base64!!!")
	s.Require().ErrorIs(err, model.ErrMalformedEnvelope)

	short := base64.StdEncoding.EncodeToString([]byte("too short"))
	_, err = s.vault.Decrypt(short)
	s.Require().ErrorIs(err, model.ErrMalformedEnvelope)
}

func (s *VaultTestSuite) TestWrongKeyFailsClosed() {
	envelope, err := s.vault.Encrypt([]byte("payload"))
	s.Require().NoError(err)

	other, err := vault.New("different-secret")
	s.Require().NoError(err)

	_, err = other.Decrypt(envelope)
	s.Require().ErrorIs(err, model.ErrIntegrity)
}

// TestLegacyEnvelope builds an unauthenticated envelope the way the previous
// integration wrote them and checks it still opens.
func (s *VaultTestSuite) TestLegacyEnvelope() {
	key := sha256.Sum256([]byte("host-secret" + "certbridge-credential-v1"))
	plaintext := []byte(`{"api_key":"legacy"}`)

	iv := make([]byte, aes.BlockSize)
	_, err := rand.Read(iv)
	s.Require().NoError(err)

	block, err := aes.NewCipher(key[:])
	s.Require().NoError(err)
	ciphertext := make([]byte, len(plaintext))
	cipher.NewCTR(block, iv).XORKeyStream(ciphertext, plaintext)

	envelope := base64.StdEncoding.EncodeToString(iv) + "::" + base64.StdEncoding.EncodeToString(ciphertext)

	decrypted, err := s.vault.Decrypt(envelope)
	s.Require().NoError(err)
	s.Equal(plaintext, decrypted)

	credentials, err := s.vault.DecryptMap(envelope)
	s.Require().NoError(err)
	s.Equal("legacy", credentials["api_key"])
}

func (s *VaultTestSuite) TestLegacyEnvelopeMalformed() {
	_, err := s.vault.Decrypt("short-iv::" + base64.StdEncoding.EncodeToString([]byte("x")))
	s.Require().ErrorIs(err, model.ErrMalformedEnvelope)
}

func (s *VaultTestSuite) TestCredentialMapRoundTrip() {
	credentials := map[string]string{
		"partner_code": "pc-1",
		"auth_token":   "tok-1",
	}

	envelope, err := s.vault.EncryptMap(credentials)
	s.Require().NoError(err)

	decrypted, err := s.vault.DecryptMap(envelope)
	s.Require().NoError(err)
	s.Equal(credentials, decrypted)
}
