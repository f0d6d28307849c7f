package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const (
	// The current supported version of the sealed blob format.
	sealedFormatVersion = 1
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the ciphertext was modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted session data")
)

// blob is the JSON structure holding the ciphertext and KDF parameters.
type blob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// encrypt derives a key from passphrase and seals raw into a JSON blob.
// The storage key is bound as additional data so blobs cannot be swapped between keys.
func encrypt(passphrase, key string, raw []byte, N, r, p int) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	k, err := scrypt.Key([]byte(passphrase), salt[:], N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(k)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key is fresh per write
	ct := aead.Seal(nil, nonce[:], raw, additionalData(salt[:], key))

	return json.Marshal(blob{
		V:      sealedFormatVersion,
		Salt:   salt[:],
		N:      N,
		R:      r,
		P:      p,
		Cipher: ct,
	})
}

// decrypt opens the JSON blob using a key derived from passphrase.
func decrypt(passphrase, key string, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, err
	}
	if bl.V > sealedFormatVersion {
		return nil, fmt.Errorf("unsupported sealed format version %d", bl.V)
	}

	k, err := scrypt.Key([]byte(passphrase), bl.Salt, bl.N, bl.R, bl.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(k)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], bl.Cipher, additionalData(bl.Salt, key))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func additionalData(salt []byte, key string) []byte {
	ad := make([]byte, 0, len(salt)+len(key))
	ad = append(ad, salt...)
	return append(ad, key...)
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }
