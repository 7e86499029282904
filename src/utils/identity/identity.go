package identity

import (
	"errors"
	"strings"

	"github.com/vedhavyas/go-subkey"
	"github.com/vedhavyas/go-subkey/ed25519"
	"github.com/vedhavyas/go-subkey/sr25519"
)

const SS58_FORMAT = 42

var ErrInvalidSecret = errors.New("invalid identity secret")

// Signature scheme of the key pair. Decides how extrinsics signed by the identity are tagged.
type Scheme string

const (
	SchemeSr25519 Scheme = "sr25519"
	SchemeEd25519 Scheme = "ed25519"
)

// Identity is a signing key pair with its derived address and public key.
// It is immutable once constructed.
type Identity struct {
	scheme  Scheme
	keyPair subkey.KeyPair
	address string
}

// New derives an sr25519 identity from a mnemonic, a 0x prefixed hex seed or a derivation uri (//Alice)
func New(secret string, format uint8) (self *Identity, err error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		err = ErrInvalidSecret
		return
	}

	keyPair, err := subkey.DeriveKeyPair(sr25519.Scheme{}, secret)
	if err != nil {
		return
	}

	return fromKeyPair(SchemeSr25519, keyPair, format)
}

func FromPhrase(mnemonic string) (*Identity, error) {
	return New(mnemonic, SS58_FORMAT)
}

func FromURI(uri string) (*Identity, error) {
	return New(uri, SS58_FORMAT)
}

// FromSeed takes a 0x prefixed 32 byte hex seed
func FromSeed(seed string) (*Identity, error) {
	seed = strings.TrimSpace(seed)
	if !strings.HasPrefix(seed, "0x") || len(seed) != 66 {
		return nil, ErrInvalidSecret
	}
	return New(seed, SS58_FORMAT)
}

// FromEd25519Key builds an ed25519 identity from its 32 byte private seed
func FromEd25519Key(seed []byte, format uint8) (self *Identity, err error) {
	if len(seed) != 32 {
		err = ErrInvalidSecret
		return
	}

	keyPair, err := ed25519.Scheme{}.FromSeed(seed)
	if err != nil {
		return
	}

	return fromKeyPair(SchemeEd25519, keyPair, format)
}

func fromKeyPair(scheme Scheme, keyPair subkey.KeyPair, format uint8) (self *Identity, err error) {
	address, err := keyPair.SS58Address(format)
	if err != nil {
		return
	}

	self = &Identity{
		scheme:  scheme,
		keyPair: keyPair,
		address: address,
	}
	return
}

// SS58 address
func (self *Identity) Address() string {
	return self.address
}

func (self *Identity) Scheme() Scheme {
	return self.scheme
}

func (self *Identity) PublicKey() []byte {
	public := self.keyPair.Public()
	out := make([]byte, len(public))
	copy(out, public)
	return out
}

// AccountID is the public key as a fixed size storage key
func (self *Identity) AccountID() (out [32]byte) {
	copy(out[:], self.keyPair.AccountID())
	return
}

// Sign signs the message with the identity's own scheme
func (self *Identity) Sign(message []byte) ([]byte, error) {
	return self.keyPair.Sign(message)
}

// Verify checks a signature made by this identity
func (self *Identity) Verify(message, signature []byte) bool {
	return self.keyPair.Verify(message, signature)
}

func (self *Identity) String() string {
	return self.address
}
