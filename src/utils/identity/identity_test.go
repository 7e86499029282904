package identity

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/vedhavyas/go-subkey"
	"go.uber.org/atomic"
)

func TestIdentityTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityTestSuite))
}

type IdentityTestSuite struct {
	suite.Suite
}

func (s *IdentityTestSuite) TestFromURI() {
	alice, err := FromURI("//Alice")
	require.Nil(s.T(), err)
	require.Equal(s.T(), "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY", alice.Address())
	require.Equal(s.T(), alice.Address(), alice.String())
	require.Len(s.T(), alice.PublicKey(), 32)

	accountID := alice.AccountID()
	require.Equal(s.T(), alice.PublicKey(), accountID[:])

	bob, err := FromURI("//Bob")
	require.Nil(s.T(), err)
	require.NotEqual(s.T(), alice.AccountID(), bob.AccountID())
}

func (s *IdentityTestSuite) TestPublicKeyIsACopy() {
	alice, err := FromURI("//Alice")
	require.Nil(s.T(), err)

	key := alice.PublicKey()
	key[0] ^= 0xff
	require.NotEqual(s.T(), key, alice.PublicKey())
}

func (s *IdentityTestSuite) TestEmptySecret() {
	_, err := FromPhrase("   ")
	require.True(s.T(), errors.Is(err, ErrInvalidSecret))
}

func (s *IdentityTestSuite) TestFromSeed() {
	// Seed of //Alice
	alice, err := FromSeed("0xe5be9a5092b81bca64be81d212e7f2f9eba183bb7a90954f7b76361f6edb5c0a")
	require.Nil(s.T(), err)
	require.Equal(s.T(), "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY", alice.Address())

	_, err = FromSeed("e5be9a50")
	require.True(s.T(), errors.Is(err, ErrInvalidSecret))
}

func (s *IdentityTestSuite) TestFromEd25519Key() {
	seed := bytes.Repeat([]byte{7}, 32)
	id, err := FromEd25519Key(seed, SS58_FORMAT)
	require.Nil(s.T(), err)
	require.Equal(s.T(), SchemeEd25519, id.Scheme())

	expected := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	require.Equal(s.T(), []byte(expected), id.PublicKey())

	address, err := subkey.SS58Address(expected, SS58_FORMAT)
	require.Nil(s.T(), err)
	require.Equal(s.T(), address, id.Address())
	require.Equal(s.T(), address, id.String())

	message := []byte("grid")
	signature, err := id.Sign(message)
	require.Nil(s.T(), err)
	require.True(s.T(), ed25519.Verify(expected, message, signature))
	require.True(s.T(), id.Verify(message, signature))

	// Same seed, other scheme, other account
	sr, err := New("0x"+hex.EncodeToString(seed), SS58_FORMAT)
	require.Nil(s.T(), err)
	require.Equal(s.T(), SchemeSr25519, sr.Scheme())
	require.NotEqual(s.T(), sr.Address(), id.Address())

	_, err = FromEd25519Key(seed[:31], SS58_FORMAT)
	require.True(s.T(), errors.Is(err, ErrInvalidSecret))
}

func (s *IdentityTestSuite) TestSr25519Signature() {
	alice, err := FromURI("//Alice")
	require.Nil(s.T(), err)

	signature, err := alice.Sign([]byte("grid"))
	require.Nil(s.T(), err)
	require.Len(s.T(), signature, 64)
	require.True(s.T(), alice.Verify([]byte("grid"), signature))
	require.False(s.T(), alice.Verify([]byte("grid!"), signature))
}

func (s *IdentityTestSuite) TestLocker() {
	alice, err := FromURI("//Alice")
	require.Nil(s.T(), err)
	bob, err := FromURI("//Bob")
	require.Nil(s.T(), err)

	locker := NewLocker()
	unlock := locker.Lock(alice)

	// Other identities aren't blocked
	var bobDone atomic.Bool
	go func() {
		locker.Lock(bob)()
		bobDone.Store(true)
	}()
	require.Eventually(s.T(), bobDone.Load, time.Second, 5*time.Millisecond)

	var aliceDone atomic.Bool
	go func() {
		locker.Lock(alice)()
		aliceDone.Store(true)
	}()
	require.Never(s.T(), aliceDone.Load, 50*time.Millisecond, 5*time.Millisecond)

	unlock()
	require.Eventually(s.T(), aliceDone.Load, time.Second, 5*time.Millisecond)
}

func (s *IdentityTestSuite) TestLockerDropsReleasedEntries() {
	alice, err := FromURI("//Alice")
	require.Nil(s.T(), err)
	bob, err := FromURI("//Bob")
	require.Nil(s.T(), err)

	locker := NewLocker()
	unlockAlice := locker.Lock(alice)
	unlockBob := locker.Lock(bob)
	require.Equal(s.T(), 2, locker.Len())

	unlockBob()
	require.Equal(s.T(), 1, locker.Len())

	// Entry stays while someone waits for it
	var waiterDone atomic.Bool
	go func() {
		locker.Lock(alice)()
		waiterDone.Store(true)
	}()
	require.Never(s.T(), waiterDone.Load, 50*time.Millisecond, 5*time.Millisecond)

	unlockAlice()
	require.Eventually(s.T(), waiterDone.Load, time.Second, 5*time.Millisecond)
	require.Equal(s.T(), 0, locker.Len())

	// Calling unlock twice doesn't corrupt the count
	unlockAlice()
	require.Equal(s.T(), 0, locker.Len())
}
