package grid

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestHashTestSuite(t *testing.T) {
	suite.Run(t, new(HashTestSuite))
}

type HashTestSuite struct {
	suite.Suite
}

func (s *HashTestSuite) TestPadHash() {
	for _, input := range []string{"", "a", "hash", "ąę", strings.Repeat("x", 31), strings.Repeat("x", 32)} {
		out, err := PadHash(input)
		require.Nil(s.T(), err, input)
		require.Len(s.T(), out, HashLength)
		require.True(s.T(), bytes.HasPrefix(out[:], []byte(input)), input)
		require.Equal(s.T(), make([]byte, HashLength-len(input)), out[len(input):], input)
	}
}

func (s *HashTestSuite) TestPadHashTooLong() {
	for _, input := range []string{strings.Repeat("x", 33), strings.Repeat("x", 40), strings.Repeat("ą", 17)} {
		_, err := PadHash(input)
		require.True(s.T(), errors.Is(err, ErrValidation), input)
	}
}

func (s *HashTestSuite) TestValidateIPv6() {
	for _, ip := range []string{"::1", "2a02:1802:5e:0:1000:0:ff:1", "fe80::1"} {
		require.Nil(s.T(), validateIPv6(ip), ip)
	}
	for _, ip := range []string{"", "127.0.0.1", "::1/64", "not-an-ip", "[::1]:80"} {
		require.True(s.T(), errors.Is(validateIPv6(ip), ErrValidation), ip)
	}
}
