package grid

import (
	"net"
	"strings"

	"github.com/warp-contracts/gridclient/src/utils/model"
)

const HashLength = 32

// PadHash turns a content hash into the fixed size on-chain form: the string's bytes right padded with zeros.
// Longer input is rejected.
func PadHash(hash string) (out [HashLength]byte, err error) {
	if len(hash) > HashLength {
		err = validationError("hash length %d exceeds %d bytes", len(hash), HashLength)
		return
	}
	copy(out[:], hash)
	return
}

// validatePublicIP expects the ip with its mask (185.206.122.33/24) and a bare gateway
func validatePublicIP(ip model.PublicIPInput) error {
	_, _, err := net.ParseCIDR(ip.IP)
	if err != nil {
		return validationError("%q is not a valid public ip with mask", ip.IP)
	}
	if net.ParseIP(ip.GW) == nil {
		return validationError("%q is not a valid gateway", ip.GW)
	}
	return nil
}

// validateIPv6 accepts a bare IPv6 literal, without a mask or port
func validateIPv6(ip string) error {
	parsed := net.ParseIP(ip)
	if parsed == nil || !strings.Contains(ip, ":") {
		return validationError("%q is not a valid IPv6 address", ip)
	}
	return nil
}
