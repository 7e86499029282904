package cmd

import (
	"errors"
	"fmt"
	"strconv"

	gridpkg "github.com/warp-contracts/gridclient/src/grid"
	"github.com/warp-contracts/gridclient/src/utils/activation"
	"github.com/warp-contracts/gridclient/src/utils/identity"
	"github.com/warp-contracts/gridclient/src/utils/substrate"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

var ErrNoIdentity = errors.New("identity secret not configured, set GRID_IDENTITY_SECRET")

// Set up on first use, closed after the command finishes
var grid *gridpkg.Manager

func connect() (out *gridpkg.Manager, err error) {
	if grid != nil {
		return grid, nil
	}

	link, err := substrate.NewClient(ctx, &conf.Substrate)
	if err != nil {
		return
	}

	grid = gridpkg.NewManager(link).
		WithActivation(activation.NewClient(&conf.Activation))
	return grid, nil
}

func signer() (out *identity.Identity, err error) {
	if conf.Identity.Secret == "" {
		err = ErrNoIdentity
		return
	}

	switch identity.Scheme(conf.Identity.Scheme) {
	case identity.SchemeEd25519:
		var seed []byte
		seed, err = hexutil.Decode(conf.Identity.Secret)
		if err != nil {
			return
		}
		return identity.FromEd25519Key(seed, conf.Substrate.SS58Format)
	case identity.SchemeSr25519, "":
		return identity.New(conf.Identity.Secret, conf.Substrate.SS58Format)
	default:
		err = fmt.Errorf("unsupported identity scheme: %s", conf.Identity.Scheme)
		return
	}
}

// accountID parses a 0x prefixed public key, defaulting to the configured identity
func accountID(hex string) (out [32]byte, err error) {
	if hex == "" {
		var id *identity.Identity
		id, err = signer()
		if err != nil {
			return
		}
		return id.AccountID(), nil
	}

	raw, err := hexutil.Decode(hex)
	if err != nil {
		return
	}
	if len(raw) != len(out) {
		err = errors.New("account id has to be 32 bytes long")
		return
	}
	copy(out[:], raw)
	return
}

func parseUint32(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	return uint32(n), err
}

func parseUint64(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
