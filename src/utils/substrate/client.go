package substrate

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/warp-contracts/gridclient/src/utils/config"
	"github.com/warp-contracts/gridclient/src/utils/identity"
	"github.com/warp-contracts/gridclient/src/utils/logger"
	"github.com/warp-contracts/gridclient/src/utils/task"
	"github.com/warp-contracts/gridclient/src/utils/variant"

	gsrpc "github.com/centrifuge/go-substrate-rpc-client/v4"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const stateCacheKey = "state"

// Everything needed to encode and sign, refreshed after MetadataCacheTTL
type chainState struct {
	meta     *types.Metadata
	registry *registry
	runtime  *types.RuntimeVersion
	genesis  types.Hash
}

// Client is the Link implementation talking to a chain node over websocket.
// One client should be shared by the whole process and closed on shutdown.
type Client struct {
	config *config.Substrate
	log    *logrus.Entry

	api     *gsrpc.SubstrateAPI
	url     string
	cache   *cache.Cache
	limiter *rate.Limiter
}

// NewClient connects to the first responding url, retrying with a backoff
func NewClient(ctx context.Context, config *config.Substrate) (self *Client, err error) {
	if len(config.Urls) == 0 {
		err = ErrNoUrls
		return
	}

	self = new(Client)
	self.config = config
	self.log = logger.NewSublogger("substrate-client")
	self.cache = cache.New(config.MetadataCacheTTL, 2*config.MetadataCacheTTL)
	self.limiter = rate.NewLimiter(rate.Every(config.QueryLimiterInterval), config.QueryLimiterBurstSize)

	err = task.NewRetry().
		WithContext(ctx).
		WithMaxElapsedTime(config.ConnectMaxElapsedTime).
		WithMaxInterval(config.ConnectMaxInterval).
		WithOnError(func(err error, wait time.Duration) {
			self.log.WithError(err).WithField("wait", wait).Warn("Failed to connect, retrying")
		}).
		Run(self.connect)
	if err != nil {
		return nil, err
	}

	return
}

func (self *Client) connect() (err error) {
	for _, url := range self.config.Urls {
		self.log.WithField("url", url).Debug("Connecting")

		var api *gsrpc.SubstrateAPI
		api, err = gsrpc.NewSubstrateAPI(url)
		if err != nil {
			self.log.WithError(err).WithField("url", url).Debug("Node unavailable")
			continue
		}

		self.api = api
		self.url = url
		self.log.WithField("url", url).Info("Connected")
		return nil
	}
	return
}

func (self *Client) Close() {
	if self.api == nil {
		return
	}
	self.log.WithField("url", self.url).Debug("Closing connection")
	self.api.Client.Close()
}

func (self *Client) state() (out *chainState, err error) {
	cached, ok := self.cache.Get(stateCacheKey)
	if ok {
		return cached.(*chainState), nil
	}

	self.log.Debug("Fetching runtime metadata")

	out = new(chainState)
	out.meta, err = self.api.RPC.State.GetMetadataLatest()
	if err != nil {
		return
	}

	out.registry, err = newRegistry(out.meta)
	if err != nil {
		return
	}

	out.runtime, err = self.api.RPC.State.GetRuntimeVersionLatest()
	if err != nil {
		return
	}

	out.genesis, err = self.api.RPC.Chain.GetBlockHash(0)
	if err != nil {
		return
	}

	self.cache.SetDefault(stateCacheKey, out)
	return
}

func encodeKeys(keys []interface{}) (out [][]byte, err error) {
	out = make([][]byte, 0, len(keys))
	for _, k := range keys {
		var encoded []byte
		encoded, err = codec.Encode(k)
		if err != nil {
			return
		}
		out = append(out, encoded)
	}
	return
}

func (self *Client) Query(ctx context.Context, pallet, item string, keys ...interface{}) (out interface{}, err error) {
	err = self.limiter.Wait(ctx)
	if err != nil {
		return
	}

	state, err := self.state()
	if err != nil {
		return
	}

	encoded, err := encodeKeys(keys)
	if err != nil {
		return
	}

	key, err := types.CreateStorageKey(state.meta, pallet, item, encoded...)
	if err != nil {
		return
	}

	self.log.WithField("item", pallet+"."+item).Trace("Query")

	raw, err := self.api.RPC.State.GetStorageRawLatest(key)
	if err != nil {
		return
	}
	if raw == nil || len(*raw) == 0 {
		// Nothing stored under the key
		return nil, nil
	}

	valueType, err := state.registry.storageValueType(pallet, item)
	if err != nil {
		return
	}

	return state.registry.decode(*raw, valueType)
}

func (self *Client) ComposeCall(ctx context.Context, pallet, function string, args Args) (out *Call, err error) {
	state, err := self.state()
	if err != nil {
		return
	}

	values := make([]interface{}, 0, len(args))
	for _, arg := range args {
		values = append(values, arg.Value)
	}

	call, err := types.NewCall(state.meta, pallet+"."+function, values...)
	if err != nil {
		return
	}

	out = &Call{
		Pallet:   pallet,
		Function: function,
		Args:     args,
		encoded:  call,
	}
	return
}

func (self *Client) nonce(ctx context.Context, signer *identity.Identity) (out uint64, err error) {
	info, err := self.Query(ctx, "System", "Account", signer.AccountID())
	if err != nil || info == nil {
		// Accounts without any state start at 0
		return
	}

	m, err := variant.Map(info, "System.Account")
	if err != nil {
		return
	}
	return variant.Uint64(m["nonce"], "System.Account.nonce")
}

func (self *Client) SignExtrinsic(ctx context.Context, call *Call, signer *identity.Identity) (out *SignedExtrinsic, err error) {
	encoded, ok := call.encoded.(types.Call)
	if !ok {
		err = ErrUnexpectedCallEncoding
		return
	}

	state, err := self.state()
	if err != nil {
		return
	}

	nonce, err := self.nonce(ctx, signer)
	if err != nil {
		return
	}

	extrinsic := types.NewExtrinsic(encoded)
	err = sign(&extrinsic, signer, types.SignatureOptions{
		BlockHash:          state.genesis,
		Era:                types.ExtrinsicEra{IsImmortalEra: true},
		GenesisHash:        state.genesis,
		Nonce:              types.NewUCompactFromUInt(nonce),
		SpecVersion:        state.runtime.SpecVersion,
		Tip:                types.NewUCompactFromUInt(0),
		TransactionVersion: state.runtime.TransactionVersion,
	})
	if err != nil {
		return
	}

	out = &SignedExtrinsic{
		Call:    call,
		Signer:  signer,
		encoded: extrinsic,
	}
	return
}

func (self *Client) Submit(ctx context.Context, extrinsic *SignedExtrinsic, waitIncluded, waitFinalized bool) (out *CallOutcome, err error) {
	encoded, ok := extrinsic.encoded.(types.Extrinsic)
	if !ok {
		err = ErrUnexpectedCallEncoding
		return
	}

	log := self.log.WithField("call", extrinsic.Call.Name()).WithField("signer", extrinsic.Signer.Address())

	if !waitIncluded && !waitFinalized {
		_, err = self.api.RPC.Author.SubmitExtrinsic(encoded)
		if err != nil {
			return
		}
		out = &CallOutcome{Success: true, Identity: extrinsic.Signer}
		return
	}

	sub, err := self.api.RPC.Author.SubmitAndWatchExtrinsic(encoded)
	if err != nil {
		return
	}
	defer sub.Unsubscribe()

	var blockHash types.Hash
	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		case err = <-sub.Err():
			return
		case status := <-sub.Chan():
			switch {
			case status.IsInBlock:
				blockHash = status.AsInBlock
				log.WithField("block", codec.HexEncodeToString(blockHash[:])).Debug("Included")
				if !waitFinalized {
					return self.outcome(encoded, blockHash, extrinsic.Signer)
				}
			case status.IsFinalized:
				blockHash = status.AsFinalized
				log.WithField("block", codec.HexEncodeToString(blockHash[:])).Debug("Finalized")
				return self.outcome(encoded, blockHash, extrinsic.Signer)
			case status.IsDropped:
				err = fmt.Errorf("%w: dropped", ErrExtrinsicRejected)
				return
			case status.IsInvalid:
				err = fmt.Errorf("%w: invalid", ErrExtrinsicRejected)
				return
			case status.IsUsurped:
				err = fmt.Errorf("%w: usurped", ErrExtrinsicRejected)
				return
			case status.IsFinalityTimeout:
				err = fmt.Errorf("%w: finality timeout", ErrExtrinsicRejected)
				return
			}
		}
	}
}

// Reads events of the block that included the extrinsic and keeps the ones it emitted
func (self *Client) outcome(extrinsic types.Extrinsic, blockHash types.Hash, signer *identity.Identity) (out *CallOutcome, err error) {
	state, err := self.state()
	if err != nil {
		return
	}

	block, err := self.api.RPC.Chain.GetBlock(blockHash)
	if err != nil {
		return
	}

	submitted, err := codec.Encode(extrinsic)
	if err != nil {
		return
	}

	index := -1
	for i, e := range block.Block.Extrinsics {
		var included []byte
		included, err = codec.Encode(e)
		if err != nil {
			return
		}
		if bytes.Equal(included, submitted) {
			index = i
			break
		}
	}
	if index < 0 {
		err = ErrExtrinsicNotFound
		return
	}

	key, err := types.CreateStorageKey(state.meta, "System", "Events")
	if err != nil {
		return
	}

	raw, err := self.api.RPC.State.GetStorageRaw(key, blockHash)
	if err != nil {
		return
	}
	if raw == nil {
		raw = &types.StorageDataRaw{}
	}

	events, err := self.decodeEvents(state, *raw)
	if err != nil {
		return
	}

	out = &CallOutcome{
		BlockHash:   blockHash,
		BlockNumber: uint64(block.Block.Header.Number),
		Identity:    signer,
	}

	for _, event := range events {
		if !appliesTo(event.Phase, index) {
			continue
		}
		switch event.Kind() {
		case "System.ExtrinsicSuccess":
			out.Success = true
		case "System.ExtrinsicFailed":
			out.Success = false
			dispatchError, _ := variant.FieldAt(event.Fields, 0, "dispatch_error", event.Kind())
			out.ErrorMessage = state.registry.dispatchErrorMessage(dispatchError)
		}
		out.Events = append(out.Events, event)
	}

	return
}

func appliesTo(phase interface{}, index int) bool {
	name, payload, err := variant.Variant(phase, "phase")
	if err != nil || name != "ApplyExtrinsic" {
		return false
	}
	n, err := variant.Uint64(payload, "phase.ApplyExtrinsic")
	return err == nil && n == uint64(index)
}

func (self *Client) decodeEvents(state *chainState, raw []byte) (out []RawEvent, err error) {
	if len(raw) == 0 {
		return
	}

	valueType, err := state.registry.storageValueType("System", "Events")
	if err != nil {
		return
	}

	tree, err := state.registry.decode(raw, valueType)
	if err != nil {
		return
	}

	records, err := variant.Slice(tree, "System.Events")
	if err != nil {
		return
	}

	out = make([]RawEvent, 0, len(records))
	for i, record := range records {
		var event RawEvent
		event, err = toRawEvent(record, fmt.Sprintf("System.Events[%d]", i))
		if err != nil {
			return
		}
		out = append(out, event)
	}
	return
}

func toRawEvent(record interface{}, path string) (out RawEvent, err error) {
	m, err := variant.Map(record, path)
	if err != nil {
		return
	}

	out.Phase = m["phase"]

	pallet, inner, err := variant.Variant(m["event"], variant.Join(path, "event"))
	if err != nil {
		return
	}
	name, fields, err := variant.Variant(inner, variant.Join(path, "event."+pallet))
	if err != nil {
		return
	}
	out.Pallet = pallet
	out.Name = name
	out.Fields = fields

	topics, err := variant.Slice(m["topics"], variant.Join(path, "topics"))
	if err != nil {
		return
	}
	for _, t := range topics {
		var topic [32]byte
		topic, err = variant.Hash32(t, variant.Join(path, "topics"))
		if err != nil {
			return
		}
		out.Topics = append(out.Topics, topic)
	}
	return
}
