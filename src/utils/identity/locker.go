package identity

import (
	"sync"
)

// Locker serializes work done on behalf of the same identity.
//
// The chain advances the signer's nonce with every accepted extrinsic. Two extrinsics signed
// concurrently by one identity pick the same nonce and one of them gets rejected.
// Submitter keeps its own Locker around signing and submission. Callers running whole operations
// in parallel (e.g. two creations of the same entity) should hold a separate Locker for the entire operation:
//
//	unlock := locker.Lock(id)
//	defer unlock()
//	contractID, err := manager.Contract.CreateNameContract(ctx, id, name)
//
// Locks are not reentrant.
type Locker struct {
	mtx   sync.Mutex
	locks map[string]*lockEntry
}

// Entries are dropped once nobody holds or waits for them
type lockEntry struct {
	mtx  sync.Mutex
	refs int
}

func NewLocker() (self *Locker) {
	self = new(Locker)
	self.locks = make(map[string]*lockEntry)
	return
}

func (self *Locker) Lock(identity *Identity) (unlock func()) {
	address := identity.Address()

	self.mtx.Lock()
	entry, ok := self.locks[address]
	if !ok {
		entry = new(lockEntry)
		self.locks[address] = entry
	}
	entry.refs++
	self.mtx.Unlock()

	entry.mtx.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			entry.mtx.Unlock()

			self.mtx.Lock()
			defer self.mtx.Unlock()
			entry.refs--
			if entry.refs == 0 {
				delete(self.locks, address)
			}
		})
	}
}

// Number of identities currently locked or waited for
func (self *Locker) Len() int {
	self.mtx.Lock()
	defer self.mtx.Unlock()
	return len(self.locks)
}
