package types

// Iterator walks a key domain in ascending (or descending, for
// reverse iterators) byte order. Start is inclusive, end exclusive.
type Iterator interface {
	Domain() (start, end []byte)
	Valid() bool
	Next()
	Key() []byte
	Value() []byte
	Close()
}

// KVStore is the raw byte-oriented store handed to keepers.
type KVStore interface {
	Get(key []byte) []byte
	Has(key []byte) bool
	Set(key, value []byte)
	Delete(key []byte)

	// Iterator over a domain of keys in ascending order. End is exclusive.
	// Start must be less than end, or the Iterator is invalid.
	Iterator(start, end []byte) Iterator

	// Iterator over a domain of keys in descending order. End is exclusive.
	ReverseIterator(start, end []byte) Iterator
}

// MultiStore hands out the KVStore mounted under a StoreKey.
type MultiStore interface {
	GetKVStore(key StoreKey) KVStore

	// CacheMultiStore cache-wraps every mounted store; mutations stay
	// invisible to the parent until Write is called.
	CacheMultiStore() CacheMultiStore
}

// CacheMultiStore branches off a MultiStore; Write flushes the
// accumulated mutations to the parent in one pass.
type CacheMultiStore interface {
	MultiStore
	Write()
}

// StoreKey is a capability token for accessing a mounted store.
type StoreKey interface {
	Name() string
	String() string
}

// KVStoreKey is used for accessing mounted KVStores. Stores are keyed
// by pointer identity, so two keys with the same name are distinct.
type KVStoreKey struct {
	name string
}

func NewKVStoreKey(name string) *KVStoreKey {
	return &KVStoreKey{name: name}
}

func (key *KVStoreKey) Name() string {
	return key.name
}

func (key *KVStoreKey) String() string {
	return "KVStoreKey(" + key.name + ")"
}

// KVStorePrefixIterator iterates over all the keys with a certain prefix.
func KVStorePrefixIterator(kvs KVStore, prefix []byte) Iterator {
	return kvs.Iterator(prefix, PrefixEndBytes(prefix))
}

// PrefixEndBytes returns the []byte that would end a range query for
// all []byte with a certain prefix. Returns nil when the prefix is
// entirely 0xff bytes (range is unbounded above).
func PrefixEndBytes(prefix []byte) []byte {
	if len(prefix) == 0 {
		return nil
	}

	end := make([]byte, len(prefix))
	copy(end, prefix)

	for {
		if end[len(end)-1] != byte(255) {
			end[len(end)-1]++
			break
		}
		end = end[:len(end)-1]
		if len(end) == 0 {
			end = nil
			break
		}
	}
	return end
}
