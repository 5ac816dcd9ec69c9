package sampling

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// KeySize is the size in bytes of the keys drawn by NewPRNG.
const KeySize = 32

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// KeyedPRNG is a deterministic stream of bytes expanded from a key with
// the blake2b XOF. Two KeyedPRNG with the same key produce the same stream.
// Read is safe for concurrent use, but the order in which concurrent
// readers consume the stream is not.
type KeyedPRNG struct {
	mu  sync.Mutex
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new KeyedPRNG from key. A nil key is an empty key.
// Keys longer than 64 bytes are rejected.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {

	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, fmt.Errorf("cannot NewKeyedPRNG: %w", err)
	}

	return &KeyedPRNG{key: append([]byte{}, key...), xof: xof}, nil
}

// NewPRNG creates a new KeyedPRNG with a KeySize-byte key read from
// crypto/rand. The stream can be replayed with NewKeyedPRNG(prng.Key()).
func NewPRNG() (*KeyedPRNG, error) {

	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("cannot NewPRNG: %w", err)
	}

	return NewKeyedPRNG(key)
}

// Key returns a copy of the key of the PRNG.
func (prng *KeyedPRNG) Key() []byte {
	return append([]byte{}, prng.key...)
}

// Read fills sum with the next bytes of the stream.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mu.Lock()
	defer prng.mu.Unlock()
	return prng.xof.Read(sum)
}

// Reset rewinds the stream to its first byte.
func (prng *KeyedPRNG) Reset() {
	prng.mu.Lock()
	defer prng.mu.Unlock()
	prng.xof.Reset()
}
