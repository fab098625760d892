// SPDX-License-Identifier: MIT

// Package linalg: functional configuration for constructors.
//
// Design goals:
//   - Deterministic behavior: no global state; every call starts from the
//     documented defaults below.
//   - Options fields are unexported; public APIs consume ...Option.

package linalg

// Random source defaults. NewRand seeds a fresh generator with these values on
// every call unless WithSeed overrides them.
const (
	// DefaultSeedHi is the high word of the default PCG seed.
	DefaultSeedHi uint64 = 0x853c49e6748fea9b

	// DefaultSeedLo is the low word of the default PCG seed.
	DefaultSeedLo uint64 = 0xda3e39cb94b95bdb
)

// Option mutates Options during gatherOptions.
type Option func(*Options)

// Options is the resolved configuration consumed by constructors.
type Options struct {
	seedHi uint64 // PCG seed, high word
	seedLo uint64 // PCG seed, low word
}

// WithSeed replaces the default generator seed used by NewRand.
// The generator is still constructed fresh on each call, so two calls with
// the same seed produce the same stream.
func WithSeed(hi, lo uint64) Option {
	return func(o *Options) {
		o.seedHi = hi
		o.seedLo = lo
	}
}

// gatherOptions applies setters on top of the defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		seedHi: DefaultSeedHi,
		seedLo: DefaultSeedLo,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
