// Package store provides persistence for DANTE's client-side session state.
//
// It contains key-value backends and the identity stores built on them.
// Every store holds one optional value and writes it through to its backend
// as a JSON envelope {"state": ..., "version": 0} under a fixed key.
// All methods are concurrency-safe via internal locking.
//
// Backends:
//   - FileKV: one JSON file per key under the configured home directory
//   - RedisKV: a shared Redis instance
//   - MemoryKV: process memory, for tests
//   - SealedKV: wraps any backend and encrypts values with a passphrase
//
// Stores:
//   - CompanyStore (dante-session-company)
//   - UserStore (dante-session-user)
//   - SessionStore (dante-session-token)
package store
