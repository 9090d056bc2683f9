package cancellation

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/uniflow-go/uniflow/effects"
)

// RegistrationID identifies one handle within a token's set. Every
// Register call mints a fresh id, so reusing a token never overwrites an
// earlier registration.
type RegistrationID string

// numShards fixes the shard count; tokens are routed by hash so unrelated
// tokens rarely contend on one mutex.
const numShards = 16

// Registry maps tokens to the set of handles currently registered under
// them. Safe for concurrent use from independent effect subscriptions.
//
// Invariant: a token key exists iff its set is non-empty. Invariant: the
// shard mutexes guard map structure only; handle disposal always runs
// after the lock is released, because a handle's teardown path may
// re-enter Remove.
type Registry struct {
	logger *zap.Logger
	shards [numShards]registryShard
}

type registryShard struct {
	mu      sync.Mutex
	entries map[Token]map[RegistrationID]*Handle
}

// NewRegistry returns an empty registry. A nil logger disables logging.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := &Registry{logger: logger}
	for i := range reg.shards {
		reg.shards[i].entries = make(map[Token]map[RegistrationID]*Handle)
	}
	return reg
}

func (r *Registry) shardOf(token Token) *registryShard {
	return &r.shards[xxhash.Sum64String(token.String())%numShards]
}

// Register inserts handle into the token's set, creating the set if
// absent, and returns the id to use for later removal.
func (r *Registry) Register(token Token, handle *Handle) RegistrationID {
	id := RegistrationID(uuid.New().String())

	sh := r.shardOf(token)
	sh.mu.Lock()
	set, ok := sh.entries[token]
	if !ok {
		set = make(map[RegistrationID]*Handle)
		sh.entries[token] = set
	}
	set[id] = handle
	sh.mu.Unlock()

	r.logger.Debug("registered cancellation handle",
		zap.String("token", token.String()),
		zap.String("registrationId", string(id)),
	)
	return id
}

// Remove deletes the identified handle from the token's set, dropping the
// token key once the set empties. Removing an absent token or id is a
// no-op: removal races with natural completion and double cancellation by
// contract.
func (r *Registry) Remove(token Token, id RegistrationID) {
	sh := r.shardOf(token)
	sh.mu.Lock()
	set, ok := sh.entries[token]
	if ok {
		delete(set, id)
		if len(set) == 0 {
			delete(sh.entries, token)
		}
	}
	sh.mu.Unlock()
}

// Cancel detaches the whole set of every given token and disposes each
// extracted handle. The detach is atomic per token: handles registered
// after the snapshot is taken belong to no cancelled set and stay live.
func (r *Registry) Cancel(tokens ...Token) {
	for _, token := range tokens {
		sh := r.shardOf(token)
		sh.mu.Lock()
		set := sh.entries[token]
		delete(sh.entries, token)
		sh.mu.Unlock()

		// Disposal re-enters Remove through the handle's teardown path,
		// so it must happen outside the critical section.
		for _, handle := range set {
			handle.Dispose()
		}

		if len(set) > 0 {
			r.logger.Debug("cancelled token",
				zap.String("token", token.String()),
				zap.Int("handles", len(set)),
			)
		}
	}
}

// Size reports the total number of registered handles across all tokens.
func (r *Registry) Size() int {
	total := 0
	for i := range r.shards {
		sh := &r.shards[i]
		sh.mu.Lock()
		for _, set := range sh.entries {
			total += len(set)
		}
		sh.mu.Unlock()
	}
	return total
}

// Registration is one row of the diagnostic view: which handle is live
// under which token, and for how long.
type Registration struct {
	Token    Token
	ID       RegistrationID
	Lifespan effects.TimeSpan
}

// Snapshot returns the current registry contents for test introspection.
// Production logic never reads it.
func (r *Registry) Snapshot() []Registration {
	var rows []Registration
	for i := range r.shards {
		sh := &r.shards[i]
		sh.mu.Lock()
		for token, set := range sh.entries {
			for id, handle := range set {
				rows = append(rows, Registration{
					Token:    token,
					ID:       id,
					Lifespan: effects.SpanSince(handle.registeredAt),
				})
			}
		}
		sh.mu.Unlock()
	}
	return rows
}
