package cancellation

import (
	"context"
	"fmt"

	"github.com/uniflow-go/uniflow/effects/internal/helper"
)

type registryCtxKey struct{}

// ErrNoRegistry indicates that no registry was installed in the context.
var ErrNoRegistry = fmt.Errorf("no cancellation registry in context")

// WithRegistry installs reg as the registry for the given context subtree.
// The application typically installs one process-wide instance at startup;
// tests install isolated ones.
func WithRegistry(ctx context.Context, reg *Registry) context.Context {
	return context.WithValue(ctx, registryCtxKey{}, reg)
}

// RegistryFrom returns the registry installed by WithRegistry.
func RegistryFrom(ctx context.Context) (*Registry, error) {
	return helper.GetTypedValueOf[*Registry](func() (any, error) {
		raw := ctx.Value(registryCtxKey{})
		if raw == nil {
			return nil, ErrNoRegistry
		}
		return raw, nil
	})
}

// MustRegistryFrom is the panic-on-failure variant of RegistryFrom, for
// call sites where the registry is guaranteed to be installed.
func MustRegistryFrom(ctx context.Context) *Registry {
	return helper.MustGetTypedValue[*Registry](func() (any, error) {
		raw := ctx.Value(registryCtxKey{})
		if raw == nil {
			return nil, ErrNoRegistry
		}
		return raw, nil
	})
}
