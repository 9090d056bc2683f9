// Package cancellation tags in-flight effects with caller-supplied tokens
// and cancels them by token.
//
// The Registry is the single point of truth correlating tokens to live
// subscriptions. Cancellable overlays registration bookkeeping onto an
// effect without touching its values, errors, or timing; Cancel builds
// effects whose only behavior is to fire cancellation for some tokens.
package cancellation

import "fmt"

// Token is an opaque identity grouping one or more effect subscriptions
// for later bulk cancellation. It wraps any comparable payload (string,
// integer, struct tag, UUID) and is itself comparable, so it serves
// directly as a map key. The registry never inspects the payload.
//
// Token scope is registry-wide: distinct effects may deliberately share a
// token, and cancelling it tears all of them down.
type Token struct {
	value any
}

// TokenOf normalizes a comparable payload into a Token.
func TokenOf[V comparable](v V) Token {
	return Token{value: v}
}

// String renders the payload with its dynamic type, keeping tokens with
// equal textual forms but different types distinct.
func (t Token) String() string {
	return fmt.Sprintf("%T:%v", t.value, t.value)
}
