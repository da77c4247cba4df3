// Package breach answers whether a password appears in a public breach corpus
// without ever sending the password, or its full hash, over the wire.
//
// The range protocol sends only the first five hex characters of the
// password's SHA-1 digest. The service replies with every known suffix that
// shares the prefix and the match is decided locally.
package breach

import "context"

//go:generate counterfeiter . Oracle

type Oracle interface {
	// Check reports whether password is in the corpus. A failed lookup is
	// an error wrapping ErrUnavailable, never a false.
	Check(ctx context.Context, password string) (bool, error)
}
