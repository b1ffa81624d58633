//go:build !profile

package prof

import (
	"fmt"

	"github.com/ardnew/softsd/pkg"
)

// ErrActive indicates another session is profiling the CPU. Never returned
// without the "profile" tag.
var ErrActive error

// Session is inert without the "profile" tag.
type Session struct{}

// Enabled reports whether profiling is compiled in.
func Enabled() bool {
	return false
}

// Start fails unless opts is empty.
func Start(opts Options) (*Session, error) {
	if !opts.Empty() {
		return nil, fmt.Errorf("prof: %w: built without the profile tag", pkg.ErrNotSupported)
	}
	return &Session{}, nil
}

// Stop does nothing.
func (*Session) Stop() error {
	return nil
}
