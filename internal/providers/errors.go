package providers

import "errors"

// ErrProviderUnavailable signals that a decorator was wired without an
// inner provider.
var ErrProviderUnavailable = errors.New("provider unavailable")
