// ABOUTME: Change-watch contract over the backing source
// ABOUTME: Kept behind an interface so tests can fire synthetic change events

package interfaces

// Subscription is an active change watch. Closing it stops notifications.
type Subscription interface {
	Close() error
}

// Watcher observes a backing source for modifications. onChange may be
// invoked from an arbitrary goroutine and must be safe to call concurrently.
type Watcher interface {
	// Watch starts observing path and invokes onChange whenever the
	// backing source is modified, until the subscription is closed.
	Watch(path string, onChange func()) (Subscription, error)
}
