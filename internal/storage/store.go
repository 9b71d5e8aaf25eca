// Package storage defines the key-value persistence boundary. The contract
// mirrors a browser-local store: synchronous get/set/remove of JSON blobs
// under stable keys, no transactions and no cross-key atomicity. A caller
// doing read-modify-write on a collection key must keep the whole sequence in
// one synchronous block; an interleaving writer from another process can
// still clobber the result, which is accepted (the postgres driver narrows
// the window with a version CAS, the others are last-write-wins).
package storage

import "context"

// Persisted collection keys, carried over from the storefront's original
// storage layout.
const (
	KeyMenu     = "nr_admin_menu"
	KeyOrders   = "nr_orders"
	KeyUsers    = "nr_registered_users"
	KeyReviews  = "nr_reviews"
	KeyFeedback = "nr_feedbacks"
)

// CartKey returns the per-customer cart collection key.
func CartKey(email string) string {
	return "nr_cart:" + email
}

// FixedKeys lists every non-cart collection, used by the admin data wipe.
var FixedKeys = []string{KeyMenu, KeyOrders, KeyUsers, KeyReviews, KeyFeedback}

type Store interface {
	// Get returns the raw value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	// Keys lists every key currently present.
	Keys(ctx context.Context) ([]string, error)
}

// Watcher is implemented by drivers that can surface external writes (another
// process touching the same substrate). Best effort only; consumers must not
// rely on it for correctness.
type Watcher interface {
	Changes() <-chan string
}
