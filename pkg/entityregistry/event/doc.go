// Package event provides the outcome notification primitives for entityregistry.
//
// # Overview
//
// Every registry operation ends in exactly one outcome, and every outcome has
// its own notification channel:
//
//   - AddedSuccess, AddedFailed
//   - RemovedSuccess, RemovedFailed
//   - UpdatedSuccess, UpdatedFailed
//   - GetFailed
//
// A Notifier fans a Notification out to the observers subscribed to its Kind.
// Delivery is synchronous: Notify calls each observer in the caller's goroutine,
// in registration order, and returns only after the last one returns.
//
// # Subscribing
//
//	n := event.NewNotifier[*Vehicle]()
//
//	sub := n.Subscribe(event.ObserverFunc[*Vehicle](func(note event.Notification[*Vehicle]) {
//	    fmt.Println("added", note.Key)
//	}), event.AddedSuccess)
//	defer sub.Unsubscribe()
//
//	// Or observe every kind
//	audit := n.SubscribeAll(auditObserver)
//
// # Failure Payloads
//
// Failure notifications carry the key that was attempted and an error that
// wraps the registry's sentinel (duplicate key, not found, empty slot). Add and
// Update failures also carry the entity the caller passed in; Remove and Get
// failures carry the zero value of T.
//
// # Observers
//
// Observers run on the critical path of the operation that raised them. They
// should be short and must not block indefinitely. An observer may call back
// into the registry; the registry releases its lock before notifying.
package event
