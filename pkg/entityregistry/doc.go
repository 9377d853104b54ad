/*
Package entityregistry provides a concurrency-safe, in-memory registry for
named entities with lifecycle notifications.

# Overview

A Registry stores entities by string key and exposes add, update, replace,
remove, lookup, enumeration and paged queries. Each outcome, successful or
not, is raised on its own notification channel (package event) so observers
such as loggers and metrics can react without inspecting return values.

A Slot is the single-occupant variant with the same contract and no keys.

# Entities

Stored types implement Entity, normally on a pointer receiver:

	type Vehicle struct {
	    Name   string
	    Speed  float64
	    Active bool
	}

	func (v *Vehicle) Key() string { return v.Name }

	func (v *Vehicle) Clone() *Vehicle {
	    c := *v
	    return &c
	}

	func (v *Vehicle) MergeFrom(src *Vehicle) {
	    v.Speed = src.Speed
	    v.Active = src.Active
	}

# Basic Usage

	r := entityregistry.New[*Vehicle](entityregistry.WithName("fleet"))

	r.Add(&Vehicle{Name: "truck-1", Speed: 60})          // true
	r.Add(&Vehicle{Name: "truck-1", Speed: 80})          // false, AddedFailed
	v, ok := r.Get("truck-1")                            // live reference
	r.Update(&Vehicle{Name: "truck-1", Speed: 90})       // v.Speed is now 90
	r.Replace(&Vehicle{Name: "truck-1", Speed: 10})      // v is detached
	r.Remove("truck-1")                                  // true, RemovedSuccess

# Merge Versus Replace

Update and the existing-key branch of AddOrUpdate merge the incoming entity
into the stored instance with MergeFrom. The stored pointer is unchanged, so
anything holding it sees the new state without fetching again.

Replace swaps the stored reference. Earlier holders keep the old instance,
which is no longer reachable from the registry.

# Notifications

	sub := r.Subscribe(event.ObserverFunc[*Vehicle](func(n event.Notification[*Vehicle]) {
	    log.Printf("%s %s: %v", n.Kind, n.Key, n.Err)
	}), event.AddedFailed, event.GetFailed)
	defer sub.Unsubscribe()

Observers run synchronously in the calling goroutine, in registration order,
after the registry lock is released. Failure notifications carry the
attempted key and an *OpError wrapping ErrDuplicateKey, ErrNotFound or
ErrEmptySlot.

# Thread Safety

All Registry and Slot methods are safe for concurrent use. Operations on a
single key are linearizable. Enumeration (GetAll, GetAllClone, Snapshot,
GetPaged) works on a copy of the value set taken at call time, so it may miss
concurrent inserts or include concurrent removals.

Filters passed to GetAll and Snapshot, and the Filter and Compare functions of
a Page, run under the registry's read lock so they never see a half-applied
merge. They must not call back into the same registry.

The registry serializes its own MergeFrom and Clone calls with every other
registry operation, but it cannot guard fields that callers mutate directly
through references obtained from Get or GetAll. Writing to a stored entity
outside the registry while another goroutine calls Update is a data race.
Callers that share references across goroutines should either treat
entities as read-only and use Replace, or work on copies from GetClone and
GetAllClone.
*/
package entityregistry
