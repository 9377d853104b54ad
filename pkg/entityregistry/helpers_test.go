package entityregistry

import (
	"slices"
	"sync"

	"github.com/randalmurphal/entityregistry/pkg/entityregistry/event"
)

// vehicle is the entity used throughout the package tests.
type vehicle struct {
	Name   string
	Speed  float64
	Active bool
	Tags   []string
}

func (v *vehicle) Key() string { return v.Name }

func (v *vehicle) Clone() *vehicle {
	c := *v
	c.Tags = slices.Clone(v.Tags)
	return &c
}

func (v *vehicle) MergeFrom(src *vehicle) {
	v.Speed = src.Speed
	v.Active = src.Active
	v.Tags = slices.Clone(src.Tags)
}

// subscriber is implemented by Registry and Slot.
type subscriber[T any] interface {
	SubscribeAll(obs event.Observer[T]) event.Subscription
}

// captured records every notification raised by a registry.
type captured struct {
	mu    sync.Mutex
	notes []event.Notification[*vehicle]
}

func capture(s subscriber[*vehicle]) *captured {
	c := &captured{}
	s.SubscribeAll(event.ObserverFunc[*vehicle](func(n event.Notification[*vehicle]) {
		c.mu.Lock()
		c.notes = append(c.notes, n)
		c.mu.Unlock()
	}))
	return c
}

func (c *captured) all() []event.Notification[*vehicle] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.notes)
}

func (c *captured) kinds() []event.Kind {
	var kinds []event.Kind
	for _, n := range c.all() {
		kinds = append(kinds, n.Kind)
	}
	return kinds
}

func (c *captured) last() event.Notification[*vehicle] {
	notes := c.all()
	if len(notes) == 0 {
		return event.Notification[*vehicle]{Kind: -1}
	}
	return notes[len(notes)-1]
}

func (c *captured) count(kind event.Kind) int {
	n := 0
	for _, note := range c.all() {
		if note.Kind == kind {
			n++
		}
	}
	return n
}
