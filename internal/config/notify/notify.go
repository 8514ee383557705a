// Package notify provides change notification for engine settings.
//
// Components such as the compiled-script cache and the directive parser
// subscribe here to react when a setting changes, whether through a
// command-line directive or a reload of the shared config file.
package notify

import (
	"sort"
	"sync"
)

// ChangeType represents the kind of settings change.
type ChangeType int

const (
	// ChangeSet indicates a single property was assigned.
	ChangeSet ChangeType = iota

	// ChangeReload indicates the whole settings instance was replaced
	// from the config file.
	ChangeReload
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeSet:
		return "set"
	case ChangeReload:
		return "reload"
	default:
		return "unknown"
	}
}

// Change represents one settings change event.
type Change struct {
	// Name is the canonical property name. Empty for reload events.
	Name string

	// Type is the kind of change.
	Type ChangeType

	// OldValue and NewValue are the textual values before and after.
	// Both are empty for reload events.
	OldValue string
	NewValue string
}

// Observer is called when a settings change occurs.
type Observer func(change Change)

// Subscription represents an active observer registration.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// Notifier manages settings change subscriptions. Notifications are
// delivered synchronously on the calling goroutine, in registration
// order.
type Notifier struct {
	mu sync.RWMutex

	// Observers receiving every change.
	global map[uint64]Observer

	// Observers keyed by property name.
	byName map[string]map[uint64]Observer

	nextID uint64
}

// New creates a notifier.
func New() *Notifier {
	return &Notifier{
		global: make(map[uint64]Observer),
		byName: make(map[string]map[uint64]Observer),
	}
}

// Subscribe registers an observer for all changes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	n.global[n.nextID] = observer
	return &Subscription{id: n.nextID, notifier: n}
}

// SubscribeName registers an observer for changes to one property.
// Reload events are delivered to name subscribers as well, since any
// property may have changed.
func (n *Notifier) SubscribeName(name string, observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	if n.byName[name] == nil {
		n.byName[name] = make(map[uint64]Observer)
	}
	n.byName[name][n.nextID] = observer
	return &Subscription{id: n.nextID, notifier: n}
}

// NotifySet publishes a property assignment.
func (n *Notifier) NotifySet(name, oldValue, newValue string) {
	n.publish(Change{
		Name:     name,
		Type:     ChangeSet,
		OldValue: oldValue,
		NewValue: newValue,
	})
}

// NotifyReload publishes a whole-instance reload.
func (n *Notifier) NotifyReload() {
	n.publish(Change{Type: ChangeReload})
}

func (n *Notifier) publish(change Change) {
	type entry struct {
		id  uint64
		obs Observer
	}

	n.mu.RLock()
	entries := make([]entry, 0, len(n.global))
	for id, obs := range n.global {
		entries = append(entries, entry{id, obs})
	}

	if change.Type == ChangeReload {
		for _, named := range n.byName {
			for id, obs := range named {
				entries = append(entries, entry{id, obs})
			}
		}
	} else if named, ok := n.byName[change.Name]; ok {
		for id, obs := range named {
			entries = append(entries, entry{id, obs})
		}
	}
	n.mu.RUnlock()

	// Deliver in registration order for deterministic behavior.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].id < entries[j].id
	})
	for _, e := range entries {
		e.obs(change)
	}
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.global, id)
	for name, named := range n.byName {
		delete(named, id)
		if len(named) == 0 {
			delete(n.byName, name)
		}
	}
}
