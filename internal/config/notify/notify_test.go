package notify

import (
	"testing"
)

func TestNotifier_Subscribe(t *testing.T) {
	n := New()

	var got []Change
	n.Subscribe(func(c Change) {
		got = append(got, c)
	})

	n.NotifySet("searchDirs", "a", "b")
	if len(got) != 1 {
		t.Fatalf("got %d changes, want 1", len(got))
	}
	if got[0].Name != "searchDirs" || got[0].OldValue != "a" || got[0].NewValue != "b" {
		t.Errorf("change = %+v", got[0])
	}
	if got[0].Type != ChangeSet {
		t.Errorf("Type = %v, want ChangeSet", got[0].Type)
	}
}

func TestNotifier_SubscribeName(t *testing.T) {
	n := New()

	var mine, other int
	n.SubscribeName("searchDirs", func(Change) { mine++ })
	n.SubscribeName("precompiler", func(Change) { other++ })

	n.NotifySet("searchDirs", "a", "b")
	if mine != 1 || other != 0 {
		t.Errorf("mine = %d, other = %d; want 1, 0", mine, other)
	}

	// Reload reaches every name subscriber.
	n.NotifyReload()
	if mine != 2 || other != 1 {
		t.Errorf("after reload mine = %d, other = %d; want 2, 1", mine, other)
	}
}

func TestNotifier_Unsubscribe(t *testing.T) {
	n := New()

	var count int
	sub := n.Subscribe(func(Change) { count++ })

	n.NotifySet("x", "", "1")
	sub.Unsubscribe()
	n.NotifySet("x", "1", "2")

	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestNotifier_DeliveryOrder(t *testing.T) {
	n := New()

	var order []int
	n.Subscribe(func(Change) { order = append(order, 1) })
	n.Subscribe(func(Change) { order = append(order, 2) })
	n.SubscribeName("x", func(Change) { order = append(order, 3) })

	n.NotifySet("x", "", "v")
	want := []int{1, 2, 3}
	if len(order) != 3 || order[0] != want[0] || order[1] != want[1] || order[2] != want[2] {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestChangeType_String(t *testing.T) {
	if ChangeSet.String() != "set" || ChangeReload.String() != "reload" {
		t.Error("ChangeType names wrong")
	}
	if ChangeType(9).String() != "unknown" {
		t.Error("unknown ChangeType should format as unknown")
	}
}
