package state

import (
	"testing"
)

func TestGetAndSnapshot(t *testing.T) {
	s := New(map[string]any{"route": "/dashboard", "loading": false})
	if got := s.Get("route"); got != "/dashboard" {
		t.Errorf("Get(route): got %v", got)
	}

	snap := s.Snapshot()
	snap["route"] = "/tasks"
	if got := s.Get("route"); got != "/dashboard" {
		t.Errorf("mutating a snapshot leaked into the store: %v", got)
	}
}

func TestSetNotifiesKeyThenGlobal(t *testing.T) {
	s := New(map[string]any{"week": 1})
	var order []string

	s.SubscribeToKey("week", func(value, prev any) {
		order = append(order, "key")
		if value != 2 || prev != 1 {
			t.Errorf("key listener: got (%v, %v), want (2, 1)", value, prev)
		}
	})
	s.Subscribe(func(next, prev map[string]any) {
		order = append(order, "global")
		if next["week"] != 2 || prev["week"] != 1 {
			t.Errorf("global listener: got (%v, %v)", next["week"], prev["week"])
		}
	})

	s.Set("week", 2)
	if len(order) != 2 || order[0] != "key" || order[1] != "global" {
		t.Errorf("dispatch order: got %v, want [key global]", order)
	}
}

func TestSetUnchangedValueIsSilent(t *testing.T) {
	s := New(map[string]any{"theme": "dark"})
	calls := 0
	s.SubscribeToKey("theme", func(value, prev any) { calls++ })
	s.Subscribe(func(next, prev map[string]any) { calls++ })

	s.Set("theme", "dark")
	if calls != 0 {
		t.Errorf("got %d notifications for an unchanged value, want 0", calls)
	}
}

func TestSetStateNotifiesGlobalOnceOnly(t *testing.T) {
	s := New(map[string]any{"a": 1, "b": 2})
	globalCalls := 0
	keyCalls := 0
	s.Subscribe(func(next, prev map[string]any) {
		globalCalls++
		if next["a"] != 10 || next["b"] != 20 {
			t.Errorf("next snapshot: got %v", next)
		}
		if prev["a"] != 1 || prev["b"] != 2 {
			t.Errorf("prev snapshot: got %v", prev)
		}
	})
	s.SubscribeToKey("a", func(value, prev any) { keyCalls++ })

	s.SetState(map[string]any{"a": 10, "b": 20})
	if globalCalls != 1 {
		t.Errorf("global notifications: got %d, want exactly 1", globalCalls)
	}
	if keyCalls != 0 {
		t.Errorf("per-key notifications on bulk merge: got %d, want 0", keyCalls)
	}
}

func TestUnsubscribe(t *testing.T) {
	s := New(map[string]any{"n": 0})
	calls := 0
	unsub := s.Subscribe(func(next, prev map[string]any) { calls++ })
	s.Set("n", 1)
	unsub()
	s.Set("n", 2)
	if calls != 1 {
		t.Errorf("got %d calls after unsubscribe, want 1", calls)
	}

	keyCalls := 0
	unsubKey := s.SubscribeToKey("n", func(value, prev any) { keyCalls++ })
	s.Set("n", 3)
	unsubKey()
	s.Set("n", 4)
	if keyCalls != 1 {
		t.Errorf("got %d key calls after unsubscribe, want 1", keyCalls)
	}
}

func TestListenersRunInRegistrationOrder(t *testing.T) {
	s := New(map[string]any{"x": 0})
	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		s.Subscribe(func(next, prev map[string]any) { order = append(order, i) })
	}
	s.Set("x", 1)
	for i, got := range order {
		if got != i+1 {
			t.Fatalf("order: got %v, want [1 2 3]", order)
		}
	}
}

func TestSetNewKey(t *testing.T) {
	s := New(nil)
	var sawPrev any = "sentinel"
	s.SubscribeToKey("fresh", func(value, prev any) { sawPrev = prev })
	s.Set("fresh", "v")
	if sawPrev != nil {
		t.Errorf("prev for a new key: got %v, want nil", sawPrev)
	}
	if got := s.Get("fresh"); got != "v" {
		t.Errorf("Get(fresh): got %v", got)
	}
}

func TestIncomparableValuesAlwaysNotify(t *testing.T) {
	s := New(map[string]any{"list": []string{"a"}})
	calls := 0
	s.SubscribeToKey("list", func(value, prev any) { calls++ })
	s.Set("list", []string{"a"})
	if calls != 1 {
		t.Errorf("slice values should always notify, got %d calls", calls)
	}
}
