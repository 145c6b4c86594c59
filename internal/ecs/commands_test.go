package ecs

import (
	"errors"
	"testing"
)

func TestQueuedDestroyIsDeferredUntilMaintain(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 3})

	w.QueueDestroy(id)
	if !w.Alive(id) {
		t.Fatal("entity must stay alive until Maintain")
	}
	if !w.PendingDestroy(id) {
		t.Fatal("PendingDestroy should report the queued entity")
	}
	if len(w.Query(ComponentType(1))) != 1 {
		t.Fatal("entity must stay queryable until Maintain")
	}

	if err := w.Maintain(); err != nil {
		t.Fatalf("Maintain: %v", err)
	}
	if w.Alive(id) {
		t.Fatal("entity should be destroyed after Maintain")
	}
	if w.Pending() != 0 {
		t.Fatalf("queue should be empty after Maintain, has %d", w.Pending())
	}
}

func TestQueueCreateAndAdd(t *testing.T) {
	w := NewWorld()
	target := w.CreateEntity()

	w.QueueCreate(testComp{val: 9}, otherComp{})
	w.QueueAdd(target, testComp{val: 1})
	if len(w.Query(ComponentType(2))) != 0 {
		t.Fatal("queued creation must not be visible before Maintain")
	}
	if w.Has(target, ComponentType(1)) {
		t.Fatal("queued add must not be visible before Maintain")
	}

	if err := w.Maintain(); err != nil {
		t.Fatalf("Maintain: %v", err)
	}
	created := w.Query(ComponentType(1), ComponentType(2))
	if len(created) != 1 {
		t.Fatalf("expected one created entity, got %d", len(created))
	}
	if v := w.Get(created[0], ComponentType(1)).(testComp).val; v != 9 {
		t.Fatalf("created entity val = %d; want 9", v)
	}
	if !w.Has(target, ComponentType(1)) {
		t.Fatal("queued add should be applied by Maintain")
	}
}

func TestMaintainReportsAddToDeadEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.QueueAdd(id, testComp{})
	w.DestroyEntity(id)

	err := w.Maintain()
	if err == nil {
		t.Fatal("expected an error for a queued add on a dead entity")
	}
	if !errors.Is(err, ErrInvariant) {
		t.Fatalf("error %v should wrap ErrInvariant", err)
	}
}

func TestMaintainAppliesDestroyAfterAdds(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.QueueDestroy(id)
	w.QueueAdd(id, testComp{})

	if err := w.Maintain(); err != nil {
		t.Fatalf("Maintain: %v", err)
	}
	if w.Alive(id) {
		t.Fatal("entity should be destroyed once the batch commits")
	}
}
