package timer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tgienger/stt/internal/models"
	"github.com/tgienger/stt/internal/tree"
)

func newFixture(opts ...Option) (*Controller, *tree.Store, *int) {
	store := tree.NewStore(models.Forest{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
	})
	saves := 0
	c := New(store, func() error {
		saves++
		return nil
	}, opts...)
	return c, store, &saves
}

func TestStartUnknownTask(t *testing.T) {
	c, _, _ := newFixture()
	if _, err := c.Start("missing"); !errors.Is(err, ErrUnknownTask) {
		t.Fatalf("expected ErrUnknownTask, got %v", err)
	}
	if c.State() != Idle {
		t.Fatal("controller must stay idle")
	}
}

func TestTickAccumulates(t *testing.T) {
	c, store, _ := newFixture()
	epoch, err := c.Start("a")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i := 0; i < 3; i++ {
		if !c.Tick(epoch) {
			t.Fatalf("tick %d rejected", i)
		}
	}
	if got := store.Find("a").ActualSeconds; got != 3 {
		t.Fatalf("ActualSeconds = %d, want 3", got)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	c, _, saves := newFixture()
	c.Start("a")

	c.Stop()
	afterFirst := *saves
	state, epoch := c.State(), c.Epoch()

	c.Stop()
	if *saves != afterFirst {
		t.Errorf("second Stop saved again (%d -> %d)", afterFirst, *saves)
	}
	if c.State() != state || c.Epoch() != epoch {
		t.Error("second Stop changed controller state")
	}
	if _, running := c.Active(); running {
		t.Error("expected no active task")
	}
}

func TestStopForcesSave(t *testing.T) {
	c, _, saves := newFixture()
	epoch, _ := c.Start("a")
	c.Tick(epoch)
	c.Stop()
	if *saves != 1 {
		t.Fatalf("expected exactly one save from Stop, got %d", *saves)
	}
}

func TestSaveCadence(t *testing.T) {
	c, _, saves := newFixture()
	epoch, _ := c.Start("a")
	for i := 0; i < 12; i++ {
		c.Tick(epoch)
	}
	if *saves != 2 {
		t.Fatalf("expected saves on ticks 5 and 10, got %d", *saves)
	}

	c2, _, saves2 := newFixture(WithSaveEvery(2))
	epoch, _ = c2.Start("a")
	for i := 0; i < 6; i++ {
		c2.Tick(epoch)
	}
	if *saves2 != 3 {
		t.Fatalf("expected 3 saves with WithSaveEvery(2), got %d", *saves2)
	}
}

func TestMutualExclusion(t *testing.T) {
	c, store, _ := newFixture()
	epochA, _ := c.Start("a")
	c.Tick(epochA)

	epochB, err := c.Start("b")
	if err != nil {
		t.Fatalf("Start(b): %v", err)
	}
	if epochB == epochA {
		t.Fatal("expected a new epoch for b")
	}

	// A tick still in flight for the first run must not land anywhere.
	if c.Tick(epochA) {
		t.Fatal("stale tick accepted")
	}
	c.Tick(epochB)
	c.Tick(epochB)

	if id, running := c.Active(); !running || id != "b" {
		t.Fatalf("Active = %q,%v want b,true", id, running)
	}
	if got := store.Find("a").ActualSeconds; got != 1 {
		t.Errorf("a accumulated %d seconds, want 1", got)
	}
	if got := store.Find("b").ActualSeconds; got != 2 {
		t.Errorf("b accumulated %d seconds, want 2", got)
	}
}

func TestStartSameTaskKeepsRun(t *testing.T) {
	c, _, saves := newFixture()
	first, _ := c.Start("a")
	again, _ := c.Start("a")
	if first != again {
		t.Fatalf("restarting the active task changed epoch %d -> %d", first, again)
	}
	if *saves != 0 {
		t.Fatal("restarting the active task must not stop it")
	}
}

func TestTickAfterStopIsDropped(t *testing.T) {
	c, store, _ := newFixture()
	epoch, _ := c.Start("a")
	c.Stop()
	if c.Tick(epoch) {
		t.Fatal("tick after Stop accepted")
	}
	if store.Find("a").ActualSeconds != 0 {
		t.Fatal("tick after Stop accumulated time")
	}
}

func TestTickOnDeletedTarget(t *testing.T) {
	c, store, _ := newFixture()
	epoch, _ := c.Start("a")
	store.Remove("a")

	if !c.Tick(epoch) {
		t.Fatal("run must continue after its target is deleted")
	}
	if id, running := c.Active(); !running || id != "a" {
		t.Fatal("controller must not auto-stop on deletion")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	c, store, saves := newFixture()
	if err := c.Run(context.Background(), time.Millisecond, nil); !errors.Is(err, ErrIdle) {
		t.Fatalf("Run while idle: got %v, want ErrIdle", err)
	}

	c.Start("a")
	ctx, cancel := context.WithCancel(context.Background())
	ticks := 0
	err := c.Run(ctx, time.Millisecond, func() {
		ticks++
		if ticks == 3 {
			cancel()
		}
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.State() != Idle {
		t.Fatal("expected Run to stop the timer on cancel")
	}
	if got := store.Find("a").ActualSeconds; got < 3 {
		t.Fatalf("ActualSeconds = %d, want at least 3", got)
	}
	if *saves == 0 {
		t.Fatal("expected a save when Run stops the timer")
	}
}
