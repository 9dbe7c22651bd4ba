package idgen

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestRandom_Format(t *testing.T) {
	id := NewRandom().NewID()

	if id == "" {
		t.Fatal("expected non-empty id")
	}
	if strings.Contains(id, "=") {
		t.Fatal("expected no padding")
	}
	if len(id) != 26 {
		t.Fatalf("expected 26-character id, got %d", len(id))
	}
	for _, r := range id {
		if (r < 'a' || r > 'z') && (r < '2' || r > '7') {
			t.Fatalf("unexpected character %q in id", r)
		}
	}

	decoded, err := encoding.DecodeString(strings.ToUpper(id))
	if err != nil {
		t.Fatalf("decode id: %v", err)
	}
	u, err := uuid.FromBytes(decoded)
	if err != nil {
		t.Fatalf("decoded bytes are not a uuid: %v", err)
	}
	if u.Version() != 4 {
		t.Fatalf("expected version 4, got %d", u.Version())
	}
}

func TestRandom_Unique(t *testing.T) {
	gen := NewRandom()
	seen := make(map[string]bool)

	for i := 0; i < 10000; i++ {
		id := gen.NewID()
		if seen[id] {
			t.Fatalf("duplicate id %q after %d generations", id, i)
		}
		seen[id] = true
	}
}

func TestSequence_Predictable(t *testing.T) {
	gen := NewSequence("p")

	got := []string{gen.NewID(), gen.NewID(), gen.NewID()}
	want := []string{"p1", "p2", "p3"}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("id %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSequence_ConcurrentUnique(t *testing.T) {
	gen := NewSequence("x")
	const workers = 8
	const perWorker = 250

	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := gen.NewID()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Errorf("got %d unique ids, want %d", len(seen), workers*perWorker)
	}
}

func TestFunc_Adapter(t *testing.T) {
	gen := Func(func() string { return "fixed" })

	if gen.NewID() != "fixed" {
		t.Errorf("Func.NewID() = %q, want fixed", gen.NewID())
	}
}
