package trail

import (
	"math/rand"
	"testing"
)

func TestNewParty(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	party := newParty(rng, 3)
	if len(party) != 3 {
		t.Fatalf("party size = %d, want 3", len(party))
	}
	pool := make(map[string]bool)
	for _, n := range founderPool {
		pool[n] = true
	}
	seen := make(map[string]bool)
	for _, f := range party {
		if !f.Alive {
			t.Errorf("founder %s should start alive", f.Name)
		}
		if !pool[f.Name] {
			t.Errorf("founder %s not in the name pool", f.Name)
		}
		if seen[f.Name] {
			t.Errorf("founder %s drawn twice", f.Name)
		}
		seen[f.Name] = true
	}
}

func TestNewPartyCapsAtPool(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	party := newParty(rng, 50)
	if len(party) != len(founderPool) {
		t.Errorf("oversized party = %d, want %d", len(party), len(founderPool))
	}
}

func TestNewPartyDeterministic(t *testing.T) {
	p1 := newParty(rand.New(rand.NewSource(999)), 3)
	p2 := newParty(rand.New(rand.NewSource(999)), 3)
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Errorf("founder %d diverged: %+v vs %+v", i, p1[i], p2[i])
		}
	}
}

func TestLoseAndReviveFounder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	party := newParty(rng, 2)

	name, ok := loseRandomFounder(rng, party)
	if !ok {
		t.Fatal("loseRandomFounder should succeed with living founders")
	}
	if aliveCount(party) != 1 {
		t.Errorf("alive count = %d after one loss, want 1", aliveCount(party))
	}
	found := false
	for _, f := range party {
		if f.Name == name && !f.Alive {
			found = true
		}
	}
	if !found {
		t.Errorf("lost founder %s not marked dead in the party", name)
	}

	if _, ok := loseRandomFounder(rng, party); !ok {
		t.Fatal("second loss should still succeed")
	}
	if aliveCount(party) != 0 {
		t.Errorf("alive count = %d after two losses, want 0", aliveCount(party))
	}
	if _, ok := loseRandomFounder(rng, party); ok {
		t.Error("loseRandomFounder should report false with nobody left")
	}

	if _, ok := reviveRandomFounder(rng, party); !ok {
		t.Fatal("reviveRandomFounder should succeed with dead founders")
	}
	if aliveCount(party) != 1 {
		t.Errorf("alive count = %d after revive, want 1", aliveCount(party))
	}

	party[0].Alive = true
	party[1].Alive = true
	if _, ok := reviveRandomFounder(rng, party); ok {
		t.Error("reviveRandomFounder should report false with everyone aboard")
	}
}

func TestAliveDeadIndices(t *testing.T) {
	party := []Founder{
		{Name: "A", Alive: true},
		{Name: "B", Alive: false},
		{Name: "C", Alive: true},
	}
	alive := aliveIndices(party)
	if len(alive) != 2 || alive[0] != 0 || alive[1] != 2 {
		t.Errorf("aliveIndices = %v, want [0 2]", alive)
	}
	dead := deadIndices(party)
	if len(dead) != 1 || dead[0] != 1 {
		t.Errorf("deadIndices = %v, want [1]", dead)
	}
}
