package trail

import "math/rand"

// Founder is one co-founder riding the wagon.
type Founder struct {
	Name  string
	Alive bool
}

// newParty draws a fresh co-founder team from the name pool.
func newParty(rng *rand.Rand, size int) []Founder {
	pool := make([]string, len(founderPool))
	copy(pool, founderPool)
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if size > len(pool) {
		size = len(pool)
	}
	party := make([]Founder, size)
	for i := range party {
		party[i] = Founder{Name: pool[i], Alive: true}
	}
	return party
}

// aliveCount returns how many co-founders are still on the wagon.
func aliveCount(party []Founder) int {
	n := 0
	for _, f := range party {
		if f.Alive {
			n++
		}
	}
	return n
}

// aliveIndices returns the indices of living co-founders.
func aliveIndices(party []Founder) []int {
	var idx []int
	for i, f := range party {
		if f.Alive {
			idx = append(idx, i)
		}
	}
	return idx
}

// deadIndices returns the indices of departed co-founders.
func deadIndices(party []Founder) []int {
	var idx []int
	for i, f := range party {
		if !f.Alive {
			idx = append(idx, i)
		}
	}
	return idx
}

// loseRandomFounder marks a random living co-founder as departed and
// returns their name. ok is false when nobody is left to lose.
func loseRandomFounder(rng *rand.Rand, party []Founder) (string, bool) {
	alive := aliveIndices(party)
	if len(alive) == 0 {
		return "", false
	}
	i := alive[rng.Intn(len(alive))]
	party[i].Alive = false
	return party[i].Name, true
}

// reviveRandomFounder brings a random departed co-founder back and
// returns their name. ok is false when everyone is already aboard.
func reviveRandomFounder(rng *rand.Rand, party []Founder) (string, bool) {
	dead := deadIndices(party)
	if len(dead) == 0 {
		return "", false
	}
	i := dead[rng.Intn(len(dead))]
	party[i].Alive = true
	return party[i].Name, true
}
