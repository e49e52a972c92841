package fire

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

var ErrPolicy = errors.New("fire: unknown seed policy")

// SeedSource produces the two synthetic rows that feed the bottom of the
// fire every frame.
type SeedSource interface {
	Fill(dst []uint8)
}

// Policy weights the choice between a dark and a hot seed value. Each value
// is Hot with probability High/(Low+High), otherwise zero.
type Policy struct {
	Name string
	Low  int
	High int
	Hot  uint8
}

var (
	// Classic is the 3:1 mix of black and full heat.
	Classic = Policy{Name: "classic", Low: 3, High: 1, Hot: 255}
	// Hot burns taller with a 2:1 mix.
	Hot = Policy{Name: "hot", Low: 2, High: 1, Hot: 255}
	// Calm burns lower with a 4:1 mix.
	Calm = Policy{Name: "calm", Low: 4, High: 1, Hot: 255}
	// Ember emits mid heat most of the time, giving a dense low glow.
	Ember = Policy{Name: "ember", Low: 3, High: 4, Hot: 128}
)

var policies = []Policy{Classic, Hot, Calm, Ember}

// ParsePolicy looks up a policy by name. Empty selects Classic.
func ParsePolicy(name string) (Policy, error) {
	if name == "" {
		return Classic, nil
	}
	for _, p := range policies {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Policy{}, fmt.Errorf("%w: %q", ErrPolicy, name)
}

// PolicyNames lists the built-in policies.
func PolicyNames() []string {
	out := make([]string, len(policies))
	for i, p := range policies {
		out[i] = p.Name
	}
	return out
}

// WeightedSeeds draws seed values from a seeded PCG so runs are repeatable.
type WeightedSeeds struct {
	p     Policy
	total int
	rng   *rand.Rand
}

// NewWeightedSeeds returns a generator for p. Invalid weights fall back to
// Classic.
func NewWeightedSeeds(p Policy, seed uint64) *WeightedSeeds {
	if p.Low < 0 || p.High < 0 || p.Low+p.High == 0 {
		p = Classic
	}
	return &WeightedSeeds{
		p:     p,
		total: p.Low + p.High,
		rng:   rand.New(rand.NewPCG(seed, seed+1)),
	}
}

// Policy returns the active policy.
func (w *WeightedSeeds) Policy() Policy { return w.p }

func (w *WeightedSeeds) Fill(dst []uint8) {
	for i := range dst {
		if w.rng.IntN(w.total) < w.p.High {
			dst[i] = w.p.Hot
		} else {
			dst[i] = 0
		}
	}
}
