package blockfall

import (
	"fmt"
	"math/rand"
	"strings"
)

// PieceSource chooses the kind of each spawned piece.
type PieceSource interface {
	Next() Kind
}

// randomSource picks kinds uniformly at random.
type randomSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a uniform source seeded with seed.
func NewRandomSource(seed int64) PieceSource {
	return &randomSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randomSource) Next() Kind {
	return Kind(s.rng.Intn(KindCount))
}

// Sequence is a PieceSource that cycles through a fixed list of kinds.
type Sequence struct {
	kinds []Kind
	pos   int
}

// NewSequence returns a source that yields kinds in order, then repeats.
func NewSequence(kinds ...Kind) *Sequence {
	return &Sequence{kinds: kinds}
}

// Next returns the next kind in the cycle. An empty sequence always yields KindI.
func (s *Sequence) Next() Kind {
	if len(s.kinds) == 0 {
		return KindI
	}
	k := s.kinds[s.pos%len(s.kinds)]
	s.pos++
	return k
}

// ParseKinds reads piece letters such as "IOTSZJL" into kinds.
// Letters are case-insensitive; spaces and commas are skipped.
func ParseKinds(letters string) ([]Kind, error) {
	var kinds []Kind
	for _, ch := range strings.ToUpper(letters) {
		if ch == ' ' || ch == ',' {
			continue
		}
		k, ok := kindByLetter(ch)
		if !ok {
			return nil, fmt.Errorf("blockfall: unknown piece %q", ch)
		}
		kinds = append(kinds, k)
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("blockfall: empty piece sequence")
	}
	return kinds, nil
}

func kindByLetter(ch rune) (Kind, bool) {
	for _, spec := range catalog {
		if spec.Name == string(ch) {
			return spec.Kind, true
		}
	}
	return 0, false
}
