package mino

import (
	"errors"
	"math/rand"
)

// Randomizer chooses the shape of each spawned piece.
type Randomizer interface {
	Next() Shape
}

const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// NewRandomizer returns the named randomizer seeded with seed.
func NewRandomizer(name string, seed int64) (Randomizer, error) {
	switch name {
	case "", RandomizerUniform:
		return NewUniform(seed), nil
	case RandomizerBag:
		return NewBag(seed, AllShapes)
	default:
		return nil, errors.New("unknown randomizer " + name)
	}
}

// Uniform picks every shape independently with equal probability.
type Uniform struct {
	r *rand.Rand
}

func NewUniform(seed int64) *Uniform {
	return &Uniform{r: rand.New(rand.NewSource(seed))}
}

func (u *Uniform) Next() Shape {
	return Shape(u.r.Intn(ShapeCount))
}

// Bag deals every shape once in shuffled order before reshuffling.
type Bag struct {
	Shapes   []Shape
	Original []Shape

	randomizer *rand.Rand

	i int
}

func NewBag(seed int64, shapes []Shape) (*Bag, error) {
	if len(shapes) == 0 {
		return nil, errors.New("bag requires at least one shape")
	}

	b := &Bag{Original: shapes, randomizer: rand.New(rand.NewSource(seed))}

	b.shuffle()

	return b, nil
}

func (b *Bag) Next() Shape {
	s := b.Shapes[b.i]
	if b.i == len(b.Shapes)-1 {
		b.shuffle()

		b.i = 0
	} else {
		b.i++
	}

	return s
}

func (b *Bag) shuffle() {
	if b.Shapes == nil {
		b.Shapes = make([]Shape, len(b.Original))
	}
	copy(b.Shapes, b.Original)

	b.randomizer.Shuffle(len(b.Shapes), func(i, j int) { b.Shapes[i], b.Shapes[j] = b.Shapes[j], b.Shapes[i] })
}

// Sequence repeats a fixed list of shapes. It is used to replay a known
// game, for instance from the -sequence flag.
type Sequence struct {
	shapes []Shape
	i      int
}

func NewSequence(shapes ...Shape) *Sequence {
	if len(shapes) == 0 {
		shapes = AllShapes
	}

	return &Sequence{shapes: shapes}
}

func (s *Sequence) Next() Shape {
	shape := s.shapes[s.i]
	s.i = (s.i + 1) % len(s.shapes)

	return shape
}
