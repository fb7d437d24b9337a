package seeder

import (
	"fmt"
	"math/rand"
	"time"
)

// Record is one generated user row.
type Record struct {
	Name  string
	Age   int
	Email string
}

type Generator struct {
	rand *rand.Rand
}

func NewGenerator() *Generator {
	return NewGeneratorWithSeed(time.Now().UnixNano())
}

// NewGeneratorWithSeed pins the random source so runs can be reproduced.
func NewGeneratorWithSeed(seed int64) *Generator {
	return &Generator{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Record produces the row for the given 1-based index. Name and age are
// random; the email is derived from the index and therefore unique per run.
// Name collisions across rows are expected.
func (g *Generator) Record(index int) Record {
	return Record{
		Name:  fmt.Sprintf("User_%d", g.rand.Intn(1000)),
		Age:   g.rand.Intn(80) + 18,
		Email: fmt.Sprintf("user%d@example.com", index),
	}
}
