package seeder

import (
	"fmt"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var namePattern = regexp.MustCompile(`^User_(\d+)$`)

func TestRecordProperties(t *testing.T) {
	g := NewGeneratorWithSeed(42)

	for i := 1; i <= 1000; i++ {
		record := g.Record(i)

		assert.GreaterOrEqual(t, record.Age, 18, "row %d", i)
		assert.LessOrEqual(t, record.Age, 97, "row %d", i)

		matches := namePattern.FindStringSubmatch(record.Name)
		require.NotNil(t, matches, "name %q does not match pattern", record.Name)
		suffix, err := strconv.Atoi(matches[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, suffix, 0)
		assert.LessOrEqual(t, suffix, 999)

		assert.Equal(t, fmt.Sprintf("user%d@example.com", i), record.Email)
	}
}

func TestEmailIsIndexDerived(t *testing.T) {
	// Email does not depend on the random source, only on the index.
	a := NewGeneratorWithSeed(1)
	b := NewGeneratorWithSeed(99)

	assert.Equal(t, "user3@example.com", a.Record(3).Email)
	assert.Equal(t, "user3@example.com", b.Record(3).Email)
}

func TestSeededGeneratorIsDeterministic(t *testing.T) {
	a := NewGeneratorWithSeed(7)
	b := NewGeneratorWithSeed(7)

	for i := 1; i <= 50; i++ {
		assert.Equal(t, a.Record(i), b.Record(i))
	}
}
