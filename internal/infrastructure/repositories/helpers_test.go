package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "", likePattern("   "))
	assert.Equal(t, "%go%", likePattern(" Go "))
	assert.Equal(t, `%50\%\_off\\%`, likePattern(`50%_off\`))
}

func TestSearchClause(t *testing.T) {
	assert.Equal(t, `(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(role) LIKE ? ESCAPE '\')`, searchClause("name", "role"))
}
