package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "etoile", Fold("Étoilé"))
	assert.Equal(t, "oenologie", Fold("Œnologie"))
	assert.Equal(t, "croisiere sur la seine", Fold("Croisière sur la Seine"))
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" Étoile", "etoile", "", "Aucun", "Croisière"})
	assert.Equal(t, []string{"etoile", "croisiere"}, got)
}
