package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGame(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.toml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestValidateCleanGame(t *testing.T) {
	path := writeGame(t, `
name = "typical"

[[deal]]
stack = "Stack 6"
suit = "Suit D"
cards = 9
extra = 6

[[deal]]
stack = "Stack 4"
suit = "Suit B"
cards = 0
extra = 0
`)
	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestValidateIdentifiers(t *testing.T) {
	path := writeGame(t, `
[[deal]]
stack = "Stack 9"
suit = "Suit A"
cards = 1
extra = 0

[[deal]]
stack = "Stack 2"
suit = "Suit Z"
cards = 1
extra = 0

[[deal]]
stack = "Stack 2"
suit = "Suit A"
cards = 1
extra = 0
`)
	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Equal(t, []string{
		`deal 1: unknown stack "Stack 9"`,
		`deal 2: unknown suit "Suit Z"`,
		`deal 3: Stack 2 already dealt in deal 2`,
	}, results.Errors)
}

func TestValidateRangesAreWarnings(t *testing.T) {
	path := writeGame(t, `
[[deal]]
stack = "Stack 1"
suit = "Suit A"
cards = 12
extra = 0

[[deal]]
stack = "Stack 2"
suit = "Suit B"
cards = 2
extra = 3

[[deal]]
stack = "Stack 3"
suit = "Suit C"
cards = 0
extra = 1

[[deal]]
stack = "Stack 4"
suit = "Suit D"
cards = 1
extra = -1
`)
	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Equal(t, []string{
		"deal 1: cards = 12 is outside 0..10",
		"deal 2: extra = 3 exceeds cards = 2",
		"deal 3: extra = 1 on an empty stack",
		"deal 4: extra = -1 is negative",
	}, results.Warnings)
}

func TestValidateEmptyGame(t *testing.T) {
	results, err := NewValidator(writeGame(t, `name = "blank"`)).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Len(t, results.Warnings, 1)
}

func TestValidateTooManyDeals(t *testing.T) {
	data := ""
	for _, s := range []string{"1", "2", "3", "4", "5", "6", "1"} {
		data += "[[deal]]\nstack = \"Stack " + s + "\"\nsuit = \"Suit A\"\ncards = 1\nextra = 0\n\n"
	}
	results, err := NewValidator(writeGame(t, data)).Validate()
	require.NoError(t, err)
	assert.Len(t, results.Errors, 2, "too many deals and a duplicate stack")
}

func TestValidateUnreadable(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "missing.toml")).Validate()
	assert.Error(t, err)

	_, err = NewValidator(writeGame(t, "[[deal]\n")).Validate()
	assert.Error(t, err)
}
