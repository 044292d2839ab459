package boggle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestCatalogLoadsAndCachesDice(t *testing.T) {
	diceDir := t.TempDir()
	writeFile(t, diceDir, "mini", "Mini\nA B C D E F\nG H I J K L\n")

	cat := NewCatalog(diceDir, t.TempDir())
	dice, err := cat.Dice("mini")
	require.NoError(t, err)
	require.Len(t, dice, 2)
	assert.Equal(t, Die{"A", "B", "C", "D", "E", "F"}, dice[0])

	// delete the file; a cached load shouldn't need the disk again
	require.NoError(t, os.Remove(filepath.Join(diceDir, "mini")))
	again, err := cat.Dice("mini")
	require.NoError(t, err)
	assert.Equal(t, dice, again)
}

func TestCatalogDictionaryUppercasesAndTrims(t *testing.T) {
	dictDir := t.TempDir()
	writeFile(t, dictDir, "small.dic", "cat\n DOG \nfish\n\n")

	cat := NewCatalog(t.TempDir(), dictDir)
	words, err := cat.Dictionary("small")
	require.NoError(t, err)

	_, ok := words["CAT"]
	assert.True(t, ok)
	_, ok = words["DOG"]
	assert.True(t, ok)
	_, ok = words["FISH"]
	assert.True(t, ok)
	assert.Len(t, words, 3)
}

func TestCatalogListDiceConfigsAndDictionaries(t *testing.T) {
	diceDir, dictDir := t.TempDir(), t.TempDir()
	writeFile(t, diceDir, "international", "International\nA B C D E F\n")
	writeFile(t, diceDir, "classic", "Classic\nA B C D E F\n")
	writeFile(t, dictDir, "english.dic", "cat\n")

	cat := NewCatalog(diceDir, dictDir)

	configs, err := cat.ListDiceConfigs()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"international", "classic"}, configs)

	dicts, err := cat.ListDictionaries()
	require.NoError(t, err)
	assert.Equal(t, []string{"english"}, dicts)
}

func TestCatalogDiceRejectsEmptyConfig(t *testing.T) {
	diceDir := t.TempDir()
	writeFile(t, diceDir, "empty", "Empty\n\n")

	cat := NewCatalog(diceDir, t.TempDir())
	_, err := cat.Dice("empty")
	assert.Error(t, err)
}
