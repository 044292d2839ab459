package boggle

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Catalog loads and process-locally caches dice configs and dictionaries
// from disk. File parsing only happens once per name, the first time it's
// requested — dictionaries in particular can be large word lists and this
// process may score many rounds before it ever needs one.
type Catalog struct {
	diceDir string
	dictDir string

	mu    sync.Mutex
	dice  map[string][]Die
	dicts map[string]map[string]struct{}
}

// NewCatalog points a Catalog at the configured dice and dictionary
// directories. Nothing is read from disk until first use.
func NewCatalog(diceDir, dictDir string) *Catalog {
	return &Catalog{
		diceDir: diceDir,
		dictDir: dictDir,
		dice:    map[string][]Die{},
		dicts:   map[string]map[string]struct{}{},
	}
}

// Dice returns the named dice configuration, loading and caching it on
// first use.
func (c *Catalog) Dice(name string) ([]Die, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if dice, ok := c.dice[name]; ok {
		return dice, nil
	}
	dice, err := loadDiceFile(filepath.Join(c.diceDir, name))
	if err != nil {
		return nil, err
	}
	c.dice[name] = dice
	return dice, nil
}

// Dictionary returns the named dictionary as a set of uppercase words,
// loading and caching it on first use. A load failure is logged and
// surfaced to the caller, who is expected to proceed without dictionary
// gating rather than fail the round (spec section 7).
func (c *Catalog) Dictionary(name string) (map[string]struct{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if dict, ok := c.dicts[name]; ok {
		return dict, nil
	}
	dict, err := loadDictionaryFile(filepath.Join(c.dictDir, name+".dic"))
	if err != nil {
		log.Printf("boggle: failed to load dictionary %q: %v", name, err)
		return nil, err
	}
	c.dicts[name] = dict
	return dict, nil
}

// ListDiceConfigs lists the names of every dice config file available
// under diceDir, for the /options endpoint.
func (c *Catalog) ListDiceConfigs() ([]string, error) {
	entries, err := os.ReadDir(c.diceDir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// ListDictionaries lists the base names of every *.dic file under
// dictDir, for the /options endpoint.
func (c *Catalog) ListDictionaries() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(c.dictDir, "*.dic"))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), ".dic"))
	}
	return names, nil
}

// loadDiceFile parses the newline-separated block format: first line is
// the config name (skipped here, the file's base name is the canonical
// key), subsequent lines are space-separated face labels
// for one die, a blank line terminates the entry.
func loadDiceFile(path string) ([]Die, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var dice []Die
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			// first line is the display name of the config; skip it
			first = false
			continue
		}
		if line == "" {
			break
		}
		faces := strings.Fields(line)
		die := make(Die, len(faces))
		for i, f := range faces {
			die[i] = strings.ToUpper(f)
		}
		dice = append(dice, die)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(dice) == 0 {
		return nil, fmt.Errorf("boggle: dice config %q has no dice", path)
	}
	return dice, nil
}

// loadDictionaryFile reads one uppercase word per line.
func loadDictionaryFile(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words := map[string]struct{}{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		words[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
