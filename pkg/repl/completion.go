package repl

import (
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/leinonen/golisp/pkg/lisp"
)

// completionProvider ranks the environment's bound symbol names against
// the word under the cursor. The teacher's CompletionProvider
// (pkg/repl/completion.go) only offered exact-prefix matches; this
// generalizes it to fuzzy ranking via lithammer/fuzzysearch so e.g.
// typing "cnt" still surfaces "count".
type completionProvider struct {
	env *lisp.Environment
}

func newCompletionProvider(env *lisp.Environment) *completionProvider {
	return &completionProvider{env: env}
}

// Complete returns the environment's bound names that fuzzy-match
// prefix, best matches first.
func (cp *completionProvider) Complete(prefix string) []string {
	if prefix == "" {
		names := cp.env.Names()
		sort.Strings(names)
		return names
	}
	matches, _ := fuzzy.RankFindFold(prefix, cp.env.Names())
	sort.Sort(matches)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Target
	}
	return out
}

// isSymbolChar reports whether ch can appear in a language symbol,
// following the reader's non-delimiter atom-character rule (reader.go),
// except that a double quote also ends the word here.
func isSymbolChar(ch rune) bool {
	return !strings.ContainsRune(" \t\r\n,;()[]{}'`~^@\"", ch)
}

func currentWord(line string, pos int) (word string, start int) {
	if pos > len(line) {
		pos = len(line)
	}
	start = pos
	for start > 0 && isSymbolChar(rune(line[start-1])) {
		start--
	}
	return line[start:pos], start
}

// fuzzyCompleter adapts completionProvider to readline.AutoCompleter.
type fuzzyCompleter struct {
	provider *completionProvider
}

func (c *fuzzyCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	word, start := currentWord(string(line), pos)
	matches := c.provider.Complete(word)
	newLine = make([][]rune, len(matches))
	for i, m := range matches {
		// Fuzzy matches aren't necessarily prefixed by word (e.g. "cnt"
		// matching "count" non-contiguously), so the typed word is
		// replaced outright with the full match rather than appending
		// just its tail past len(word).
		newLine[i] = []rune(m)
	}
	return newLine, pos - start
}

var _ readline.AutoCompleter = (*fuzzyCompleter)(nil)
