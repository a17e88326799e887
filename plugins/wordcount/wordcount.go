// plugins/wordcount/wordcount.go
package wordcount

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/jot/internal/plugin"
)

var _ plugin.Plugin = (*WordCount)(nil)

// WordCount adds the :wc command, which reports line, word and character
// counts of the note.
type WordCount struct {
	api plugin.EditorAPI
}

func New() *WordCount {
	return &WordCount{}
}

func (p *WordCount) Name() string {
	return "WordCount"
}

func (p *WordCount) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if err := api.RegisterCommand("wc", p.executeWordCount); err != nil {
		return fmt.Errorf("failed to register 'wc' command: %w", err)
	}
	return nil
}

func (p *WordCount) Shutdown() error {
	return nil
}

// Counts holds the statistics :wc reports.
type Counts struct {
	Lines int
	Words int
	Chars int
}

// Count computes statistics for text. An empty note has one (empty) line.
func Count(text string) Counts {
	return Counts{
		Lines: strings.Count(text, "\n") + 1,
		Words: len(strings.Fields(text)),
		Chars: utf8.RuneCountInString(text),
	}
}

func (p *WordCount) executeWordCount(args []string) error {
	if p.api == nil {
		return fmt.Errorf("wordcount plugin not initialized with API")
	}
	c := Count(p.api.GetText())
	p.api.SetStatusMessage("Lines: %d, Words: %d, Chars: %d, Steps: %d", c.Lines, c.Words, c.Chars, p.api.HistoryLen())
	return nil
}
