// Package palette implements the command palette: a searchable list of
// named commands with their key bindings.
package palette

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

// Command is one entry in the palette.
type Command struct {
	// ID is the action name dispatched when the command runs.
	ID string

	// Title is the text shown and matched against.
	Title string

	// Category groups related commands.
	Category string

	// Binding is the key combo bound to the command, if any.
	Binding string
}

// SearchResult is a matched command with scoring information.
type SearchResult struct {
	// Command is the matched command.
	Command Command

	// Score is the fuzzy match score, higher is better.
	Score int

	// Matches holds the indices of matched characters in the title.
	Matches []int
}

// commandSource adapts a command slice for fuzzy matching on titles.
type commandSource []Command

func (s commandSource) String(i int) string { return s[i].Title }
func (s commandSource) Len() int            { return len(s) }

// Palette holds the command list and filters it by query.
type Palette struct {
	commands []Command
}

// New creates a palette over the given commands.
func New(commands []Command) *Palette {
	return &Palette{commands: commands}
}

// Add appends a command to the palette.
func (p *Palette) Add(cmd Command) {
	p.commands = append(p.commands, cmd)
}

// Commands returns all commands sorted by category then title.
func (p *Palette) Commands() []Command {
	out := make([]Command, len(p.commands))
	copy(out, p.commands)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// Search returns commands matching the query by fuzzy title match,
// best match first. An empty query returns all commands. A limit of 0
// means no limit.
func (p *Palette) Search(query string, limit int) []SearchResult {
	if query == "" {
		all := p.Commands()
		results := make([]SearchResult, 0, len(all))
		for _, cmd := range all {
			results = append(results, SearchResult{Command: cmd})
		}
		return truncate(results, limit)
	}

	matches := fuzzy.FindFrom(query, commandSource(p.commands))
	results := make([]SearchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, SearchResult{
			Command: p.commands[m.Index],
			Score:   m.Score,
			Matches: m.MatchedIndexes,
		})
	}
	return truncate(results, limit)
}

func truncate(results []SearchResult, limit int) []SearchResult {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}
