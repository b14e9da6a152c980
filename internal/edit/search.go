package edit

// Find locates all non-overlapping matches of query in text, scanning
// from start. Returned spans are offsets into the original text, in
// left-to-right order. An empty query returns no matches and no error.
// An invalid regex-mode query returns a wrapped ErrInvalidPattern.
//
// Find records query as the engine's last search.
func (e *Engine) Find(text, query string, start int) ([]Span, error) {
	if query == "" {
		return nil, nil
	}

	e.lastSearch = query

	re, err := compileQuery(query, e.opts)
	if err != nil {
		return nil, err
	}

	if start < 0 {
		start = 0
	}
	if start > len(text) {
		return nil, nil
	}

	locs := re.FindAllStringIndex(text[start:], -1)
	if len(locs) == 0 {
		return nil, nil
	}

	spans := make([]Span, len(locs))
	for i, loc := range locs {
		spans[i] = Span{Start: start + loc[0], End: start + loc[1]}
	}

	return spans, nil
}

// Replace substitutes matches of query in text with replacement, scanning
// from start. Text before start is left untouched. When all is false only
// the first match is replaced. It returns the new text and the number of
// replacements made.
//
// In regex mode the replacement may use Go's $name expansion syntax; in
// literal mode it is inserted verbatim. An empty query is a no-op.
// Replace records the query and replacement as the engine's last
// search/replace pair.
func (e *Engine) Replace(text, query, replacement string, start int, all bool) (string, int, error) {
	if query == "" {
		return text, 0, nil
	}

	e.lastSearch = query
	e.lastReplace = replacement

	re, err := compileQuery(query, e.opts)
	if err != nil {
		return text, 0, err
	}

	if start < 0 {
		start = 0
	}
	if start > len(text) {
		return text, 0, nil
	}

	head, tail := text[:start], text[start:]

	if all {
		count := len(re.FindAllStringIndex(tail, -1))
		if count == 0 {
			return text, 0, nil
		}
		var replaced string
		if e.opts.UseRegex {
			replaced = re.ReplaceAllString(tail, replacement)
		} else {
			replaced = re.ReplaceAllLiteralString(tail, replacement)
		}
		return head + replaced, count, nil
	}

	m := re.FindStringSubmatchIndex(tail)
	if m == nil {
		return text, 0, nil
	}

	rep := replacement
	if e.opts.UseRegex {
		rep = string(re.ExpandString(nil, replacement, tail, m))
	}

	return head + tail[:m[0]] + rep + tail[m[1]:], 1, nil
}
