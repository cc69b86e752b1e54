package searchserver

// QueryWord is one parsed word of a query: either a plus-word (must match)
// or, if IsMinus is set, a minus-word (must not match).
type QueryWord struct {
	Text    string
	IsMinus bool
}

// ParsedQuery is a query split into its plus-words and minus-words, with
// stop-words already filtered out of the plus-word set. Minus stop-words
// are filtered too: a stop-word can never usefully exclude a document.
type ParsedQuery struct {
	PlusWords  map[string]struct{}
	MinusWords map[string]struct{}
}

// parseQueryWord validates and classifies a single raw token, matching the
// course project's ParseQueryWord: a lone "-" is invalid, a word starting
// with "--" is invalid, and a control character anywhere in the word
// invalidates it regardless of the leading minus.
func parseQueryWord(raw string) (QueryWord, error) {
	if hasControlByte(raw) {
		return QueryWord{}, newInvalidArgument("ParseQuery", "word %q contains a control character", raw)
	}

	text := raw
	isMinus := false
	if len(text) > 0 && text[0] == '-' {
		isMinus = true
		text = text[1:]
	}

	if isMinus && text == "" {
		return QueryWord{}, newInvalidArgument("ParseQuery", "minus-word is empty")
	}
	if isMinus && len(text) > 0 && text[0] == '-' {
		return QueryWord{}, newInvalidArgument("ParseQuery", "word %q has a double minus prefix", raw)
	}

	return QueryWord{Text: text, IsMinus: isMinus}, nil
}

// ParseQuery splits raw into plus-words and minus-words, dropping any
// plus- or minus-word found in stopWords. It returns an *Error of kind
// InvalidArgument at the first malformed word.
func ParseQuery(raw string, stopWords map[string]struct{}) (ParsedQuery, error) {
	query := ParsedQuery{
		PlusWords:  make(map[string]struct{}),
		MinusWords: make(map[string]struct{}),
	}

	for _, token := range SplitIntoWords(raw) {
		word, err := parseQueryWord(token)
		if err != nil {
			return ParsedQuery{}, err
		}
		if _, stop := stopWords[word.Text]; stop {
			continue
		}
		if word.IsMinus {
			query.MinusWords[word.Text] = struct{}{}
		} else {
			query.PlusWords[word.Text] = struct{}{}
		}
	}

	return query, nil
}
