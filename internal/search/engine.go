package search

import (
	"errors"
	"regexp"
	"slices"
	"unicode/utf8"

	"github.com/zjrosen/clipedit/internal/document"
	"github.com/zjrosen/clipedit/internal/log"
	"github.com/zjrosen/clipedit/internal/notify"
)

// Recorder checkpoints the document after a successful substitution.
type Recorder interface {
	Record(force bool) bool
}

// ReplaceResult reports a single replace. Outcome is Replaced, Skipped,
// NoOp or InvalidPattern; Next is the outcome of the find that pre-selects
// the following candidate.
type ReplaceResult struct {
	Outcome Outcome
	Next    Outcome
}

// ReplaceAllResult reports a replace-all and how many matches the original
// text had.
type ReplaceAllResult struct {
	Outcome Outcome
	Count   int
}

// Engine runs find/replace against a document.
type Engine struct {
	doc      document.Document
	recorder Recorder
	notifier notify.Notifier
}

// New creates an engine. A nil recorder or notifier is allowed.
func New(doc document.Document, recorder Recorder, notifier notify.Notifier) *Engine {
	if notifier == nil {
		notifier = notify.Discard
	}
	return &Engine{
		doc:      doc,
		recorder: recorder,
		notifier: notifier,
	}
}

// Find selects the next (or previous) match of q relative to the selection.
//
// Plain searches stop at the document edges. Regex searches wrap around:
// forward falls back to the first match, backward to the last. A miss is
// announced unless silent.
func (e *Engine) Find(q Query, backward, silent bool) Outcome {
	if q.Term == "" {
		return NoOp
	}

	var (
		start, end int
		ok         bool
	)
	if q.UseRegex {
		re, err := Compile(q)
		if err != nil {
			e.invalidPattern(err)
			return InvalidPattern
		}
		start, end, ok = e.findPattern(re, backward)
	} else {
		start, end, ok = e.findPlain(q, backward)
	}

	if !ok {
		log.Debug(log.CatSearch, "no match", "term", q.Term, "backward", backward, "regex", q.UseRegex)
		if !silent {
			e.notifier.Notify(notify.MsgNotFound)
		}
		return NotFound
	}

	e.doc.SetSelection(start, end)
	return Found
}

func (e *Engine) findPlain(q Query, backward bool) (start, end int, ok bool) {
	text := []rune(e.doc.Text())
	term := []rune(q.Term)
	if !q.CaseSensitive {
		text = fold(text)
		term = fold(term)
	}

	selStart, selEnd := e.doc.Selection()
	var pos int
	if backward {
		pos = lastIndexRunes(text, term, selStart-1)
	} else {
		pos = indexRunes(text, term, selEnd)
	}
	if pos < 0 {
		return 0, 0, false
	}
	return pos, pos + len(term), true
}

func (e *Engine) findPattern(re *regexp.Regexp, backward bool) (start, end int, ok bool) {
	text := e.doc.Text()
	matches := re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return 0, 0, false
	}

	selStart, selEnd := e.doc.Selection()
	var target []int
	if backward {
		caret := byteOffset(text, selStart)
		target = matches[len(matches)-1]
		for i := len(matches) - 1; i >= 0; i-- {
			if matches[i][0] < caret {
				target = matches[i]
				break
			}
		}
	} else {
		caret := byteOffset(text, selEnd)
		target = matches[0]
		if i := slices.IndexFunc(matches, func(m []int) bool { return m[0] >= caret }); i >= 0 {
			target = matches[i]
		}
	}

	start = utf8.RuneCountInString(text[:target[0]])
	end = start + utf8.RuneCountInString(text[target[0]:target[1]])
	return start, end, true
}

// Replace substitutes the selection when it matches the term exactly, then
// pre-selects the next match. With an empty selection it only finds.
func (e *Engine) Replace(r ReplaceRequest) ReplaceResult {
	if r.Term == "" {
		return ReplaceResult{Outcome: NoOp, Next: NoOp}
	}

	var re, whole *regexp.Regexp
	if r.UseRegex {
		var err error
		if re, err = Compile(r.Query); err == nil {
			whole, err = compileAnchored(r.Query)
		}
		if err != nil {
			e.invalidPattern(err)
			return ReplaceResult{Outcome: InvalidPattern, Next: NoOp}
		}
	}

	replacement := Unescape(r.Replacement)

	start, end := e.doc.Selection()
	if start == end {
		return ReplaceResult{Outcome: Skipped, Next: e.Find(r.Query, false, false)}
	}

	text := []rune(e.doc.Text())
	selected := string(text[start:end])

	var (
		substituted string
		matched     bool
	)
	if r.UseRegex {
		if matched = whole.MatchString(selected); matched {
			substituted = re.ReplaceAllString(selected, expandTemplate(replacement, re.NumSubexp()))
		}
	} else {
		matched = equalTerm(text[start:end], []rune(r.Term), r.CaseSensitive)
		substituted = replacement
	}

	outcome := Skipped
	if matched {
		updated := make([]rune, 0, len(text)+len(substituted))
		updated = append(updated, text[:start]...)
		updated = append(updated, []rune(substituted)...)
		updated = append(updated, text[end:]...)

		e.doc.SetText(string(updated))
		caret := start + utf8.RuneCountInString(substituted)
		e.doc.SetSelection(caret, caret)
		e.record()
		outcome = Replaced
		log.Debug(log.CatSearch, "replaced selection", "term", r.Term, "start", start, "end", end)
	}

	return ReplaceResult{Outcome: outcome, Next: e.Find(r.Query, false, true)}
}

// ReplaceAll substitutes every match in one pass. Count is the number of
// matches in the original text.
func (e *Engine) ReplaceAll(r ReplaceRequest) ReplaceAllResult {
	if r.Term == "" {
		return ReplaceAllResult{Outcome: NoOp}
	}

	re, err := Compile(r.Query)
	if err != nil {
		e.invalidPattern(err)
		return ReplaceAllResult{Outcome: InvalidPattern}
	}

	replacement := Unescape(r.Replacement)
	original := e.doc.Text()
	count := len(re.FindAllStringIndex(original, -1))

	var updated string
	if r.UseRegex {
		updated = re.ReplaceAllString(original, expandTemplate(replacement, re.NumSubexp()))
	} else {
		updated = re.ReplaceAllLiteralString(original, replacement)
	}

	if updated == original {
		e.notifier.Notify(notify.MsgNotFound)
		return ReplaceAllResult{Outcome: NotFound}
	}

	e.doc.SetText(updated)
	e.record()
	e.notifier.Notify(notify.Replaced(count))
	log.Info(log.CatSearch, "replaced all", "term", r.Term, "count", count, "regex", r.UseRegex)
	return ReplaceAllResult{Outcome: Replaced, Count: count}
}

func (e *Engine) record() {
	if e.recorder != nil {
		e.recorder.Record(true)
	}
}

func (e *Engine) invalidPattern(err error) {
	var perr *PatternError
	if errors.As(err, &perr) {
		log.Warn(log.CatSearch, "invalid pattern", "term", perr.Term, "error", perr.Err)
	}
	e.notifier.Notify(notify.MsgInvalidPattern)
}

func equalTerm(selected, term []rune, caseSensitive bool) bool {
	if !caseSensitive {
		selected = fold(selected)
		term = fold(term)
	}
	return slices.Equal(selected, term)
}

// indexRunes returns the first index >= from where term occurs, or -1.
func indexRunes(text, term []rune, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(term) <= len(text); i++ {
		if slices.Equal(text[i:i+len(term)], term) {
			return i
		}
	}
	return -1
}

// lastIndexRunes returns the last index <= from where term occurs, or -1.
func lastIndexRunes(text, term []rune, from int) int {
	if last := len(text) - len(term); from > last {
		from = last
	}
	for i := from; i >= 0; i-- {
		if slices.Equal(text[i:i+len(term)], term) {
			return i
		}
	}
	return -1
}

// byteOffset converts a rune offset in s to a byte offset.
func byteOffset(s string, runes int) int {
	n := 0
	for i := range s {
		if n == runes {
			return i
		}
		n++
	}
	return len(s)
}
