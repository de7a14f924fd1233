package splitter

import (
	"strings"

	"ragchat/types"
)

// separators tried in order, most structural first. The final empty
// separator is a hard character cut.
var separators = []string{"\n\n", "\n", ". ", " ", ""}

// Splitter cuts records into overlapping chunks bounded by chunkSize,
// preferring paragraph, then sentence, then word boundaries.
type Splitter struct {
	chunkSize    int
	chunkOverlap int
}

func New(chunkSize, chunkOverlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	if chunkOverlap < 0 {
		chunkOverlap = 0
	}
	if chunkOverlap >= chunkSize {
		chunkOverlap = chunkSize / 2
	}
	return &Splitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
	}
}

// Split turns every record into chunks of at most chunkSize characters,
// consecutive chunks overlapping by at most chunkOverlap. Record
// metadata is copied onto each derived chunk. Pure and deterministic.
func (s *Splitter) Split(records []types.Record) []types.Chunk {
	var chunks []types.Chunk
	for _, rec := range records {
		if len(rec.Text) <= s.chunkSize {
			// a record that already fits passes through untouched
			chunks = append(chunks, types.Chunk{Text: rec.Text, Metadata: cloneMeta(rec.Metadata)})
			continue
		}
		for _, piece := range s.splitText(rec.Text, separators) {
			chunks = append(chunks, types.Chunk{Text: piece, Metadata: cloneMeta(rec.Metadata)})
		}
	}
	return chunks
}

func (s *Splitter) splitText(text string, seps []string) []string {
	sep := seps[len(seps)-1]
	rest := seps
	for i, cand := range seps {
		if cand == "" || strings.Contains(text, cand) {
			sep = cand
			rest = seps[i+1:]
			break
		}
	}

	var finals []string
	var pending []string
	flush := func() {
		if len(pending) > 0 {
			finals = append(finals, s.merge(pending)...)
			pending = nil
		}
	}
	for _, piece := range splitKeep(text, sep, s.chunkSize) {
		if len(piece) <= s.chunkSize {
			pending = append(pending, piece)
			continue
		}
		// piece still too large, recurse with the finer separators
		flush()
		finals = append(finals, s.splitText(piece, rest)...)
	}
	flush()
	return finals
}

// merge greedily packs pieces into chunks of at most chunkSize,
// retaining up to chunkOverlap characters of the previous window as
// overlap. Pieces keep their separators attached, so concatenation
// reproduces the source text exactly.
func (s *Splitter) merge(pieces []string) []string {
	var out []string
	var window []string
	total := 0
	for _, p := range pieces {
		if total+len(p) > s.chunkSize && len(window) > 0 {
			out = append(out, strings.Join(window, ""))
			for len(window) > 0 && (total > s.chunkOverlap || total+len(p) > s.chunkSize) {
				total -= len(window[0])
				window = window[1:]
			}
		}
		window = append(window, p)
		total += len(p)
	}
	if len(window) > 0 {
		out = append(out, strings.Join(window, ""))
	}
	return out
}

// splitKeep splits text on sep with the separator kept attached to the
// preceding piece. The empty separator is a hard cut into runs of at
// most chunkSize characters.
func splitKeep(text, sep string, chunkSize int) []string {
	if sep == "" {
		var parts []string
		for len(text) > chunkSize {
			parts = append(parts, text[:chunkSize])
			text = text[chunkSize:]
		}
		if text != "" {
			parts = append(parts, text)
		}
		return parts
	}

	raw := strings.SplitAfter(text, sep)
	parts := raw[:0]
	for _, p := range raw {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func cloneMeta(meta map[string]string) map[string]string {
	out := make(map[string]string, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}
