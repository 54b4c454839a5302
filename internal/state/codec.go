package state

import (
	"encoding/json"
	"fmt"
	"time"
)

// Encode serializes a document to the persisted JSON layout.
func Encode(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return data, nil
}

// Decode parses a persisted blob into a Document.
//
// Two ritual shapes are accepted per entry: the current record form
// {"name": ..., "addedAt": ...} and the legacy plain name string. Legacy
// entries are migrated in place with AddedAt stamped to now; the original
// creation time is not recoverable from the legacy shape, which is accepted
// data loss on migration.
func Decode(data []byte, now time.Time) (*Document, error) {
	var raw struct {
		Rituals     []json.RawMessage   `json:"rituals"`
		Completions map[string][]string `json:"completions"`
		Ideas       []Idea              `json:"ideas"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	doc := NewDocument()
	for i, entry := range raw.Rituals {
		ritual, err := decodeRitual(entry, now)
		if err != nil {
			return nil, fmt.Errorf("decode document: ritual %d: %w", i, err)
		}
		doc.Rituals = append(doc.Rituals, ritual)
	}
	if raw.Completions != nil {
		doc.Completions = raw.Completions
	}
	doc.Ideas = raw.Ideas
	return doc, nil
}

func decodeRitual(entry json.RawMessage, now time.Time) (Ritual, error) {
	var name string
	if err := json.Unmarshal(entry, &name); err == nil {
		// Legacy shape: plain name string.
		return Ritual{Name: NormalizeName(name), AddedAt: now}, nil
	}
	var ritual Ritual
	if err := json.Unmarshal(entry, &ritual); err != nil {
		return Ritual{}, err
	}
	if ritual.Name == "" {
		return Ritual{}, fmt.Errorf("ritual record has no name")
	}
	return ritual, nil
}
