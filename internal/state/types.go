// Package state defines the persisted aggregate for the ritual tracker and
// its wire codec, including migration from the legacy persisted shape.
package state

import "time"

// Ritual is a recurring habit tracked per calendar day. Identity is the
// normalized name, which is also the key the completion ledger stores.
type Ritual struct {
	Name    string    `json:"name"`
	AddedAt time.Time `json:"addedAt"`
}

// Idea is a free-form backlog note. Its lifecycle is independent of rituals;
// it only shares the persisted document.
type Idea struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Document is the single persisted aggregate: loaded wholesale, mutated in
// memory by exactly one logical actor, and saved wholesale after every
// mutation. Completions maps a datekey.Key to the set of ritual names
// completed that day; membership is toggled, never duplicated.
type Document struct {
	Rituals     []Ritual            `json:"rituals"`
	Completions map[string][]string `json:"completions"`
	Ideas       []Idea              `json:"ideas"`
}

// NewDocument returns an empty document with an initialized ledger.
func NewDocument() *Document {
	return &Document{Completions: map[string][]string{}}
}
