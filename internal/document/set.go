package document

import (
	"encoding/json"

	"lcflow/pkg/domain"
	dErrors "lcflow/pkg/domain-errors"
)

// Set holds the documents attached to one case. At most one document per kind
// is live; superseded documents stay in the set for audit but never count
// towards presentation.
//
// Set is used as an immutable snapshot: Attach returns a new Set and leaves
// the receiver untouched, so committed case snapshots can be read without
// locks.
type Set struct {
	docs []Document
}

// NewSet returns an empty document set.
func NewSet() Set {
	return Set{}
}

// Attach adds a document, returning the grown set. Attaching a kind that is
// already live requires the new document to supersede the live one.
//
// Errors: CodeValidation for a malformed document, CodeConflict for a
// duplicate ID or an occupied kind without supersession.
func (s Set) Attach(doc Document) (Set, error) {
	if err := doc.Validate(); err != nil {
		return Set{}, err
	}
	for _, existing := range s.docs {
		if existing.ID == doc.ID {
			return Set{}, dErrors.Newf(dErrors.CodeConflict, "document %s already attached", doc.ID)
		}
	}
	if live, ok := s.Live(doc.Kind); ok {
		if doc.Supersedes == nil || *doc.Supersedes != live.ID {
			return Set{}, dErrors.Newf(dErrors.CodeConflict,
				"%s already attached; correction must supersede document %s", doc.Kind, live.ID)
		}
	} else if doc.Supersedes != nil {
		return Set{}, dErrors.Newf(dErrors.CodeValidation,
			"document %s supersedes %s which is not attached", doc.ID, *doc.Supersedes)
	}

	grown := make([]Document, len(s.docs), len(s.docs)+1)
	copy(grown, s.docs)
	return Set{docs: append(grown, doc)}, nil
}

// Live returns the current document of the given kind: the one no other
// attached document supersedes.
func (s Set) Live(kind Kind) (Document, bool) {
	superseded := make(map[domain.DocumentID]bool, len(s.docs))
	for _, d := range s.docs {
		if d.Supersedes != nil {
			superseded[*d.Supersedes] = true
		}
	}
	for i := len(s.docs) - 1; i >= 0; i-- {
		d := s.docs[i]
		if d.Kind == kind && !superseded[d.ID] {
			return d, true
		}
	}
	return Document{}, false
}

// LiveDocuments returns the live document of each kind that has one.
func (s Set) LiveDocuments() []Document {
	out := make([]Document, 0, len(RequiredKinds()))
	for _, kind := range RequiredKinds() {
		if d, ok := s.Live(kind); ok {
			out = append(out, d)
		}
	}
	return out
}

// Complete reports whether every required kind has a live document.
func (s Set) Complete() bool {
	for _, kind := range RequiredKinds() {
		if _, ok := s.Live(kind); !ok {
			return false
		}
	}
	return true
}

// MissingKinds lists required kinds without a live document, for rejection
// messages.
func (s Set) MissingKinds() []Kind {
	var missing []Kind
	for _, kind := range RequiredKinds() {
		if _, ok := s.Live(kind); !ok {
			missing = append(missing, kind)
		}
	}
	return missing
}

// All returns every attached document, superseded ones included, in
// attachment order. The slice is a copy.
func (s Set) All() []Document {
	return append([]Document{}, s.docs...)
}

// Len is the total number of attached documents, superseded ones included.
func (s Set) Len() int {
	return len(s.docs)
}

// MarshalJSON serializes the set as the flat list of attached documents.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.docs)
}

func (s *Set) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &s.docs)
}
