// Package document models the trade documents of a letter-of-credit case:
// commercial invoice, packing list, and bill of lading. Documents are created
// once by their issuing party and never mutated; a correction is a new
// document with a fresh ID that supersedes the old one.
package document

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"lcflow/pkg/domain"
	dErrors "lcflow/pkg/domain-errors"
)

// Kind discriminates the document variants.
type Kind string

const (
	KindInvoice      Kind = "invoice"
	KindPackingList  Kind = "packing_list"
	KindBillOfLading Kind = "bill_of_lading"
)

var validKinds = map[Kind]bool{
	KindInvoice:      true,
	KindPackingList:  true,
	KindBillOfLading: true,
}

// RequiredKinds lists the documents a compliant presentation must include.
func RequiredKinds() []Kind {
	return []Kind{KindInvoice, KindPackingList, KindBillOfLading}
}

func (k Kind) IsValid() bool {
	return validKinds[k]
}

func (k Kind) String() string {
	return string(k)
}

// Hash is the hex-encoded SHA-256 of a document's canonical content. It is
// the integrity reference the verification collaborator checks documents
// against.
type Hash string

// InvoiceContent is the commercial invoice body.
type InvoiceContent struct {
	Goods []domain.PricedGood `json:"goods"`
	Total domain.Money        `json:"total"`
}

// PackingListContent is the packing list body.
type PackingListContent struct {
	PackageCount int64         `json:"packageCount"`
	GrossWeight  domain.Weight `json:"grossWeight"`
	Marks        string        `json:"marks"`
}

// BillOfLadingContent is the carrier's receipt and title document body.
type BillOfLadingContent struct {
	Carrier        domain.PartyID `json:"carrier"`
	Vessel         string         `json:"vessel"`
	LoadPort       domain.Port    `json:"loadPort"`
	DischargePort  domain.Port    `json:"dischargePort"`
	ShippedOnBoard time.Time      `json:"shippedOnBoard"`
}

// Document is the shared envelope around one variant body. Exactly one body
// pointer is set, matching Kind.
type Document struct {
	ID         domain.DocumentID  `json:"id"`
	Kind       Kind               `json:"kind"`
	IssuedAt   time.Time          `json:"issuedAt"`
	Issuer     domain.PartyID     `json:"issuer"`
	Hash       Hash               `json:"hash"`
	Supersedes *domain.DocumentID `json:"supersedes,omitempty"`

	Invoice      *InvoiceContent      `json:"invoice,omitempty"`
	PackingList  *PackingListContent  `json:"packingList,omitempty"`
	BillOfLading *BillOfLadingContent `json:"billOfLading,omitempty"`
}

// NewInvoice validates content and seals it into an immutable document.
func NewInvoice(id domain.DocumentID, issuer domain.PartyID, issuedAt time.Time, content InvoiceContent) (Document, error) {
	if len(content.Goods) == 0 {
		return Document{}, dErrors.New(dErrors.CodeValidation, "invoice needs at least one goods line")
	}
	for _, g := range content.Goods {
		if err := g.Validate(); err != nil {
			return Document{}, err
		}
	}
	sum, err := NewMoneySum(content.Goods)
	if err != nil {
		return Document{}, err
	}
	if !content.Total.Equal(sum) {
		return Document{}, dErrors.Newf(dErrors.CodeValidation,
			"invoice total %s does not match goods lines %s", content.Total, sum)
	}
	doc := Document{ID: id, Kind: KindInvoice, IssuedAt: issuedAt, Issuer: issuer, Invoice: &content}
	return seal(doc)
}

// NewMoneySum folds the line totals of the goods into one amount.
func NewMoneySum(goods []domain.PricedGood) (domain.Money, error) {
	var sum domain.Money
	for i, g := range goods {
		line, err := g.LineTotal()
		if err != nil {
			return domain.Money{}, err
		}
		if i == 0 {
			sum = line
			continue
		}
		sum, err = sum.Add(line)
		if err != nil {
			return domain.Money{}, err
		}
	}
	return sum, nil
}

// NewPackingList validates content and seals it into an immutable document.
func NewPackingList(id domain.DocumentID, issuer domain.PartyID, issuedAt time.Time, content PackingListContent) (Document, error) {
	if content.PackageCount <= 0 {
		return Document{}, dErrors.Newf(dErrors.CodeValidation, "package count must be positive, got %d", content.PackageCount)
	}
	if err := content.GrossWeight.Validate(); err != nil {
		return Document{}, err
	}
	doc := Document{ID: id, Kind: KindPackingList, IssuedAt: issuedAt, Issuer: issuer, PackingList: &content}
	return seal(doc)
}

// NewBillOfLading validates content and seals it into an immutable document.
func NewBillOfLading(id domain.DocumentID, issuer domain.PartyID, issuedAt time.Time, content BillOfLadingContent) (Document, error) {
	if content.Carrier.IsZero() {
		return Document{}, dErrors.New(dErrors.CodeValidation, "bill of lading needs a carrier")
	}
	if content.LoadPort.IsZero() || content.DischargePort.IsZero() {
		return Document{}, dErrors.New(dErrors.CodeValidation, "bill of lading needs load and discharge ports")
	}
	if content.ShippedOnBoard.IsZero() {
		return Document{}, dErrors.New(dErrors.CodeValidation, "bill of lading needs a shipped-on-board date")
	}
	doc := Document{ID: id, Kind: KindBillOfLading, IssuedAt: issuedAt, Issuer: issuer, BillOfLading: &content}
	return seal(doc)
}

func seal(doc Document) (Document, error) {
	if doc.ID.IsZero() {
		return Document{}, dErrors.New(dErrors.CodeValidation, "document id cannot be zero")
	}
	if doc.Issuer.IsZero() {
		return Document{}, dErrors.New(dErrors.CodeValidation, "document issuer cannot be zero")
	}
	if doc.IssuedAt.IsZero() {
		return Document{}, dErrors.New(dErrors.CodeValidation, "document issue date cannot be zero")
	}
	h, err := doc.ComputeHash()
	if err != nil {
		return Document{}, err
	}
	doc.Hash = h
	return doc, nil
}

// Superseding marks the document as the correction of an earlier one. It
// returns a copy; the receiver stays untouched.
func (d Document) Superseding(old domain.DocumentID) Document {
	d.Supersedes = &old
	return d
}

// ComputeHash hashes the canonical JSON of the variant body. The stored Hash
// field is excluded so recomputation is stable.
func (d Document) ComputeHash() (Hash, error) {
	var body any
	switch d.Kind {
	case KindInvoice:
		body = d.Invoice
	case KindPackingList:
		body = d.PackingList
	case KindBillOfLading:
		body = d.BillOfLading
	default:
		return "", dErrors.Newf(dErrors.CodeValidation, "unsupported document kind %q", d.Kind)
	}
	if body == nil || isNilBody(d) {
		return "", dErrors.Newf(dErrors.CodeValidation, "document body missing for kind %q", d.Kind)
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to canonicalize document body")
	}
	sum := sha256.Sum256(raw)
	return Hash(hex.EncodeToString(sum[:])), nil
}

func isNilBody(d Document) bool {
	switch d.Kind {
	case KindInvoice:
		return d.Invoice == nil
	case KindPackingList:
		return d.PackingList == nil
	case KindBillOfLading:
		return d.BillOfLading == nil
	}
	return true
}

// Validate checks the envelope invariants hold: one body matching Kind, a
// non-empty hash, and a non-zero identity.
func (d Document) Validate() error {
	if !d.Kind.IsValid() {
		return dErrors.Newf(dErrors.CodeValidation, "unsupported document kind %q", d.Kind)
	}
	bodies := 0
	if d.Invoice != nil {
		bodies++
	}
	if d.PackingList != nil {
		bodies++
	}
	if d.BillOfLading != nil {
		bodies++
	}
	if bodies != 1 || isNilBody(d) {
		return dErrors.Newf(dErrors.CodeValidation, "document must carry exactly the %s body", d.Kind)
	}
	if d.ID.IsZero() || d.Issuer.IsZero() || d.IssuedAt.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "document envelope incomplete")
	}
	if d.Hash == "" {
		return dErrors.New(dErrors.CodeValidation, "document hash missing")
	}
	return nil
}
