package entities

import "time"

// Family identifies one of the product families a customer can request a
// quote for. Each family has its own submission form, its own spec payload
// and its own DynamoDB table, mirroring the per-family collections of the
// legacy system.

type Family string

const (
	FamilyCompression Family = "compression"
	FamilyTraction    Family = "traction"
	FamilyTorsion     Family = "torsion"
	FamilyWire        Family = "fil"
	FamilyGrid        Family = "grille"
	FamilyOther       Family = "autre"
)

// Families lists every known family in a stable order. The reconciliation
// scan iterates this slice, so the order also fixes the query order.
var Families = []Family{
	FamilyCompression,
	FamilyTraction,
	FamilyTorsion,
	FamilyWire,
	FamilyGrid,
	FamilyOther,
}

func (f Family) Valid() bool {
	switch f {
	case FamilyCompression, FamilyTraction, FamilyTorsion, FamilyWire, FamilyGrid, FamilyOther:
		return true
	}
	return false
}

// Attachment is a client-uploaded file kept inline on the request document.
type Attachment struct {
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
	Data     []byte `json:"-"`
}

// RenderedDocument is the PDF snapshot produced by the finalize phase.
type RenderedDocument struct {
	Data        []byte    `json:"-"`
	ContentType string    `json:"content_type"`
	GeneratedAt time.Time `json:"generated_at"`
}

// QuoteRequest is a customer's quote request (demande de devis) persisted in
// DynamoDB, one table per family.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Numbering:
//   - Number is assigned exactly once, at creation time, from the yearly
//     DDV sequence. It is never mutated afterwards.
//   - RenderedDocument is attached later by the detached finalize phase and
//     may legitimately stay empty if that phase fails.

type QuoteRequest struct {
	ID           string            `json:"id"`
	Family       Family            `json:"family"`
	Number       string            `json:"numero"`
	OwnerID      string            `json:"owner_id"`
	Spec         QuoteRequestSpec  `json:"spec"`
	Requirements string            `json:"requirements,omitempty"`
	Remarks      string            `json:"remarks,omitempty"`
	Attachments  []Attachment      `json:"attachments,omitempty"`
	Rendered     *RenderedDocument `json:"rendered_document,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

// QuoteRequestSpec is the family-specific payload, encoded as a sum type:
// exactly one pointer field is set, matching the Family tag. The core never
// interprets the spec beyond validating that the variant matches the tag.
type QuoteRequestSpec struct {
	Compression *CompressionSpec `json:"compression,omitempty"`
	Traction    *TractionSpec    `json:"traction,omitempty"`
	Torsion     *TorsionSpec     `json:"torsion,omitempty"`
	Wire        *WireSpec        `json:"fil,omitempty"`
	Grid        *GridSpec        `json:"grille,omitempty"`
	Other       *OtherSpec       `json:"autre,omitempty"`
}

// Matches reports whether the populated variant corresponds to the family.
func (s QuoteRequestSpec) Matches(f Family) bool {
	switch f {
	case FamilyCompression:
		return s.Compression != nil
	case FamilyTraction:
		return s.Traction != nil
	case FamilyTorsion:
		return s.Torsion != nil
	case FamilyWire:
		return s.Wire != nil
	case FamilyGrid:
		return s.Grid != nil
	case FamilyOther:
		return s.Other != nil
	}
	return false
}

// CompressionSpec describes a compression spring request.
type CompressionSpec struct {
	WireDiameter  float64 `json:"d"`
	OuterDiameter float64 `json:"de"`
	InnerDiameter float64 `json:"di"`
	FreeLength    float64 `json:"lo"`
	TotalCoils    float64 `json:"nb_spires"`
	Pitch         float64 `json:"pas,omitempty"`
	Quantity      float64 `json:"quantite"`
	Material      string  `json:"matiere"`
	WindingSense  string  `json:"enroulement,omitempty"`
	EndType       string  `json:"extremite,omitempty"`
}

// TractionSpec describes a traction (extension) spring request.
type TractionSpec struct {
	WireDiameter  float64 `json:"d"`
	OuterDiameter float64 `json:"de"`
	BodyLength    float64 `json:"lo"`
	TotalCoils    float64 `json:"nb_spires"`
	HookType      string  `json:"type_accrochage,omitempty"`
	HookPosition  string  `json:"position_anneaux,omitempty"`
	Quantity      float64 `json:"quantite"`
	Material      string  `json:"matiere"`
}

// TorsionSpec describes a torsion spring request.
type TorsionSpec struct {
	WireDiameter  float64 `json:"d"`
	OuterDiameter float64 `json:"de"`
	BodyLength    float64 `json:"lc"`
	TotalCoils    float64 `json:"nb_spires"`
	LegLength1    float64 `json:"l1,omitempty"`
	LegLength2    float64 `json:"l2,omitempty"`
	LegAngle      float64 `json:"angle,omitempty"`
	Quantity      float64 `json:"quantite"`
	Material      string  `json:"matiere"`
}

// WireSpec describes a straightened/cut wire (fil dressé) request.
type WireSpec struct {
	LengthValue   float64 `json:"longueur_valeur"`
	LengthUnit    string  `json:"longueur_unite"`
	Diameter      float64 `json:"diametre"`
	QuantityValue float64 `json:"quantite_valeur"`
	QuantityUnit  string  `json:"quantite_unite"`
	Material      string  `json:"matiere"`
}

// GridSpec describes a welded wire grid (grille) request.
type GridSpec struct {
	Length       float64 `json:"longueur"`
	Width        float64 `json:"largeur"`
	MeshSpacing  float64 `json:"maille,omitempty"`
	WireDiameter float64 `json:"diametre"`
	Finish       string  `json:"finition,omitempty"`
	Quantity     float64 `json:"quantite"`
	Material     string  `json:"matiere"`
}

// OtherSpec describes any other wire article, free-form.
type OtherSpec struct {
	Designation string  `json:"designation"`
	Dimensions  string  `json:"dimensions,omitempty"`
	Quantity    float64 `json:"quantite"`
	Material    string  `json:"matiere"`
	Description string  `json:"description,omitempty"`
}

// NumberRef is the projection used by the reconciliation scan: just enough
// to cross collections without dragging attachment buffers along.
type NumberRef struct {
	ID     string `json:"id"`
	Number string `json:"numero"`
	Family Family `json:"family"`
}
