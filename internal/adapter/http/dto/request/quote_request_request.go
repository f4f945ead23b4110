package request

import (
	"encoding/base64"

	"mtr_backend/internal/domain/entities"
)

// AttachmentRequest is one uploaded file, content base64-encoded. A payload
// whose content does not decode is kept with empty data: the record still
// lists the filename and the attachment selector skips it at email time.
type AttachmentRequest struct {
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
	Content  string `json:"content"`
}

func (a AttachmentRequest) ToEntity() entities.Attachment {
	data, err := base64.StdEncoding.DecodeString(a.Content)
	if err != nil {
		data = nil
	}
	return entities.Attachment{
		Filename: a.Filename,
		MimeType: a.MimeType,
		Size:     int64(len(data)),
		Data:     data,
	}
}

func attachmentsToEntities(in []AttachmentRequest) []entities.Attachment {
	if len(in) == 0 {
		return nil
	}
	out := make([]entities.Attachment, 0, len(in))
	for _, a := range in {
		out = append(out, a.ToEntity())
	}
	return out
}

// QuoteRequestSubmission is the customer-facing quote request payload. The
// family comes from the URL; exactly one of the spec blocks must be set and
// must match it.
type QuoteRequestSubmission struct {
	OwnerID      string              `json:"owner_id" binding:"required"`
	Compression  *CompressionPayload `json:"compression"`
	Traction     *TractionPayload    `json:"traction"`
	Torsion      *TorsionPayload     `json:"torsion"`
	Wire         *WirePayload        `json:"fil"`
	Grid         *GridPayload        `json:"grille"`
	Other        *OtherPayload       `json:"autre"`
	Requirements string              `json:"exigences"`
	Remarks      string              `json:"remarques"`
	Attachments  []AttachmentRequest `json:"documents"`
}

type CompressionPayload struct {
	WireDiameter  float64 `json:"d" binding:"required,gt=0"`
	OuterDiameter float64 `json:"de" binding:"required,gt=0"`
	InnerDiameter float64 `json:"di" binding:"required,gt=0"`
	FreeLength    float64 `json:"lo" binding:"required,gt=0"`
	TotalCoils    float64 `json:"nb_spires" binding:"required,gt=0"`
	Pitch         float64 `json:"pas"`
	Quantity      float64 `json:"quantite" binding:"required,gt=0"`
	Material      string  `json:"matiere" binding:"required"`
	WindingSense  string  `json:"enroulement"`
	EndType       string  `json:"extremite"`
}

type TractionPayload struct {
	WireDiameter  float64 `json:"d" binding:"required,gt=0"`
	OuterDiameter float64 `json:"de" binding:"required,gt=0"`
	BodyLength    float64 `json:"lo" binding:"required,gt=0"`
	TotalCoils    float64 `json:"nb_spires" binding:"required,gt=0"`
	HookType      string  `json:"type_accrochage"`
	HookPosition  string  `json:"position_anneaux"`
	Quantity      float64 `json:"quantite" binding:"required,gt=0"`
	Material      string  `json:"matiere" binding:"required"`
}

type TorsionPayload struct {
	WireDiameter  float64 `json:"d" binding:"required,gt=0"`
	OuterDiameter float64 `json:"de" binding:"required,gt=0"`
	BodyLength    float64 `json:"lc" binding:"required,gt=0"`
	TotalCoils    float64 `json:"nb_spires" binding:"required,gt=0"`
	LegLength1    float64 `json:"l1"`
	LegLength2    float64 `json:"l2"`
	LegAngle      float64 `json:"angle"`
	Quantity      float64 `json:"quantite" binding:"required,gt=0"`
	Material      string  `json:"matiere" binding:"required"`
}

type WirePayload struct {
	LengthValue   float64 `json:"longueur_valeur" binding:"required,gt=0"`
	LengthUnit    string  `json:"longueur_unite" binding:"required"`
	Diameter      float64 `json:"diametre" binding:"required,gt=0"`
	QuantityValue float64 `json:"quantite_valeur" binding:"required,gt=0"`
	QuantityUnit  string  `json:"quantite_unite" binding:"required"`
	Material      string  `json:"matiere" binding:"required"`
}

type GridPayload struct {
	Length       float64 `json:"longueur" binding:"required,gt=0"`
	Width        float64 `json:"largeur" binding:"required,gt=0"`
	MeshSpacing  float64 `json:"maille"`
	WireDiameter float64 `json:"diametre" binding:"required,gt=0"`
	Finish       string  `json:"finition"`
	Quantity     float64 `json:"quantite" binding:"required,gt=0"`
	Material     string  `json:"matiere" binding:"required"`
}

type OtherPayload struct {
	Designation string  `json:"designation" binding:"required"`
	Dimensions  string  `json:"dimensions"`
	Quantity    float64 `json:"quantite" binding:"required,gt=0"`
	Material    string  `json:"matiere" binding:"required"`
	Description string  `json:"description"`
}

// ResolveSpec maps the populated payload block to the entity sum type. The
// use case then checks that the populated variant matches the URL family.
func (r QuoteRequestSubmission) ResolveSpec() entities.QuoteRequestSpec {
	var spec entities.QuoteRequestSpec
	switch {
	case r.Compression != nil:
		spec.Compression = &entities.CompressionSpec{
			WireDiameter:  r.Compression.WireDiameter,
			OuterDiameter: r.Compression.OuterDiameter,
			InnerDiameter: r.Compression.InnerDiameter,
			FreeLength:    r.Compression.FreeLength,
			TotalCoils:    r.Compression.TotalCoils,
			Pitch:         r.Compression.Pitch,
			Quantity:      r.Compression.Quantity,
			Material:      r.Compression.Material,
			WindingSense:  r.Compression.WindingSense,
			EndType:       r.Compression.EndType,
		}
	case r.Traction != nil:
		spec.Traction = &entities.TractionSpec{
			WireDiameter:  r.Traction.WireDiameter,
			OuterDiameter: r.Traction.OuterDiameter,
			BodyLength:    r.Traction.BodyLength,
			TotalCoils:    r.Traction.TotalCoils,
			HookType:      r.Traction.HookType,
			HookPosition:  r.Traction.HookPosition,
			Quantity:      r.Traction.Quantity,
			Material:      r.Traction.Material,
		}
	case r.Torsion != nil:
		spec.Torsion = &entities.TorsionSpec{
			WireDiameter:  r.Torsion.WireDiameter,
			OuterDiameter: r.Torsion.OuterDiameter,
			BodyLength:    r.Torsion.BodyLength,
			TotalCoils:    r.Torsion.TotalCoils,
			LegLength1:    r.Torsion.LegLength1,
			LegLength2:    r.Torsion.LegLength2,
			LegAngle:      r.Torsion.LegAngle,
			Quantity:      r.Torsion.Quantity,
			Material:      r.Torsion.Material,
		}
	case r.Wire != nil:
		spec.Wire = &entities.WireSpec{
			LengthValue:   r.Wire.LengthValue,
			LengthUnit:    r.Wire.LengthUnit,
			Diameter:      r.Wire.Diameter,
			QuantityValue: r.Wire.QuantityValue,
			QuantityUnit:  r.Wire.QuantityUnit,
			Material:      r.Wire.Material,
		}
	case r.Grid != nil:
		spec.Grid = &entities.GridSpec{
			Length:       r.Grid.Length,
			Width:        r.Grid.Width,
			MeshSpacing:  r.Grid.MeshSpacing,
			WireDiameter: r.Grid.WireDiameter,
			Finish:       r.Grid.Finish,
			Quantity:     r.Grid.Quantity,
			Material:     r.Grid.Material,
		}
	case r.Other != nil:
		spec.Other = &entities.OtherSpec{
			Designation: r.Other.Designation,
			Dimensions:  r.Other.Dimensions,
			Quantity:    r.Other.Quantity,
			Material:    r.Other.Material,
			Description: r.Other.Description,
		}
	}
	return spec
}

func (r QuoteRequestSubmission) ResolveAttachments() []entities.Attachment {
	return attachmentsToEntities(r.Attachments)
}
