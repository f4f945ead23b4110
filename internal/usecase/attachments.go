package usecase

import (
	"strings"

	"mtr_backend/internal/domain/entities"
	"mtr_backend/internal/usecase/interfaces"
)

// DefaultAttachmentBudget bounds the total size of an outgoing email so SMTP
// relays do not reject it.
const DefaultAttachmentBudget int64 = 15 << 20 // 15 MiB

// SelectAttachments builds the ordered attachment list for a notification
// email: the generated document first, then as many client files as fit.
//
// Rules:
//   - primary is always included and counts against the budget, but is never
//     dropped, even when it alone exceeds maxTotal.
//   - candidates are evaluated in their original order against the running
//     total; one that does not fit is skipped permanently, and evaluation
//     continues, so a large file does not block smaller later ones.
//   - candidates with an empty name, an Office lock-file name ("~$...") or
//     an empty buffer are skipped.
//
// Never fails: a bad candidate downgrades to "skipped".
func SelectAttachments(primary interfaces.EmailPart, candidates []entities.Attachment, maxTotal int64) []interfaces.EmailPart {
	if maxTotal <= 0 {
		maxTotal = DefaultAttachmentBudget
	}

	parts := []interfaces.EmailPart{primary}
	total := int64(len(primary.Data))

	for _, c := range candidates {
		name := strings.TrimSpace(c.Filename)
		if name == "" || strings.HasPrefix(name, "~$") {
			continue
		}
		if len(c.Data) == 0 {
			continue
		}
		size := int64(len(c.Data))
		if total+size > maxTotal {
			continue
		}

		mime := c.MimeType
		if mime == "" {
			mime = "application/octet-stream"
		}
		parts = append(parts, interfaces.EmailPart{Filename: name, MimeType: mime, Data: c.Data})
		total += size
	}
	return parts
}
