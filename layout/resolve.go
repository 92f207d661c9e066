package layout

import (
	"strings"

	"github.com/samber/lo"

	"fatura-backend/invoice"
)

// BusinessRef is the slice of a saved business that template resolution
// needs. Callers map their storage records into this view.
type BusinessRef struct {
	Name  string
	TaxID string
	Email string
	Logo  string
}

// ResolveLogo recovers a logo for a reopened snapshot by best-effort
// lookup against the known businesses: first match by tax ID, else by
// email, else by name, in that strict priority order. Within a field the
// first match in input order wins; this is not a foreign-key join, and
// duplicate tax IDs resolve deterministically to the earliest record.
// Returns "" when nothing matches.
func ResolveLogo(doc invoice.InvoiceData, businesses []BusinessRef) string {
	passes := []struct {
		want string
		get  func(BusinessRef) string
	}{
		{strings.TrimSpace(doc.SenderID), func(b BusinessRef) string { return strings.TrimSpace(b.TaxID) }},
		{strings.TrimSpace(doc.SenderEmail), func(b BusinessRef) string { return strings.TrimSpace(b.Email) }},
		{strings.TrimSpace(doc.SenderName), func(b BusinessRef) string { return strings.TrimSpace(b.Name) }},
	}

	for _, pass := range passes {
		if pass.want == "" {
			continue
		}
		match, ok := lo.Find(businesses, func(b BusinessRef) bool {
			return pass.get(b) == pass.want
		})
		// A match without a logo falls through to the next field, not to
		// the next record within this field.
		if ok && match.Logo != "" {
			return match.Logo
		}
	}
	return ""
}

// ApplyBusinessLogo fills the document's logo from template resolution
// when the snapshot itself carries none. The input document is not
// mutated.
func ApplyBusinessLogo(doc invoice.InvoiceData, businesses []BusinessRef) invoice.InvoiceData {
	if doc.Logo != "" {
		return doc
	}
	out := doc.Clone()
	out.Logo = ResolveLogo(doc, businesses)
	return out
}
