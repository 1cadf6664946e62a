package hybrid

import (
	"strings"

	"github.com/mpopescu/gazex/internal/fields"
	"github.com/mpopescu/gazex/internal/model"
)

// mergeEntryMeta folds segment-level metadata into a record. It only
// ever fills absent fields: a value already present, whether heuristic
// or LLM-provided, is never overwritten.
func mergeEntryMeta(rec *model.CompanyRecord, entry model.Entry) {
	if rec.Name == "" && entry.CompanyName != "" {
		rec.Name = entry.CompanyName
	}

	meta := entry.Meta

	if rec.MainInfo.CUI == "" && meta.CUI != "" {
		rec.MainInfo.CUI = fields.NormalizeCUI(meta.CUI)
	}
	if rec.MainInfo.RegistrationNumber == "" && meta.RegNumber != "" {
		rec.MainInfo.RegistrationNumber = meta.RegNumber
	}
	if rec.MainInfo.EUID == "" && meta.EUID != "" {
		rec.MainInfo.EUID = meta.EUID
	}
	if rec.MainInfo.Capital == "" && meta.Capital != "" {
		rec.MainInfo.Capital = meta.Capital
	}
	if rec.MainInfo.CAEN == "" && len(meta.CAEN) > 0 {
		rec.MainInfo.CAEN = meta.CAEN[0]
	}
	if len(rec.MainInfo.Addresses) == 0 && meta.Address != "" {
		rec.MainInfo.Addresses = []model.Address{{
			FullAddress: meta.Address,
			Country:     "Romania",
		}}
	}

	if rec.LegalForm == "" {
		if meta.LegalType != "" {
			rec.LegalForm = meta.LegalType
		} else if rec.Name != "" {
			if form := fields.ClassifyLegalForm(rec.Name); form != model.FormOther {
				rec.LegalForm = string(form)
			}
		}
	}

	rec.Name = strings.TrimSpace(rec.Name)
}
