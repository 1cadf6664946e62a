package model

// LegalForm is the closed set of recognized Romanian legal forms
type LegalForm string

const (
	FormSRL   LegalForm = "SRL"   // societate cu răspundere limitată (limited liability)
	FormSA    LegalForm = "SA"    // societate pe acțiuni (joint stock)
	FormPFA   LegalForm = "PFA"   // persoană fizică autorizată (sole trader)
	FormSNC   LegalForm = "SNC"   // societate în nume colectiv (general partnership)
	FormOther LegalForm = "OTHER" // unclassified
)

// Bucket returns the output directory bucket for a legal form.
// Unknown or empty forms fall into OTHER.
func (f LegalForm) Bucket() string {
	switch f {
	case FormSRL, FormSA, FormPFA, FormSNC:
		return string(f)
	default:
		return string(FormOther)
	}
}

// MetaInfo holds the structured attributes recovered for one entity.
// Every field is independently optional; empty means "not found".
type MetaInfo struct {
	CUI       string   `json:"cui,omitempty"`        // tax identifier (digits, no RO prefix at recovery time)
	LegalType string   `json:"legal_type,omitempty"` // one of the LegalForm constants, empty if unclassified
	RegNumber string   `json:"reg_number,omitempty"` // trade registry number Jxx/xxxxx/yyyy
	EUID      string   `json:"euid,omitempty"`       // European Unique Identifier
	CAEN      []string `json:"caen"`                 // activity codes, deduplicated, insertion order
	Capital   string   `json:"capital,omitempty"`    // capital statement as written
	Address   string   `json:"address,omitempty"`    // registered office
}

// Entry is the unit of extraction output: one record per article, modal
// item or segmented text chunk. Constructed once, written immediately,
// never mutated afterwards.
type Entry struct {
	Type        string   `json:"type,omitempty"` // document kind (Notificare, Hotărâre, ...) or "article"
	Number      string   `json:"number,omitempty"`
	Date        string   `json:"date,omitempty"`
	Year        string   `json:"year,omitempty"`
	CompanyName string   `json:"company_name,omitempty"`
	Meta        MetaInfo `json:"meta"`
	RawText     string   `json:"raw_text"`

	// DOM provenance, present only for dump-extracted records.
	BulletinID        string `json:"bulletin_id,omitempty"`
	ArticleID         string `json:"article_id,omitempty"`
	ListParentClasses string `json:"list_parent_classes,omitempty"`
	CollapseID        string `json:"collapse_id,omitempty"`
	SourceHref        string `json:"source_href,omitempty"`
}

// BulletinInfo identifies the official-gazette issue a notice appeared in.
type BulletinInfo struct {
	Number string
	Date   string
	Year   string
}
