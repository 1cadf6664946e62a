package model

// Address is a parsed registered-office address. FullAddress keeps the
// text as written; County and City are filled only when clearly stated.
type Address struct {
	FullAddress string `json:"fullAddress,omitempty"`
	Country     string `json:"country,omitempty"`
	County      string `json:"county,omitempty"`
	City        string `json:"city,omitempty"`
}

// Person is a named officer (administrator or founder/associate).
type Person struct {
	Name string `json:"name"`
}

// Ownership groups the officers recovered from one notice.
type Ownership struct {
	Administrators []Person `json:"administrators"`
	Associates     []Person `json:"associates"`
}

// MainInfo carries the structured attributes of a company record.
type MainInfo struct {
	Addresses          []Address   `json:"addresses"`
	CAEN               string      `json:"caen,omitempty"`
	CUI                string      `json:"cui,omitempty"` // RO-prefixed when known
	DateOfCreation     string      `json:"dateOfCreation,omitempty"`
	EUID               string      `json:"euid,omitempty"`
	Capital            string      `json:"capital,omitempty"`
	Ownership          []Ownership `json:"ownership"`
	ActivityFieldDesc  string      `json:"activityFieldDescription,omitempty"`
	FieldOfActivity    string      `json:"fieldOfActivity,omitempty"`
	Country            string      `json:"country,omitempty"`
	DataSource         []string    `json:"dataSource"`
	OtherName          string      `json:"otherName,omitempty"`
	RegistrationNumber string      `json:"registrationNumber,omitempty"`
}

// CompanyRecord is the final hybrid-pipeline output for one entity.
type CompanyRecord struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Name      string   `json:"name,omitempty"`
	MainInfo  MainInfo `json:"mainInfo"`
	LegalForm string   `json:"legalForm,omitempty"`
}
