package models

// DocumentType classifies a filed court document
type DocumentType string

const (
	DocumentTypeBalanceSheet DocumentType = "balance_sheet"
	DocumentTypeProfitLoss   DocumentType = "profit_loss"
	DocumentTypeNotes        DocumentType = "notes"
	DocumentTypeUnknown      DocumentType = "unknown"
)

// CourtDocument is a parsed document from the justice.cz document collection
type CourtDocument struct {
	Ico          string       `json:"ico"`
	DocumentID   string       `json:"documentId"`
	DocumentType DocumentType `json:"documentType"`
	TextContent  string       `json:"textContent"`
	Tables       [][][]string `json:"tables"`
	TableCount   int          `json:"tableCount"`
	SourceURL    string       `json:"sourceUrl"`
}

// CompanyCSVRecord is one row of a justice.cz open data company export.
// Missing source columns yield empty strings, never nulls.
type CompanyCSVRecord struct {
	Ico              string `json:"ico"`
	Name             string `json:"name"`
	LegalForm        string `json:"legal_form"`
	Address          string `json:"address"`
	RegistryCourt    string `json:"registry_court"`
	FileNumber       string `json:"file_number"`
	RegistrationDate string `json:"registration_date"`
}

// CompanyCSVResponse wraps the parsed rows of a company CSV import
type CompanyCSVResponse struct {
	Records []CompanyCSVRecord `json:"records"`
	Total   int                `json:"total"`
}
