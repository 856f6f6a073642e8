package models

// SearchQuery represents an inbound registry search request. All fields are
// optional; absent fields are never forwarded upstream.
type SearchQuery struct {
	Start        *int            `json:"start" binding:"omitempty,min=0"`
	Count        *int            `json:"count" binding:"omitempty,min=1,max=100"`
	Sorting      []string        `json:"sorting"`
	Ico          []string        `json:"ico"`
	BusinessName string          `json:"businessName"`
	LegalForm    []string        `json:"legalForm"`
	Location     *SearchLocation `json:"location"`
}

// SearchLocation filters search results by headquarters location codes
type SearchLocation struct {
	MunicipalityCode *int `json:"municipalityCode"`
	RegionCode       *int `json:"regionCode"`
	DistrictCode     *int `json:"districtCode"`
}

// SearchResult is the normalized response for a registry search
type SearchResult struct {
	TotalCount       int               `json:"totalCount"`
	EconomicSubjects []EconomicSubject `json:"economicSubjects"`
}

// EconomicSubject is an identifier plus the known records for that subject.
// The translation currently always produces exactly one record; the list shape
// leaves room for record history.
type EconomicSubject struct {
	IcoID   string                  `json:"icoId"`
	Records []EconomicSubjectRecord `json:"records"`
}

// EconomicSubjectRecord is one snapshot of a registered business in the
// normalized English schema. Nil pointers serialize as explicit JSON nulls so
// the output shape is stable regardless of upstream completeness.
type EconomicSubjectRecord struct {
	Ico                  string                `json:"ico"`
	BusinessName         string                `json:"businessName"`
	Headquarters         *Headquarters         `json:"headquarters"`
	LegalForm            *string               `json:"legalForm"`
	LegalFormRos         *string               `json:"legalFormRos"`
	TaxOffice            *string               `json:"taxOffice"`
	FoundationDate       *string               `json:"foundationDate"`
	TerminationDate      *string               `json:"terminationDate"`
	UpdateDate           *string               `json:"updateDate"`
	VatID                *string               `json:"vatId"`
	SlovakVatID          *string               `json:"slovakVatId"`
	NaceActivities       []string              `json:"naceActivities"`
	NaceActivities2008   []string              `json:"naceActivities2008"`
	DeliveryAddress      *DeliveryAddress      `json:"deliveryAddress"`
	RegistrationStatuses *RegistrationStatuses `json:"registrationStatuses"`
	PrimarySource        *string               `json:"primarySource"`
	SubRegisterSzr       *string               `json:"subRegisterSzr"`
	IsPrimaryRecord      bool                  `json:"isPrimaryRecord"`
}

// Headquarters is the normalized headquarters address (29 fields)
type Headquarters struct {
	CountryCode                *string `json:"countryCode"`
	CountryName                *string `json:"countryName"`
	RegionCode                 *int    `json:"regionCode"`
	RegionName                 *string `json:"regionName"`
	DistrictCode               *int    `json:"districtCode"`
	DistrictName               *string `json:"districtName"`
	MunicipalityCode           *int    `json:"municipalityCode"`
	MunicipalityName           *string `json:"municipalityName"`
	AdministrativeDistrictCode *int    `json:"administrativeDistrictCode"`
	AdministrativeDistrictName *string `json:"administrativeDistrictName"`
	CityDistrictCode           *int    `json:"cityDistrictCode"`
	CityDistrictName           *string `json:"cityDistrictName"`
	CityPartCode               *int    `json:"cityPartCode"`
	CityPartName               *string `json:"cityPartName"`
	StreetCode                 *int    `json:"streetCode"`
	StreetName                 *string `json:"streetName"`
	BuildingNumber             *int    `json:"buildingNumber"`
	AddressSupplement          *string `json:"addressSupplement"`
	MunicipalityPartCode       *int    `json:"municipalityPartCode"`
	OrientationNumber          *int    `json:"orientationNumber"`
	OrientationNumberLetter    *string `json:"orientationNumberLetter"`
	MunicipalityPartName       *string `json:"municipalityPartName"`
	AddressPointCode           *int    `json:"addressPointCode"`
	PostalCode                 *int    `json:"postalCode"`
	TextAddress                *string `json:"textAddress"`
	AddressNumberTo            *string `json:"addressNumberTo"`
	AddressStandardized        *bool   `json:"addressStandardized"`
	PostalCodeText             *string `json:"postalCodeText"`
	BuildingNumberType         *int    `json:"buildingNumberType"`
}

// DeliveryAddress is the free-text delivery address (3 lines)
type DeliveryAddress struct {
	AddressLine1 *string `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2"`
	AddressLine3 *string `json:"addressLine3"`
}

// RegistrationStatuses carries one status per downstream sub-registry (16 flags)
type RegistrationStatuses struct {
	RosStatus              *string `json:"rosStatus"`
	BusinessRegisterStatus *string `json:"businessRegisterStatus"`
	ResStatus              *string `json:"resStatus"`
	TradeRegisterStatus    *string `json:"tradeRegisterStatus"`
	NrpzsStatus            *string `json:"nrpzsStatus"`
	RpshStatus             *string `json:"rpshStatus"`
	RcnsStatus             *string `json:"rcnsStatus"`
	SzrStatus              *string `json:"szrStatus"`
	VatStatus              *string `json:"vatStatus"`
	SlovakVatStatus        *string `json:"slovakVatStatus"`
	SdStatus               *string `json:"sdStatus"`
	IrStatus               *string `json:"irStatus"`
	CeuStatus              *string `json:"ceuStatus"`
	RsStatus               *string `json:"rsStatus"`
	RedStatus              *string `json:"redStatus"`
	MonitorStatus          *string `json:"monitorStatus"`
}

// BatchSubjectRequest is the inbound body for batch subject lookups
type BatchSubjectRequest struct {
	Icos []string `json:"icos" binding:"required,min=1,max=50"`
}

// BatchSubjectResult is one entry of a batch subject lookup response
type BatchSubjectResult struct {
	Ico     string           `json:"ico"`
	Success bool             `json:"success"`
	Data    *EconomicSubject `json:"data,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// BatchSubjectResponse wraps the batch lookup results with counters
type BatchSubjectResponse struct {
	Results []BatchSubjectResult `json:"results"`
	Total   int                  `json:"total"`
	Success int                  `json:"success"`
	Errors  int                  `json:"errors"`
}
