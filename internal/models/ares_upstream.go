package models

// Wire types for the ARES REST API. Field names follow the upstream Czech
// schema exactly; these never leave the service layer.

// AresSearchRequest is the body for POST /vyhledat. Absent fields are omitted,
// never sent as null.
type AresSearchRequest struct {
	Start         *int             `json:"start,omitempty"`
	Pocet         *int             `json:"pocet,omitempty"`
	Razeni        []string         `json:"razeni,omitempty"`
	Ico           []string         `json:"ico,omitempty"`
	ObchodniJmeno string           `json:"obchodniJmeno,omitempty"`
	PravniForma   []string         `json:"pravniForma,omitempty"`
	Sidlo         *AresSidloFilter `json:"sidlo,omitempty"`
}

// AresSidloFilter filters search results by headquarters location
type AresSidloFilter struct {
	KodObce   *int `json:"kodObce,omitempty"`
	KodKraje  *int `json:"kodKraje,omitempty"`
	KodOkresu *int `json:"kodOkresu,omitempty"`
}

// AresSearchResponse is the raw response of POST /vyhledat
type AresSearchResponse struct {
	PocetCelkem        int                   `json:"pocetCelkem"`
	EkonomickeSubjekty []AresEconomicSubject `json:"ekonomickeSubjekty"`
}

// AresEconomicSubject is one raw subject as returned by ARES
type AresEconomicSubject struct {
	Ico                string           `json:"ico"`
	IcoID              string           `json:"icoId"`
	ObchodniJmeno      string           `json:"obchodniJmeno"`
	Sidlo              *AresSidlo       `json:"sidlo"`
	PravniForma        *string          `json:"pravniForma"`
	PravniFormaRos     *string          `json:"pravniFormaRos"`
	FinancniUrad       *string          `json:"financniUrad"`
	DatumVzniku        *string          `json:"datumVzniku"`
	DatumZaniku        *string          `json:"datumZaniku"`
	DatumAktualizace   *string          `json:"datumAktualizace"`
	Dic                *string          `json:"dic"`
	DicSkDph           *string          `json:"dicSkDph"`
	CzNace             []string         `json:"czNace"`
	CzNace2008         []string         `json:"czNace2008"`
	AdresaDorucovaci   *AresAdresa      `json:"adresaDorucovaci"`
	SeznamRegistraci   *AresRegistrace  `json:"seznamRegistraci"`
	PrimarniZdroj      *string          `json:"primarniZdroj"`
	SubRegistrSzr      *string          `json:"subRegistrSzr"`
}

// AresSidlo is the raw headquarters address
type AresSidlo struct {
	KodStatu               *string `json:"kodStatu"`
	NazevStatu             *string `json:"nazevStatu"`
	KodKraje               *int    `json:"kodKraje"`
	NazevKraje             *string `json:"nazevKraje"`
	KodOkresu              *int    `json:"kodOkresu"`
	NazevOkresu            *string `json:"nazevOkresu"`
	KodObce                *int    `json:"kodObce"`
	NazevObce              *string `json:"nazevObce"`
	KodSpravnihoObvodu     *int    `json:"kodSpravnihoObvodu"`
	NazevSpravnihoObvodu   *string `json:"nazevSpravnihoObvodu"`
	KodMestskehoObvodu     *int    `json:"kodMestskehoObvodu"`
	NazevMestskehoObvodu   *string `json:"nazevMestskehoObvodu"`
	KodMestskeCastiObvodu  *int    `json:"kodMestskeCastiObvodu"`
	NazevMestskeCastiObvodu *string `json:"nazevMestskeCastiObvodu"`
	KodUlice               *int    `json:"kodUlice"`
	NazevUlice             *string `json:"nazevUlice"`
	CisloDomovni           *int    `json:"cisloDomovni"`
	DoplnekAdresy          *string `json:"doplnekAdresy"`
	KodCastiObce           *int    `json:"kodCastiObce"`
	CisloOrientacni        *int    `json:"cisloOrientacni"`
	CisloOrientacniPismeno *string `json:"cisloOrientacniPismeno"`
	NazevCastiObce         *string `json:"nazevCastiObce"`
	KodAdresnihoMista      *int    `json:"kodAdresnihoMista"`
	Psc                    *int    `json:"psc"`
	TextovaAdresa          *string `json:"textovaAdresa"`
	CisloDoAdresy          *string `json:"cisloDoAdresy"`
	StandardizaceAdresy    *bool   `json:"standardizaceAdresy"`
	PscTxt                 *string `json:"pscTxt"`
	TypCisloDomovni        *int    `json:"typCisloDomovni"`
}

// AresAdresa is the raw free-text delivery address
type AresAdresa struct {
	RadekAdresy1 *string `json:"radekAdresy1"`
	RadekAdresy2 *string `json:"radekAdresy2"`
	RadekAdresy3 *string `json:"radekAdresy3"`
}

// AresRegistrace is the raw per-sub-registry status bundle
type AresRegistrace struct {
	StavZdrojeRos     *string `json:"stavZdrojeRos"`
	StavZdrojeVr      *string `json:"stavZdrojeVr"`
	StavZdrojeRes     *string `json:"stavZdrojeRes"`
	StavZdrojeRzp     *string `json:"stavZdrojeRzp"`
	StavZdrojeNrpzs   *string `json:"stavZdrojeNrpzs"`
	StavZdrojeRpsh    *string `json:"stavZdrojeRpsh"`
	StavZdrojeRcns    *string `json:"stavZdrojeRcns"`
	StavZdrojeSzr     *string `json:"stavZdrojeSzr"`
	StavZdrojeDph     *string `json:"stavZdrojeDph"`
	StavZdrojeSkDph   *string `json:"stavZdrojeSkDph"`
	StavZdrojeSd      *string `json:"stavZdrojeSd"`
	StavZdrojeIr      *string `json:"stavZdrojeIr"`
	StavZdrojeCeu     *string `json:"stavZdrojeCeu"`
	StavZdrojeRs      *string `json:"stavZdrojeRs"`
	StavZdrojeRed     *string `json:"stavZdrojeRed"`
	StavZdrojeMonitor *string `json:"stavZdrojeMonitor"`
}
