// Package translator converts between the Czech ARES wire schema and the
// normalized English schema. Every function is pure: no I/O, no shared state,
// identical output for identical input. Results flow straight into the cache,
// so the mapping must be deterministic.
package translator

import (
	"github.com/gtdn/registry-api/internal/models"
)

// ToSearchRequest maps a normalized search query onto the native ARES request
// body. Absent fields are omitted from the serialized body entirely.
func ToSearchRequest(query models.SearchQuery) models.AresSearchRequest {
	body := models.AresSearchRequest{
		Start:         query.Start,
		Pocet:         query.Count,
		Razeni:        query.Sorting,
		Ico:           query.Ico,
		ObchodniJmeno: query.BusinessName,
		PravniForma:   query.LegalForm,
	}

	if loc := query.Location; loc != nil {
		sidlo := models.AresSidloFilter{
			KodObce:   loc.MunicipalityCode,
			KodKraje:  loc.RegionCode,
			KodOkresu: loc.DistrictCode,
		}
		if sidlo.KodObce != nil || sidlo.KodKraje != nil || sidlo.KodOkresu != nil {
			body.Sidlo = &sidlo
		}
	}

	return body
}

// ParseSearchResult maps a raw /vyhledat response to the normalized schema
func ParseSearchResult(raw models.AresSearchResponse) models.SearchResult {
	subjects := make([]models.EconomicSubject, 0, len(raw.EkonomickeSubjekty))
	for _, s := range raw.EkonomickeSubjekty {
		subjects = append(subjects, ParseEconomicSubject(s))
	}
	return models.SearchResult{
		TotalCount:       raw.PocetCelkem,
		EconomicSubjects: subjects,
	}
}

// ParseEconomicSubject maps one raw ARES subject to the normalized schema.
// When the upstream omits a distinct subject id, the ICO stands in for it.
func ParseEconomicSubject(raw models.AresEconomicSubject) models.EconomicSubject {
	icoID := raw.IcoID
	if icoID == "" {
		icoID = raw.Ico
	}

	record := models.EconomicSubjectRecord{
		Ico:                  raw.Ico,
		BusinessName:         raw.ObchodniJmeno,
		Headquarters:         parseHeadquarters(raw.Sidlo),
		LegalForm:            raw.PravniForma,
		LegalFormRos:         raw.PravniFormaRos,
		TaxOffice:            raw.FinancniUrad,
		FoundationDate:       raw.DatumVzniku,
		TerminationDate:      raw.DatumZaniku,
		UpdateDate:           raw.DatumAktualizace,
		VatID:                raw.Dic,
		SlovakVatID:          raw.DicSkDph,
		NaceActivities:       raw.CzNace,
		NaceActivities2008:   raw.CzNace2008,
		DeliveryAddress:      parseDeliveryAddress(raw.AdresaDorucovaci),
		RegistrationStatuses: parseRegistrationStatuses(raw.SeznamRegistraci),
		PrimarySource:        raw.PrimarniZdroj,
		SubRegisterSzr:       raw.SubRegistrSzr,
		IsPrimaryRecord:      true,
	}

	return models.EconomicSubject{
		IcoID:   icoID,
		Records: []models.EconomicSubjectRecord{record},
	}
}

func parseHeadquarters(sidlo *models.AresSidlo) *models.Headquarters {
	if sidlo == nil {
		return nil
	}
	return &models.Headquarters{
		CountryCode:                sidlo.KodStatu,
		CountryName:                sidlo.NazevStatu,
		RegionCode:                 sidlo.KodKraje,
		RegionName:                 sidlo.NazevKraje,
		DistrictCode:               sidlo.KodOkresu,
		DistrictName:               sidlo.NazevOkresu,
		MunicipalityCode:           sidlo.KodObce,
		MunicipalityName:           sidlo.NazevObce,
		AdministrativeDistrictCode: sidlo.KodSpravnihoObvodu,
		AdministrativeDistrictName: sidlo.NazevSpravnihoObvodu,
		CityDistrictCode:           sidlo.KodMestskehoObvodu,
		CityDistrictName:           sidlo.NazevMestskehoObvodu,
		CityPartCode:               sidlo.KodMestskeCastiObvodu,
		CityPartName:               sidlo.NazevMestskeCastiObvodu,
		StreetCode:                 sidlo.KodUlice,
		StreetName:                 sidlo.NazevUlice,
		BuildingNumber:             sidlo.CisloDomovni,
		AddressSupplement:          sidlo.DoplnekAdresy,
		MunicipalityPartCode:       sidlo.KodCastiObce,
		OrientationNumber:          sidlo.CisloOrientacni,
		OrientationNumberLetter:    sidlo.CisloOrientacniPismeno,
		MunicipalityPartName:       sidlo.NazevCastiObce,
		AddressPointCode:           sidlo.KodAdresnihoMista,
		PostalCode:                 sidlo.Psc,
		TextAddress:                sidlo.TextovaAdresa,
		AddressNumberTo:            sidlo.CisloDoAdresy,
		AddressStandardized:        sidlo.StandardizaceAdresy,
		PostalCodeText:             sidlo.PscTxt,
		BuildingNumberType:         sidlo.TypCisloDomovni,
	}
}

func parseDeliveryAddress(adresa *models.AresAdresa) *models.DeliveryAddress {
	if adresa == nil {
		return nil
	}
	return &models.DeliveryAddress{
		AddressLine1: adresa.RadekAdresy1,
		AddressLine2: adresa.RadekAdresy2,
		AddressLine3: adresa.RadekAdresy3,
	}
}

func parseRegistrationStatuses(seznam *models.AresRegistrace) *models.RegistrationStatuses {
	if seznam == nil {
		return nil
	}
	return &models.RegistrationStatuses{
		RosStatus:              seznam.StavZdrojeRos,
		BusinessRegisterStatus: seznam.StavZdrojeVr,
		ResStatus:              seznam.StavZdrojeRes,
		TradeRegisterStatus:    seznam.StavZdrojeRzp,
		NrpzsStatus:            seznam.StavZdrojeNrpzs,
		RpshStatus:             seznam.StavZdrojeRpsh,
		RcnsStatus:             seznam.StavZdrojeRcns,
		SzrStatus:              seznam.StavZdrojeSzr,
		VatStatus:              seznam.StavZdrojeDph,
		SlovakVatStatus:        seznam.StavZdrojeSkDph,
		SdStatus:               seznam.StavZdrojeSd,
		IrStatus:               seznam.StavZdrojeIr,
		CeuStatus:              seznam.StavZdrojeCeu,
		RsStatus:               seznam.StavZdrojeRs,
		RedStatus:              seznam.StavZdrojeRed,
		MonitorStatus:          seznam.StavZdrojeMonitor,
	}
}
