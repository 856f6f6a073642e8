package translator

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/gtdn/registry-api/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func fullRawSubject() models.AresEconomicSubject {
	return models.AresEconomicSubject{
		Ico:           "12345678",
		IcoID:         "12345678",
		ObchodniJmeno: "Testovací firma s.r.o.",
		Sidlo: &models.AresSidlo{
			KodStatu:                strPtr("CZ"),
			NazevStatu:              strPtr("Česká republika"),
			KodKraje:                intPtr(19),
			NazevKraje:              strPtr("Hlavní město Praha"),
			KodOkresu:               intPtr(3100),
			NazevOkresu:             strPtr("Praha"),
			KodObce:                 intPtr(554782),
			NazevObce:               strPtr("Praha"),
			KodSpravnihoObvodu:      intPtr(78),
			NazevSpravnihoObvodu:    strPtr("Praha 4"),
			KodMestskehoObvodu:      intPtr(60),
			NazevMestskehoObvodu:    strPtr("Praha 4"),
			KodMestskeCastiObvodu:   intPtr(500119),
			NazevMestskeCastiObvodu: strPtr("Praha 4"),
			KodUlice:                intPtr(731943),
			NazevUlice:              strPtr("Vyskočilova"),
			CisloDomovni:            intPtr(1461),
			DoplnekAdresy:           strPtr("budova A"),
			KodCastiObce:            intPtr(490121),
			CisloOrientacni:         intPtr(2),
			CisloOrientacniPismeno:  strPtr("a"),
			NazevCastiObce:          strPtr("Michle"),
			KodAdresnihoMista:       intPtr(25774971),
			Psc:                     intPtr(14000),
			TextovaAdresa:           strPtr("Vyskočilova 1461/2a, Michle, 14000 Praha 4"),
			CisloDoAdresy:           strPtr("1461"),
			StandardizaceAdresy:     boolPtr(true),
			PscTxt:                  strPtr("140 00"),
			TypCisloDomovni:         intPtr(1),
		},
		PravniForma:      strPtr("112"),
		PravniFormaRos:   strPtr("112"),
		FinancniUrad:     strPtr("004"),
		DatumVzniku:      strPtr("2001-05-04"),
		DatumZaniku:      nil,
		DatumAktualizace: strPtr("2024-01-15"),
		Dic:              strPtr("CZ12345678"),
		DicSkDph:         nil,
		CzNace:           []string{"6201", "6202"},
		CzNace2008:       []string{"62010"},
		AdresaDorucovaci: &models.AresAdresa{
			RadekAdresy1: strPtr("Vyskočilova 1461/2a"),
			RadekAdresy2: strPtr("Michle"),
			RadekAdresy3: strPtr("14000 Praha 4"),
		},
		SeznamRegistraci: &models.AresRegistrace{
			StavZdrojeRos:     strPtr("AKTIVNI"),
			StavZdrojeVr:      strPtr("AKTIVNI"),
			StavZdrojeRes:     strPtr("AKTIVNI"),
			StavZdrojeRzp:     strPtr("AKTIVNI"),
			StavZdrojeNrpzs:   strPtr("NEEXISTUJICI"),
			StavZdrojeRpsh:    strPtr("NEEXISTUJICI"),
			StavZdrojeRcns:    strPtr("NEEXISTUJICI"),
			StavZdrojeSzr:     strPtr("AKTIVNI"),
			StavZdrojeDph:     strPtr("AKTIVNI"),
			StavZdrojeSkDph:   strPtr("NEEXISTUJICI"),
			StavZdrojeSd:      strPtr("NEEXISTUJICI"),
			StavZdrojeIr:      strPtr("NEEXISTUJICI"),
			StavZdrojeCeu:     strPtr("NEEXISTUJICI"),
			StavZdrojeRs:      strPtr("NEEXISTUJICI"),
			StavZdrojeRed:     strPtr("NEEXISTUJICI"),
			StavZdrojeMonitor: strPtr("AKTIVNI"),
		},
		PrimarniZdroj: strPtr("vr"),
		SubRegistrSzr: strPtr("OR"),
	}
}

// jsonKeys marshals v and returns the key set of the resulting object
func jsonKeys(t *testing.T, v interface{}) map[string]json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return m
}

func TestParseEconomicSubjectSchemaCompleteness(t *testing.T) {
	subject := ParseEconomicSubject(fullRawSubject())
	if len(subject.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(subject.Records))
	}
	record := subject.Records[0]

	hq := jsonKeys(t, record.Headquarters)
	if len(hq) != 29 {
		t.Errorf("headquarters has %d keys, want 29", len(hq))
	}
	statuses := jsonKeys(t, record.RegistrationStatuses)
	if len(statuses) != 16 {
		t.Errorf("registration statuses has %d keys, want 16", len(statuses))
	}
	delivery := jsonKeys(t, record.DeliveryAddress)
	if len(delivery) != 3 {
		t.Errorf("delivery address has %d keys, want 3", len(delivery))
	}

	// Spot-check renames across the three nested objects.
	if got := *record.Headquarters.MunicipalityName; got != "Praha" {
		t.Errorf("municipalityName = %q", got)
	}
	if got := *record.Headquarters.PostalCode; got != 14000 {
		t.Errorf("postalCode = %d", got)
	}
	if got := *record.RegistrationStatuses.BusinessRegisterStatus; got != "AKTIVNI" {
		t.Errorf("businessRegisterStatus = %q", got)
	}
	if got := *record.DeliveryAddress.AddressLine3; got != "14000 Praha 4" {
		t.Errorf("addressLine3 = %q", got)
	}
	if !record.IsPrimaryRecord {
		t.Error("isPrimaryRecord should be true")
	}
}

func TestParseEconomicSubjectNullSafety(t *testing.T) {
	raw := models.AresEconomicSubject{Ico: "12345678", ObchodniJmeno: "Firma"}
	record := ParseEconomicSubject(raw).Records[0]

	keys := jsonKeys(t, record)
	for _, field := range []string{"headquarters", "deliveryAddress", "registrationStatuses"} {
		val, ok := keys[field]
		if !ok {
			t.Fatalf("field %q missing from output", field)
		}
		if string(val) != "null" {
			t.Errorf("field %q = %s, want null", field, val)
		}
	}
}

func TestParseEconomicSubjectEmptyNestedObjects(t *testing.T) {
	raw := models.AresEconomicSubject{
		Ico:              "12345678",
		ObchodniJmeno:    "Firma",
		Sidlo:            &models.AresSidlo{},
		AdresaDorucovaci: &models.AresAdresa{},
		SeznamRegistraci: &models.AresRegistrace{},
	}
	record := ParseEconomicSubject(raw).Records[0]

	hq := jsonKeys(t, record.Headquarters)
	if len(hq) != 29 {
		t.Fatalf("empty headquarters has %d keys, want 29", len(hq))
	}
	for key, val := range hq {
		if string(val) != "null" {
			t.Errorf("headquarters key %q = %s, want null", key, val)
		}
	}
}

func TestParseEconomicSubjectIdentifierFallback(t *testing.T) {
	raw := models.AresEconomicSubject{Ico: "00006947", ObchodniJmeno: "Firma"}
	subject := ParseEconomicSubject(raw)
	if subject.IcoID != "00006947" {
		t.Errorf("icoId = %q, want fallback to ico", subject.IcoID)
	}

	raw.IcoID = "distinct-id"
	subject = ParseEconomicSubject(raw)
	if subject.IcoID != "distinct-id" {
		t.Errorf("icoId = %q, want distinct id kept", subject.IcoID)
	}
}

func TestParseSearchResultIdempotent(t *testing.T) {
	raw := models.AresSearchResponse{
		PocetCelkem:        2,
		EkonomickeSubjekty: []models.AresEconomicSubject{fullRawSubject(), {Ico: "87654321", ObchodniJmeno: "Druhá"}},
	}

	first := ParseSearchResult(raw)
	second := ParseSearchResult(raw)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated translation of the same input differs")
	}
	if first.TotalCount != 2 || len(first.EconomicSubjects) != 2 {
		t.Errorf("totalCount=%d subjects=%d", first.TotalCount, len(first.EconomicSubjects))
	}
}

func TestToSearchRequestOmitsAbsentFields(t *testing.T) {
	body := ToSearchRequest(models.SearchQuery{})
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{}" {
		t.Errorf("empty query serialized as %s, want {}", data)
	}
}

func TestToSearchRequestFieldMapping(t *testing.T) {
	query := models.SearchQuery{
		Start:        intPtr(0),
		Count:        intPtr(25),
		Sorting:      []string{"obchodniJmeno"},
		Ico:          []string{"12345678"},
		BusinessName: "Firma",
		LegalForm:    []string{"112"},
		Location: &models.SearchLocation{
			MunicipalityCode: intPtr(554782),
			RegionCode:       intPtr(19),
		},
	}

	body := ToSearchRequest(query)
	keys := jsonKeys(t, body)
	for _, want := range []string{"start", "pocet", "razeni", "ico", "obchodniJmeno", "pravniForma", "sidlo"} {
		if _, ok := keys[want]; !ok {
			t.Errorf("serialized body missing %q", want)
		}
	}

	sidlo := jsonKeys(t, body.Sidlo)
	if _, ok := sidlo["kodOkresu"]; ok {
		t.Error("absent district code must be omitted from sidlo")
	}
	if *body.Sidlo.KodObce != 554782 {
		t.Errorf("kodObce = %d", *body.Sidlo.KodObce)
	}
	// start=0 is a legitimate offset and must survive serialization
	if _, ok := keys["start"]; !ok {
		t.Error("start=0 was dropped")
	}
}

func TestToSearchRequestEmptyLocationOmitted(t *testing.T) {
	body := ToSearchRequest(models.SearchQuery{Location: &models.SearchLocation{}})
	if body.Sidlo != nil {
		t.Error("location with no codes should not produce a sidlo filter")
	}
}
