package docgen

import (
	"html"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Question indices that resolve placeholder tokens in the template.
// Indices without an entry record the answer but leave the buffer as is.
var answerTokens = map[int][]string{
	0:  {"[BEDRIJFSNAAM]"},
	1:  {"[BEDRIJFSADRES]"},
	2:  {"[PRODUCTEN_DIENSTEN]"},
	3:  {"[DOELGROEP]"},
	4:  {"[AANTAL_MEDEWERKERS]"},
	5:  {"[SPECIALISATIE]"},
	6:  {"[SECTOREN]"},
	9:  {"[DIRECTEUR_NAAM]"},
	10: {"[KWALITEITSMANAGER_NAAM]"},
}

// AppendixQuestionIndex is the question whose answer triggers the
// mandatory-documents appendix.
const AppendixQuestionIndex = 15

const appendixMarker = "Verplichte Documenten en Vastgelegde Informatie ISO 9001:2015"

var tokenPattern = regexp.MustCompile(`\[[A-Z][A-Z0-9_]*\]`)

// Render regenerates the handbook buffer from the pristine template and the
// full answer map. Rebuilding from scratch keeps the operation deterministic
// and makes re-answering any question safe: earlier substitutions never leak
// into later ones. Answer values are HTML-escaped before insertion.
func Render(createdAt time.Time, answers map[int]string) string {
	buf := QuestionnaireTemplate(createdAt)

	for index, tokens := range answerTokens {
		answer, ok := answers[index]
		if !ok {
			continue
		}
		escaped := html.EscapeString(answer)
		for _, token := range tokens {
			buf = strings.ReplaceAll(buf, token, escaped)
		}
	}

	if _, ok := answers[AppendixQuestionIndex]; ok {
		buf = appendAppendix(buf)
	}
	return buf
}

// appendAppendix inserts the mandatory-documents section before the final
// closing div. The marker heading keys the upsert: a buffer that already
// carries the appendix is returned unchanged.
func appendAppendix(buf string) string {
	if strings.Contains(buf, appendixMarker) {
		return buf
	}
	last := strings.LastIndex(buf, "</div>")
	if last == -1 {
		return buf + appendixSection
	}
	return buf[:last] + appendixSection + buf[last:]
}

// UnresolvedTokens lists the placeholder tokens still present in the buffer,
// sorted and deduplicated.
func UnresolvedTokens(buf string) []string {
	seen := make(map[string]struct{})
	for _, token := range tokenPattern.FindAllString(buf, -1) {
		seen[token] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for token := range seen {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

const appendixSection = `
            <div style="page-break-before: always; padding: 40px; min-height: 297mm;">
              <h1 style="color: #1e40af; font-size: 18pt; font-weight: bold; margin-bottom: 20px; border-bottom: 3px solid #2563eb; padding-bottom: 10px;">Verplichte Documenten en Vastgelegde Informatie ISO 9001:2015</h1>

              <h2 style="color: #374151; font-size: 14pt; font-weight: bold; margin: 25px 0 15px 0;">Verplichte Documenten</h2>
              <p style="font-size: 11pt; color: #374151; line-height: 1.8; margin-bottom: 20px; text-align: justify;">
                Volgens ISO 9001:2015 zijn de volgende documenten verplicht:
              </p>

              <div style="background: #f8fafc; border: 1px solid #e2e8f0; padding: 20px; border-radius: 8px; margin-bottom: 25px;">
                <h3 style="color: #1e40af; font-size: 12pt; font-weight: bold; margin-bottom: 15px;">1. Kwaliteitshandboek</h3>
                <p style="font-size: 11pt; color: #374151; line-height: 1.6; margin-bottom: 10px;">
                  Het kwaliteitshandboek beschrijft het kwaliteitsmanagementsysteem en hoe dit voldoet aan de eisen van ISO 9001:2015. Het moet de volgende elementen bevatten:
                </p>
                <ul style="font-size: 11pt; color: #374151; line-height: 1.6; margin: 0; padding-left: 20px;">
                  <li style="margin-bottom: 5px;">Toepassingsgebied van het kwaliteitsmanagementsysteem</li>
                  <li style="margin-bottom: 5px;">Documentatie van de processen en hun onderlinge samenhang</li>
                  <li style="margin-bottom: 5px;">Interactie tussen de processen van het kwaliteitsmanagementsysteem</li>
                  <li style="margin-bottom: 5px;">Kwaliteitsbeleid en kwaliteitsdoelstellingen</li>
                </ul>
              </div>

              <div style="background: #f8fafc; border: 1px solid #e2e8f0; padding: 20px; border-radius: 8px; margin-bottom: 25px;">
                <h3 style="color: #1e40af; font-size: 12pt; font-weight: bold; margin-bottom: 15px;">2. Vastgelegde Informatie</h3>
                <p style="font-size: 11pt; color: #374151; line-height: 1.6; margin-bottom: 10px;">
                  De volgende vastgelegde informatie is verplicht volgens ISO 9001:2015:
                </p>
                <ul style="font-size: 11pt; color: #374151; line-height: 1.6; margin: 0; padding-left: 20px;">
                  <li style="margin-bottom: 5px;"><strong>Kwaliteitsbeleid:</strong> Verklaring van de intenties en richting van de organisatie</li>
                  <li style="margin-bottom: 5px;"><strong>Kwaliteitsdoelstellingen:</strong> Doelstellingen die consistent zijn met het kwaliteitsbeleid</li>
                  <li style="margin-bottom: 5px;"><strong>Rol, verantwoordelijkheid en bevoegdheid:</strong> Duidelijke toewijzing van verantwoordelijkheden</li>
                  <li style="margin-bottom: 5px;"><strong>Competentie van personen:</strong> Bewijs van competentie van personen die werk uitvoeren</li>
                  <li style="margin-bottom: 5px;"><strong>Klantgerelateerde processen:</strong> Resultaten van de beoordeling van klantvereisten</li>
                  <li style="margin-bottom: 5px;"><strong>Design en ontwikkeling:</strong> Inputs, outputs, reviews, verificatie en validatie</li>
                  <li style="margin-bottom: 5px;"><strong>Inkoop:</strong> Evaluatie van leveranciers en resultaten van evaluaties</li>
                  <li style="margin-bottom: 5px;"><strong>Productie en dienstverlening:</strong> Kenmerken van producten en diensten</li>
                  <li style="margin-bottom: 5px;"><strong>Bewaking en meting:</strong> Kalibratie van meetapparatuur</li>
                  <li style="margin-bottom: 5px;"><strong>Interne audits:</strong> Resultaten van interne audits</li>
                  <li style="margin-bottom: 5px;"><strong>Managementreview:</strong> Resultaten van managementreviews</li>
                  <li style="margin-bottom: 5px;"><strong>Afwijkend product:</strong> Beschrijving van afwijkingen en genomen maatregelen</li>
                  <li style="margin-bottom: 5px;"><strong>Correctieve maatregelen:</strong> Resultaten van correctieve maatregelen</li>
                </ul>
              </div>

              <div style="background: linear-gradient(135deg, #eff6ff 0%, #dbeafe 100%); border-left: 4px solid #2563eb; padding: 20px; margin: 25px 0; border-radius: 0 8px 8px 0;">
                <p style="font-size: 11pt; color: #1e40af; line-height: 1.6; margin: 0; font-weight: 500;">
                  <strong>Belangrijke opmerking:</strong> De vastgelegde informatie moet worden beheerd volgens de eisen van paragraaf 7.5 van ISO 9001:2015, inclusief identificatie, beschrijving, format, distributie en toegankelijkheid.
                </p>
              </div>

              <h2 style="color: #374151; font-size: 14pt; font-weight: bold; margin: 25px 0 15px 0;">Aanbevolen Documenten</h2>
              <p style="font-size: 11pt; color: #374151; line-height: 1.8; margin-bottom: 20px; text-align: justify;">
                Hoewel niet verplicht, worden de volgende documenten sterk aanbevolen voor een effectief kwaliteitsmanagementsysteem:
              </p>

              <div style="background: #f0fdf4; border: 1px solid #bbf7d0; padding: 20px; border-radius: 8px; margin-bottom: 25px;">
                <ul style="font-size: 11pt; color: #374151; line-height: 1.6; margin: 0; padding-left: 20px;">
                  <li style="margin-bottom: 5px;">Procedures voor kritieke processen</li>
                  <li style="margin-bottom: 5px;">Werkinstructies voor complexe taken</li>
                  <li style="margin-bottom: 5px;">Formulieren en checklists</li>
                  <li style="margin-bottom: 5px;">Risico- en kansbeoordelingen</li>
                  <li style="margin-bottom: 5px;">Klanttevredenheidsonderzoeken</li>
                  <li style="margin-bottom: 5px;">Leverancierevaluaties</li>
                  <li style="margin-bottom: 5px;">Training en competentieplannen</li>
                  <li style="margin-bottom: 5px;">Correctieve en preventieve actieplannen</li>
                </ul>
              </div>
            </div>
          `
