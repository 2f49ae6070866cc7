package docgen

import (
	"fmt"
	"strings"
	"time"
)

// PageHeightPx is the rendered A4 page height used by the editor layout.
const PageHeightPx = 1123

const dateToken = "[DOCUMENT_DATUM]"

var dutchMonths = [...]string{
	"januari", "februari", "maart", "april", "mei", "juni",
	"juli", "augustus", "september", "oktober", "november", "december",
}

// FormatDutchDate renders a date the way nl-NL long dates read, e.g.
// "31 augustus 2026".
func FormatDutchDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), dutchMonths[t.Month()-1], t.Year())
}

// QuestionnaireTemplate produces the pristine handbook buffer for a new
// document. Output is deterministic for a given creation date; placeholder
// tokens remain literal until the intake flow substitutes them.
func QuestionnaireTemplate(createdAt time.Time) string {
	return strings.ReplaceAll(questionnaireTemplate, dateToken, FormatDutchDate(createdAt))
}

// DefaultEditorContent builds the initial free-form editor buffer from the
// chapter catalog: a title page, the introduction page, then two numbered
// chapters per page seeded with each chapter's first suggestion.
func DefaultEditorContent(docType string, createdAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, `
      <div style="page-break-after: always; text-align: center; min-height: %dpx; display: flex; flex-direction: column; justify-content: space-between; padding: 100px 40px 40px 40px; box-sizing: border-box;">
        <div>
          <h1 style="color: #1e40af; font-size: 28pt; font-weight: bold; margin-bottom: 20px;">%s Managementsysteem</h1>
          <h2 style="color: #374151; font-size: 18pt; font-weight: normal; margin-bottom: 40px;">Kwaliteitshandboek</h2>
          <div style="border: 2px solid #e5e7eb; border-radius: 12px; padding: 40px; margin: 0 auto; max-width: 400px; background-color: #f9fafb;">
            <p style="font-size: 14pt; color: #374151; margin-bottom: 15px;"><strong>Organisatie:</strong></p>
            <p style="font-size: 12pt; color: #6b7280; margin-bottom: 25px;">[Bedrijfsnaam]</p>

            <p style="font-size: 14pt; color: #374151; margin-bottom: 15px;"><strong>Document Versie:</strong></p>
            <p style="font-size: 12pt; color: #6b7280; margin-bottom: 25px;">1.0</p>

            <p style="font-size: 14pt; color: #374151; margin-bottom: 15px;"><strong>Datum:</strong></p>
            <p style="font-size: 12pt; color: #6b7280; margin-bottom: 25px;">%s</p>

            <p style="font-size: 14pt; color: #374151; margin-bottom: 15px;"><strong>Status:</strong></p>
            <p style="font-size: 12pt; color: #059669; font-weight: bold;">Concept</p>
          </div>
        </div>

        <div>
          <p style="font-size: 10pt; color: #9ca3af; font-style: italic;">
            Dit document is gegenereerd met ISO Generator<br/>
            Vertrouwelijk - Alleen voor intern gebruik
          </p>
        </div>
      </div>
    `, PageHeightPx, docType, FormatDutchDate(createdAt))

	intro := chapters[0]
	fmt.Fprintf(&b, `
      <div style="page-break-before: always; min-height: %dpx; padding: 40px; box-sizing: border-box;">
        <h1 style="color: #9639ef; font-size: 14pt; font-weight: bold; margin-bottom: 16px;">%s</h1>
        <p style="font-size: 11pt; color: #4a4a4a; line-height: 1.6;">%s</p>
      </div>
    `, PageHeightPx, intro.Heading(), intro.Sections[0].Suggestions[0])

	numbered := chapters[1:]
	for i := 0; i < len(numbered); i += 2 {
		fmt.Fprintf(&b, `
        <div style="page-break-before: always; min-height: %dpx; padding: 40px; box-sizing: border-box;">
      `, PageHeightPx)

		first := numbered[i]
		fmt.Fprintf(&b, `
          <h1 style="color: #9639ef; font-size: 14pt; font-weight: bold; margin-bottom: 16px;">%s</h1>
          <p style="font-size: 11pt; color: #4a4a4a; line-height: 1.6; margin-bottom: 32px;">%s</p>
        `, first.Heading(), first.Sections[0].Suggestions[0])

		if i+1 < len(numbered) {
			second := numbered[i+1]
			fmt.Fprintf(&b, `
          <h1 style="color: #9639ef; font-size: 14pt; font-weight: bold; margin-bottom: 16px;">%s</h1>
          <p style="font-size: 11pt; color: #4a4a4a; line-height: 1.6;">%s</p>
        `, second.Heading(), second.Sections[0].Suggestions[0])
		}

		b.WriteString(`
        </div>
      `)
	}

	return b.String()
}

// The questionnaire template mirrors the published handbook layout: title
// page, table of contents, introduction, organisation profile. TOC entries
// are spans inside flex rows, not headings.
const questionnaireTemplate = `
    <div style="text-align: center; padding: 80px 40px; min-height: 297mm; display: flex; flex-direction: column; justify-content: center;">
      <h1 style="color: #1e40af; font-size: 32pt; font-weight: bold; margin-bottom: 30px; line-height: 1.2;">ISO 9001:2015<br/>Kwaliteitsmanagementsysteem</h1>
      <h2 style="color: #374151; font-size: 20pt; font-weight: normal; margin-bottom: 60px;">Kwaliteitshandboek</h2>

      <div style="border: 3px solid #2563eb; border-radius: 16px; padding: 50px; margin: 0 auto; max-width: 500px; background: linear-gradient(135deg, #f8faff 0%, #e0f2fe 100%); box-shadow: 0 20px 40px rgba(37, 99, 235, 0.1);">
        <div style="display: grid; gap: 30px; text-align: left;">
          <div>
            <p style="font-size: 16pt; color: #1e40af; font-weight: bold; margin-bottom: 8px;">Organisatie:</p>
            <p style="font-size: 14pt; color: #374151; margin-bottom: 0;">[BEDRIJFSNAAM]</p>
          </div>
          <div>
            <p style="font-size: 16pt; color: #1e40af; font-weight: bold; margin-bottom: 8px;">Adres:</p>
            <p style="font-size: 14pt; color: #374151; margin-bottom: 0;">[BEDRIJFSADRES]</p>
          </div>
          <div>
            <p style="font-size: 16pt; color: #1e40af; font-weight: bold; margin-bottom: 8px;">Document Versie:</p>
            <p style="font-size: 14pt; color: #374151; margin-bottom: 0;">1.0</p>
          </div>
          <div>
            <p style="font-size: 16pt; color: #1e40af; font-weight: bold; margin-bottom: 8px;">Datum:</p>
            <p style="font-size: 14pt; color: #374151; margin-bottom: 0;">[DOCUMENT_DATUM]</p>
          </div>
          <div>
            <p style="font-size: 16pt; color: #1e40af; font-weight: bold; margin-bottom: 8px;">Status:</p>
            <p style="font-size: 14pt; color: #059669; font-weight: bold; margin-bottom: 0;">Goedgekeurd</p>
          </div>
          <div>
            <p style="font-size: 16pt; color: #1e40af; font-weight: bold; margin-bottom: 8px;">Goedgekeurd door:</p>
            <p style="font-size: 14pt; color: #374151; margin-bottom: 0;">[DIRECTEUR_NAAM]</p>
            <p style="font-size: 12pt; color: #6b7280; margin-top: 4px;">Algemeen Directeur</p>
          </div>
        </div>
      </div>

      <div style="margin-top: 60px;">
        <p style="font-size: 12pt; color: #6b7280; font-style: italic; line-height: 1.6;">
          Dit kwaliteitshandboek beschrijft het kwaliteitsmanagementsysteem van [BEDRIJFSNAAM]<br/>
          conform de eisen van ISO 9001:2015<br/>
          <br/>
          <strong>Vertrouwelijk - Alleen voor intern gebruik</strong>
        </p>
      </div>
    </div>

    <div style="page-break-before: always; padding: 40px; min-height: 297mm;">
      <h1 style="color: #1e40af; font-size: 18pt; font-weight: bold; margin-bottom: 30px; border-bottom: 3px solid #2563eb; padding-bottom: 10px;">Inhoudsopgave</h1>

      <div style="font-size: 12pt; line-height: 2; color: #374151;">
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0;">
          <span><strong>1. Inleiding</strong></span>
          <span>3</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>1.1 Doel van dit handboek</span>
          <span>3</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>1.2 Toepassingsgebied</span>
          <span>3</span>
        </div>

        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; margin-top: 10px;">
          <span><strong>2. Organisatieprofiel</strong></span>
          <span>4</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>2.1 Bedrijfsinformatie</span>
          <span>4</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>2.2 Organisatiestructuur</span>
          <span>4</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>2.3 Producten en diensten</span>
          <span>5</span>
        </div>

        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; margin-top: 10px;">
          <span><strong>3. Kwaliteitsbeleid en -doelstellingen</strong></span>
          <span>6</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>3.1 Kwaliteitsbeleid</span>
          <span>6</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>3.2 Kwaliteitsdoelstellingen</span>
          <span>7</span>
        </div>

        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; margin-top: 10px;">
          <span><strong>4. Kwaliteitsmanagementsysteem</strong></span>
          <span>8</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>4.1 Algemene eisen</span>
          <span>8</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>4.2 Documentatie-eisen</span>
          <span>8</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>4.3 Procesaanpak</span>
          <span>9</span>
        </div>

        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; margin-top: 10px;">
          <span><strong>5. Verantwoordelijkheid van het management</strong></span>
          <span>10</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>5.1 Managementbetrokkenheid</span>
          <span>10</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>5.2 Klantgerichtheid</span>
          <span>10</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>5.3 Verantwoordelijkheden en bevoegdheden</span>
          <span>11</span>
        </div>

        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; margin-top: 10px;">
          <span><strong>6. Beheer van middelen</strong></span>
          <span>12</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>6.1 Terbeschikkingstelling van middelen</span>
          <span>12</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>6.2 Personeel</span>
          <span>12</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>6.3 Infrastructuur</span>
          <span>13</span>
        </div>

        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; margin-top: 10px;">
          <span><strong>7. Productrealisatie</strong></span>
          <span>14</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>7.1 Planning van productrealisatie</span>
          <span>14</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>7.2 Klantgerelateerde processen</span>
          <span>15</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>7.3 Ontwerp en ontwikkeling</span>
          <span>16</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>7.4 Inkoop</span>
          <span>17</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>7.5 Productie en dienstverlening</span>
          <span>18</span>
        </div>

        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; margin-top: 10px;">
          <span><strong>8. Meting, analyse en verbetering</strong></span>
          <span>19</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>8.1 Algemeen</span>
          <span>19</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>8.2 Bewaking en meting</span>
          <span>19</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>8.3 Beheersing van afwijkend product</span>
          <span>21</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>8.4 Analyse van gegevens</span>
          <span>21</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>8.5 Verbetering</span>
          <span>22</span>
        </div>

        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; margin-top: 10px;">
          <span><strong>9. Bijlagen</strong></span>
          <span>23</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>9.1 Organisatieschema</span>
          <span>23</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>9.2 Processchema</span>
          <span>24</span>
        </div>
        <div style="display: flex; justify-content: space-between; border-bottom: 1px dotted #d1d5db; padding: 8px 0; padding-left: 20px;">
          <span>9.3 Documentenlijst</span>
          <span>25</span>
        </div>
      </div>
    </div>

    <div style="page-break-before: always; padding: 40px; min-height: 297mm;">
      <h1 style="color: #1e40af; font-size: 18pt; font-weight: bold; margin-bottom: 20px; border-bottom: 3px solid #2563eb; padding-bottom: 10px;">1. Inleiding</h1>

      <h2 style="color: #374151; font-size: 14pt; font-weight: bold; margin: 25px 0 15px 0;">1.1 Doel van dit handboek</h2>
      <p style="font-size: 11pt; color: #374151; line-height: 1.8; margin-bottom: 20px; text-align: justify;">
        Dit handboek is bedoeld om te laten zien hoe we kwaliteit waarborgen. We willen dat onze klanten tevreden zijn en dat onze processen goed lopen. Het handboek helpt ons om consistent te werken en problemen te voorkomen. We volgen de regels van ISO 9001:2015 om ervoor te zorgen dat alles goed gaat.
      </p>
      <p style="font-size: 11pt; color: #374151; line-height: 1.8; margin-bottom: 20px; text-align: justify;">
        Het handboek toont aan hoe [BEDRIJFSNAAM] voldoet aan de eisen van ISO 9001:2015 en beschrijft de processen, procedures en verantwoordelijkheden die nodig zijn om consistente kwaliteit te leveren aan onze klanten. Het handboek wordt regelmatig geëvalueerd en bijgewerkt om ervoor te zorgen dat het actueel en effectief blijft.
      </p>

      <h2 style="color: #374151; font-size: 14pt; font-weight: bold; margin: 25px 0 15px 0;">1.2 Toepassingsgebied</h2>
      <p style="font-size: 11pt; color: #374151; line-height: 1.8; margin-bottom: 20px; text-align: justify;">
        Het kwaliteitsmanagementsysteem van [BEDRIJFSNAAM] is van toepassing op [TOEPASSINGSGEBIED]. Het systeem omvat alle activiteiten die van invloed zijn op de kwaliteit van onze [PRODUCTEN_DIENSTEN] en de tevredenheid van onze klanten.
      </p>
      <p style="font-size: 11pt; color: #374151; line-height: 1.8; margin-bottom: 20px; text-align: justify;">
        Het toepassingsgebied omvat de locatie(s) [LOCATIES] en alle processen die betrokken zijn bij [KERNPROCESSEN]. Eventuele uitsluitingen van ISO 9001:2015 eisen zijn gebaseerd op de aard van onze organisatie en producten/diensten en zijn volledig gerechtvaardigd.
      </p>

      <div style="background: linear-gradient(135deg, #eff6ff 0%, #dbeafe 100%); border-left: 4px solid #2563eb; padding: 20px; margin: 25px 0; border-radius: 0 8px 8px 0;">
        <p style="font-size: 11pt; color: #1e40af; line-height: 1.6; margin: 0; font-weight: 500;">
          <strong>Opmerking:</strong> Dit handboek is een levend document dat regelmatig wordt bijgewerkt om wijzigingen in onze organisatie, processen en de ISO 9001 norm te reflecteren. De meest actuele versie is altijd beschikbaar via [DOCUMENTBEHEERSYSTEEM].
        </p>
      </div>
    </div>

    <div style="page-break-before: always; padding: 40px; min-height: 297mm;">
      <h1 style="color: #1e40af; font-size: 18pt; font-weight: bold; margin-bottom: 20px; border-bottom: 3px solid #2563eb; padding-bottom: 10px;">2. Organisatieprofiel</h1>

      <h2 style="color: #374151; font-size: 14pt; font-weight: bold; margin: 25px 0 15px 0;">2.1 Bedrijfsinformatie</h2>
      <div style="background: #f8fafc; border: 1px solid #e2e8f0; padding: 20px; border-radius: 8px; margin-bottom: 25px;">
        <table style="width: 100%; font-size: 11pt; color: #374151; line-height: 1.6;">
          <tr>
            <td style="font-weight: bold; width: 30%; padding: 8px 0; vertical-align: top;">Bedrijfsnaam:</td>
            <td style="padding: 8px 0;">[BEDRIJFSNAAM]</td>
          </tr>
          <tr>
            <td style="font-weight: bold; padding: 8px 0; vertical-align: top;">Adres:</td>
            <td style="padding: 8px 0;">[BEDRIJFSADRES]<br/>[POSTCODE] [PLAATS]</td>
          </tr>
          <tr>
            <td style="font-weight: bold; padding: 8px 0; vertical-align: top;">Telefoon:</td>
            <td style="padding: 8px 0;">[TELEFOONNUMMER]</td>
          </tr>
          <tr>
            <td style="font-weight: bold; padding: 8px 0; vertical-align: top;">E-mail:</td>
            <td style="padding: 8px 0;">[EMAIL]</td>
          </tr>
          <tr>
            <td style="font-weight: bold; padding: 8px 0; vertical-align: top;">Website:</td>
            <td style="padding: 8px 0;">[WEBSITE]</td>
          </tr>
          <tr>
            <td style="font-weight: bold; padding: 8px 0; vertical-align: top;">KvK nummer:</td>
            <td style="padding: 8px 0;">[KVK_NUMMER]</td>
          </tr>
          <tr>
            <td style="font-weight: bold; padding: 8px 0; vertical-align: top;">Opgericht:</td>
            <td style="padding: 8px 0;">[OPRICHTINGSDATUM]</td>
          </tr>
          <tr>
            <td style="font-weight: bold; padding: 8px 0; vertical-align: top;">Aantal medewerkers:</td>
            <td style="padding: 8px 0;">[AANTAL_MEDEWERKERS]</td>
          </tr>
        </table>
      </div>

      <p style="font-size: 11pt; color: #374151; line-height: 1.8; margin-bottom: 20px; text-align: justify;">
        [BEDRIJFSNAAM] is gespecialiseerd in [SPECIALISATIE] en biedt [PRODUCTEN_DIENSTEN] aan [DOELGROEP]. Sinds onze oprichting in [OPRICHTINGSJAAR] hebben we ons ontwikkeld tot een betrouwbare partner voor onze klanten door [KERNWAARDEN] centraal te stellen in al onze activiteiten.
      </p>

      <h2 style="color: #374151; font-size: 14pt; font-weight: bold; margin: 25px 0 15px 0;">2.2 Organisatiestructuur</h2>
      <p style="font-size: 11pt; color: #374151; line-height: 1.8; margin-bottom: 20px; text-align: justify;">
        Onze organisatie heeft een [ORGANISATIESTRUCTUUR] met duidelijk gedefinieerde rollen en verantwoordelijkheden. De algemeen directeur, [DIRECTEUR_NAAM], is eindverantwoordelijk voor het kwaliteitsmanagementsysteem en heeft de kwaliteitsmanager, [KWALITEITSMANAGER_NAAM], aangesteld om het systeem te beheren en te onderhouden.
      </p>

      <div style="background: #f8fafc; border: 1px solid #e2e8f0; padding: 20px; border-radius: 8px; margin-bottom: 25px;">
        <h3 style="color: #1e40af; font-size: 12pt; font-weight: bold; margin-bottom: 15px;">Sleutelposities:</h3>
        <ul style="font-size: 11pt; color: #374151; line-height: 1.6; margin: 0; padding-left: 20px;">
          <li style="margin-bottom: 8px;"><strong>Algemeen Directeur:</strong> [DIRECTEUR_NAAM] - Eindverantwoordelijkheid voor QMS</li>
          <li style="margin-bottom: 8px;"><strong>Kwaliteitsmanager:</strong> [KWALITEITSMANAGER_NAAM] - Beheer en onderhoud QMS</li>
          <li style="margin-bottom: 8px;"><strong>Operationeel Manager:</strong> [OPERATIONEEL_MANAGER] - Dagelijkse operaties</li>
          <li style="margin-bottom: 8px;"><strong>Hoofd Verkoop:</strong> [HOOFD_VERKOOP] - Klantrelaties en contracten</li>
          <li style="margin-bottom: 8px;"><strong>Hoofd Productie:</strong> [HOOFD_PRODUCTIE] - Productie en kwaliteitscontrole</li>
        </ul>
      </div>

      <h2 style="color: #374151; font-size: 14pt; font-weight: bold; margin: 25px 0 15px 0;">2.3 Producten en diensten</h2>
      <p style="font-size: 11pt; color: #374151; line-height: 1.8; margin-bottom: 20px; text-align: justify;">
        [BEDRIJFSNAAM] levert de volgende producten en/of diensten aan haar klanten:
      </p>

      <div style="background: linear-gradient(135deg, #f0fdf4 0%, #dcfce7 100%); border-left: 4px solid #16a34a; padding: 20px; margin: 25px 0; border-radius: 0 8px 8px 0;">
        <ul style="font-size: 11pt; color: #374151; line-height: 1.6; margin: 0; padding-left: 20px;">
          <li style="margin-bottom: 8px;">[PRODUCT_DIENST_1] - [BESCHRIJVING_1]</li>
          <li style="margin-bottom: 8px;">[PRODUCT_DIENST_2] - [BESCHRIJVING_2]</li>
          <li style="margin-bottom: 8px;">[PRODUCT_DIENST_3] - [BESCHRIJVING_3]</li>
          <li style="margin-bottom: 8px;">[PRODUCT_DIENST_4] - [BESCHRIJVING_4]</li>
        </ul>
      </div>

      <p style="font-size: 11pt; color: #374151; line-height: 1.8; margin-bottom: 20px; text-align: justify;">
        Onze klanten zijn voornamelijk [KLANTTYPE] in de sectoren [SECTOREN]. We bedienen zowel [MARKTTYPE] en hebben een sterke reputatie opgebouwd op het gebied van [STERKE_PUNTEN].
      </p>
    </div>
  `
