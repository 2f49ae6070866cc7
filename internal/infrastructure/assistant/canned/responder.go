package canned

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
)

// Responder answers chat messages from a fixed Dutch knowledge base.
// Selection is a hash over the incoming text, so the same question
// always gets the same answer.
type Responder struct {
	improver TextImprover
}

// TextImprover rewrites a text fragment. The responder is its own
// default implementation.
type TextImprover interface {
	Improve(ctx context.Context, text string) (string, error)
}

func New() *Responder {
	r := &Responder{}
	r.improver = r
	return r
}

// NewWithImprover routes rewrite requests to an external improver
// instead of the built-in rewrite table.
func NewWithImprover(improver TextImprover) *Responder {
	r := New()
	if improver != nil {
		r.improver = improver
	}
	return r
}

var topicKeywords = []string{
	"iso", "kwaliteit", "management", "proces", "certificering",
	"audit", "documentatie", "handboek", "beleid", "doelstelling",
	"risico", "verbetering", "verplicht", "document", "vastgelegd",
}

const topicFollowUp = "\n\nHeeft u nog meer vragen over ISO 9001 of kwaliteitsmanagement? Of wilt u dat ik tekst in uw document herschrijf?"

var topicResponses = []string{
	"ISO 9001:2015 vereist een kwaliteitshandboek dat het kwaliteitsmanagementsysteem beschrijft en hoe dit voldoet aan de norm. Verplichte vastgelegde informatie omvat: kwaliteitsbeleid en -doelstellingen, rol en verantwoordelijkheden, competentie van personen, klantgerelateerde processen, design en ontwikkeling, inkoop, productie en dienstverlening, bewaking en meting, interne audits, managementreview, afwijkend product, en correctieve maatregelen. Daarnaast zijn procedures voor documentbeheer, beheersing van vastgelegde informatie, interne audits, beheersing van afwijkend product, en correctieve maatregelen verplicht.",
	"De verplichte documenten voor ISO 9001:2015 zijn: 1) Kwaliteitshandboek - beschrijft het QMS en toepassingsgebied, 2) Kwaliteitsbeleid - verklaring van intenties, 3) Kwaliteitsdoelstellingen - meetbare doelen, 4) Procedures voor documentbeheer, 5) Procedures voor beheersing van vastgelegde informatie, 6) Procedures voor interne audits, 7) Procedures voor beheersing van afwijkend product, 8) Procedures voor correctieve maatregelen. Alle documenten moeten worden beheerd volgens paragraaf 7.5 van de norm.",
	"ISO 9001:2015 heeft minder verplichte documenten dan de vorige versie, maar vereist nog steeds vastgelegde informatie voor: kwaliteitsbeleid en doelstellingen, competentie van personeel, klantvereisten en hun beoordeling, design en ontwikkelingsinputs/outputs, leverancierevaluaties, product- en dienstkenmerken, kalibratie van meetapparatuur, auditresultaten, managementreviewresultaten, en correctieve acties. Het kwaliteitshandboek blijft verplicht maar kan compacter zijn.",
	"Voor ISO 9001:2015 certificering moet u minimaal documenteren: uw kwaliteitshandboek, uw kwaliteitsbeleid, uw kwaliteitsdoelstellingen, en procedures voor documentbeheer, interne audits, beheersing van afwijkend product, en correctieve maatregelen. Daarnaast moet u vastleggen: competentie van personeel, klantvereisten, design en ontwikkelingsresultaten, leverancierevaluaties, productkenmerken, kalibratiegegevens, auditresultaten, managementreviewresultaten, en genomen correctieve acties. De focus ligt op 'vastgelegde informatie' in plaats van alleen documenten.",
	"ISO 9001:2015 vereist een risicogebaseerde benadering waarbij u moet vastleggen hoe u risico's en kansen beheert. Verplichte documenten zijn: kwaliteitshandboek, kwaliteitsbeleid, kwaliteitsdoelstellingen, en procedures voor documentbeheer, interne audits, beheersing van afwijkend product, en correctieve maatregelen. Vastgelegde informatie moet omvatten: competentie van personeel, klantvereisten, design en ontwikkelingsresultaten, leverancierevaluaties, productkenmerken, kalibratiegegevens, auditresultaten, managementreviewresultaten, en correctieve acties. Alle informatie moet worden beheerd volgens paragraaf 7.5.",
}

var rewrittenTexts = []string{
	"Deze sectie beschrijft de fundamentele principes van ons kwaliteitsmanagementsysteem, dat strategisch is ontworpen om consistente excellentie te waarborgen in alle aspecten van onze bedrijfsvoering. Het systeem voldoet volledig aan de stringente eisen van ISO 9001:2015 en ondersteunt onze organisatie proactief bij het realiseren van haar strategische doelstellingen en het overtreffen van klantverwachtingen.",
	"Onze organisatie heeft zich onvoorwaardelijk gecommitteerd aan een cultuur van continue verbetering en operationele excellentie. We streven er consequent naar om de verwachtingen van onze klanten niet alleen te vervullen, maar systematisch te overtreffen door middel van innovatieve oplossingen, hoogwaardige producten en uitzonderlijke service. Deze toewijding vormt de onwrikbare kern van ons kwaliteitsbeleid en wordt dagelijks geoperationaliseerd in al onze processen.",
	"Het kwaliteitsmanagementsysteem van onze organisatie is gebaseerd op een procesgerichte benadering die alle kritieke aspecten van onze bedrijfsvoering omvat en integreert. Door systematische monitoring, grondige evaluatie en proactieve verbetering van onze processen, waarborgen wij dat onze producten en diensten consequent voldoen aan de hoogste kwaliteitsnormen en industriestandaarden.",
	"Wij erkennen dat kwaliteit niet alleen een verantwoordelijkheid is van een specifieke afdeling, maar een gedeelde commitment van alle medewerkers binnen onze organisatie. Door gerichte training, bewustwording en actieve betrokkenheid van ons personeel op alle niveaus, creëren we een omgeving waarin excellentie de norm is en continue verbetering een natuurlijk onderdeel vormt van onze bedrijfscultuur.",
	"Ons kwaliteitsbeleid is stevig gefundeerd op de bewezen principes van klantgerichtheid, inspirerend leiderschap, betrokkenheid van mensen, procesgerichte aanpak, continue verbetering, besluitvorming op basis van feiten en strategisch relatiebeheer. Deze principes vormen het solide fundament voor al onze activiteiten, beslissingen en toekomstgerichte initiatieven.",
}

var generalResponses = []string{
	"Ik begrijp uw vraag. Kunt u wat specifieker zijn? Ik kan u helpen met vragen over ISO 9001, kwaliteitsmanagement, documentatie, of het herschrijven van tekst in uw document.",
	"Dat is een interessante vraag! Ik ben hier om u te helpen met ISO 9001 gerelateerde onderwerpen, kwaliteitsmanagement, of het verbeteren van uw document. Kunt u uw vraag wat meer toelichten?",
	"Ik help u graag verder! Selecteer eerst tekst in uw document om het te herschrijven, of stel een specifieke vraag over ISO 9001, kwaliteitsmanagement, of documentatie.",
	"Ik ben uw AI assistent voor ISO 9001 en document beheer. Ik kan u helpen met het herschrijven van tekst, het beantwoorden van vragen over kwaliteitsmanagement, of het geven van advies over ISO implementatie. Wat heeft u nodig?",
}

func (r *Responder) Reply(ctx context.Context, documentID, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if wantsRewrite(message) {
		return r.improver.Improve(ctx, message)
	}
	if matchesTopic(message) {
		return pick(topicResponses, documentID, message) + topicFollowUp, nil
	}
	return pick(generalResponses, documentID, message), nil
}

func (r *Responder) Improve(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rewrite := pick(rewrittenTexts, "", text)
	return fmt.Sprintf("Hier is een verbeterde, meer professionele versie van de geselecteerde tekst:\n\n%q\n\nWilt u dat ik deze tekst in uw document vervang, of wilt u dat ik het anders aanpak? U kunt ook specifiek vragen om het meer technisch, formeel, of juist toegankelijker te maken.", rewrite), nil
}

func wantsRewrite(message string) bool {
	lowered := strings.ToLower(message)
	return strings.Contains(lowered, "verbeter") || strings.Contains(lowered, "herschrijf")
}

func matchesTopic(message string) bool {
	lowered := strings.ToLower(message)
	for _, keyword := range topicKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

func pick(options []string, documentID, message string) string {
	h := fnv.New32a()
	h.Write([]byte(documentID))
	h.Write([]byte(message))
	return options[h.Sum32()%uint32(len(options))]
}
