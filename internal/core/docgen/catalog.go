package docgen

import (
	"fmt"

	"isogen/internal/core/domain"
)

// Section is a building block within a handbook chapter. Suggestions are
// ready-made Dutch sentences offered to the editor.
type Section struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Suggestions []string `json:"suggestions"`
}

type Chapter struct {
	ID         string    `json:"id"`
	Number     string    `json:"number"`
	Title      string    `json:"title"`
	ShortTitle string    `json:"short_title"`
	Sections   []Section `json:"sections"`
}

// Heading returns the h1 text used for the chapter in generated documents.
// The unnumbered introduction renders without a prefix so headings stay
// unique across the document.
func (c Chapter) Heading() string {
	if c.Number == "" {
		return c.Title
	}
	return fmt.Sprintf("%s. %s", c.Number, c.Title)
}

// Profile carries the presentation attributes of an ISO standard.
type Profile struct {
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
}

var profiles = map[string]Profile{
	"9001":  {Name: "ISO 9001", Subtitle: "Kwaliteitsmanagement", Icon: "📄", Color: "blue"},
	"27001": {Name: "ISO 27001", Subtitle: "Informatiebeveiliging", Icon: "🛡️", Color: "purple"},
	"14001": {Name: "ISO 14001", Subtitle: "Milieumanagement", Icon: "🌱", Color: "green"},
}

// ProfileFor maps an ISO type to its presentation profile. Unknown types
// fall back to the 9001 profile.
func ProfileFor(isoType string) Profile {
	if p, ok := profiles[isoType]; ok {
		return p
	}
	return profiles["9001"]
}

// Chapters returns the ordered handbook catalog.
func Chapters() []Chapter {
	return chapters
}

func ChapterByID(id string) (Chapter, error) {
	for _, c := range chapters {
		if c.ID == id {
			return c, nil
		}
	}
	return Chapter{}, domain.WrapError(domain.ErrInvalidInput, "docgen.ChapterByID", fmt.Errorf("unknown chapter %q", id))
}

var chapters = []Chapter{
	{
		ID:         "introduction",
		Number:     "",
		Title:      "Inleiding",
		ShortTitle: "Inleiding",
		Sections: []Section{
			{
				ID:    "intro-general",
				Title: "Algemene Inleiding",
				Suggestions: []string{
					"Dit document beschrijft het kwaliteitsmanagementsysteem conform ISO 9001:2015.",
					"Het systeem is ontwikkeld om consistente kwaliteit te waarborgen.",
					"Alle medewerkers zijn betrokken bij de implementatie van dit systeem.",
					"Dit document wordt jaarlijks geëvalueerd en bijgewerkt.",
				},
			},
		},
	},
	{
		ID:         "company-info",
		Number:     "1",
		Title:      "Bedrijfsinformatie",
		ShortTitle: "Bedrijfsinfo",
		Sections: []Section{
			{
				ID:    "company-profile",
				Title: "Bedrijfsprofiel",
				Suggestions: []string{
					"Onze organisatie is gespecialiseerd in het leveren van hoogwaardige diensten.",
					"Het bedrijf werd opgericht met als doel excellente klantenservice te bieden.",
					"Wij bedienen klanten in verschillende marktsegmenten.",
					"Onze kernwaarden zijn kwaliteit, betrouwbaarheid en klanttevredenheid.",
				},
			},
			{
				ID:    "organizational-structure",
				Title: "Organisatiestructuur",
				Suggestions: []string{
					"De organisatie heeft een platte structuur met korte communicatielijnen.",
					"Elke afdeling heeft duidelijk gedefinieerde verantwoordelijkheden.",
					"Het management zorgt voor adequate middelen en ondersteuning.",
					"Rapportagelijnen zijn helder gedefinieerd en gedocumenteerd.",
				},
			},
		},
	},
	{
		ID:         "scope",
		Number:     "2",
		Title:      "Toepassingsgebied",
		ShortTitle: "Scope",
		Sections: []Section{
			{
				ID:    "scope-definition",
				Title: "Definitie Toepassingsgebied",
				Suggestions: []string{
					"Het kwaliteitsmanagementsysteem is van toepassing op alle kernprocessen.",
					"Alle locaties en afdelingen vallen onder dit toepassingsgebied.",
					"Het systeem omvat de gehele keten van ontwerp tot levering.",
					"Uitsluitingen zijn beperkt en goed onderbouwd conform ISO 9001.",
				},
			},
		},
	},
	{
		ID:         "quality-policy",
		Number:     "3",
		Title:      "Kwaliteitsbeleid",
		ShortTitle: "Beleid",
		Sections: []Section{
			{
				ID:    "policy-statement",
				Title: "Beleidverklaring",
				Suggestions: []string{
					"Wij streven naar continue verbetering van onze producten en diensten.",
					"Klanttevredenheid staat centraal in al onze activiteiten.",
					"Alle medewerkers zijn betrokken bij het realiseren van kwaliteitsdoelstellingen.",
					"Wij naleven alle toepasselijke wet- en regelgeving.",
				},
			},
			{
				ID:    "policy-objectives",
				Title: "Beleidsdoelstellingen",
				Suggestions: []string{
					"Onze doelstellingen zijn SMART geformuleerd en meetbaar.",
					"Doelstellingen worden jaarlijks geëvalueerd en bijgesteld.",
					"Alle afdelingen dragen bij aan het behalen van de doelstellingen.",
					"Voortgang wordt maandelijks gemonitord en gerapporteerd.",
				},
			},
		},
	},
	{
		ID:         "organization",
		Number:     "4",
		Title:      "Organisatie en Verantwoordelijkheden",
		ShortTitle: "Organisatie",
		Sections: []Section{
			{
				ID:    "roles-responsibilities",
				Title: "Rollen en Verantwoordelijkheden",
				Suggestions: []string{
					"Elke functie heeft duidelijk gedefinieerde verantwoordelijkheden.",
					"Bevoegdheden zijn gedelegeerd op het juiste organisatieniveau.",
					"De kwaliteitsmanager rapporteert direct aan de directie.",
					"Alle medewerkers kennen hun rol in het kwaliteitssysteem.",
				},
			},
		},
	},
	{
		ID:         "processes",
		Number:     "5",
		Title:      "Processen",
		ShortTitle: "Processen",
		Sections: []Section{
			{
				ID:    "core-processes",
				Title: "Kernprocessen",
				Suggestions: []string{
					"Alle kernprocessen zijn geïdentificeerd en gedocumenteerd.",
					"Procesinteracties zijn in kaart gebracht en beheerst.",
					"Elke proces heeft gedefinieerde input- en outputcriteria.",
					"Proceseffectiviteit wordt regelmatig gemeten en geëvalueerd.",
				},
			},
			{
				ID:    "process-monitoring",
				Title: "Procesmonitoring",
				Suggestions: []string{
					"Kritieke procespunten worden continu gemonitord.",
					"Afwijkingen worden direct gesignaleerd en gecorrigeerd.",
					"Procesdata wordt systematisch verzameld en geanalyseerd.",
					"Verbetermaatregelen worden geïmplementeerd op basis van data.",
				},
			},
		},
	},
	{
		ID:         "document-control",
		Number:     "6",
		Title:      "Documentbeheer",
		ShortTitle: "Documentbeheer",
		Sections: []Section{
			{
				ID:    "document-management",
				Title: "Documentbeheer",
				Suggestions: []string{
					"Alle documenten zijn gecontroleerd en goedgekeurd voor gebruik.",
					"Versiebeheer zorgt ervoor dat actuele documenten beschikbaar zijn.",
					"Verouderde documenten worden tijdig ingetrokken.",
					"Documentwijzigingen worden systematisch beheerd en gecommuniceerd.",
				},
			},
		},
	},
	{
		ID:         "risk-management",
		Number:     "7",
		Title:      "Risicomanagement",
		ShortTitle: "Risicomanagement",
		Sections: []Section{
			{
				ID:    "risk-assessment",
				Title: "Risicobeoordeling",
				Suggestions: []string{
					"Risico's en kansen worden systematisch geïdentificeerd.",
					"Risicobeoordelingen worden regelmatig uitgevoerd en bijgewerkt.",
					"Beheersmaatregelen zijn geïmplementeerd voor significante risico's.",
					"De effectiviteit van risicobeheersing wordt gemonitord.",
				},
			},
		},
	},
	{
		ID:         "performance-indicators",
		Number:     "8",
		Title:      "Prestatie-indicatoren",
		ShortTitle: "KPI's",
		Sections: []Section{
			{
				ID:    "kpis",
				Title: "Prestatie-indicatoren",
				Suggestions: []string{
					"KPI's zijn gedefinieerd voor alle kritieke processen.",
					"Meetresultaten worden regelmatig geanalyseerd en gerapporteerd.",
					"Trends worden geïdentificeerd en besproken in managementreviews.",
					"Correctieve acties worden genomen bij afwijkende prestaties.",
				},
			},
		},
	},
	{
		ID:         "internal-audit",
		Number:     "9",
		Title:      "Interne Audit",
		ShortTitle: "Audit",
		Sections: []Section{
			{
				ID:    "audit-program",
				Title: "Auditprogramma",
				Suggestions: []string{
					"Interne audits worden uitgevoerd volgens een jaarplanning.",
					"Auditors zijn competent en onafhankelijk van het geauditeerde gebied.",
					"Auditresultaten worden gerapporteerd aan het management.",
					"Correctieve acties worden opgevolgd tot effectieve implementatie.",
				},
			},
		},
	},
	{
		ID:         "management-review",
		Number:     "10",
		Title:      "Managementreview",
		ShortTitle: "Review",
		Sections: []Section{
			{
				ID:    "review-process",
				Title: "Review Proces",
				Suggestions: []string{
					"Managementreviews worden minimaal jaarlijks uitgevoerd.",
					"Alle relevante informatie wordt meegenomen in de review.",
					"Besluiten en acties worden gedocumenteerd en opgevolgd.",
					"De geschiktheid van het kwaliteitssysteem wordt beoordeeld.",
				},
			},
		},
	},
	{
		ID:         "improvement",
		Number:     "11",
		Title:      "Verbetering",
		ShortTitle: "Verbetering",
		Sections: []Section{
			{
				ID:    "continuous-improvement",
				Title: "Continue Verbetering",
				Suggestions: []string{
					"Continue verbetering is geïntegreerd in alle bedrijfsprocessen.",
					"Verbetervoorstellen van medewerkers worden aangemoedigd.",
					"Verbeterprojecten worden systematisch uitgevoerd en geëvalueerd.",
					"Geleerde lessen worden gedeeld binnen de organisatie.",
				},
			},
		},
	},
	{
		ID:         "implementation",
		Number:     "12",
		Title:      "Implementatie",
		ShortTitle: "Implementatie",
		Sections: []Section{
			{
				ID:    "implementation-plan",
				Title: "Implementatieplan",
				Suggestions: []string{
					"De implementatie volgt een gestructureerd plan met mijlpalen.",
					"Alle medewerkers ontvangen adequate training en ondersteuning.",
					"Voortgang wordt regelmatig gemonitord en bijgestuurd.",
					"Succesvolle implementatie wordt gevalideerd door interne audits.",
				},
			},
		},
	},
}
