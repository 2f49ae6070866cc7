package docgen

import (
	"fmt"

	"isogen/internal/core/domain"
)

// The intake flow walks these questions in order. Indices are stable:
// the substitution mapping and stored answer maps key on them.
var questions = []string{
	"Wat is de volledige naam van uw bedrijf?",
	"Wat is het adres van uw hoofdvestiging?",
	"Wat zijn de belangrijkste producten of diensten die u levert?",
	"Wie zijn uw belangrijkste klanten of doelgroepen?",
	"Hoeveel medewerkers heeft uw organisatie?",
	"Wat is uw specialisatie of kernactiviteit?",
	"In welke sectoren bent u actief?",
	"Wat zijn uw belangrijkste kwaliteitsdoelstellingen?",
	"Welke processen zijn het meest kritiek voor uw organisatie?",
	"Wie is de algemeen directeur van uw organisatie?",
	"Wie zal de kwaliteitsmanager zijn?",
	"Hoe meet u klanttevredenheid?",
	"Wat is uw aanpak voor continue verbetering?",
	"Welke certificeringen heeft u al?",
	"Wat zijn uw sterke punten als organisatie?",
	"Wat zijn de verplichte documenten en vastgelegde informatie die we nodig hebben om te voldoen aan ISO 9001:2015?",
}

const (
	IntakeGreeting = "Hallo! Ik ga je helpen met het maken van je complete ISO 9001:2015 kwaliteitshandboek. Laten we beginnen met de eerste vraag:"

	completionMessage = "Uitstekend! Ik heb alle informatie verwerkt. Uw ISO 9001:2015 kwaliteitshandboek is nu volledig gepersonaliseerd en klaar. U kunt nu tekst selecteren in het document en mij vragen om specifieke secties te herschrijven of verbeteren!"
)

func Questions() []string {
	return questions
}

func QuestionCount() int {
	return len(questions)
}

// Question returns the question text at the given index.
func Question(index int) (string, error) {
	if index < 0 || index >= len(questions) {
		return "", domain.WrapError(domain.ErrInvalidInput, "docgen.Question", fmt.Errorf("question index %d out of range", index))
	}
	return questions[index], nil
}

// Progress reports intake completion as a whole percentage.
func Progress(answered int) int {
	if answered <= 0 {
		return 0
	}
	if answered >= len(questions) {
		return 100
	}
	return answered * 100 / len(questions)
}

// ConfirmationMessage composes the assistant acknowledgement after the
// question at answeredIndex was answered: either the next question or the
// completion message.
func ConfirmationMessage(answeredIndex int) string {
	next := answeredIndex + 1
	if next < len(questions) {
		return fmt.Sprintf("Perfect! Ik heb uw antwoord verwerkt in het document. %s", questions[next])
	}
	return completionMessage
}
