package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supported = []language.Tag{
	language.English,
	language.French,
	language.German,
	language.Italian,
}

var messages = map[string][4]string{
	"titleJoin": {
		"Join a meeting",
		"Rejoindre une réunion",
		"An einer Besprechung teilnehmen",
		"Partecipa a una riunione",
	},
	"titleCreate": {
		"Start a meeting",
		"Démarrer une réunion",
		"Besprechung starten",
		"Avvia una riunione",
	},
	"joinButton": {"Join", "Rejoindre", "Teilnehmen", "Partecipa"},
	"createButton": {"Start", "Démarrer", "Starten", "Avvia"},
	"mandatoryUserName": {
		"Please enter a name of at least 2 characters",
		"Veuillez saisir un nom d'au moins 2 caractères",
		"Bitte gib einen Namen mit mindestens 2 Zeichen ein",
		"Inserisci un nome di almeno 2 caratteri",
	},
	"mandatoryField": {
		"This field is required",
		"Ce champ est obligatoire",
		"Dieses Feld ist erforderlich",
		"Questo campo è obbligatorio",
	},
	"copyLinkExplanation": {
		"Paste the meeting link or the code you received to join the meeting.",
		"Collez le lien ou le code de réunion que vous avez reçu pour la rejoindre.",
		"Füge den Link oder den Code der Besprechung ein, den du erhalten hast.",
		"Incolla il link o il codice della riunione che hai ricevuto.",
	},
	"codeDoesntExistError": {
		"This meeting code does not exist",
		"Ce code de réunion n'existe pas",
		"Dieser Besprechungscode existiert nicht",
		"Questo codice riunione non esiste",
	},
}

// Localizer resolves message keys to display text.
type Localizer struct {
	catalog  *catalog.Builder
	matcher  language.Matcher
	fallback language.Tag
}

// New builds the message catalog. defaultLocale is used when a client's
// locale is missing or unsupported.
func New(defaultLocale string) (*Localizer, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, texts := range messages {
		for i, tag := range supported {
			if err := b.SetString(tag, key, texts[i]); err != nil {
				return nil, err
			}
		}
	}

	l := &Localizer{
		catalog:  b,
		matcher:  language.NewMatcher(supported),
		fallback: language.English,
	}
	l.fallback = l.match(defaultLocale, language.English)
	return l, nil
}

func (l *Localizer) match(locale string, fallback language.Tag) language.Tag {
	if locale == "" {
		return fallback
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fallback
	}
	_, idx, conf := l.matcher.Match(tag)
	if conf == language.No {
		return fallback
	}
	return supported[idx]
}

// For returns a printer for the best supported match of locale.
func (l *Localizer) For(locale string) *message.Printer {
	return message.NewPrinter(l.match(locale, l.fallback), message.Catalog(l.catalog))
}

// Text resolves key for locale. Unknown keys come back unchanged.
func (l *Localizer) Text(locale, key string) string {
	if key == "" {
		return ""
	}
	return l.For(locale).Sprintf(key)
}
