// Package l10n supplies user-facing message translation backed by the
// golang.org/x/text message catalog.  Validation and access-control errors
// carry messages produced here so API clients see translated text while
// callers still discriminate on the error kind.
//
// Keys that have no translation fall through to the key template itself, so
// a Translator behaves as identity until a catalog entry lands.
package l10n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator renders a message key plus arguments into user-facing text.
type Translator interface {
	T(key string, args ...any) string
}

// Catalog is an x/text backed Translator for one language.
type Catalog struct {
	p *message.Printer
}

// matcher covers the languages we ship catalog entries for.
var matcher = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	language.German,
	language.French,
})

// New returns a Catalog for the best match of the requested tags.  No tags
// selects the English fallback.
func New(prefs ...language.Tag) *Catalog {
	tag, _, _ := matcher.Match(prefs...)
	return &Catalog{p: message.NewPrinter(tag)}
}

// ForAcceptLanguage parses an Accept-Language header into a Catalog.
// Unparseable headers select the fallback language.
func ForAcceptLanguage(header string) *Catalog {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return New()
	}
	return New(tags...)
}

// T renders key with args.  Untranslated keys format as-is.
func (c *Catalog) T(key string, args ...any) string {
	return c.p.Sprintf(key, args...)
}

// register seeds the default catalog.  English entries equal their keys, so
// the identity behavior is explicit rather than accidental.
func register(tag language.Tag, entries map[string]catalog.Message) {
	for key, msg := range entries {
		_ = message.Set(tag, key, msg)
	}
}

func init() {
	register(language.German, map[string]catalog.Message{
		"The name is too short (%d characters minimum)": catalog.String("Der Name ist zu kurz (mindestens %d Zeichen)"),
		"The path contains invalid segments":            catalog.String("Der Pfad enthält ungültige Segmente"),
		"The identifier contains invalid characters":    catalog.String("Die Kennung enthält ungültige Zeichen"),
		"Theme %s not found":                            catalog.String("Theme %s nicht gefunden"),
		"Page not found":                                catalog.String("Seite nicht gefunden"),
		"Access denied to this private website":         catalog.String("Zugriff auf diese private Website verweigert"),
		"You are not the owner of this website":         catalog.String("Sie sind nicht Besitzer dieser Website"),
		"The website content must stay inside the owner folder": catalog.String("Der Website-Inhalt muss im Besitzerordner bleiben"),
	})
	register(language.French, map[string]catalog.Message{
		"The name is too short (%d characters minimum)": catalog.String("Le nom est trop court (%d caractères minimum)"),
		"The path contains invalid segments":            catalog.String("Le chemin contient des segments non valides"),
		"The identifier contains invalid characters":    catalog.String("L'identifiant contient des caractères non valides"),
		"Theme %s not found":                            catalog.String("Thème %s introuvable"),
		"Page not found":                                catalog.String("Page introuvable"),
		"Access denied to this private website":         catalog.String("Accès refusé à ce site privé"),
		"You are not the owner of this website":         catalog.String("Vous n'êtes pas propriétaire de ce site"),
		"The website content must stay inside the owner folder": catalog.String("Le contenu du site doit rester dans le dossier du propriétaire"),
	})
}
