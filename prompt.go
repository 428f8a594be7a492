package sitebrief

import (
	"fmt"
	"strings"
)

// DefaultTemperature is the sampling temperature used for summaries.
const DefaultTemperature = 0.7

// PromptBundle holds the instructions sent to the language model.
type PromptBundle struct {
	System string
	User   string
}

// section is a mandatory part of the requested summary.
type section struct {
	Emoji   string
	Heading string
	Hint    string
}

// promptTemplate holds the locale-specific wording of a prompt.
type promptTemplate struct {
	System          string
	Intro           string
	Rules           []string
	SEOTitle        string
	MetaDescription string
	Owner           string
	Sections        []section
	Outro           string
}

// promptTemplates is keyed by every supported Locale. Adding a locale means
// adding its entry here and to Locales.
var promptTemplates = map[Locale]promptTemplate{
	LocaleEN: {
		System: "You are an expert in website analysis. Answer in English.",
		Intro:  "Analyze the following text and create a structured summary in Markdown format:",
		Rules: []string{
			"The summary should include the following elements. Please use the following formatting:",
			"- Place the SEO title and meta description at the very top as their own sections, with bold headings and a fitting emoji.",
			"- All section headings should be bold and have a fitting emoji (e.g. ### 📝 **Meta Description**).",
			"- Do NOT use emojis in the bullet points or in the text within the sections.",
			"- Start with a 'TL;DR' section (1-2 sentences) summarizing the page in a nutshell.",
			"- If possible, extract the website owner from the legal notice (impressum) or footer and add it as a 'Website Owner' section.",
		},
		SEOTitle:        "SEO Title",
		MetaDescription: "Meta Description",
		Owner:           "Website Owner",
		Sections: []section{
			{"⚡️", "TL;DR", "(A very short summary in 1-2 sentences)"},
			{"📄", "Summary", "(A short summary in 3-5 sentences)"},
			{"📚", "Main Topics", "(Bullet points with the main topics)"},
			{"#️⃣", "Tags", "(Bullet points with 3-5 relevant keywords)"},
			{"🗂️", "Content Type", "(Detected content type, e.g. blog, shop, portfolio)"},
			{"🌐", "Language", "(Detected language of the page)"},
		},
		Outro: "Format the answer as Markdown and reply in English.",
	},
	LocaleDE: {
		System: "Du bist ein Experte für Webseiten-Analyse. Antworte auf Deutsch.",
		Intro:  "Analysiere den folgenden Text und erstelle eine strukturierte Zusammenfassung im Markdown-Format:",
		Rules: []string{
			"Bitte verwende folgendes Format:",
			"- Platziere den SEO-Titel und die Meta-Beschreibung ganz oben als eigene Abschnitte, mit fetter Überschrift und passendem Emoji.",
			"- Alle Abschnittsüberschriften sollen fett und mit Emoji sein (z.B. ### 📝 **Meta-Beschreibung**).",
			"- Verwende KEINE Emojis in den Bullet-Points oder im Text innerhalb der Abschnitte.",
			"- Beginne mit einem 'TL;DR'-Abschnitt (1-2 Sätze), der die Seite auf den Punkt bringt.",
			"- Falls möglich, extrahiere den Betreiber aus dem Impressum oder Footer und gib ihn als eigenen Abschnitt 'Betreiber' aus.",
		},
		SEOTitle:        "SEO-Titel",
		MetaDescription: "Meta-Beschreibung",
		Owner:           "Betreiber",
		Sections: []section{
			{"⚡️", "TL;DR", "(Eine sehr kurze Zusammenfassung in 1-2 Sätzen)"},
			{"📄", "Zusammenfassung", "(Eine kurze Zusammenfassung in 3-5 Sätzen)"},
			{"📚", "Hauptthemen", "(Bullet-Points mit den wichtigsten Themen)"},
			{"#️⃣", "Tags", "(Bullet-Points mit 3-5 relevanten Keywords)"},
			{"🗂️", "Inhaltstyp", "(Erkannter Inhaltstyp, z.B. Blog, Shop, Portfolio)"},
			{"🌐", "Sprache", "(Erkannte Sprache der Seite)"},
		},
		Outro: "Formatiere die Antwort als Markdown und antworte auf Deutsch.",
	},
	LocalePL: {
		System: "Jesteś ekspertem od analizy stron internetowych. Odpowiadaj po polsku.",
		Intro:  "Przeanalizuj poniższy tekst i stwórz uporządkowane podsumowanie w formacie Markdown:",
		Rules: []string{
			"Użyj następującego formatu:",
			"- Umieść tytuł SEO i meta opis na samej górze jako osobne sekcje, z pogrubionym nagłówkiem i emoji.",
			"- Wszystkie nagłówki sekcji powinny być pogrubione i mieć emoji (np. ### 📝 **Opis meta**).",
			"- NIE używaj emoji w punktach listy ani w treści sekcji.",
			"- Zacznij od sekcji 'TL;DR' (1-2 zdania), która podsumowuje stronę w skrócie.",
			"- Jeśli to możliwe, wyodrębnij właściciela strony z impressum lub stopki i dodaj sekcję 'Właściciel strony'.",
		},
		SEOTitle:        "Tytuł SEO",
		MetaDescription: "Opis meta",
		Owner:           "Właściciel strony",
		Sections: []section{
			{"⚡️", "TL;DR", "(Bardzo krótkie podsumowanie w 1-2 zdaniach)"},
			{"📄", "Podsumowanie", "(Krótkie podsumowanie w 3-5 zdaniach)"},
			{"📚", "Główne tematy", "(Punktory z głównymi tematami)"},
			{"#️⃣", "Tagi", "(Punktory z 3-5 odpowiednimi słowami kluczowymi)"},
			{"🗂️", "Typ treści", "(Rozpoznany typ treści, np. blog, sklep, portfolio)"},
			{"🌐", "Język", "(Rozpoznany język strony)"},
		},
		Outro: "Sformatuj odpowiedź jako Markdown i odpowiedz po polsku.",
	},
}

// BuildPrompt builds the system and user instructions for summarizing ext in
// the given locale. Unsupported locales use DefaultLocale. The SEO and owner
// blocks are omitted when the corresponding fields are empty.
func BuildPrompt(ext *Extraction, locale Locale) PromptBundle {
	tmpl, ok := promptTemplates[locale]
	if !ok {
		tmpl = promptTemplates[DefaultLocale]
	}

	var sb strings.Builder
	sb.WriteString(tmpl.Intro)
	sb.WriteString("\n\n")
	sb.WriteString(ext.Text)
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(tmpl.Rules, "\n"))
	sb.WriteString("\n\n")

	if ext.Title != "" {
		writeHeading(&sb, "🏷️", tmpl.SEOTitle)
		sb.WriteString(ext.Title + "\n")
	}
	if ext.MetaDescription != "" {
		writeHeading(&sb, "📝", tmpl.MetaDescription)
		sb.WriteString(ext.MetaDescription + "\n")
	}

	for i, s := range tmpl.Sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeHeading(&sb, s.Emoji, s.Heading)
		sb.WriteString(s.Hint + "\n")
	}

	if ext.Owner != "" {
		writeHeading(&sb, "👤", tmpl.Owner)
		sb.WriteString(ext.Owner + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(tmpl.Outro)

	return PromptBundle{
		System: tmpl.System,
		User:   sb.String(),
	}
}

func writeHeading(sb *strings.Builder, emoji, heading string) {
	fmt.Fprintf(sb, "### %s **%s**\n", emoji, heading)
}
