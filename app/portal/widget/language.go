package widget

// Store persists widget state locally; portal.Storage implementations
// satisfy it.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

const langKey = "agrimate-lang"

var supportedLanguages = map[string]bool{
	"en": true, "ta": true, "hi": true, "te": true, "kn": true,
}

// translations maps an English phrase to its per-language renderings. English
// is the source text, so it has no column here.
var translations = map[string]map[string]string{
	"Home":            {"hi": "होम", "te": "హోమ్", "kn": "ಹೋಮ್"},
	"Prices":          {"hi": "कीमतें", "te": "ధరలు", "kn": "ಬೆಲೆಗಳು"},
	"Weather":         {"hi": "मौसम", "te": "వాతావరణం", "kn": "ಹವಾಮಾನ"},
	"Schemes":         {"hi": "योजनाएं", "te": "యోజనల", "kn": "ಯೋಜನೆಗಳು"},
	"Organic":         {"hi": "जैविक", "te": "సేంద్రీయ", "kn": "ಸಸ್ಯತ್ವ"},
	"Soil Testing":    {"hi": "मृदा परीक्षण", "te": "మట్టి పరీక్ష", "kn": "ಮಣ್ಣು ಪರೀಕ್ಷೆ"},
	"Marketplace":     {"hi": "बाजार", "te": "మార్కెట్", "kn": "ಮಾರ್ಕೆಟ್"},
	"Loan":            {"hi": "ऋण", "te": "రుణం", "kn": "ಸಾಲ"},
	"Calculator":      {"hi": "कैलकुलेटर", "te": "గణాంక యంత్రం", "kn": "ಕ್ಯಾಲ್ಕುಲೇಟರ್"},
	"Select State":    {"hi": "राज्य चुनें", "te": "రాష్ట్రం ఎంచుకోండి", "kn": "ರಾಜ್ಯವನ್ನು ಆಯ್ಕೆಮಾಡಿ"},
	"Select District": {"hi": "जिला चुनें", "te": "జిల్లా ఎంచుకోండి", "kn": "ಜಿಲ್ಲೆಯನ್ನು ಆಯ್ಕೆಮಾಡಿ"},
	"Crop Prices":     {"hi": "फसल की कीमतें", "te": "పంట ధరలు", "kn": "ಬೆಳೆ ಬೆಲೆಗಳು"},
	"Get Weather":     {"hi": "मौसम प्राप्त करें", "te": "వాతావరణం పొందండి", "kn": "ಹವಾಮಾನ ಪಡೆಯಿರಿ"},
	"Loading...":      {"hi": "लोड हो रहा है...", "te": "లోడ్ చేయబడుతోంది...", "kn": "ಲೋಡ್ ಆಗುತ್ತಿದೆ..."},
}

var languageChangedMessages = map[string]string{
	"en": "Language changed to English",
	"ta": "மொழி தமிழுக்கு மாற்றப்பட்டது",
	"hi": "भाषा हिंदी में बदली गई",
	"te": "భాషను తెలుగు కి మార్చారు",
	"kn": "ಭಾಷೆಯನ್ನು ಕನ್ನಡಕ್ಕೆ ಬದಲಿಸಲಾಗಿದೆ",
}

// Translator resolves display text for the selected language and remembers
// the selection across sessions.
type Translator struct {
	store Store
	lang  string
}

func NewTranslator(store Store) *Translator {
	lang := "en"
	if raw, ok := store.Get(langKey); ok && supportedLanguages[string(raw)] {
		lang = string(raw)
	}
	return &Translator{store: store, lang: lang}
}

func (t *Translator) Language() string {
	return t.lang
}

// SetLanguage switches and persists the language, returning the per-language
// confirmation message. Unsupported codes are ignored.
func (t *Translator) SetLanguage(lang string) string {
	if !supportedLanguages[lang] {
		return "Language changed"
	}
	t.lang = lang
	t.store.Set(langKey, []byte(lang))
	return languageChangedMessages[lang]
}

// Translate renders an English phrase in the current language, falling back
// to the phrase itself when no translation exists.
func (t *Translator) Translate(key string) string {
	if t.lang == "en" {
		return key
	}
	if byLang, ok := translations[key]; ok {
		if text, ok := byLang[t.lang]; ok {
			return text
		}
	}
	return key
}
