package widget

import "strings"

// Command is a keyword the voice assistant reacts to. Matching is ordered:
// the first keyword contained in the transcript wins.
type Command struct {
	Keyword string
	Action  string
	Reply   string
}

var commandsEN = []Command{
	{Keyword: "prices", Action: "prices", Reply: "Opening crop prices section"},
	{Keyword: "weather", Action: "weather", Reply: "Getting your weather update"},
	{Keyword: "schemes", Action: "schemes", Reply: "Showing government schemes"},
	{Keyword: "organic", Action: "organic", Reply: "Organic farming guidance"},
	{Keyword: "soil", Action: "soil", Reply: "Soil testing and fertilizer recommendations"},
	{Keyword: "pest", Action: "pest", Reply: "Pest and disease alert information"},
	{Keyword: "marketplace", Action: "marketplace", Reply: "Opening farmer marketplace"},
	{Keyword: "loan", Action: "loan", Reply: "Showing loan and insurance schemes"},
	{Keyword: "calculator", Action: "calculator", Reply: "Opening profitability calculator"},
	{Keyword: "helpline", Action: "helpline", Reply: "Emergency services and helpline"},
	{Keyword: "help", Action: "help", Reply: "I can help you with crop prices, weather, schemes, organic farming, soil testing, pest alerts, marketplace, loans, calculator, and emergency services"},
	{Keyword: "hello", Action: "hello", Reply: "Hello! I am Agrimate Voice Assistant. How can I help you today?"},
}

var commandsTA = []Command{
	{Keyword: "விலை", Action: "prices", Reply: "பயிர் விலைகள் பகுதி திறக்கப்படுகிறது"},
	{Keyword: "வானிலை", Action: "weather", Reply: "உங்கள் வானிலை தகவலைப் பெறுகிறேன்"},
	{Keyword: "திட்டங்கள்", Action: "schemes", Reply: "அரசு திட்டங்களைக் காட்டுகிறேன்"},
	{Keyword: "கீட", Action: "pest", Reply: "கீட மற்றும் நோய் எச்சரிக்கை"},
	{Keyword: "உதவி", Action: "help", Reply: "நான் விலைகள், வானிலை, திட்டங்கள் மற்றும் பல விஷயங்களில் உதவ முடியும்"},
}

// Commands returns the ordered keyword table for a language; anything not
// Tamil falls back to English.
func Commands(lang string) []Command {
	if lang == "ta" {
		return commandsTA
	}
	return commandsEN
}

func MatchCommand(lang, transcript string) (Command, bool) {
	t := strings.ToLower(transcript)
	for _, c := range Commands(lang) {
		if strings.Contains(t, c.Keyword) {
			return c, true
		}
	}
	return Command{}, false
}

func FallbackReply(lang string) string {
	if lang == "ta" {
		return "மன்னிக்கவும், நான் புரிந்துகொள்ளவில்லை"
	}
	return "Sorry, I did not understand. Try asking about prices, weather, schemes, or help"
}
