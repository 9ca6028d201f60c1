package entity

// Assistant is the persisted configuration for one simulated AI assistant.
type Assistant struct {
	Id             string
	Name           string
	Language       string
	Tone           string
	ResponseLength ResponseLength
	AudioEnabled   bool
	Rules          string
}

// ResponseLength is the percentage split governing the assistant's answer
// length mix. The three weights must sum to exactly 100.
type ResponseLength struct {
	Short  int
	Medium int
	Long   int
}

func (r ResponseLength) Sum() int {
	return r.Short + r.Medium + r.Long
}

// Fixed option sets for the configuration form. The literals are the ones the
// admin console displays and the seed data uses, so they are part of the data
// contract, not UI copy.
const (
	LanguageSpanish    = "Español"
	LanguageEnglish    = "Inglés"
	LanguagePortuguese = "Portugués"

	ToneFormal       = "Formal"
	ToneCasual       = "Casual"
	ToneProfessional = "Profesional"
	ToneFriendly     = "Amigable"
)

var (
	Languages = []string{LanguageSpanish, LanguageEnglish, LanguagePortuguese}
	Tones     = []string{ToneFormal, ToneCasual, ToneProfessional, ToneFriendly}
)
