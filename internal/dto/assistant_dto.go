package dto

// ============================================================================
// Assistant DTOs
// ============================================================================

// AssistantResponse is the wire shape of one assistant record.
type AssistantResponse struct {
	Id             string                 `json:"id"`
	Name           string                 `json:"name"`
	Language       string                 `json:"language"`
	Tone           string                 `json:"tone"`
	ResponseLength ResponseLengthResponse `json:"responseLength"`
	AudioEnabled   bool                   `json:"audioEnabled"`
	Rules          string                 `json:"rules"`
}

type ResponseLengthResponse struct {
	Short  int `json:"short"`
	Medium int `json:"medium"`
	Long   int `json:"long"`
}

// AssistantRequest carries every field except the id, for both create and
// update (full-record replace semantics). The oneof sets mirror the option
// constants in internal/entity.
type AssistantRequest struct {
	Name           string                `json:"name" validate:"required,min=3"`
	Language       string                `json:"language" validate:"required,oneof=Español Inglés Portugués"`
	Tone           string                `json:"tone" validate:"required,oneof=Formal Casual Profesional Amigable"`
	ResponseLength ResponseLengthRequest `json:"responseLength"`
	AudioEnabled   bool                  `json:"audioEnabled"`
	Rules          string                `json:"rules"`
}

// ResponseLengthRequest has a struct-level rule on top of the per-field
// bounds: the three weights must sum to exactly 100.
type ResponseLengthRequest struct {
	Short  int `json:"short" validate:"min=0,max=100"`
	Medium int `json:"medium" validate:"min=0,max=100"`
	Long   int `json:"long" validate:"min=0,max=100"`
}
