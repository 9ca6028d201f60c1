// Package wizard models the two-step create/edit dialog as an explicit
// finite-state machine so every transition is enumerable and testable:
// closed, step1 (profile: name/language/tone), step2 (behavior: response
// lengths, audio, rules). A nil target means create mode.
package wizard

import (
	"context"
	"errors"

	"ai-assistant-admin-be/internal/dto"
	"ai-assistant-admin-be/internal/entity"
	"ai-assistant-admin-be/internal/pkg/validation"
	"ai-assistant-admin-be/pkg/console"
)

type Step int

const (
	StepClosed Step = iota
	StepProfile
	StepBehavior
)

var ErrInvalidTransition = errors.New("wizard: transition not allowed from current step")

type Machine struct {
	client    *console.Client
	validator *validation.AssistantValidator

	step   Step
	target *dto.AssistantResponse
	draft  dto.AssistantRequest
}

func NewMachine(client *console.Client, validator *validation.AssistantValidator) *Machine {
	return &Machine{
		client:    client,
		validator: validator,
		step:      StepClosed,
	}
}

// defaultDraft mirrors the console form defaults.
func defaultDraft() dto.AssistantRequest {
	return dto.AssistantRequest{
		Language:       entity.LanguageSpanish,
		Tone:           entity.ToneProfessional,
		ResponseLength: dto.ResponseLengthRequest{Short: 30, Medium: 50, Long: 20},
	}
}

// OpenCreate opens the wizard at step 1 with a blank draft.
func (m *Machine) OpenCreate() {
	m.step = StepProfile
	m.target = nil
	m.draft = defaultDraft()
}

// OpenEdit opens the wizard at step 1 with the draft pre-filled from the
// target record.
func (m *Machine) OpenEdit(target *dto.AssistantResponse) {
	m.step = StepProfile
	m.target = target
	m.draft = dto.AssistantRequest{
		Name:     target.Name,
		Language: target.Language,
		Tone:     target.Tone,
		ResponseLength: dto.ResponseLengthRequest{
			Short:  target.ResponseLength.Short,
			Medium: target.ResponseLength.Medium,
			Long:   target.ResponseLength.Long,
		},
		AudioEnabled: target.AudioEnabled,
		Rules:        target.Rules,
	}
}

func (m *Machine) Step() Step {
	return m.step
}

// Target returns the record being edited, nil in create mode.
func (m *Machine) Target() *dto.AssistantResponse {
	return m.target
}

func (m *Machine) Draft() dto.AssistantRequest {
	return m.draft
}

// SetDraft replaces the in-progress form values. No validation happens here;
// gates run on Next and Submit.
func (m *Machine) SetDraft(draft dto.AssistantRequest) {
	m.draft = draft
}

// Next advances step1 -> step2, gated on partial validation of the profile
// fields. The validation error is returned for the form to render.
func (m *Machine) Next() error {
	if m.step != StepProfile {
		return ErrInvalidTransition
	}
	if err := m.validator.ValidateProfile(&m.draft); err != nil {
		return err
	}
	m.step = StepBehavior
	return nil
}

// Back returns step2 -> step1, preserving entered values.
func (m *Machine) Back() error {
	if m.step != StepBehavior {
		return ErrInvalidTransition
	}
	m.step = StepProfile
	return nil
}

// Submit runs full validation and dispatches create or update depending on
// the target. On success the wizard closes; on any failure it stays open with
// the draft intact so the user can retry.
func (m *Machine) Submit(ctx context.Context) (*dto.AssistantResponse, error) {
	if m.step != StepBehavior {
		return nil, ErrInvalidTransition
	}
	if err := m.validator.ValidateFull(&m.draft); err != nil {
		return nil, err
	}

	var (
		result *dto.AssistantResponse
		err    error
	)
	if m.target == nil {
		result, err = m.client.CreateAssistant(ctx, &m.draft)
	} else {
		result, err = m.client.UpdateAssistant(ctx, m.target.Id, &m.draft)
	}
	if err != nil {
		return nil, err
	}

	m.Close()
	return result, nil
}

// Close discards in-progress edits without persisting. Allowed at any time.
func (m *Machine) Close() {
	m.step = StepClosed
	m.target = nil
	m.draft = dto.AssistantRequest{}
}
