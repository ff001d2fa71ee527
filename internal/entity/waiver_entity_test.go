package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWaiverTemplateDuplicate(t *testing.T) {
	original := &WaiverTemplate{
		Id:             uuid.New(),
		TenantId:       uuid.New(),
		Name:           "Standard Liability Waiver",
		Type:           "liability",
		Content:        "I, {participant_name}, agree...",
		RequiredFields: []string{"participant_name", "date_of_birth"},
		Status:         WaiverTemplateActive,
		UsageCount:     42,
	}

	dup := original.Duplicate()

	assert.NotEqual(t, original.Id, dup.Id)
	assert.Equal(t, original.TenantId, dup.TenantId)
	assert.Equal(t, "Standard Liability Waiver (Copy)", dup.Name)
	assert.Equal(t, original.Type, dup.Type)
	assert.Equal(t, original.Content, dup.Content)
	assert.Equal(t, original.RequiredFields, dup.RequiredFields)
	assert.Equal(t, WaiverTemplateDraft, dup.Status)
	assert.Equal(t, 0, dup.UsageCount)

	// the field slice is a copy, not shared backing storage
	dup.RequiredFields[0] = "mutated"
	assert.Equal(t, "participant_name", original.RequiredFields[0])

	// the original is untouched
	assert.Equal(t, WaiverTemplateActive, original.Status)
	assert.Equal(t, 42, original.UsageCount)
}
