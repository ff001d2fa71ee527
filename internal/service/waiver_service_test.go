package service

import (
	"context"
	"testing"
	"time"

	"escapedesk-be/internal/dto"
	"escapedesk-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeWaiverCode(t *testing.T) {
	assert.Equal(t, "WV-7F2MQX9T", normalizeWaiverCode(" wv-7f2mqx9t "))
	assert.Equal(t, "WV-7F2MQX9T", normalizeWaiverCode("WV-7F2MQX9T"))
}

func TestParseOptionalDate(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		got, err := parseOptionalDate(nil)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("empty", func(t *testing.T) {
		s := ""
		got, err := parseOptionalDate(&s)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("valid", func(t *testing.T) {
		s := "1990-04-12"
		got, err := parseOptionalDate(&s)
		assert.NoError(t, err)
		if assert.NotNil(t, got) {
			assert.Equal(t, time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), *got)
		}
	})

	t.Run("wrong format", func(t *testing.T) {
		s := "12/04/1990"
		_, err := parseOptionalDate(&s)
		assert.Error(t, err)
	})
}

func TestTemplateUsageCountedAtRecordCreation(t *testing.T) {
	tenantId := uuid.New()
	template := &entity.WaiverTemplate{
		Id:       uuid.New(),
		TenantId: tenantId,
		Name:     "Standard Liability",
		Status:   entity.WaiverTemplateActive,
	}

	t.Run("signature request increments usage", func(t *testing.T) {
		repo := &fakeWaiverRepo{template: template}
		uow := &fakeUnitOfWork{waivers: repo}
		s := &waiverService{
			uowFactory:    &fakeUowFactory{uow: uow},
			creditService: &fakeCreditService{},
		}

		res, err := s.RequestSignature(context.Background(), tenantId, &dto.RequestSignatureRequest{
			TemplateId:       template.Id,
			ParticipantName:  "Dana Cole",
			ParticipantEmail: "dana@example.com",
		})

		assert.NoError(t, err)
		assert.Len(t, repo.created, 1)
		assert.Equal(t, entity.WaiverRecordPending, repo.created[0].Status)
		assert.Equal(t, 1, repo.usageBumps[template.Id])
		assert.True(t, uow.committed)
		assert.Equal(t, string(entity.WaiverRecordPending), res.Status)
	})

	t.Run("signing a requested waiver does not count it again", func(t *testing.T) {
		expiresAt := time.Now().Add(time.Hour)
		record := &entity.WaiverRecord{
			Id:         uuid.New(),
			TenantId:   tenantId,
			TemplateId: template.Id,
			WaiverCode: "WV-7F2MQX9T",
			Status:     entity.WaiverRecordPending,
			ExpiresAt:  &expiresAt,
		}
		repo := &fakeWaiverRepo{record: record}
		uow := &fakeUnitOfWork{waivers: repo}
		credits := &fakeCreditService{}
		s := &waiverService{
			uowFactory:    &fakeUowFactory{uow: uow},
			creditService: credits,
		}

		res, err := s.SignWaiver(context.Background(), record.WaiverCode, &dto.SignWaiverRequest{
			Signature: map[string]interface{}{"strokes": []int{1, 2, 3}},
		})

		assert.NoError(t, err)
		assert.Len(t, repo.updatedRecords, 1)
		assert.Empty(t, repo.usageBumps)
		assert.Equal(t, 1, credits.debits)
		assert.Equal(t, string(entity.WaiverRecordSigned), res.Status)
	})
}
