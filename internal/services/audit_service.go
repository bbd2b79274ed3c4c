package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"restaurant-booking-api/internal/models"
	"restaurant-booking-api/internal/repositories"
)

// auditService implements AuditService.
type auditService struct {
	audits repositories.AuditRepository
}

// NewAuditService creates a new audit service instance.
func NewAuditService(audits repositories.AuditRepository) AuditService {
	return &auditService{audits: audits}
}

// RecordChange projects one configuration change into an audit record and
// persists it. Inserts capture the full new key/value pair; modifications
// capture the old and new integers plus the changed attribute name.
func (s *auditService) RecordChange(ctx context.Context, change ConfigurationChange) error {
	record := models.AuditRecord{
		ID:               uuid.NewString(),
		ItemKey:          change.ItemKey,
		ModificationTime: time.Now().UTC().Format(time.RFC3339),
	}

	switch change.EventName {
	case "INSERT":
		if change.NewValue == nil {
			return NewError(KindInvalidInput, "insert change is missing its new value")
		}
		record.NewValue = models.ConfigurationValue{
			Key:   change.ItemKey,
			Value: *change.NewValue,
		}
	case "MODIFY":
		if change.OldValue == nil || change.NewValue == nil {
			return NewError(KindInvalidInput, "modify change is missing a value image")
		}
		record.OldValue = change.OldValue
		record.NewValue = *change.NewValue
		record.UpdatedAttribute = "value"
	default:
		// REMOVE and unknown stream events are not audited.
		logrus.WithField("eventName", change.EventName).Debug("skipping unaudited change")
		return nil
	}

	if err := s.audits.Put(ctx, record); err != nil {
		return WrapError(KindUpstreamFailure, "Failed to store audit record: "+err.Error(), err)
	}

	logrus.WithFields(logrus.Fields{
		"auditId": record.ID,
		"itemKey": record.ItemKey,
		"event":   change.EventName,
	}).Info("audit record stored")
	return nil
}
