package kafka

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateOutboxEvent(t *testing.T) {
	valid := OutboxEvent{
		ID:      uuid.NewString(),
		Topic:   "timeclock.clock.punched.v1",
		Payload: []byte(`{"punch":"in"}`),
		Status:  OutboxStatusPending,
	}
	assert.NoError(t, ValidateOutboxEvent(valid))

	missingID := valid
	missingID.ID = ""
	assert.Error(t, ValidateOutboxEvent(missingID))

	missingTopic := valid
	missingTopic.Topic = ""
	assert.Error(t, ValidateOutboxEvent(missingTopic))

	emptyPayload := valid
	emptyPayload.Payload = nil
	assert.Error(t, ValidateOutboxEvent(emptyPayload))

	badStatus := valid
	badStatus.Status = "queued"
	assert.Error(t, ValidateOutboxEvent(badStatus))
}
