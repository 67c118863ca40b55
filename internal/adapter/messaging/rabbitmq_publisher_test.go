package messaging_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/ticket_marketplace/internal/adapter/messaging"
	"github.com/srgjo27/ticket_marketplace/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublishing(t *testing.T) {
	buyer := uuid.New()
	n := domain.ListingNotification{
		Type:         domain.ListingSold,
		Seller:       uuid.New(),
		EventID:      uuid.New(),
		TicketTypeID: 1,
		Price:        decimal.NewFromInt(20),
		Amount:       99,
		Buyer:        &buyer,
		Quantity:     1,
		OccurredAt:   time.Now().UTC(),
	}

	pub, err := messaging.NewPublishing(n)
	require.NoError(t, err)

	assert.Equal(t, "application/json", pub.ContentType)
	assert.Equal(t, amqp.Persistent, pub.DeliveryMode)
	assert.Equal(t, "SOLD", pub.Type)

	var decoded domain.ListingNotification
	require.NoError(t, json.Unmarshal(pub.Body, &decoded))
	assert.Equal(t, n.Seller, decoded.Seller)
	assert.Equal(t, n.EventID, decoded.EventID)
	assert.Equal(t, uint64(99), decoded.Amount)
	assert.True(t, n.Price.Equal(decoded.Price))
	require.NotNil(t, decoded.Buyer)
	assert.Equal(t, buyer, *decoded.Buyer)
}
