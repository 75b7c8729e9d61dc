package services

import (
	"context"
	"strings"
	"testing"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/BG-legacy/HabitChain-sub001/internal/core/ports"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEncouragementService(t *testing.T) (ports.EncouragementService, uuid.UUID, uuid.UUID) {
	t.Helper()
	userRepo := newFakeUserRepo()
	svc := NewEncouragementService(newFakeEncouragementRepo(), userRepo)

	sender := uuid.New()
	recipient := uuid.New()
	ctx := context.Background()
	require.NoError(t, userRepo.Create(ctx, &domain.User{ID: sender, Email: "a@example.com", Username: "a", IsActive: true}))
	require.NoError(t, userRepo.Create(ctx, &domain.User{ID: recipient, Email: "b@example.com", Username: "b", IsActive: true}))

	return svc, sender, recipient
}

func TestSendEncouragement(t *testing.T) {
	ctx := context.Background()
	svc, sender, recipient := newTestEncouragementService(t)

	sent, err := svc.Send(ctx, ports.SendEncouragementInput{
		FromUserID: sender,
		ToUserID:   recipient,
		Message:    "  keep it up!  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "keep it up!", sent.Message, "message is trimmed")

	received, err := svc.ListReceived(ctx, recipient, 0, 0)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, sender, received[0].FromUserID)
}

func TestSendEncouragement_Validation(t *testing.T) {
	ctx := context.Background()
	svc, sender, recipient := newTestEncouragementService(t)

	tests := []struct {
		name  string
		input ports.SendEncouragementInput
	}{
		{"empty message", ports.SendEncouragementInput{FromUserID: sender, ToUserID: recipient, Message: "   "}},
		{"too long", ports.SendEncouragementInput{FromUserID: sender, ToUserID: recipient, Message: strings.Repeat("x", domain.EncouragementMaxLength+1)}},
		{"html rejected", ports.SendEncouragementInput{FromUserID: sender, ToUserID: recipient, Message: "<script>hi</script>"}},
		{"self send", ports.SendEncouragementInput{FromUserID: sender, ToUserID: sender, Message: "hi me"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Send(ctx, tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	_, err := svc.Send(ctx, ports.SendEncouragementInput{FromUserID: sender, ToUserID: uuid.New(), Message: "hello"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
