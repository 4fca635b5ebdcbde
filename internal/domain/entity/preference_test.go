package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDefaultPreference_AllowsEverything(t *testing.T) {
	t.Parallel()

	preference := DefaultPreference(uuid.New())

	channels := []Channel{ChannelEmail, ChannelPush, ChannelSMS}
	types := []NotificationType{
		TypeOrderConfirmation,
		TypeOrderStatus,
		TypePromotion,
		TypeReward,
		TypeNewsletter,
		TypeReminder,
	}

	for _, channel := range channels {
		for _, notificationType := range types {
			assert.True(t, preference.Allows(channel, notificationType),
				"default preference should allow %s/%s", channel, notificationType)
		}
	}
}

func TestNotificationPreference_Allows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(p *NotificationPreference)
		channel  Channel
		notiType NotificationType
		want     bool
	}{
		{
			name:     "type flag off blocks that type",
			mutate:   func(p *NotificationPreference) { p.EmailPromotions = false },
			channel:  ChannelEmail,
			notiType: TypePromotion,
			want:     false,
		},
		{
			name:     "type flag off leaves siblings allowed",
			mutate:   func(p *NotificationPreference) { p.EmailPromotions = false },
			channel:  ChannelEmail,
			notiType: TypeOrderConfirmation,
			want:     true,
		},
		{
			name:     "master toggle off blocks everything on the channel",
			mutate:   func(p *NotificationPreference) { p.SMSEnabled = false },
			channel:  ChannelSMS,
			notiType: TypeOrderConfirmation,
			want:     false,
		},
		{
			name:     "master toggle off does not affect other channels",
			mutate:   func(p *NotificationPreference) { p.SMSEnabled = false },
			channel:  ChannelPush,
			notiType: TypeOrderConfirmation,
			want:     true,
		},
		{
			name:     "push reward flag off",
			mutate:   func(p *NotificationPreference) { p.PushRewards = false },
			channel:  ChannelPush,
			notiType: TypeReward,
			want:     false,
		},
		{
			name:     "unknown type defaults to allowed",
			mutate:   func(p *NotificationPreference) {},
			channel:  ChannelEmail,
			notiType: NotificationType("password_reset"),
			want:     true,
		},
		{
			name:     "unknown channel defaults to allowed",
			mutate:   func(p *NotificationPreference) {},
			channel:  Channel("carrier_pigeon"),
			notiType: TypePromotion,
			want:     true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			preference := DefaultPreference(uuid.New())
			tt.mutate(preference)

			assert.Equal(t, tt.want, preference.Allows(tt.channel, tt.notiType))
		})
	}
}
