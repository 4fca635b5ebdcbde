package impl

import (
	"context"
	"strings"
	"testing"

	"crave/config"
	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	mockRepo "crave/internal/mocks/repository"
	mockSvc "crave/internal/mocks/service"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func smsTestConfig() *config.Config {
	return &config.Config{
		SMS: &config.SMSConfig{
			CountryCode: "1",
			MaxLength:   160,
		},
	}
}

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		phone       string
		countryCode string
		want        string
		wantErr     bool
	}{
		{
			name:        "formatted national number",
			phone:       "(555) 123-4567",
			countryCode: "1",
			want:        "15551234567",
		},
		{
			name:        "bare ten digits",
			phone:       "5551234567",
			countryCode: "1",
			want:        "15551234567",
		},
		{
			name:        "trunk prefix replaced by country code",
			phone:       "07700123456",
			countryCode: "44",
			want:        "447700123456",
		},
		{
			name:        "already has country code",
			phone:       "+1 555 123 4567",
			countryCode: "1",
			want:        "15551234567",
		},
		{
			name:        "too few digits",
			phone:       "12345",
			countryCode: "1",
			wantErr:     true,
		},
		{
			name:        "letters only",
			phone:       "call me maybe",
			countryCode: "1",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NormalizePhone(tt.phone, tt.countryCode)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	t.Parallel()

	first, err := NormalizePhone("(555) 123-4567", "1")
	require.NoError(t, err)

	second, err := NormalizePhone(first, "1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTruncateMessage(t *testing.T) {
	t.Parallel()

	t.Run("short message untouched", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "pickup ready", TruncateMessage("pickup ready", 160))
	})

	t.Run("long message capped with ellipsis", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", 200)
		got := TruncateMessage(long, 160)
		assert.Equal(t, 160, len([]rune(got)))
		assert.Equal(t, strings.Repeat("a", 157)+"...", got)
	})

	t.Run("exact length untouched", func(t *testing.T) {
		t.Parallel()

		exact := strings.Repeat("b", 160)
		assert.Equal(t, exact, TruncateMessage(exact, 160))
	})

	t.Run("multibyte runes counted as one", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("é", 10)
		got := TruncateMessage(long, 8)
		assert.Equal(t, 8, len([]rune(got)))
		assert.True(t, strings.HasSuffix(got, "..."))
	})
}

func TestSMSService_Send_Success(t *testing.T) {
	mockVendor := mockSvc.NewMockSMSVendor(t)
	mockLogRepo := mockRepo.NewMockNotificationLogRepository(t)
	svc := NewSMSService(mockVendor, mockLogRepo, smsTestConfig(), testLogger())

	ctx := context.Background()
	userID := uuid.New()

	mockVendor.EXPECT().
		Send(ctx, "15551234567", "Your order is ready").
		Return("sms-123", nil)

	var recorded *entity.NotificationLog
	mockLogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NotificationLog")).
		Run(func(_ context.Context, log *entity.NotificationLog) {
			recorded = log
		}).
		Return(nil)

	messageID, err := svc.Send(ctx, &usecase.SMSOptions{
		UserID:  userID,
		Type:    entity.TypeOrderStatus,
		Phone:   "(555) 123-4567",
		Message: "Your order is ready",
	})
	require.NoError(t, err)
	assert.Equal(t, "sms-123", messageID)

	require.NotNil(t, recorded)
	assert.Equal(t, userID, recorded.UserID)
	assert.Equal(t, entity.ChannelSMS, recorded.Channel)
	assert.Equal(t, "15551234567", recorded.Recipient)
	assert.Equal(t, entity.StatusSent, recorded.Status)
	assert.Equal(t, "sms-123", recorded.ProviderMessageID)
}

func TestSMSService_Send_InvalidPhoneSkipsVendor(t *testing.T) {
	mockVendor := mockSvc.NewMockSMSVendor(t)
	mockLogRepo := mockRepo.NewMockNotificationLogRepository(t)
	svc := NewSMSService(mockVendor, mockLogRepo, smsTestConfig(), testLogger())

	ctx := context.Background()

	var recorded *entity.NotificationLog
	mockLogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NotificationLog")).
		Run(func(_ context.Context, log *entity.NotificationLog) {
			recorded = log
		}).
		Return(nil)

	_, err := svc.Send(ctx, &usecase.SMSOptions{
		UserID:  uuid.New(),
		Type:    entity.TypeOrderStatus,
		Phone:   "12345",
		Message: "Your order is ready",
	})
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))

	// The audit row keeps the raw input since normalization never produced
	// a usable number.
	require.NotNil(t, recorded)
	assert.Equal(t, "12345", recorded.Recipient)
	assert.Equal(t, entity.StatusFailed, recorded.Status)
	mockVendor.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestSMSService_Send_TruncatesLongMessage(t *testing.T) {
	mockVendor := mockSvc.NewMockSMSVendor(t)
	mockLogRepo := mockRepo.NewMockNotificationLogRepository(t)
	svc := NewSMSService(mockVendor, mockLogRepo, smsTestConfig(), testLogger())

	ctx := context.Background()
	long := strings.Repeat("x", 200)

	mockVendor.EXPECT().
		Send(ctx, "15551234567", strings.Repeat("x", 157)+"...").
		Return("sms-456", nil)

	mockLogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NotificationLog")).
		Return(nil)

	_, err := svc.Send(ctx, &usecase.SMSOptions{
		UserID:  uuid.New(),
		Type:    entity.TypePromotion,
		Phone:   "5551234567",
		Message: long,
	})
	require.NoError(t, err)
}

func TestSMSService_Send_ChannelNotConfigured(t *testing.T) {
	mockLogRepo := mockRepo.NewMockNotificationLogRepository(t)
	svc := NewSMSService(nil, mockLogRepo, smsTestConfig(), testLogger())

	ctx := context.Background()

	mockLogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NotificationLog")).
		Return(nil)

	_, err := svc.Send(ctx, &usecase.SMSOptions{
		UserID:  uuid.New(),
		Type:    entity.TypeOrderStatus,
		Phone:   "5551234567",
		Message: "Your order is ready",
	})
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindConfiguration))
}

func TestSMSService_Send_VendorFailureAudited(t *testing.T) {
	mockVendor := mockSvc.NewMockSMSVendor(t)
	mockLogRepo := mockRepo.NewMockNotificationLogRepository(t)
	svc := NewSMSService(mockVendor, mockLogRepo, smsTestConfig(), testLogger())

	ctx := context.Background()

	mockVendor.EXPECT().
		Send(ctx, "15551234567", "Your order is ready").
		Return("", errors.New("vendor rejected request"))

	var recorded *entity.NotificationLog
	mockLogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NotificationLog")).
		Run(func(_ context.Context, log *entity.NotificationLog) {
			recorded = log
		}).
		Return(nil)

	_, err := svc.Send(ctx, &usecase.SMSOptions{
		UserID:  uuid.New(),
		Type:    entity.TypeOrderStatus,
		Phone:   "5551234567",
		Message: "Your order is ready",
	})
	require.Error(t, err)

	require.NotNil(t, recorded)
	assert.Equal(t, entity.StatusFailed, recorded.Status)
	assert.Contains(t, recorded.ErrorMessage, "vendor rejected request")
}

func TestSMSService_DefaultsWhenConfigMissing(t *testing.T) {
	mockVendor := mockSvc.NewMockSMSVendor(t)
	mockLogRepo := mockRepo.NewMockNotificationLogRepository(t)
	svc := NewSMSService(mockVendor, mockLogRepo, &config.Config{}, testLogger())

	ctx := context.Background()

	// Country code defaults to 1 when no SMS section is configured.
	mockVendor.EXPECT().
		Send(ctx, "15551234567", "hi").
		Return("sms-789", nil)

	mockLogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NotificationLog")).
		Return(nil)

	_, err := svc.Send(ctx, &usecase.SMSOptions{
		UserID:  uuid.New(),
		Type:    entity.TypeReminder,
		Phone:   "5551234567",
		Message: "hi",
	})
	require.NoError(t, err)
}
