package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hotelclient/config"
	"hotelclient/internal/domains/booking/mocks"
	"hotelclient/internal/domains/booking/model/dto"
	"hotelclient/internal/domains/booking/service"
	"hotelclient/shared/failure"
	"hotelclient/shared/logger"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const janeDoe = `{
	"roomId": "3fa85f64-5717-4562-b3fc-2c963f66afa6",
	"guestName": "Jane Doe",
	"guestEmail": "jane@example.com",
	"checkIn": "2025-06-01",
	"checkOut": "2025-06-05"
}`

const janeDoeWithPhone = `{
	"checkOut": "2025-06-05",
	"checkIn": "2025-06-01",
	"guestPhone": "+1-555-0100",
	"guestEmail": "jane@example.com",
	"guestName": "Jane Doe",
	"roomId": "3fa85f64-5717-4562-b3fc-2c963f66afa6"
}`

func newCommand(stdin string) (command, *bytes.Buffer) {
	cfg := &config.Config{}
	cfg.Booking.GuestNameMax = 100
	cfg.Booking.GuestEmailMax = 100
	cfg.Booking.GuestPhoneMax = 20

	var stdout bytes.Buffer

	return command{
		service: service.NewWithClock(cfg, func() civil.Date { return civil.Date{Year: 2025, Month: 1, Day: 1} }),
		stdin:   strings.NewReader(stdin),
		stdout:  &stdout,
	}, &stdout
}

func newMockCommand(t *testing.T, stdout io.Writer) (command, *mocks.MockBooking) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockBooking(ctrl)

	return command{
		service: mockService,
		stdin:   strings.NewReader(""),
		stdout:  stdout,
	}, mockService
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func writePayload(t *testing.T, name, payload string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	return path
}

func TestRun_Check(t *testing.T) {
	cmd, stdout := newCommand(janeDoe)

	require.NoError(t, cmd.run(context.Background(), []string{"check", "-"}))

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "class BookingRequest {\n"))
	assert.Contains(t, out, "    guestPhone: null\n")
	assert.Contains(t, out, `"checkOut": "2025-06-05"`)
	assert.NotContains(t, out, `"guestPhone"`)
}

func TestRun_CheckFile(t *testing.T) {
	cmd, stdout := newCommand("")
	path := writePayload(t, "booking.json", janeDoeWithPhone)

	require.NoError(t, cmd.run(context.Background(), []string{"check", path}))
	assert.Contains(t, stdout.String(), "    guestPhone: +1-555-0100\n")
}

func TestRun_CheckInvalid(t *testing.T) {
	cmd, _ := newCommand(`{"roomId":"3fa85f64-5717-4562-b3fc-2c963f66afa6","checkIn":"June 1st"}`)

	err := cmd.run(context.Background(), []string{"check", "-"})

	var malformed *failure.MalformedFieldError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "checkIn", malformed.Field)
	assert.Equal(t, "June 1st", malformed.Raw)
}

func TestRun_CheckMissingFile(t *testing.T) {
	cmd, _ := newCommand("")

	err := cmd.run(context.Background(), []string{"check", filepath.Join(t.TempDir(), "missing.json")})

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_Compare(t *testing.T) {
	cmd, stdout := newCommand("")
	a := writePayload(t, "a.json", janeDoe)
	b := writePayload(t, "b.json", janeDoe)
	c := writePayload(t, "c.json", janeDoeWithPhone)

	require.NoError(t, cmd.run(context.Background(), []string{"compare", a, b}))
	assert.Contains(t, stdout.String(), `"equal": true`)

	stdout.Reset()

	require.NoError(t, cmd.run(context.Background(), []string{"compare", a, c}))
	assert.Contains(t, stdout.String(), `"equal": false`)
}

func TestRun_Nights(t *testing.T) {
	cmd, stdout := newCommand(janeDoe)

	require.NoError(t, cmd.run(context.Background(), []string{"nights", "-"}))
	assert.Equal(t, "4\n", stdout.String())
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "unknown command", args: []string{"submit", "-"}},
		{name: "check without file", args: []string{"check"}},
		{name: "compare with one file", args: []string{"compare", "a.json"}},
		{name: "nights with extra argument", args: []string{"nights", "a.json", "b.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := newCommand("")

			err := cmd.run(context.Background(), tt.args)
			assert.ErrorIs(t, err, errUsage)
		})
	}
}

func TestRun_WithMockService(t *testing.T) {
	requestA := dto.BookingRequest{}.WithGuestName("Jane Doe")
	requestB := requestA.WithGuestPhone(mo.Some("+1-555-0100"))

	tests := []struct {
		name      string
		args      []string
		setupMock func(mockService *mocks.MockBooking)
		wantOut   string
		wantErr   error
	}{
		{
			name: "check passes decode failure through",
			args: []string{"check", "-"},
			setupMock: func(mockService *mocks.MockBooking) {
				mockService.EXPECT().
					Decode(gomock.Any(), gomock.Any()).
					Return(dto.BookingRequest{}, failure.MalformedField("checkIn", "June 1st", nil))
			},
			wantErr: &failure.MalformedFieldError{Field: "checkIn", Raw: "June 1st"},
		},
		{
			name: "compare renders the comparison as JSON",
			args: []string{"compare", "-", "-"},
			setupMock: func(mockService *mocks.MockBooking) {
				gomock.InOrder(
					mockService.EXPECT().Decode(gomock.Any(), gomock.Any()).Return(requestA, nil),
					mockService.EXPECT().Decode(gomock.Any(), gomock.Any()).Return(requestB, nil),
				)

				mockService.EXPECT().
					Compare(gomock.Any(), requestA, requestB).
					Return(service.Comparison{Equal: false, HashA: 1, HashB: 2})
			},
			wantOut: `{"equal": false, "hash_a": 1, "hash_b": 2}`,
		},
		{
			name: "compare stops at the first decode failure",
			args: []string{"compare", "-", "-"},
			setupMock: func(mockService *mocks.MockBooking) {
				mockService.EXPECT().
					Decode(gomock.Any(), gomock.Any()).
					Return(dto.BookingRequest{}, failure.EmptyPayload)
			},
			wantErr: failure.EmptyPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer

			cmd, mockService := newMockCommand(t, &stdout)
			tt.setupMock(mockService)

			err := cmd.run(context.Background(), tt.args)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				assert.Empty(t, stdout.String())

				return
			}

			require.NoError(t, err)
			assert.JSONEq(t, tt.wantOut, stdout.String())
		})
	}
}

func TestRun_OutputFailureIsInternal(t *testing.T) {
	cmd, mockService := newMockCommand(t, brokenWriter{})

	mockService.EXPECT().
		Decode(gomock.Any(), gomock.Any()).
		Return(dto.BookingRequest{}.WithGuestName("Jane Doe"), nil)

	err := cmd.run(context.Background(), []string{"nights", "-"})

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.Contains(t, err.Error(), "failed to write output: disk full")
}

func TestExecute(t *testing.T) {
	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	})

	var logs bytes.Buffer
	logger.InitLoggerTo(&logs)

	cmd, stdout := newCommand(janeDoe)

	assert.Equal(t, 0, cmd.execute(context.Background(), []string{"nights", "-"}))
	assert.Equal(t, "4\n", stdout.String())

	assert.Equal(t, 1, cmd.execute(context.Background(), []string{"submit", "-"}))
	assert.Contains(t, logs.String(), `unknown command "submit"`)
	assert.Contains(t, logs.String(), "command.go", "stack trace is logged")
	assert.Contains(t, logs.String(), "bookreq failed")
}
