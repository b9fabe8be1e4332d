package service

import (
	"context"
	"errors"
	"testing"

	"accountgate/internal/config"
	"accountgate/internal/logger"
	"accountgate/internal/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPingStore_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pinger := mock.NewMockPinger(ctrl)
	pinger.EXPECT().Ping(gomock.Any()).Return(nil)

	svc := NewHealthService(pinger, logger.Nop())
	require.NoError(t, svc.PingStore(context.Background()))
}

func TestPingStore_Down(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pingErr := errors.New("connection refused")
	pinger := mock.NewMockPinger(ctrl)
	pinger.EXPECT().Ping(gomock.Any()).Return(pingErr)

	svc := NewHealthService(pinger, logger.Nop())
	err := svc.PingStore(context.Background())
	require.ErrorIs(t, err, pingErr)
}

func TestGetAppVersion(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "1.2.3"}, logger.Nop())
	assert.Equal(t, "1.2.3", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_Unset(t *testing.T) {
	svc := NewAppInfoService(config.App{}, logger.Nop())
	assert.Equal(t, "N/A", svc.GetAppVersion(context.Background()))
}
