package jetstream

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-crm/internal/domain"
	"github.com/feral-file/ff-crm/internal/mocks"
)

func testConfig() Config {
	return Config{
		URL:            "nats://localhost:4222",
		StreamName:     "CRM_VIEWS",
		SubjectPrefix:  "crm.views.",
		MaxReconnects:  3,
		ReconnectWait:  time.Second,
		ConnectionName: "ff-crm-test",
	}
}

func TestNewPublisher_ConnectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any()).Return(nil, nil, errors.New("refused"))

	_, err := NewPublisher(testConfig(), natsJS, mocks.NewMockJSON(ctrl))
	require.Error(t, err)
}

func TestPublishInvalidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	jsonAdapter := mocks.NewMockJSON(ctrl)

	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nc, js, nil)
	js.EXPECT().
		CreateOrUpdateStream(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg jetstream.StreamConfig) (*jetstream.StreamInfo, error) {
			assert.Equal(t, "CRM_VIEWS", cfg.Name)
			assert.Equal(t, []string{"crm.views.>"}, cfg.Subjects)
			assert.Equal(t, time.Hour, cfg.MaxAge)
			return &jetstream.StreamInfo{Config: cfg}, nil
		})

	p, err := NewPublisher(testConfig(), natsJS, jsonAdapter)
	require.NoError(t, err)

	event := &domain.ViewInvalidation{
		OwnerID: "user-1",
		Routes:  []string{"/", "/contacts"},
		At:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	payload := []byte(`{"owner_id":"user-1"}`)

	jsonAdapter.EXPECT().Marshal(event).Return(payload, nil)
	js.EXPECT().Publish(gomock.Any(), "crm.views.invalidate", payload).Return(&jetstream.PubAck{Stream: "CRM_VIEWS"}, nil)

	require.NoError(t, p.PublishInvalidation(context.Background(), event))

	nc.EXPECT().Close()
	p.Close()
}

func TestPublishInvalidation_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	jsonAdapter := mocks.NewMockJSON(ctrl)

	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(mocks.NewMockNatsConn(ctrl), js, nil)
	js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).Return(&jetstream.StreamInfo{}, nil)
	p, err := NewPublisher(testConfig(), natsJS, jsonAdapter)
	require.NoError(t, err)

	event := &domain.ViewInvalidation{OwnerID: "user-1"}

	jsonAdapter.EXPECT().Marshal(event).Return(nil, errors.New("bad json"))
	err = p.PublishInvalidation(context.Background(), event)
	assert.ErrorContains(t, err, "failed to marshal invalidation")

	jsonAdapter.EXPECT().Marshal(event).Return([]byte("{}"), nil)
	js.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("no responders"))
	err = p.PublishInvalidation(context.Background(), event)
	assert.ErrorContains(t, err, "failed to publish invalidation")
}

func TestNewPublisher_StreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nc, js, nil)
	js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).Return(nil, errors.New("insufficient resources"))
	nc.EXPECT().Close()

	_, err := NewPublisher(testConfig(), natsJS, mocks.NewMockJSON(ctrl))
	assert.ErrorContains(t, err, "CRM_VIEWS")
}

func TestNewPublisher_NoStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	natsJS := mocks.NewMockNatsJetStream(ctrl)

	cfg := testConfig()
	cfg.StreamName = ""
	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(mocks.NewMockNatsConn(ctrl), mocks.NewMockJetStream(ctrl), nil)

	_, err := NewPublisher(cfg, natsJS, mocks.NewMockJSON(ctrl))
	require.NoError(t, err)
}
