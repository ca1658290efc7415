package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/intunehound/intunehound/client/rest/mocks"
	"github.com/intunehound/intunehound/models/azure"
)

func jsonResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestGetGroup(t *testing.T) {
	t.Run("decodes the group entity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockGraph := mocks.NewMockRestClient(ctrl)
		mockGraph.EXPECT().
			Get(gomock.Any(), "/v1.0/groups/G1", gomock.Nil(), gomock.Nil()).
			Return(jsonResponse(`{"id": "G1", "displayName": "Pilot Devices", "description": "ring 0", "securityEnabled": true}`), nil)

		c := &azureClient{msgraph: mockGraph, log: logr.Discard()}

		group, err := c.GetGroup(context.Background(), "G1")
		require.NoError(t, err)
		require.Equal(t, &azure.Group{
			Entity:          azure.Entity{Id: "G1"},
			DisplayName:     "Pilot Devices",
			Description:     "ring 0",
			SecurityEnabled: true,
		}, group)
	})

	t.Run("propagates transport errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockGraph := mocks.NewMockRestClient(ctrl)
		mockGraph.EXPECT().
			Get(gomock.Any(), "/v1.0/groups/G404", gomock.Nil(), gomock.Nil()).
			Return(nil, errors.New("request to /v1.0/groups/G404 failed, status code 404"))

		c := &azureClient{msgraph: mockGraph, log: logr.Discard()}

		group, err := c.GetGroup(context.Background(), "G404")
		require.Error(t, err)
		require.Nil(t, group)
	})
}
