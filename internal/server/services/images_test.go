package services

import (
	"context"
	"strings"
	"testing"

	sc "github.com/dmitrijs2005/gamefolio/internal/server/config"
	"github.com/stretchr/testify/require"
)

func imageConfig(endpoint string) *sc.Config {
	cfg := &sc.Config{}
	cfg.LoadDefaults()
	cfg.S3BaseEndpoint = endpoint
	return cfg
}

func TestImageService_Enabled(t *testing.T) {
	require.False(t, NewImageService(imageConfig("")).Enabled())
	require.True(t, NewImageService(imageConfig("http://127.0.0.1:9000/")).Enabled())
}

func TestRandomStorageKey_DatePartitionedAndUnique(t *testing.T) {
	a := randomStorageKey()
	b := randomStorageKey()
	require.True(t, strings.HasPrefix(a, "gameart/"))
	require.NotEqual(t, a, b)
}

func TestGetPresignedPutURL_SignsLocally(t *testing.T) {
	svc := NewImageService(imageConfig("http://127.0.0.1:9000/"))

	key, url, err := svc.GetPresignedPutURL(context.Background())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(key, "gameart/"))
	require.Contains(t, url, "X-Amz-Signature")
}
