package main

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCommand(t *testing.T) {
	healthy, _ := fakeBackend(t, http.StatusOK, `"Healthy"`)
	stdout, _, err := execute(t, context.Background(), "health", "--api-url", healthy.URL)
	require.NoError(t, err)
	assert.Contains(t, stdout, "backend healthy: "+healthy.URL)

	unhealthy, _ := fakeBackend(t, http.StatusServiceUnavailable, ``)
	_, _, err = execute(t, context.Background(), "health", "--api-url", unhealthy.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend unhealthy")
}
