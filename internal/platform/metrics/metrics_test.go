package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountersAndExposition(t *testing.T) {
	m := New()

	m.PrefixCollision("JSM")
	m.PrefixCollision("JSM1")
	m.AnimalIDRetry("JSM")
	m.BreederStatus("approved")
	m.ObserveRequest(http.MethodPost, "/api/breeders/register", http.StatusCreated, 15*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.prefixCollisions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.animalIDRetries))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.breedersByStatus.WithLabelValues("approved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, _ := io.ReadAll(rec.Body)
	assert.True(t, strings.Contains(string(body), "breed_registry_farm_prefix_collisions_total 2"))
	assert.True(t, strings.Contains(string(body), `route="/api/breeders/register"`))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	// dos routers en el mismo proceso no deben chocar al registrar
	a := New()
	b := New()
	a.AnimalIDRetry("X")
	assert.Equal(t, 0.0, testutil.ToFloat64(b.animalIDRetries))
}
