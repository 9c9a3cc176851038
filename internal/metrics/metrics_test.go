package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"jobboard-ads/internal/core/domain"
)

func TestTransitionCountsChangesOnly(t *testing.T) {
	c := transitionsTotal.WithLabelValues("review", "awaiting_payment", "client")
	before := testutil.ToFloat64(c)
	Transition(domain.StatusReview, domain.StatusAwaitingPayment, "client")
	Transition(domain.StatusReview, domain.StatusReview, "client")
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestSyncFailure(t *testing.T) {
	c := syncFailuresTotal.WithLabelValues("fetch_mine")
	before := testutil.ToFloat64(c)
	SyncFailure("fetch_mine")
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}
