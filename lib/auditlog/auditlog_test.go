package auditlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordAndQuery(t *testing.T) {
	log, err := Open(":memory:")
	require.NoError(t, err)
	defer log.Close()

	ctx := context.Background()
	require.NoError(t, log.Record(ctx, "123", 1, "retry", "await timeout"))
	require.NoError(t, log.Record(ctx, "123", 2, "success", ""))
	require.NoError(t, log.Record(ctx, "456", 1, "not_registered", ""))

	attempts, err := log.Attempts(ctx, "123")
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	require.Equal(t, "retry", attempts[0].State)
	require.Equal(t, 2, attempts[1].Attempt)
}
