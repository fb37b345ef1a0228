package countdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitCountsDown(t *testing.T) {
	var buf bytes.Buffer
	c := &Counter{Out: &buf, Interval: time.Millisecond}

	require.NoError(t, c.Wait(context.Background(), 5*time.Millisecond))

	out := buf.String()
	assert.Contains(t, out, "Unloading hive in 5...")
	assert.Contains(t, out, "Unloading hive in 1...")
	assert.Contains(t, out, "Ctrl-C to abort")
}

func TestWaitZeroDuration(t *testing.T) {
	var buf bytes.Buffer
	c := &Counter{Out: &buf, Interval: time.Millisecond}

	require.NoError(t, c.Wait(context.Background(), 0))
	assert.Empty(t, buf.String())
}

func TestWaitCanceled(t *testing.T) {
	var buf bytes.Buffer
	c := &Counter{Out: &buf, Interval: time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Wait(ctx, 2*time.Hour)
	require.ErrorIs(t, err, context.Canceled)
	// Only the first line was printed before the cancel took effect.
	assert.Equal(t, 1, strings.Count(buf.String(), "Unloading hive"))
}

func TestWaitRoundsUpPartialTicks(t *testing.T) {
	var buf bytes.Buffer
	c := &Counter{Out: &buf, Interval: 2 * time.Millisecond}

	require.NoError(t, c.Wait(context.Background(), 3*time.Millisecond))
	assert.Contains(t, buf.String(), "Unloading hive in 2...")
}
