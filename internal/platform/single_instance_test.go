package platform

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAppName(t *testing.T) string {
	return fmt.Sprintf("brewbell-test-%s-%d", t.Name(), time.Now().UnixNano())
}

func TestAcquireSingleInstance_SecondFails(t *testing.T) {
	name := testAppName(t)
	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	t.Cleanup(func() { _ = guard.Release() })

	_, err = AcquireSingleInstance(name)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())
	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestSignal_DeliversCommand(t *testing.T) {
	name := testAppName(t)
	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	commands := make(chan string, 1)
	go guard.Serve(ctx, func(command string) { commands <- command })

	require.NoError(t, Signal(name, "preferences"))

	select {
	case command := <-commands:
		assert.Equal(t, "preferences", command)
	case <-time.After(2 * time.Second):
		t.Fatal("command not delivered")
	}
}

func TestPortFromName_StableAndInRange(t *testing.T) {
	port := portFromName("Brewbell")
	assert.Equal(t, port, portFromName("brewbell"))
	assert.GreaterOrEqual(t, port, 20000)
	assert.LessOrEqual(t, port, 39999)
	assert.Empty(t, (*InstanceGuard)(nil).Address())
}
