package app_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskmap/internal/app"
	_ "go.trai.ch/taskmap/internal/wiring" // Register nodes
)

// TestAppWiring builds the full component graph once, so a node with a
// missing or cyclic dependency fails here instead of at startup.
func TestAppWiring(t *testing.T) {
	t.Chdir(t.TempDir())

	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
