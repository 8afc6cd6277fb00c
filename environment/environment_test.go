package environment

import (
	"testing"

	"github.com/akashmaji946/veureka/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("x", value.Number(1), false)

	v, ok := env.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.Number(1), v)

	_, ok = env.Get("missing")
	assert.False(t, ok)
}

func TestChildSeesParentBindings(t *testing.T) {
	parent := New(nil)
	parent.Define("x", value.Number(1), false)
	child := New(parent)

	v, ok := child.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.Number(1), v)
}

func TestDefineShadowsParentInChildFrame(t *testing.T) {
	parent := New(nil)
	parent.Define("x", value.Number(1), false)
	child := New(parent)
	child.Define("x", value.Number(2), false)

	childVal, _ := child.Get("x")
	parentVal, _ := parent.Get("x")
	assert.Equal(t, value.Number(2), childVal)
	assert.Equal(t, value.Number(1), parentVal, "shadowing in the child must not touch the parent")
}

func TestAssignMutatesNearestEnclosingBinding(t *testing.T) {
	parent := New(nil)
	parent.Define("x", value.Number(1), false)
	child := New(parent)

	err := child.Assign("x", value.Number(99))
	require.NoError(t, err)

	parentVal, _ := parent.Get("x")
	assert.Equal(t, value.Number(99), parentVal, "assign from a child should mutate the parent's binding")
}

func TestAssignWithNoExistingBindingDefinesInCurrentFrame(t *testing.T) {
	env := New(nil)
	err := env.Assign("y", value.Number(5))
	require.NoError(t, err)

	v, ok := env.Get("y")
	require.True(t, ok)
	assert.Equal(t, value.Number(5), v)
}

func TestAssignToConstFails(t *testing.T) {
	env := New(nil)
	env.Define("K", value.Number(1), true)

	err := env.Assign("K", value.Number(2))
	require.Error(t, err)

	v, _ := env.Get("K")
	assert.Equal(t, value.Number(1), v, "const binding must be left unchanged")
}

func TestIsConst(t *testing.T) {
	env := New(nil)
	env.Define("K", value.Number(1), true)
	env.Define("x", value.Number(1), false)

	assert.True(t, env.IsConst("K"))
	assert.False(t, env.IsConst("x"))
	assert.False(t, env.IsConst("missing"))
}

func TestClosureObservesMutationsMadeAfterCapture(t *testing.T) {
	// A child frame captured before a later mutation to the parent must
	// observe that mutation when it looks the name up afterward —
	// Get always re-walks the live chain, never a snapshot.
	parent := New(nil)
	parent.Define("x", value.Number(1), false)
	captured := New(parent)

	parent.Assign("x", value.Number(2))

	v, _ := captured.Get("x")
	assert.Equal(t, value.Number(2), v)
}
