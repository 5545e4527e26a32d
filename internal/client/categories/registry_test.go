package categories

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_StartsWithBuiltins(t *testing.T) {
	r := New()
	require.Equal(t, []string{"Action", "RPG", "Platformer", "Puzzle"}, r.Labels())
}

func TestRegister_AccumulatesOnce(t *testing.T) {
	r := New()
	r.Register("Strategy")
	r.Register("Strategy")

	labels := r.Labels()
	count := 0
	for _, l := range labels {
		if l == "Strategy" {
			count++
		}
	}
	require.Equal(t, 1, count, "duplicate registration must be a no-op")
	require.Equal(t, Builtins(), labels[:len(Builtins())], "built-ins stay first")
	require.Equal(t, "Strategy", labels[len(labels)-1])
}

func TestRegister_BuiltinIsNoOp(t *testing.T) {
	r := New()
	r.Register("Action")
	require.Equal(t, Builtins(), r.Labels())
}

func TestRegister_PreservesRegistrationOrder(t *testing.T) {
	r := New()
	r.Register("Strategy")
	r.Register("Arcade")

	labels := r.Labels()
	require.Equal(t, "Strategy", labels[len(labels)-2])
	require.Equal(t, "Arcade", labels[len(labels)-1])
}

func TestRegister_IgnoresEmpty(t *testing.T) {
	r := New()
	r.Register("")
	require.Len(t, r.Labels(), len(Builtins()))
}

func TestContains(t *testing.T) {
	r := New()
	require.True(t, r.Contains("Puzzle"))
	require.False(t, r.Contains("Strategy"))
	r.Register("Strategy")
	require.True(t, r.Contains("Strategy"))
}

func TestLabels_ReturnsCopy(t *testing.T) {
	r := New()
	labels := r.Labels()
	labels[0] = "mutated"
	require.Equal(t, "Action", r.Labels()[0])
}
