package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCartAddAccumulates(t *testing.T) {
	cart := NewCart()
	cart.Add("Gold Necklace", 2)
	cart.Add("Gold Necklace", 3)
	cart.Add("Diamond Ring", 1)

	require.Equal(t, map[string]int{"Gold Necklace": 5, "Diamond Ring": 1}, cart.Items())
	require.False(t, cart.Empty())
}

func TestCartClearIsIdempotent(t *testing.T) {
	cart := NewCart()
	cart.Add("Ring", 3)

	cart.Clear()
	require.Empty(t, cart.Items())
	require.True(t, cart.Empty())

	cart.Clear()
	require.Empty(t, cart.Items())
}

func TestCartItemsIsACopy(t *testing.T) {
	cart := NewCart()
	cart.Add("Ring", 3)

	snapshot := cart.Items()
	snapshot["Ring"] = 99
	snapshot["Extra"] = 1

	require.Equal(t, map[string]int{"Ring": 3}, cart.Items())
}
