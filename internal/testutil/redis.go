// Package testutil holds helpers shared by package tests.
package testutil

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stellar/go/keypair"

	"github.com/mobius-network/tipbot-ledger/internal/adapter"
)

// NewRedis starts an in-process Redis server and returns it with a client connected to it.
// Both are closed when the test ends.
func NewRedis(t *testing.T) (*miniredis.Miniredis, adapter.RedisClient) {
	t.Helper()

	server := miniredis.RunT(t)
	client := adapter.NewRedisClient(server.Addr(), "", 0)
	t.Cleanup(func() {
		_ = client.Close()
	})

	return server, client
}

// NewAddress returns the address of a fresh random Stellar keypair
func NewAddress(t *testing.T) string {
	t.Helper()
	return keypair.MustRandom().Address()
}
