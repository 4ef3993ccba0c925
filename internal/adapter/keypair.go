package adapter

import "github.com/stellar/go/keypair"

// Keypair defines an interface for Stellar keypair generation to enable mocking
//
//go:generate mockgen -source=keypair.go -destination=../mocks/keypair.go -package=mocks -mock_names=Keypair=MockKeypair
type Keypair interface {
	// Random generates a new random full keypair
	Random() (*keypair.Full, error)
}

// RealKeypair implements Keypair using the stellar keypair package
type RealKeypair struct{}

// NewKeypair creates a new real keypair generator
func NewKeypair() Keypair {
	return &RealKeypair{}
}

func (k *RealKeypair) Random() (*keypair.Full, error) {
	return keypair.Random()
}
