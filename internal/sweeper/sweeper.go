package sweeper

import (
	"context"
)

// Sweeper is a long-running background task doing periodic ledger maintenance
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs the main loop until the context is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop waits for the in-progress cycle to complete
	Stop(ctx context.Context) error

	// Name identifies the sweeper in logs
	Name() string
}
