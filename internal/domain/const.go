package domain

import "time"

const (
	// Stellar constants
	STELLAR_AMOUNT_PRECISION = 7
	STELLAR_BASE_RESERVE     = "2.5"
	STELLAR_RESERVE_BUFFER   = "1"
	STELLAR_MAX_TRUST_LIMIT  = "922337203685"
	STELLAR_MIN_BASE_FEE     = 100

	// Ledger constants
	DEFAULT_LOCK_DURATION   = 3600 * time.Second
	DEFAULT_MERGE_GUARD     = time.Minute
	DEFAULT_TIP_RATE        = "1"
	DEFAULT_REDIS_NAMESPACE = "tipbot"
)
