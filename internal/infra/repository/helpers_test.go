//go:build unit

package repository_test

import (
	"workshop-booking/internal/infra/query"
)

// mockDBTX only travels through to the mocked queries; it is never executed.
type mockDBTX struct {
	query.DBTX
}
