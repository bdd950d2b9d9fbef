//go:build unit

package readstore_test

import "workshop-booking/internal/infra/query"

type mockDBTX struct {
	query.DBTX
}
