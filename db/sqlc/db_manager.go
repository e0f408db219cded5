package sqlc

import "time"

const (
	QuerierCtxTimeout = time.Second * 10
)

// DbManager groups the query wrappers by concern. Match analytics is
// the only concern backed by the database so far.
type DbManager struct {
	Analytics *AnalyticsManager
}

func NewDbManager(queries Querier) *DbManager {
	return &DbManager{
		Analytics: NewAnalyticsManager(queries),
	}
}
