package booking

import (
	"context"
	"database/sql"

	"github.com/noshecambridge/booking-service/pkg/dbmetrics"
)

// Database executor interfaces are shared with dbmetrics so the repository
// works over *sql.DB, *dbmetrics.DB and transaction executors alike.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions. Satisfied by *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
