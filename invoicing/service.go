package invoicing

import (
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/invoicing/business/fee"
	"encore.app/invoicing/business/invoice"
	"encore.app/invoicing/domain"
	"encore.app/invoicing/repository"
)

var invoicingDB = sqldb.NewDatabase("invoicing", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var validate = validator.New()

//encore:service
type Service struct {
	business invoice.Business
}

func initService() (*Service, error) {
	pool := sqldb.Driver[*pgxpool.Pool](invoicingDB)

	repo := repository.NewRepository(pool)
	rlog.Info("initialized repository")

	stateMachine := domain.NewInvoiceStateMachine(pool, repo.Invoices, repo.Orders)
	feeService := fee.NewFeeBusiness()
	invoiceBusiness := invoice.NewInvoiceBusiness(
		repo.Invoices,
		repo.Orders,
		repo.Payees,
		repo.Domains,
		feeService,
		stateMachine,
	)

	return &Service{
		business: invoiceBusiness,
	}, nil
}
