package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/jgbarallobre/Contable/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:    newPgxAccountRepository(dbPool),
		PeriodRepo:     newPgxPeriodRepository(dbPool),
		JournalRepo:    newPgxJournalRepository(dbPool),
		CompanyRepo:    newPgxCompanyRepository(dbPool),
		ThirdPartyRepo: newPgxThirdPartyRepository(dbPool),
		UserRepo:       newPgxUserRepository(dbPool),
		ReportingRepo:  newReportingRepository(dbPool),
	}
}
