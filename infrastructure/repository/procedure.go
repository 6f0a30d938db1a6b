package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/production-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/production-report-api/internal/domain"
)

const (
	proceduresTable = "procedures pr"
	patientsJoin    = "patients pa ON pa.id = pr.patient_id"
)

// ProcedureRepository é a fonte dos procedimentos usados nos relatórios de produção
type ProcedureRepository interface {
	// FetchByOwnerAndPeriod retorna os procedimentos do profissional com realização
	// dentro de [start, end], ordenados pela data de realização
	FetchByOwnerAndPeriod(ctx context.Context, ownerID int, start, end time.Time) ([]domain.ProcedureRecord, error)
}

type procedureRepository struct {
	conn *postgres.Connection
}

func NewProcedureRepository(conn *postgres.Connection) ProcedureRepository {
	return &procedureRepository{
		conn: conn,
	}
}

func (r *procedureRepository) FetchByOwnerAndPeriod(ctx context.Context, ownerID int, start, end time.Time) ([]domain.ProcedureRecord, error) {
	// LEFT JOIN mantém procedimentos com paciente removido; o relatório rejeita esses registros
	queryBuilder := squirrel.
		Select(
			"pr.id",
			"pr.owner_id",
			"pr.patient_id",
			"COALESCE(pa.name, '')",
			"COALESCE(pa.plan_type, '')",
			"pr.performed_at",
			"COALESCE(pr.plan_value, 0)",
			"COALESCE(pr.evolution, '')",
		).
		From(proceduresTable).
		LeftJoin(patientsJoin).
		Where(squirrel.Eq{"pr.owner_id": ownerID}).
		Where(squirrel.GtOrEq{"pr.performed_at": start}).
		Where(squirrel.LtOrEq{"pr.performed_at": end}).
		OrderBy("pr.performed_at ASC", "pr.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de procedimentos")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, postgres.WrapError(err, "erro ao buscar procedimentos")
	}
	defer rows.Close()

	records := make([]domain.ProcedureRecord, 0)
	for rows.Next() {
		var (
			record   domain.ProcedureRecord
			planType string
		)

		if err := rows.Scan(
			&record.ID,
			&record.OwnerID,
			&record.PatientID,
			&record.PatientName,
			&planType,
			&record.PerformedAt,
			&record.PlanValue,
			&record.EvolutionText,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao ler procedimento")
		}

		record.PlanType = domain.PlanType(planType)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, postgres.WrapError(err, "erro ao percorrer procedimentos")
	}

	return records, nil
}
