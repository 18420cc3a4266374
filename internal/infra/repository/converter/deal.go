package converter

import (
	"group-deal-engine/internal/domain/deal"
	sqlc "group-deal-engine/internal/infra/sqlc/generated"
	"group-deal-engine/internal/pkg/errs"
	"group-deal-engine/internal/pkg/pgconv"
	"group-deal-engine/internal/usecase/shared"
)

func DealFromRow(row sqlc.Deals) (*deal.Deal, error) {
	minParticipants, err := deal.NewMinParticipants(int(row.MinParticipants))
	if err != nil {
		return nil, errs.Wrap(err, "corrupt deal row "+row.ID.String())
	}
	return deal.ReconstructDeal(
		row.ID,
		row.ProductID,
		row.Name,
		minParticipants,
		pgconv.TimePtrFromPgtype(row.Deadline),
		row.IsActive,
		row.IsCompleted,
		pgconv.TimePtrFromPgtype(row.CompletedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func DealTaskFromRow(row sqlc.DealTasks) shared.DealTask {
	return shared.DealTask{
		ID:        row.ID,
		DealID:    row.DealID,
		Kind:      shared.TaskKind(row.Kind),
		Payload:   row.Payload,
		Status:    shared.TaskStatus(row.Status),
		Attempts:  row.Attempts,
		LastError: pgconv.StringPtrFromPgtype(row.LastError),
		RunAt:     pgconv.TimeFromPgtype(row.RunAt),
	}
}
