package repositories

import (
	"context"

	"github.com/JP-maker/gamegauge-api/internal/models"
	"github.com/jmoiron/sqlx"
)

type ParticipantReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewParticipantReadRepository(db *sqlx.DB, txGetter TxGetter) *ParticipantReadRepository {
	return &ParticipantReadRepository{db: db, txGetter: txGetter}
}

// ListByBoard returns the participants of one board ordered by id.
func (r *ParticipantReadRepository) ListByBoard(ctx context.Context, boardID int64) ([]models.ParticipantDB, error) {
	const query = `
		SELECT id, name, board_id, created_at, updated_at
		FROM participants
		WHERE board_id = $1
		ORDER BY id
	`

	var participants []models.ParticipantDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &participants, query, boardID)

	logQuery(ctx, query, []any{boardID}, len(participants), err)

	if err != nil {
		return nil, err
	}
	return participants, nil
}

type ParticipantWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewParticipantWriteRepository(db *sqlx.DB, txGetter TxGetter) *ParticipantWriteRepository {
	return &ParticipantWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts participant and fills in its id and timestamps from the inserted row.
func (r *ParticipantWriteRepository) Create(ctx context.Context, participant *models.ParticipantDB) error {
	const query = `
		INSERT INTO participants (name, board_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	args := []any{participant.Name, participant.BoardID}

	row := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...)
	err := row.Scan(&participant.ID, &participant.CreatedAt, &participant.UpdatedAt)

	logQuery(ctx, query, args, participant.ID, err)

	return err
}

func (r *ParticipantWriteRepository) UpdateName(ctx context.Context, id int64, name string) error {
	const query = `UPDATE participants SET name = $2, updated_at = NOW() WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id, name)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, []any{id, name}, rowsAffected, err)

	return err
}

// Delete removes the participant and its score entries.
func (r *ParticipantWriteRepository) Delete(ctx context.Context, id int64) error {
	queries := []string{
		`DELETE FROM score_entries WHERE participant_id = $1`,
		`DELETE FROM participants WHERE id = $1`,
	}

	exec := executor(ctx, r.db, r.txGetter)
	for _, query := range queries {
		res, err := exec.ExecContext(ctx, query, id)
		var rowsAffected int64
		if res != nil {
			rowsAffected, _ = res.RowsAffected()
		}

		logQuery(ctx, query, []any{id}, rowsAffected, err)

		if err != nil {
			return err
		}
	}
	return nil
}
