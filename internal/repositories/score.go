package repositories

import (
	"context"

	"github.com/JP-maker/gamegauge-api/internal/models"
	"github.com/jmoiron/sqlx"
)

type ScoreReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewScoreReadRepository(db *sqlx.DB, txGetter TxGetter) *ScoreReadRepository {
	return &ScoreReadRepository{db: db, txGetter: txGetter}
}

// ListByBoard returns the score entries of every participant of a board,
// ordered by participant then round.
func (r *ScoreReadRepository) ListByBoard(ctx context.Context, boardID int64) ([]models.ScoreEntryDB, error) {
	const query = `
		SELECT s.id, s.score_value, s.round_number, s.participant_id, s.created_at
		FROM score_entries s
		JOIN participants p ON p.id = s.participant_id
		WHERE p.board_id = $1
		ORDER BY s.participant_id, s.round_number, s.id
	`

	var scores []models.ScoreEntryDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &scores, query, boardID)

	logQuery(ctx, query, []any{boardID}, len(scores), err)

	if err != nil {
		return nil, err
	}
	return scores, nil
}

type ScoreWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewScoreWriteRepository(db *sqlx.DB, txGetter TxGetter) *ScoreWriteRepository {
	return &ScoreWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts entry and fills in its id and creation time.
func (r *ScoreWriteRepository) Create(ctx context.Context, entry *models.ScoreEntryDB) error {
	const query = `
		INSERT INTO score_entries (score_value, round_number, participant_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	args := []any{entry.ScoreValue, entry.RoundNumber, entry.ParticipantID}

	row := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...)
	err := row.Scan(&entry.ID, &entry.CreatedAt)

	logQuery(ctx, query, args, entry.ID, err)

	return err
}

func (r *ScoreWriteRepository) UpdateValue(ctx context.Context, id int64, value int) error {
	return r.exec(ctx, `UPDATE score_entries SET score_value = $2 WHERE id = $1`, id, value)
}

func (r *ScoreWriteRepository) Delete(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM score_entries WHERE id = $1`, id)
}

// DeleteAllByBoard removes every score entry of the board in one statement.
func (r *ScoreWriteRepository) DeleteAllByBoard(ctx context.Context, boardID int64) error {
	return r.exec(ctx, `
		DELETE FROM score_entries s
		USING participants p
		WHERE s.participant_id = p.id AND p.board_id = $1
	`, boardID)
}

func (r *ScoreWriteRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, args, rowsAffected, err)

	return err
}
