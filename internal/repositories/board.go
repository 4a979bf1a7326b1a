package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/JP-maker/gamegauge-api/internal/models"
	"github.com/jmoiron/sqlx"
)

const boardSelect = `
	SELECT b.id, b.name, b.owner_id, u.username AS owner_username, b.target_score,
	       b.score_condition, b.number_of_rounds, b.display_order, b.created_at, b.updated_at
	FROM boards b
	JOIN users u ON u.id = b.owner_id
`

// BoardReadRepository reads boards, always scoped by owner.
type BoardReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBoardReadRepository(db *sqlx.DB, txGetter TxGetter) *BoardReadRepository {
	return &BoardReadRepository{db: db, txGetter: txGetter}
}

// GetByIDAndOwner returns (nil, nil) when the board does not exist or belongs to someone else.
func (r *BoardReadRepository) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*models.BoardDB, error) {
	query := boardSelect + `WHERE b.id = $1 AND b.owner_id = $2`

	var board models.BoardDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &board, query, id, ownerID)

	logQuery(ctx, query, []any{id, ownerID}, board.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *BoardReadRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.BoardDB, error) {
	query := boardSelect + `WHERE b.owner_id = $1 ORDER BY b.display_order, b.id`

	var boards []models.BoardDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &boards, query, ownerID)

	logQuery(ctx, query, []any{ownerID}, len(boards), err)

	if err != nil {
		return nil, err
	}
	return boards, nil
}

// BoardWriteRepository mutates boards. Deleting a board removes its
// participants and score entries first.
type BoardWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBoardWriteRepository(db *sqlx.DB, txGetter TxGetter) *BoardWriteRepository {
	return &BoardWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts board at the end of its owner's display order and fills in
// id, display order and timestamps.
func (r *BoardWriteRepository) Create(ctx context.Context, board *models.BoardDB) error {
	const query = `
		INSERT INTO boards (name, owner_id, target_score, score_condition, number_of_rounds, display_order)
		VALUES ($1, $2, $3, $4, $5,
		        (SELECT COALESCE(MAX(display_order) + 1, 0) FROM boards WHERE owner_id = $2))
		RETURNING id, display_order, created_at, updated_at
	`
	args := []any{board.Name, board.OwnerID, board.TargetScore, string(board.ScoreCondition), board.NumberOfRounds}

	row := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...)
	err := row.Scan(&board.ID, &board.DisplayOrder, &board.CreatedAt, &board.UpdatedAt)

	logQuery(ctx, query, args, board.ID, err)

	return err
}

// Update overwrites the board rules and name.
func (r *BoardWriteRepository) Update(ctx context.Context, board *models.BoardDB) error {
	const query = `
		UPDATE boards
		SET name = $3, target_score = $4, score_condition = $5, number_of_rounds = $6, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING updated_at
	`
	args := []any{board.ID, board.OwnerID, board.Name, board.TargetScore, string(board.ScoreCondition), board.NumberOfRounds}

	row := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...)
	err := row.Scan(&board.UpdatedAt)

	logQuery(ctx, query, args, board.UpdatedAt, err)

	return err
}

// Delete removes the board with its participants and their score entries.
func (r *BoardWriteRepository) Delete(ctx context.Context, id int64) error {
	queries := []string{
		`DELETE FROM score_entries s USING participants p WHERE s.participant_id = p.id AND p.board_id = $1`,
		`DELETE FROM participants WHERE board_id = $1`,
		`DELETE FROM boards WHERE id = $1`,
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

// UpdateDisplayOrder sets the display order of one owned board.
func (r *BoardWriteRepository) UpdateDisplayOrder(ctx context.Context, id, ownerID int64, order int) error {
	const query = `UPDATE boards SET display_order = $3 WHERE id = $1 AND owner_id = $2`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id, ownerID, order)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, []any{id, ownerID, order}, rowsAffected, err)

	return err
}
