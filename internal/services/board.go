package services

import (
	"context"
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/JP-maker/gamegauge-api/internal/logger"
	"github.com/JP-maker/gamegauge-api/internal/models"
)

//go:generate mockgen -source=board.go -destination=mock_board.go -package=services

const (
	// copySuffix is appended to the name of a duplicated board.
	copySuffix = " (Copy)"
	// boardNameMax is the width of the boards.name column, in characters.
	boardNameMax = 100
)

// OwnerResolver finds the user behind a token subject.
type OwnerResolver interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// BoardReader reads boards scoped by owner.
type BoardReader interface {
	GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*models.BoardDB, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.BoardDB, error)
}

// BoardWriter mutates boards.
type BoardWriter interface {
	Create(ctx context.Context, board *models.BoardDB) error
	Update(ctx context.Context, board *models.BoardDB) error
	Delete(ctx context.Context, id int64) error
	UpdateDisplayOrder(ctx context.Context, id, ownerID int64, order int) error
}

// ParticipantReader lists the participants of a board.
type ParticipantReader interface {
	ListByBoard(ctx context.Context, boardID int64) ([]models.ParticipantDB, error)
}

// ParticipantWriter mutates participants.
type ParticipantWriter interface {
	Create(ctx context.Context, participant *models.ParticipantDB) error
	UpdateName(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}

// ScoreReader lists the score entries of a board.
type ScoreReader interface {
	ListByBoard(ctx context.Context, boardID int64) ([]models.ScoreEntryDB, error)
}

// ScoreWriter mutates score entries.
type ScoreWriter interface {
	Create(ctx context.Context, entry *models.ScoreEntryDB) error
	UpdateValue(ctx context.Context, id int64, value int) error
	Delete(ctx context.Context, id int64) error
	DeleteAllByBoard(ctx context.Context, boardID int64) error
}

// Transactor runs fn atomically.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// BoardService manages boards and their participants and scores on behalf
// of their owner. Every method resolves the caller from its email and looks
// boards up by (id, owner), so a foreign board is indistinguishable from a
// missing one.
type BoardService struct {
	users             OwnerResolver
	boardReader       BoardReader
	boardWriter       BoardWriter
	participantReader ParticipantReader
	participantWriter ParticipantWriter
	scoreReader       ScoreReader
	scoreWriter       ScoreWriter
	tx                Transactor
	events            eventPublisher
}

// NewBoardService creates a new BoardService. kafkaWriter may be nil.
func NewBoardService(
	users OwnerResolver,
	boardReader BoardReader,
	boardWriter BoardWriter,
	participantReader ParticipantReader,
	participantWriter ParticipantWriter,
	scoreReader ScoreReader,
	scoreWriter ScoreWriter,
	tx Transactor,
	kafkaWriter KafkaWriter,
) *BoardService {
	return &BoardService{
		users:             users,
		boardReader:       boardReader,
		boardWriter:       boardWriter,
		participantReader: participantReader,
		participantWriter: participantWriter,
		scoreReader:       scoreReader,
		scoreWriter:       scoreWriter,
		tx:                tx,
		events:            eventPublisher{writer: kafkaWriter, now: time.Now},
	}
}

// boardGraph is a board with its participants and their score entries.
type boardGraph struct {
	board        *models.BoardDB
	participants []models.ParticipantDB
	scores       map[int64][]models.ScoreEntryDB // by participant id
}

func (g *boardGraph) participant(id int64) (*models.ParticipantDB, bool) {
	for i := range g.participants {
		if g.participants[i].ID == id {
			return &g.participants[i], true
		}
	}
	return nil, false
}

func (s *BoardService) owner(ctx context.Context, email string) (*models.UserDB, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to resolve board owner", "email", email, "err", err)
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *BoardService) ownedBoard(ctx context.Context, email string, boardID int64) (*models.UserDB, *models.BoardDB, error) {
	user, err := s.owner(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	board, err := s.boardReader.GetByIDAndOwner(ctx, boardID, user.ID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get board", "board_id", boardID, "err", err)
		return nil, nil, fmt.Errorf("load board: %w", err)
	}
	if board == nil {
		logger.FromContext(ctx).Infow("board not found for owner", "board_id", boardID, "email", email)
		return nil, nil, ErrNotFound
	}
	return user, board, nil
}

func (s *BoardService) loadGraph(ctx context.Context, board *models.BoardDB) (*boardGraph, error) {
	participants, err := s.participantReader.ListByBoard(ctx, board.ID)
	if err != nil {
		return nil, fmt.Errorf("load participants: %w", err)
	}
	entries, err := s.scoreReader.ListByBoard(ctx, board.ID)
	if err != nil {
		return nil, fmt.Errorf("load scores: %w", err)
	}

	scores := make(map[int64][]models.ScoreEntryDB, len(participants))
	for _, e := range entries {
		scores[e.ParticipantID] = append(scores[e.ParticipantID], e)
	}
	return &boardGraph{board: board, participants: participants, scores: scores}, nil
}

func (s *BoardService) ownedGraph(ctx context.Context, email string, boardID int64) (*models.UserDB, *boardGraph, error) {
	user, board, err := s.ownedBoard(ctx, email, boardID)
	if err != nil {
		return nil, nil, err
	}
	graph, err := s.loadGraph(ctx, board)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to load board contents", "board_id", boardID, "err", err)
		return nil, nil, err
	}
	return user, graph, nil
}

func (s *BoardService) project(ctx context.Context, board *models.BoardDB) (*models.BoardResponse, error) {
	graph, err := s.loadGraph(ctx, board)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to load board contents", "board_id", board.ID, "err", err)
		return nil, err
	}
	resp := graph.response()
	return &resp, nil
}

// response builds the ranked view: totals are summed from the entries,
// participants sorted by total descending then id, entries by round.
func (g *boardGraph) response() models.BoardResponse {
	participants := make([]models.ParticipantResponse, 0, len(g.participants))
	for _, p := range g.participants {
		participants = append(participants, participantResponse(p, g.scores[p.ID]))
	}
	sort.SliceStable(participants, func(i, j int) bool {
		if participants[i].TotalScore != participants[j].TotalScore {
			return participants[i].TotalScore > participants[j].TotalScore
		}
		return participants[i].ID < participants[j].ID
	})

	return models.BoardResponse{
		ID:             g.board.ID,
		Name:           g.board.Name,
		TargetScore:    g.board.TargetScore,
		ScoreCondition: g.board.ScoreCondition,
		NumberOfRounds: g.board.NumberOfRounds,
		DisplayOrder:   g.board.DisplayOrder,
		CreatedAt:      g.board.CreatedAt,
		UpdatedAt:      g.board.UpdatedAt,
		OwnerUsername:  g.board.OwnerUsername,
		Participants:   participants,
	}
}

func participantResponse(p models.ParticipantDB, entries []models.ScoreEntryDB) models.ParticipantResponse {
	scores := make([]models.ScoreEntryResponse, 0, len(entries))
	total := 0
	for _, e := range entries {
		total += e.ScoreValue
		scores = append(scores, models.ScoreEntryResponse{ID: e.ID, ScoreValue: e.ScoreValue, RoundNumber: e.RoundNumber})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].RoundNumber != scores[j].RoundNumber {
			return scores[i].RoundNumber < scores[j].RoundNumber
		}
		return scores[i].ID < scores[j].ID
	})
	return models.ParticipantResponse{ID: p.ID, Name: p.Name, TotalScore: total, Scores: scores}
}

// CreateBoard creates a board at the end of the caller's display order.
func (s *BoardService) CreateBoard(ctx context.Context, email string, req models.BoardRequest) (*models.BoardResponse, error) {
	user, err := s.owner(ctx, email)
	if err != nil {
		return nil, err
	}

	board := &models.BoardDB{
		Name:           req.Name,
		OwnerID:        user.ID,
		OwnerUsername:  user.Username,
		TargetScore:    req.TargetScore,
		ScoreCondition: req.ScoreCondition.OrDefault(),
		NumberOfRounds: req.NumberOfRounds,
	}
	if err := s.boardWriter.Create(ctx, board); err != nil {
		logger.FromContext(ctx).Errorw("failed to create board", "email", email, "err", err)
		return nil, fmt.Errorf("create board: %w", err)
	}

	s.events.publish(ctx, models.EventBoardCreated, email, board.ID, 0)

	resp := (&boardGraph{board: board}).response()
	return &resp, nil
}

// ListBoards returns the caller's boards in display order.
func (s *BoardService) ListBoards(ctx context.Context, email string) ([]models.BoardResponse, error) {
	user, err := s.owner(ctx, email)
	if err != nil {
		return nil, err
	}

	boards, err := s.boardReader.ListByOwner(ctx, user.ID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list boards", "email", email, "err", err)
		return nil, fmt.Errorf("list boards: %w", err)
	}

	result := make([]models.BoardResponse, 0, len(boards))
	for i := range boards {
		resp, err := s.project(ctx, &boards[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *resp)
	}
	return result, nil
}

// GetBoard returns one board of the caller with its ranked participants.
func (s *BoardService) GetBoard(ctx context.Context, email string, boardID int64) (*models.BoardResponse, error) {
	_, graph, err := s.ownedGraph(ctx, email, boardID)
	if err != nil {
		return nil, err
	}
	resp := graph.response()
	return &resp, nil
}

// UpdateBoard overwrites the board name and rules.
func (s *BoardService) UpdateBoard(ctx context.Context, email string, boardID int64, req models.BoardRequest) (*models.BoardResponse, error) {
	_, board, err := s.ownedBoard(ctx, email, boardID)
	if err != nil {
		return nil, err
	}

	board.Name = req.Name
	board.TargetScore = req.TargetScore
	board.ScoreCondition = req.ScoreCondition.OrDefault()
	board.NumberOfRounds = req.NumberOfRounds
	if err := s.boardWriter.Update(ctx, board); err != nil {
		logger.FromContext(ctx).Errorw("failed to update board", "board_id", boardID, "err", err)
		return nil, fmt.Errorf("update board: %w", err)
	}

	s.events.publish(ctx, models.EventBoardUpdated, email, board.ID, 0)
	return s.project(ctx, board)
}

// DeleteBoard removes the board with its participants and scores.
func (s *BoardService) DeleteBoard(ctx context.Context, email string, boardID int64) error {
	_, board, err := s.ownedBoard(ctx, email, boardID)
	if err != nil {
		return err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.boardWriter.Delete(ctx, board.ID)
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete board", "board_id", boardID, "err", err)
		return fmt.Errorf("delete board: %w", err)
	}

	s.events.publish(ctx, models.EventBoardDeleted, email, board.ID, 0)
	return nil
}

// AddParticipant adds a participant to the board and returns it as inserted.
func (s *BoardService) AddParticipant(ctx context.Context, email string, boardID int64, req models.ParticipantRequest) (*models.ParticipantResponse, error) {
	_, board, err := s.ownedBoard(ctx, email, boardID)
	if err != nil {
		return nil, err
	}

	participant := &models.ParticipantDB{Name: req.Name, BoardID: board.ID}
	if err := s.participantWriter.Create(ctx, participant); err != nil {
		logger.FromContext(ctx).Errorw("failed to add participant", "board_id", boardID, "err", err)
		return nil, fmt.Errorf("add participant: %w", err)
	}

	s.events.publish(ctx, models.EventParticipantAdded, email, board.ID, participant.ID)

	resp := participantResponse(*participant, nil)
	return &resp, nil
}

// UpdateParticipant renames a participant of the board.
func (s *BoardService) UpdateParticipant(ctx context.Context, email string, boardID, participantID int64, req models.ParticipantRequest) (*models.ParticipantResponse, error) {
	_, graph, err := s.ownedGraph(ctx, email, boardID)
	if err != nil {
		return nil, err
	}

	participant, ok := graph.participant(participantID)
	if !ok {
		return nil, ErrNotFound
	}

	if err := s.participantWriter.UpdateName(ctx, participant.ID, req.Name); err != nil {
		logger.FromContext(ctx).Errorw("failed to rename participant", "participant_id", participantID, "err", err)
		return nil, fmt.Errorf("update participant: %w", err)
	}
	participant.Name = req.Name

	s.events.publish(ctx, models.EventParticipantUpdated, email, boardID, participantID)

	resp := participantResponse(*participant, graph.scores[participant.ID])
	return &resp, nil
}

// RemoveParticipant deletes a participant of the board and its score entries.
func (s *BoardService) RemoveParticipant(ctx context.Context, email string, boardID, participantID int64) error {
	_, graph, err := s.ownedGraph(ctx, email, boardID)
	if err != nil {
		return err
	}

	if _, ok := graph.participant(participantID); !ok {
		return ErrNotFound
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.participantWriter.Delete(ctx, participantID)
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to remove participant", "participant_id", participantID, "err", err)
		return fmt.Errorf("remove participant: %w", err)
	}

	s.events.publish(ctx, models.EventParticipantRemoved, email, boardID, participantID)
	return nil
}

// SetScore records the score of one round: the existing entry for the round
// is overwritten, otherwise a new entry is created.
func (s *BoardService) SetScore(ctx context.Context, email string, boardID, participantID int64, value, round int) (*models.ScoreEntryResponse, error) {
	_, graph, err := s.ownedGraph(ctx, email, boardID)
	if err != nil {
		return nil, err
	}

	participant, ok := graph.participant(participantID)
	if !ok {
		return nil, ErrNotFound
	}

	var existing *models.ScoreEntryDB
	for i, e := range graph.scores[participant.ID] {
		if e.RoundNumber == round {
			existing = &graph.scores[participant.ID][i]
			break
		}
	}

	var entry models.ScoreEntryDB
	if existing != nil {
		if err := s.scoreWriter.UpdateValue(ctx, existing.ID, value); err != nil {
			logger.FromContext(ctx).Errorw("failed to update score", "score_id", existing.ID, "err", err)
			return nil, fmt.Errorf("update score: %w", err)
		}
		existing.ScoreValue = value
		entry = *existing
	} else {
		entry = models.ScoreEntryDB{ScoreValue: value, RoundNumber: round, ParticipantID: participant.ID}
		if err := s.scoreWriter.Create(ctx, &entry); err != nil {
			logger.FromContext(ctx).Errorw("failed to create score", "participant_id", participantID, "err", err)
			return nil, fmt.Errorf("create score: %w", err)
		}
	}

	s.events.publish(ctx, models.EventScoreSet, email, boardID, entry.ID)

	return &models.ScoreEntryResponse{ID: entry.ID, ScoreValue: entry.ScoreValue, RoundNumber: entry.RoundNumber}, nil
}

// DeleteScore deletes one score entry of a participant of the board.
func (s *BoardService) DeleteScore(ctx context.Context, email string, boardID, participantID, scoreID int64) error {
	_, graph, err := s.ownedGraph(ctx, email, boardID)
	if err != nil {
		return err
	}

	if _, ok := graph.participant(participantID); !ok {
		return ErrNotFound
	}

	found := false
	for _, e := range graph.scores[participantID] {
		if e.ID == scoreID {
			found = true
			break
		}
	}
	if !found {
		return ErrNotFound
	}

	if err := s.scoreWriter.Delete(ctx, scoreID); err != nil {
		logger.FromContext(ctx).Errorw("failed to delete score", "score_id", scoreID, "err", err)
		return fmt.Errorf("delete score: %w", err)
	}

	s.events.publish(ctx, models.EventScoreDeleted, email, boardID, scoreID)
	return nil
}

// RestartBoard clears every score of the board and keeps its participants.
func (s *BoardService) RestartBoard(ctx context.Context, email string, boardID int64) (*models.BoardResponse, error) {
	_, board, err := s.ownedBoard(ctx, email, boardID)
	if err != nil {
		return nil, err
	}

	if err := s.scoreWriter.DeleteAllByBoard(ctx, board.ID); err != nil {
		logger.FromContext(ctx).Errorw("failed to restart board", "board_id", boardID, "err", err)
		return nil, fmt.Errorf("restart board: %w", err)
	}

	s.events.publish(ctx, models.EventBoardRestarted, email, board.ID, 0)
	return s.project(ctx, board)
}

// UpdateBoardsOrder assigns display orders 0..n-1 following boardIDs.
// Ids the caller does not own, and repeated ids, are skipped without
// taking a slot.
func (s *BoardService) UpdateBoardsOrder(ctx context.Context, email string, boardIDs []int64) error {
	user, err := s.owner(ctx, email)
	if err != nil {
		return err
	}

	boards, err := s.boardReader.ListByOwner(ctx, user.ID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list boards", "email", email, "err", err)
		return fmt.Errorf("list boards: %w", err)
	}

	owned := make(map[int64]bool, len(boards))
	for _, b := range boards {
		owned[b.ID] = true
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		order := 0
		for _, id := range boardIDs {
			if !owned[id] {
				continue
			}
			if err := s.boardWriter.UpdateDisplayOrder(ctx, id, user.ID, order); err != nil {
				return err
			}
			owned[id] = false
			order++
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to reorder boards", "email", email, "err", err)
		return fmt.Errorf("reorder boards: %w", err)
	}

	s.events.publish(ctx, models.EventBoardsReordered, email, 0, 0)
	return nil
}

// ImportBoard creates a board with its participants and scores in one transaction.
func (s *BoardService) ImportBoard(ctx context.Context, email string, req models.BoardImportRequest) (*models.BoardResponse, error) {
	user, err := s.owner(ctx, email)
	if err != nil {
		return nil, err
	}

	board := &models.BoardDB{
		Name:           req.Name,
		OwnerID:        user.ID,
		OwnerUsername:  user.Username,
		TargetScore:    req.TargetScore,
		ScoreCondition: req.ScoreCondition.OrDefault(),
		NumberOfRounds: req.NumberOfRounds,
	}
	graph := &boardGraph{board: board, scores: make(map[int64][]models.ScoreEntryDB)}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.boardWriter.Create(ctx, board); err != nil {
			return err
		}
		for _, p := range req.Participants {
			participant := models.ParticipantDB{Name: p.Name, BoardID: board.ID}
			if err := s.participantWriter.Create(ctx, &participant); err != nil {
				return err
			}
			graph.participants = append(graph.participants, participant)

			for _, sc := range lastScorePerRound(p.Scores) {
				entry := models.ScoreEntryDB{ScoreValue: sc.ScoreValue, RoundNumber: sc.RoundNumber, ParticipantID: participant.ID}
				if err := s.scoreWriter.Create(ctx, &entry); err != nil {
					return err
				}
				graph.scores[participant.ID] = append(graph.scores[participant.ID], entry)
			}
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to import board", "email", email, "err", err)
		return nil, fmt.Errorf("import board: %w", err)
	}

	s.events.publish(ctx, models.EventBoardImported, email, board.ID, 0)

	resp := graph.response()
	return &resp, nil
}

// DuplicateBoard copies the rules and participant names of a board into a
// new board owned by the caller. Scores are not copied.
func (s *BoardService) DuplicateBoard(ctx context.Context, email string, boardID int64) (*models.BoardResponse, error) {
	user, source, err := s.ownedGraph(ctx, email, boardID)
	if err != nil {
		return nil, err
	}

	board := &models.BoardDB{
		Name:           copyName(source.board.Name),
		OwnerID:        user.ID,
		OwnerUsername:  user.Username,
		TargetScore:    source.board.TargetScore,
		ScoreCondition: source.board.ScoreCondition.OrDefault(),
		NumberOfRounds: source.board.NumberOfRounds,
	}
	graph := &boardGraph{board: board}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.boardWriter.Create(ctx, board); err != nil {
			return err
		}
		for _, p := range source.participants {
			participant := models.ParticipantDB{Name: p.Name, BoardID: board.ID}
			if err := s.participantWriter.Create(ctx, &participant); err != nil {
				return err
			}
			graph.participants = append(graph.participants, participant)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to duplicate board", "board_id", boardID, "err", err)
		return nil, fmt.Errorf("duplicate board: %w", err)
	}

	s.events.publish(ctx, models.EventBoardDuplicated, email, board.ID, boardID)

	resp := graph.response()
	return &resp, nil
}

// lastScorePerRound keeps one score per round, the last one given, in the
// order rounds first appear.
func lastScorePerRound(scores []models.ScoreImport) []models.ScoreImport {
	index := make(map[int]int, len(scores))
	result := make([]models.ScoreImport, 0, len(scores))
	for _, sc := range scores {
		if i, ok := index[sc.RoundNumber]; ok {
			result[i] = sc
			continue
		}
		index[sc.RoundNumber] = len(result)
		result = append(result, sc)
	}
	return result
}

// copyName appends copySuffix, cutting the base name so the result still
// fits in boardNameMax characters.
func copyName(name string) string {
	base := []rune(name)
	if limit := boardNameMax - utf8.RuneCountInString(copySuffix); len(base) > limit {
		base = base[:limit]
	}
	return string(base) + copySuffix
}
