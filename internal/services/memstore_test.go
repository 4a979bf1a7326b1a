package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/JP-maker/gamegauge-api/internal/models"
)

// memDB is an in-memory stand-in for the Postgres repositories.
type memDB struct {
	mu           sync.Mutex
	seq          int64
	users        map[int64]models.UserDB
	boards       map[int64]models.BoardDB
	participants map[int64]models.ParticipantDB
	scores       map[int64]models.ScoreEntryDB
	writes       int
}

func newMemDB() *memDB {
	return &memDB{
		users:        map[int64]models.UserDB{},
		boards:       map[int64]models.BoardDB{},
		participants: map[int64]models.ParticipantDB{},
		scores:       map[int64]models.ScoreEntryDB{},
	}
}

func (db *memDB) nextID() int64 {
	db.seq++
	return db.seq
}

type memUsers struct{ db *memDB }

func (r memUsers) find(match func(models.UserDB) bool) (*models.UserDB, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if match(u) {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*models.UserDB, error) {
	return r.find(func(u models.UserDB) bool { return u.Email == email })
}

func (r memUsers) GetByUsername(_ context.Context, username string) (*models.UserDB, error) {
	return r.find(func(u models.UserDB) bool { return u.Username == username })
}

func (r memUsers) GetByResetToken(_ context.Context, token string) (*models.UserDB, error) {
	return r.find(func(u models.UserDB) bool { return u.ResetPasswordToken != nil && *u.ResetPasswordToken == token })
}

func (r memUsers) GetByVerificationToken(_ context.Context, token string) (*models.UserDB, error) {
	return r.find(func(u models.UserDB) bool { return u.VerificationToken != nil && *u.VerificationToken == token })
}

func (r memUsers) Create(_ context.Context, user *models.UserDB) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.Username == user.Username {
			return &models.DuplicateKeyError{Field: "username"}
		}
		if u.Email == user.Email {
			return &models.DuplicateKeyError{Field: "email"}
		}
	}
	user.ID = r.db.nextID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.db.users[user.ID] = *user
	r.db.writes++
	return nil
}

func (r memUsers) Update(_ context.Context, user *models.UserDB) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	user.UpdatedAt = time.Now()
	r.db.users[user.ID] = *user
	r.db.writes++
	return nil
}

type memBoards struct{ db *memDB }

func (r memBoards) withOwner(b models.BoardDB) models.BoardDB {
	b.OwnerUsername = r.db.users[b.OwnerID].Username
	return b
}

func (r memBoards) GetByIDAndOwner(_ context.Context, id, ownerID int64) (*models.BoardDB, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	b, ok := r.db.boards[id]
	if !ok || b.OwnerID != ownerID {
		return nil, nil
	}
	b = r.withOwner(b)
	return &b, nil
}

func (r memBoards) ListByOwner(_ context.Context, ownerID int64) ([]models.BoardDB, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var result []models.BoardDB
	for _, b := range r.db.boards {
		if b.OwnerID == ownerID {
			result = append(result, r.withOwner(b))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DisplayOrder != result[j].DisplayOrder {
			return result[i].DisplayOrder < result[j].DisplayOrder
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r memBoards) Create(_ context.Context, board *models.BoardDB) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	order := 0
	for _, b := range r.db.boards {
		if b.OwnerID == board.OwnerID && b.DisplayOrder+1 > order {
			order = b.DisplayOrder + 1
		}
	}
	board.ID = r.db.nextID()
	board.DisplayOrder = order
	board.CreatedAt = time.Now()
	board.UpdatedAt = board.CreatedAt
	r.db.boards[board.ID] = *board
	board.OwnerUsername = r.db.users[board.OwnerID].Username
	r.db.writes++
	return nil
}

func (r memBoards) Update(_ context.Context, board *models.BoardDB) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	board.UpdatedAt = time.Now()
	r.db.boards[board.ID] = *board
	r.db.writes++
	return nil
}

func (r memBoards) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for pid, p := range r.db.participants {
		if p.BoardID != id {
			continue
		}
		for sid, s := range r.db.scores {
			if s.ParticipantID == pid {
				delete(r.db.scores, sid)
			}
		}
		delete(r.db.participants, pid)
	}
	delete(r.db.boards, id)
	r.db.writes++
	return nil
}

func (r memBoards) UpdateDisplayOrder(_ context.Context, id, ownerID int64, order int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if b, ok := r.db.boards[id]; ok && b.OwnerID == ownerID {
		b.DisplayOrder = order
		r.db.boards[id] = b
	}
	r.db.writes++
	return nil
}

type memParticipants struct{ db *memDB }

func (r memParticipants) ListByBoard(_ context.Context, boardID int64) ([]models.ParticipantDB, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var result []models.ParticipantDB
	for _, p := range r.db.participants {
		if p.BoardID == boardID {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r memParticipants) Create(_ context.Context, participant *models.ParticipantDB) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	participant.ID = r.db.nextID()
	participant.CreatedAt = time.Now()
	participant.UpdatedAt = participant.CreatedAt
	r.db.participants[participant.ID] = *participant
	r.db.writes++
	return nil
}

func (r memParticipants) UpdateName(_ context.Context, id int64, name string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p := r.db.participants[id]
	p.Name = name
	r.db.participants[id] = p
	r.db.writes++
	return nil
}

func (r memParticipants) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for sid, s := range r.db.scores {
		if s.ParticipantID == id {
			delete(r.db.scores, sid)
		}
	}
	delete(r.db.participants, id)
	r.db.writes++
	return nil
}

type memScores struct{ db *memDB }

func (r memScores) ListByBoard(_ context.Context, boardID int64) ([]models.ScoreEntryDB, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var result []models.ScoreEntryDB
	for _, s := range r.db.scores {
		if p, ok := r.db.participants[s.ParticipantID]; ok && p.BoardID == boardID {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r memScores) Create(_ context.Context, entry *models.ScoreEntryDB) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	entry.ID = r.db.nextID()
	entry.CreatedAt = time.Now()
	r.db.scores[entry.ID] = *entry
	r.db.writes++
	return nil
}

func (r memScores) UpdateValue(_ context.Context, id int64, value int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	s := r.db.scores[id]
	s.ScoreValue = value
	r.db.scores[id] = s
	r.db.writes++
	return nil
}

func (r memScores) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.scores, id)
	r.db.writes++
	return nil
}

func (r memScores) DeleteAllByBoard(_ context.Context, boardID int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for sid, s := range r.db.scores {
		if p, ok := r.db.participants[s.ParticipantID]; ok && p.BoardID == boardID {
			delete(r.db.scores, sid)
		}
	}
	r.db.writes++
	return nil
}

func (db *memDB) countScores() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.scores)
}

// passThroughTx runs fn directly.
type passThroughTx struct{}

func (passThroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// stubVerifier accepts exactly one token.
type stubVerifier struct{ valid string }

func (v stubVerifier) Check(_ context.Context, token string) bool { return token == v.valid }

// recordingNotifier keeps the links it was asked to send.
type recordingNotifier struct {
	mu          sync.Mutex
	resetLinks  []string
	verifyLinks []string
}

func (n *recordingNotifier) SendResetLink(_ context.Context, _, link string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.resetLinks = append(n.resetLinks, link)
	return nil
}

func (n *recordingNotifier) SendVerificationLink(_ context.Context, _, link string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.verifyLinks = append(n.verifyLinks, link)
	return nil
}
