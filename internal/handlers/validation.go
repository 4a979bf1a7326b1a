package handlers

import (
	"fmt"
	"math"
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/JP-maker/gamegauge-api/internal/models"
)

const (
	usernameMin        = 3
	usernameMax        = 50
	passwordMin        = 8
	passwordMax        = 72
	boardNameMin       = 3
	boardNameMax       = 100
	participantNameMin = 1
	participantNameMax = 50
)

// ValidationErrorResponse lists the rejected fields of a request.
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	// default: Validation failed
	Error string `json:"error"`

	// Message per rejected field
	Fields map[string]string `json:"fields"`
}

type fieldErrors map[string]string

func (fe fieldErrors) add(field, msg string) {
	if _, ok := fe[field]; !ok {
		fe[field] = msg
	}
}

// write answers 400 when fe is not empty and reports whether it did.
func (fe fieldErrors) write(w http.ResponseWriter) bool {
	if len(fe) == 0 {
		return false
	}
	writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Error:  "Validation failed",
		Fields: fe,
	})
	return true
}

// length bounds the stored value; blank padding does not count toward min.
func (fe fieldErrors) length(field, value string, min, max int) {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < min || utf8.RuneCountInString(value) > max {
		fe.add(field, fmt.Sprintf("must be between %d and %d characters", min, max))
	}
}

// integer bounds a value stored in an INTEGER column.
func (fe fieldErrors) integer(field string, value int) {
	if value < math.MinInt32 || value > math.MaxInt32 {
		fe.add(field, fmt.Sprintf("must be between %d and %d", math.MinInt32, math.MaxInt32))
	}
}

func (fe fieldErrors) optionalInteger(field string, value *int) {
	if value != nil {
		fe.integer(field, *value)
	}
}

func (fe fieldErrors) username(value string) {
	fe.length("username", value, usernameMin, usernameMax)
}

func (fe fieldErrors) email(value string) {
	if value == "" {
		fe.add("email", "must not be blank")
		return
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		fe.add("email", "must be a well-formed email address")
	}
}

// password limits are in bytes, bcrypt ignores input past 72.
func (fe fieldErrors) password(field, value string) {
	if len(value) < passwordMin || len(value) > passwordMax {
		fe.add(field, fmt.Sprintf("must be between %d and %d bytes", passwordMin, passwordMax))
	}
}

func (fe fieldErrors) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		fe.add(field, "must not be blank")
	}
}

func (fe fieldErrors) boardRules(name string, condition models.ScoreCondition, targetScore, rounds *int) {
	fe.length("name", name, boardNameMin, boardNameMax)
	if condition != "" && !condition.Valid() {
		fe.add("scoreCondition", fmt.Sprintf("must be %s or %s", models.HighestWins, models.LowestWins))
	}
	fe.optionalInteger("targetScore", targetScore)
	fe.optionalInteger("numberOfRounds", rounds)
}

func (fe fieldErrors) score(prefix string, value, round *int) {
	if value == nil {
		fe.add(prefix+"scoreValue", "must not be null")
	} else {
		fe.integer(prefix+"scoreValue", *value)
	}
	if round == nil {
		fe.add(prefix+"roundNumber", "must not be null")
	} else {
		fe.integer(prefix+"roundNumber", *round)
	}
}

func (fe fieldErrors) participantName(field, value string) {
	fe.length(field, value, participantNameMin, participantNameMax)
}

func (fe fieldErrors) boardImport(req models.BoardImportRequest) {
	fe.boardRules(req.Name, req.ScoreCondition, req.TargetScore, req.NumberOfRounds)
	for i, p := range req.Participants {
		fe.participantName(fmt.Sprintf("participants[%d].name", i), p.Name)
		for j, sc := range p.Scores {
			fe.score(fmt.Sprintf("participants[%d].scores[%d].", i, j), &sc.ScoreValue, &sc.RoundNumber)
		}
	}
}
