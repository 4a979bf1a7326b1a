package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/JP-maker/gamegauge-api/internal/logger"
	"github.com/jmoiron/sqlx"
)

type txKey struct{}

// SetTxToContext attaches tx to ctx for the repositories downstream.
func SetTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTxFromContext returns the request transaction or nil.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}

// TxMiddleware runs the handler inside one transaction. The response is held
// back until the outcome is known: a status of 400 or above rolls back, any
// other status commits, and a failed commit is reported as 500.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			tx, err := db.BeginTxx(ctx, nil)
			if err != nil {
				log.Errorw("begin transaction", "error", err)
				writeInternalError(w)
				return
			}

			finished := false
			defer func() {
				if finished {
					return
				}
				if rbErr := tx.Rollback(); rbErr != nil {
					log.Errorw("rollback after panic", "error", rbErr)
				}
			}()

			held := &heldResponse{header: w.Header(), status: http.StatusOK}
			next.ServeHTTP(held, r.WithContext(SetTxToContext(ctx, tx)))
			finished = true

			if held.status >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					log.Errorw("rollback transaction", "error", err)
				}
				held.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				log.Errorw("commit transaction", "error", err)
				writeInternalError(w)
				return
			}
			held.flush(w)
		})
	}
}

// heldResponse buffers status and body until the transaction settles.
// Headers go straight to the real writer's map since nothing is sent yet.
type heldResponse struct {
	header      http.Header
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (h *heldResponse) Header() http.Header { return h.header }

func (h *heldResponse) WriteHeader(code int) {
	if h.wroteHeader {
		return
	}
	h.wroteHeader = true
	h.status = code
}

func (h *heldResponse) Write(b []byte) (int, error) {
	h.wroteHeader = true
	return h.body.Write(b)
}

func (h *heldResponse) flush(w http.ResponseWriter) {
	w.WriteHeader(h.status)
	if h.body.Len() > 0 {
		_, _ = w.Write(h.body.Bytes())
	}
}

func writeInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`{"error":"Internal server error"}`))
}
