package mux

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"

	"blackjack-server/internal/config"
	"blackjack-server/internal/jwt"
	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/room"
	"blackjack-server/pkg/round"
)

type ctxKey int

const (
	ctxRoundIDKey ctxKey = iota
	ctxRoundKey
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	store   round.Store
	pitBoss *room.PitBoss
	rules   blackjack.Rule

	// store for testing purposes
	authRouter *gmux.Router
}

// NewMux returns a new HTTP mux
func NewMux(version string, store round.Store) *Mux {
	pitBoss := room.NewPitBoss()
	pitBoss.StartShift()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		store:   store,
		pitBoss: pitBoss,
		rules:   config.Instance().Rules,
	}

	this.authRouter = this.Router.NewRoute().Subrouter()
	this.authRouter.Use(this.authMiddleware)

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/game").Handler(this.postGame())
	}

	// requires bearer authorization for the round
	{
		r := this.authRouter

		gr := r.PathPrefix("/game/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
		gr.Use(this.roundMiddleware)

		gr.Methods(http.MethodGet).Path("").Handler(this.getGameUUID())
		gr.Methods(http.MethodDelete).Path("").Handler(this.deleteGameUUID())
		gr.Methods(http.MethodPost).Path("/action").Handler(this.postGameUUIDAction())
		gr.Methods(http.MethodGet).Path("/ws").Handler(this.getGameUUIDWS())
	}

	return this
}

func (m *Mux) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.FormValue("access_token")
		if token == "" {
			authHeader := strings.Split(r.Header.Get("Authorization"), " ")
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
				writeJSONError(w, http.StatusUnauthorized, nil)
				return
			}

			token = authHeader[1]
		}

		id, err := jwt.ValidRoundID(token)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxRoundIDKey, id)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

// roundMiddleware requires authMiddleware to execute first
func (m *Mux) roundMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		roundID, err := uuid.Parse(gmux.Vars(r)["uuid"])
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		// the bearer token only grants access to its own round
		if r.Context().Value(ctxRoundIDKey).(uuid.UUID) != roundID {
			writeJSONError(w, http.StatusForbidden, nil)
			return
		}

		rnd, err := m.store.Get(r.Context(), roundID)
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxRoundKey, rnd)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
