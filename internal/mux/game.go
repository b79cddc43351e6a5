package mux

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"blackjack-server/internal/jwt"
	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/round"
)

type roundResponse struct {
	ID uuid.UUID `json:"id"`

	// Token is only present on round creation
	Token string `json:"token,omitempty"`

	State blackjack.PublicState `json:"state"`
}

// clientActions are the action types a client may dispatch. Dealer moves and
// settlement are driven internally by the engine.
var clientActions = map[blackjack.ActionType]bool{
	blackjack.ActionRestore:   true,
	blackjack.ActionDeal:      true,
	blackjack.ActionInsurance: true,
	blackjack.ActionSplit:     true,
	blackjack.ActionHit:       true,
	blackjack.ActionDouble:    true,
	blackjack.ActionStand:     true,
	blackjack.ActionSurrender: true,
}

func (m *Mux) postGame() http.HandlerFunc {
	type postGamePayload struct {
		Rules *blackjack.Rule `json:"rules"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		rules := m.rules
		if r.ContentLength > 0 {
			var payload postGamePayload
			if !decodeRequest(w, r, &payload) {
				return
			}

			if payload.Rules != nil {
				rules = *payload.Rules
			}
		}

		game := blackjack.NewWithRules(rules)
		rnd, err := m.store.Create(r.Context(), game.State())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		signed, err := jwt.Sign(rnd.ID)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, roundResponse{
			ID:    rnd.ID,
			Token: signed,
			State: rnd.State.Public(),
		})
	}
}

func (m *Mux) getGameUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rnd := r.Context().Value(ctxRoundKey).(*round.Round)
		writeJSON(w, http.StatusOK, roundResponse{
			ID:    rnd.ID,
			State: rnd.State.Public(),
		})
	}
}

func (m *Mux) postGameUUIDAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var action blackjack.Action
		if !decodeRequest(w, r, &action) {
			return
		}

		if !clientActions[action.Type] {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("unknown action: %s", action.Type))
			return
		}

		rnd := r.Context().Value(ctxRoundKey).(*round.Round)

		game := blackjack.New(&rnd.State, blackjack.WithLogger(logrus.WithField("round", rnd.ID)))
		rnd.State = game.Dispatch(action)

		if err := m.store.Save(r.Context(), rnd); err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		m.pitBoss.StateChanged(rnd.ID, rnd.State.Public())

		writeJSON(w, http.StatusOK, roundResponse{
			ID:    rnd.ID,
			State: rnd.State.Public(),
		})
	}
}

func (m *Mux) deleteGameUUID() http.HandlerFunc {
	type deleteResponse struct {
		Deleted bool `json:"deleted"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		rnd := r.Context().Value(ctxRoundKey).(*round.Round)
		if err := m.store.Delete(r.Context(), rnd.ID); err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, deleteResponse{Deleted: true})
	}
}
