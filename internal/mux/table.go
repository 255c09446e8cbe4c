package mux

import (
	"errors"
	"net/http"

	gmux "github.com/gorilla/mux"

	"holdemtable-server/pkg/deck"
	"holdemtable-server/pkg/table"
)

type createTableResponse struct {
	UUID string `json:"uuid"`
}

type currentPlayerJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type tableResponse struct {
	UUID           string             `json:"uuid"`
	State          table.State        `json:"state"`
	Players        []*table.Player    `json:"players"`
	CommunityCards deck.Hand          `json:"communityCards"`
	Pot            int                `json:"pot"`
	Bets           map[string]int     `json:"bets"`
	CurrentPlayer  *currentPlayerJSON `json:"currentPlayer"`
	Winners        []*table.Player    `json:"winners"`
	WinnerHand     deck.Hand          `json:"winnerHand"`
}

func (m *Mux) postTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm := m.casino.CreateRoom()
		writeJSON(w, http.StatusCreated, createTableResponse{UUID: rm.UUID})
	}
}

func (m *Mux) getTableUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm := roomFromContext(r)

		var payload tableResponse
		_ = rm.WithTable(func(t *table.Table) error {
			payload = tableResponse{
				UUID:           rm.UUID,
				State:          t.State(),
				Players:        t.Players(),
				CommunityCards: t.CommunityCards(),
				Pot:            t.Pot(),
				Bets:           t.Bets(),
				Winners:        t.Winners(),
				WinnerHand:     t.WinnerHand(),
			}

			if p, ok := t.CurrentPlayer(); ok {
				payload.CurrentPlayer = &currentPlayerJSON{ID: p.ID, Name: p.Name}
			}

			return nil
		})

		writeJSON(w, http.StatusOK, payload)
	}
}

func (m *Mux) postTableUUIDPlayer() http.HandlerFunc {
	type payloadIn struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var payload payloadIn
		if !decodeRequest(w, r, &payload) {
			return
		}

		if payload.ID == "" || payload.Name == "" {
			writeJSONError(w, http.StatusBadRequest, errors.New("id and name are required"))
			return
		}

		rm := roomFromContext(r)
		_ = rm.WithTable(func(t *table.Table) error {
			t.AddPlayer(payload.ID, payload.Name)
			return nil
		})

		writeStatusOK(w)
	}
}

func (m *Mux) postTableUUIDStart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm := roomFromContext(r)
		_ = rm.WithTable(func(t *table.Table) error {
			t.Start()
			return nil
		})

		writeStatusOK(w)
	}
}

func (m *Mux) postTableUUIDAction() http.HandlerFunc {
	type payloadIn struct {
		Action string `json:"action"`
		Amount int    `json:"amount"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var payload payloadIn
		if !decodeRequest(w, r, &payload) {
			return
		}

		kind, err := table.ActionKindFromString(payload.Action)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		rm := roomFromContext(r)
		err = rm.WithTable(func(t *table.Table) error {
			return t.Act(table.Action{Kind: kind, Amount: payload.Amount})
		})

		if err != nil {
			switch err.(type) {
			case table.IllegalActionError, table.IllegalAmountError:
				writeJSONError(w, http.StatusBadRequest, err)
			default:
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		writeStatusOK(w)
	}
}

func (m *Mux) getTableUUIDPlayerIDCards() http.HandlerFunc {
	type payloadOut struct {
		Cards deck.Hand `json:"cards"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		rm := roomFromContext(r)
		id := gmux.Vars(r)["id"]

		var cards deck.Hand
		_ = rm.WithTable(func(t *table.Table) error {
			cards = t.PlayerCards(id)
			return nil
		})

		writeJSON(w, http.StatusOK, payloadOut{Cards: cards})
	}
}
