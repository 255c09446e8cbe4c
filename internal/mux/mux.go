package mux

import (
	"context"
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"holdemtable-server/internal/config"
	"holdemtable-server/pkg/room"
	"holdemtable-server/pkg/table"
)

type ctxKey int

const (
	ctxRoomKey ctxKey = iota
)

// Mux handles HTTP requests
// It is a thin adapter: every call translates 1:1 to a table operation, and
// all mutating calls for a table go through the room's lock
type Mux struct {
	*gmux.Router
	version string
	casino  *room.Casino
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	options := table.Options{
		StartingCash: config.Instance().Table.StartingCash,
		MaxPlayers:   config.Instance().Table.MaxPlayers,
	}

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		casino:  room.NewCasino(logrus.StandardLogger(), options),
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/table").Handler(this.postTable())

	tr := r.PathPrefix("/table/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	tr.Use(this.tableMiddleware)
	tr.Methods(http.MethodGet).Path("").Handler(this.getTableUUID())
	tr.Methods(http.MethodPost).Path("/player").Handler(this.postTableUUIDPlayer())
	tr.Methods(http.MethodPost).Path("/start").Handler(this.postTableUUIDStart())
	tr.Methods(http.MethodPost).Path("/action").Handler(this.postTableUUIDAction())
	tr.Methods(http.MethodGet).Path("/player/{id}/cards").Handler(this.getTableUUIDPlayerIDCards())
	tr.Methods(http.MethodGet).Path("/ws").Handler(this.getTableUUIDWS())

	return this
}

func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vars := gmux.Vars(r)

		rm, found := m.casino.Room(vars["uuid"])
		if !found {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		ctx := context.WithValue(r.Context(), ctxRoomKey, rm)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func roomFromContext(r *http.Request) *room.Room {
	return r.Context().Value(ctxRoomKey).(*room.Room)
}
