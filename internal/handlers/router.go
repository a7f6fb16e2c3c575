package handlers

import (
	"github.com/gorilla/mux"

	"github.com/vkozyrev/zametki/internal/auth"
	"github.com/vkozyrev/zametki/internal/middleware"
	"github.com/vkozyrev/zametki/internal/store"
)

// NewRouter wires every route. Public pages first, then the authenticated
// subrouter guarded by RequireAuth.
func NewRouter(st *store.Store, jwtService *auth.JWTService, rnd *Renderer) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.AccessLog())

	r.HandleFunc("/", HomeHandler(rnd)).Methods("GET")
	r.HandleFunc("/signup", SignupHandler(st, rnd)).Methods("GET", "POST")
	r.HandleFunc("/login", LoginHandler(st, jwtService, rnd)).Methods("GET", "POST")
	r.HandleFunc("/logout", LogoutHandler()).Methods("POST")

	s := r.PathPrefix("/").Subrouter()
	s.Use(auth.RequireAuth(jwtService))

	s.HandleFunc("/done", SuccessHandler(rnd)).Methods("GET")
	s.HandleFunc("/notes/", NotesListHandler(st, rnd)).Methods("GET")
	s.HandleFunc("/notes/add", AddNoteHandler(st, rnd)).Methods("GET", "POST")
	s.HandleFunc("/notes/edit/{slug}", EditNoteHandler(st, rnd)).Methods("GET", "POST")
	s.HandleFunc("/notes/delete/{slug}", DeleteNoteHandler(st, rnd)).Methods("GET", "POST", "DELETE")
	s.HandleFunc("/notes/{slug}", NoteDetailHandler(st, rnd)).Methods("GET")

	return r
}
