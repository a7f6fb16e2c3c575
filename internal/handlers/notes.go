package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vkozyrev/zametki/internal/auth"
	"github.com/vkozyrev/zametki/internal/forms"
	"github.com/vkozyrev/zametki/internal/store"
)

func HomeHandler(rnd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rnd.Render(w, http.StatusOK, "home.html", nil)
	}
}

func NotesListHandler(st *store.Store, rnd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserID(r.Context())

		notes, err := st.ListNotesByAuthor(r.Context(), userID)
		if err != nil {
			http.Error(w, "Failed to fetch notes", http.StatusInternalServerError)
			log.Println("List notes error:", err)
			return
		}

		rnd.Render(w, http.StatusOK, "notes_list.html", map[string]interface{}{
			"Notes": notes,
		})
	}
}

func AddNoteHandler(st *store.Store, rnd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			rnd.Render(w, http.StatusOK, "note_form.html", map[string]interface{}{
				"Form": &forms.NoteForm{Errors: map[string]string{}},
			})
			return
		}

		userID := auth.UserID(r.Context())

		form := forms.ParseNoteForm(r)
		if !form.Validate() {
			rnd.Render(w, http.StatusOK, "note_form.html", map[string]interface{}{
				"Form": form,
			})
			return
		}

		_, err := st.CreateNote(r.Context(), form.Title, form.Text, userID, form.Slug)
		var dup *store.DuplicateSlugError
		if errors.As(err, &dup) {
			form.AddError("slug", dup.Slug+forms.SlugWarning)
			rnd.Render(w, http.StatusOK, "note_form.html", map[string]interface{}{
				"Form": form,
			})
			return
		}
		if err != nil {
			http.Error(w, "Failed to save note", http.StatusInternalServerError)
			log.Println("Create note error:", err)
			return
		}

		http.Redirect(w, r, "/done", http.StatusSeeOther)
	}
}

func NoteDetailHandler(st *store.Store, rnd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserID(r.Context())
		noteSlug := mux.Vars(r)["slug"]

		note, err := st.GetOwnedNote(r.Context(), noteSlug, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				http.NotFound(w, r)
			} else {
				http.Error(w, "Failed to fetch note", http.StatusInternalServerError)
				log.Println("View note error:", err)
			}
			return
		}

		rnd.Render(w, http.StatusOK, "note_detail.html", map[string]interface{}{
			"Note": note,
		})
	}
}

func EditNoteHandler(st *store.Store, rnd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserID(r.Context())
		noteSlug := mux.Vars(r)["slug"]

		// The owner check runs on every request, for the GET form as well as
		// the actual update.
		note, err := st.GetOwnedNote(r.Context(), noteSlug, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				http.NotFound(w, r)
			} else {
				http.Error(w, "Failed to fetch note", http.StatusInternalServerError)
				log.Println("Edit note error:", err)
			}
			return
		}

		if r.Method == http.MethodGet {
			form := &forms.NoteForm{
				Title:  note.Title,
				Text:   note.Text,
				Slug:   note.Slug,
				Errors: map[string]string{},
			}
			rnd.Render(w, http.StatusOK, "note_form.html", map[string]interface{}{
				"Form": form,
				"Edit": true,
			})
			return
		}

		form := forms.ParseNoteForm(r)
		if !form.Validate() {
			form.Slug = note.Slug
			rnd.Render(w, http.StatusOK, "note_form.html", map[string]interface{}{
				"Form": form,
				"Edit": true,
			})
			return
		}

		if _, err := st.UpdateNote(r.Context(), noteSlug, userID, form.Title, form.Text); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				http.NotFound(w, r)
			} else {
				http.Error(w, "Failed to update note", http.StatusInternalServerError)
				log.Println("Update note error:", err)
			}
			return
		}

		http.Redirect(w, r, "/done", http.StatusSeeOther)
	}
}

func DeleteNoteHandler(st *store.Store, rnd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserID(r.Context())
		noteSlug := mux.Vars(r)["slug"]

		if r.Method == http.MethodGet {
			note, err := st.GetOwnedNote(r.Context(), noteSlug, userID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					http.NotFound(w, r)
				} else {
					http.Error(w, "Failed to fetch note", http.StatusInternalServerError)
					log.Println("Delete note error:", err)
				}
				return
			}
			rnd.Render(w, http.StatusOK, "note_delete.html", map[string]interface{}{
				"Note": note,
			})
			return
		}

		if err := st.DeleteNote(r.Context(), noteSlug, userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				http.NotFound(w, r)
			} else {
				http.Error(w, "Failed to delete note", http.StatusInternalServerError)
				log.Println("Delete note error:", err)
			}
			return
		}

		http.Redirect(w, r, "/done", http.StatusSeeOther)
	}
}

func SuccessHandler(rnd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rnd.Render(w, http.StatusOK, "success.html", nil)
	}
}
