// Package forms binds and validates note form submissions.
package forms

import "net/http"

// SlugWarning is appended to the offending slug when a create collides with
// an existing note. The exact wording is part of the UI contract.
const SlugWarning = " - такой slug уже существует, придумайте уникальное значение!"

// NoteForm carries the submitted note fields plus field-level errors keyed
// by field name, for re-rendering the form page.
type NoteForm struct {
	Title  string
	Text   string
	Slug   string
	Errors map[string]string
}

// ParseNoteForm binds a NoteForm from POST data.
func ParseNoteForm(r *http.Request) *NoteForm {
	return &NoteForm{
		Title:  r.FormValue("title"),
		Text:   r.FormValue("text"),
		Slug:   r.FormValue("slug"),
		Errors: make(map[string]string),
	}
}

// Validate checks the required fields and records field errors. It returns
// true when the form is clean.
func (f *NoteForm) Validate() bool {
	if f.Title == "" {
		f.Errors["title"] = "Обязательное поле."
	}
	if f.Text == "" {
		f.Errors["text"] = "Обязательное поле."
	}
	return len(f.Errors) == 0
}

// AddError attaches a message to the named field.
func (f *NoteForm) AddError(field, message string) {
	f.Errors[field] = message
}
