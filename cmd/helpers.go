package main

import (
	"net/http"
)

// serverError logs the underlying cause and replies with a generic message;
// internals never reach the client.
func (app *application) serverError(w http.ResponseWriter, err error) {
	app.errorLog.Output(2, err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func (app *application) clientError(w http.ResponseWriter, status int, message string) {
	http.Error(w, message, status)
}

func (app *application) notFound(w http.ResponseWriter) {
	app.clientError(w, http.StatusNotFound, "not found")
}
