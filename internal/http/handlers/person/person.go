// Package person contains all HTTP handlers related to the Person resource.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// Go's router expects handler functions with the signature:
//
//	func(http.ResponseWriter, *http.Request)
//
// That signature has no room for extra parameters like a database.
// To inject dependencies we use a factory function that:
//  1. Accepts dependencies (storage)
//  2. Returns a function with the exact signature the router needs
//
// Because the inner function "closes over" the outer parameters, it can
// access `storage` even after the factory call has returned. Example:
//
//	router.HandleFunc("POST /api/persons", person.New(storage))
//	//                                            ^^^^^^^^^^^^
//	//                       New(storage) is called ONCE at startup.
//	//                       It returns a handler func which is called
//	//                       on EVERY incoming request.
package person

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aanand-mishra/persons-api/internal/parse"
	"github.com/aanand-mishra/persons-api/internal/storage"
	"github.com/aanand-mishra/persons-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// createRequest is the body accepted by POST /api/persons.
//
// The client sends the raw comma-delimited line exactly as it appears in
// whatever upstream produced it; the server owns the parsing and the
// error taxonomy.
type createRequest struct {
	Input string `json:"input"`
}

// New handles POST /api/persons
// Parses the submitted "name,age" line and persists the resulting record.
//
// Request body (JSON):
//
//	{ "input": "Mark,20" }
//
// Success response (201 Created):
//
//	{ "id": 1 }
//
// Error responses:
//
//	400 Bad Request  — empty body, malformed JSON, or a parse failure;
//	                   parse failures carry a "kind" field, one of
//	                   "empty_input", "wrong_field_count", "invalid_age"
//	500 Internal     — database error
func New(storage storage.Storage) http.HandlerFunc {
	// This is the factory function. It runs ONCE when the route is
	// registered and captures `storage` in the closure below.

	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a person")

		// ── Step 1: Decode the JSON body ──────────────────────────────
		var req createRequest

		err := json.NewDecoder(r.Body).Decode(&req)

		if errors.Is(err, io.EOF) {
			// io.EOF means the body was completely empty.
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}

		if err != nil {
			// Any other decode error: malformed JSON, wrong types, etc.
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// ── Step 2: Parse the "name,age" line ─────────────────────────
		// This is where the core parser runs. Note that an entirely
		// absent "input" key decodes to "" and is rejected here as an
		// empty input, the same as an explicit empty string.
		p, err := parse.Person(req.Input)
		if err != nil {
			var perr *parse.Error
			if errors.As(err, &perr) {
				slog.Info("rejected person record",
					slog.String("kind", perr.Kind.String()),
					slog.String("error", perr.Error()),
				)
				response.WriteJSON(w, http.StatusBadRequest,
					response.ParseError(perr))
				return
			}
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// ── Step 3: Validate the parsed record ────────────────────────
		// The parser already guarantees a non-empty name, so this is a
		// guard for the validate:"..." tags on the model — it keeps the
		// invariant enforced even if the record ever arrives here by
		// another path.
		if err := validator.New().Struct(p); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		// ── Step 4: Persist to database ───────────────────────────────
		// We call the Storage interface method — not SQLite directly.
		// This keeps the handler database-agnostic.
		lastID, err := storage.CreatePerson(p.Name, p.Age)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("person created", slog.Int64("id", lastID))

		response.WriteJSON(w, http.StatusCreated, map[string]int64{"id": lastID})
	}
}

// GetByID handles GET /api/persons/{id}
// Fetches a single person by their primary key ID.
//
// Success response (200 OK):
//
//	{ "id": 1, "name": "Mark", "age": 20 }
//
// Error responses:
//
//	400 Bad Request  — id is not a valid integer
//	500 Internal     — database error or person not found
func GetByID(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// r.PathValue("id") extracts the {id} segment from the URL.
		// This works because Go 1.22+ supports named path parameters in
		// the ServeMux pattern: "GET /api/persons/{id}"
		id := r.PathValue("id")
		slog.Info("getting a person", slog.String("id", id))

		intID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("invalid id: must be an integer")))
			return
		}

		person, err := storage.GetPersonByID(intID)
		if err != nil {
			slog.Error("error getting person",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, person)
	}
}

// GetList handles GET /api/persons
// Returns a JSON array of all persons in the database.
//
// Returns an empty array [] (not null) when there are no records.
func GetList(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all persons")

		persons, err := storage.GetPersons()
		if err != nil {
			slog.Error("error getting persons", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, persons)
	}
}

// Delete handles DELETE /api/persons/{id}
// Permanently removes a person record from the database.
//
// There is no PUT counterpart: a record is immutable once parsed, so
// "changing" one means deleting it and submitting a corrected line.
//
// Success response (200 OK):
//
//	{ "status": "deleted" }
func Delete(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting a person", slog.String("id", id))

		intID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("invalid id: must be an integer")))
			return
		}

		if err := storage.DeletePersonByID(intID); err != nil {
			slog.Error("error deleting person",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("person deleted", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}
