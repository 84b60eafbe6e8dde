package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// APIConfig returns the huma configuration for the service. Response bodies
// carry only their documented fields, so the default schema link hook that adds
// "$schema" to every body is removed.
func APIConfig(title, version string) huma.Config {
	config := huma.DefaultConfig(title, version)
	config.CreateHooks = nil

	return config
}

// RegisterRoutes registers the landing page and the URL shortener routes.
func RegisterRoutes(api huma.API, urlHandler *URLHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "index",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Landing page",
		Hidden:      true,
	}, Index)

	// POST /urls - Create short URL
	huma.Register(api, huma.Operation{
		OperationID:   "create-short-url",
		Method:        http.MethodPost,
		Path:          "/urls",
		Summary:       "Create short URL",
		Description:   "Stores the URL under a new random 9 character code and returns the full short URL.",
		Tags:          []string{"URLs"},
		DefaultStatus: http.StatusOK,
	}, urlHandler.CreateShortURL)

	// GET /{code} - Redirect to target URL
	huma.Register(api, huma.Operation{
		OperationID:   "redirect",
		Method:        http.MethodGet,
		Path:          "/{code}",
		Summary:       "Redirect to target URL",
		Description:   "Redirects to the URL associated with the short code.",
		Tags:          []string{"URLs"},
		DefaultStatus: http.StatusFound,
	}, urlHandler.RedirectToURL)
}

// RegisterTodoRoutes registers the todo item routes under /todoitems.
func RegisterTodoRoutes(api huma.API, todoHandler *TodoHandler) {
	tags := []string{"Todos"}

	huma.Register(api, huma.Operation{
		OperationID: "list-todos",
		Method:      http.MethodGet,
		Path:        "/todoitems",
		Summary:     "List todo items",
		Tags:        tags,
	}, todoHandler.ListTodos)

	huma.Register(api, huma.Operation{
		OperationID: "list-complete-todos",
		Method:      http.MethodGet,
		Path:        "/todoitems/complete",
		Summary:     "List completed todo items",
		Tags:        tags,
	}, todoHandler.ListCompleteTodos)

	huma.Register(api, huma.Operation{
		OperationID: "get-todo",
		Method:      http.MethodGet,
		Path:        "/todoitems/{id}",
		Summary:     "Get a todo item",
		Tags:        tags,
	}, todoHandler.GetTodo)

	huma.Register(api, huma.Operation{
		OperationID:   "create-todo",
		Method:        http.MethodPost,
		Path:          "/todoitems",
		Summary:       "Create a todo item",
		Tags:          tags,
		DefaultStatus: http.StatusCreated,
	}, todoHandler.CreateTodo)

	huma.Register(api, huma.Operation{
		OperationID:   "update-todo",
		Method:        http.MethodPut,
		Path:          "/todoitems/{id}",
		Summary:       "Replace a todo item",
		Tags:          tags,
		DefaultStatus: http.StatusNoContent,
	}, todoHandler.UpdateTodo)

	huma.Register(api, huma.Operation{
		OperationID: "delete-todo",
		Method:      http.MethodDelete,
		Path:        "/todoitems/{id}",
		Summary:     "Delete a todo item",
		Tags:        tags,
	}, todoHandler.DeleteTodo)
}
