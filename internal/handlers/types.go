package handlers

// CreateShortURLRequest is the request body for creating a short URL.
type CreateShortURLRequest struct {
	Body struct {
		URL string `doc:"The URL to shorten" example:"https://example.com/very/long/path" json:"url,omitempty"`
	}
}

// CreateShortURLResponse is the response for a successfully created short URL.
type CreateShortURLResponse struct {
	Body struct {
		ShortURL string `doc:"The full short URL" example:"http://localhost:8888/V1StGXR8_" json:"shortUrl"`
	}
}

// RedirectRequest is the request for redirecting a short URL.
type RedirectRequest struct {
	Code string `doc:"The short code" example:"V1StGXR8_" path:"code"`
}

// RedirectResponse redirects the client to the target URL.
type RedirectResponse struct {
	Status   int
	Location string `doc:"The target URL" header:"Location"`
}

// TodoItemDTO is the wire form of a todo item.
type TodoItemDTO struct {
	ID         int64  `doc:"Item id"            json:"id"`
	Name       string `doc:"What needs doing"   json:"name"`
	IsComplete bool   `doc:"Whether it is done" json:"isComplete"`
}

// TodoInput is the writable part of a todo item.
type TodoInput struct {
	Name       string `doc:"What needs doing"   example:"walk dog" json:"name,omitempty"`
	IsComplete bool   `doc:"Whether it is done" json:"isComplete,omitempty"`
}

// TodoIDRequest addresses a single todo item.
type TodoIDRequest struct {
	ID int64 `doc:"Item id" path:"id"`
}

// CreateTodoRequest is the request for creating a todo item.
type CreateTodoRequest struct {
	Body TodoInput
}

// UpdateTodoRequest is the request for replacing a todo item.
type UpdateTodoRequest struct {
	ID   int64 `doc:"Item id" path:"id"`
	Body TodoInput
}

// TodoListResponse is a list of todo items.
type TodoListResponse struct {
	Body []TodoItemDTO
}

// TodoItemResponse is a single todo item.
type TodoItemResponse struct {
	Body TodoItemDTO
}

// CreateTodoResponse is the response for a created todo item.
type CreateTodoResponse struct {
	Location string `doc:"The item location" header:"Location"`
	Body     TodoItemDTO
}

// IndexResponse is the landing page.
type IndexResponse struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}
