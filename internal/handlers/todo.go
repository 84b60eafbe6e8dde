package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/linkbox/internal/todo"
	"go.uber.org/zap"
)

// TodoHandler handles todo item CRUD.
type TodoHandler struct {
	store  todo.Repository
	logger *zap.Logger
}

// NewTodoHandler creates a new todo handler.
func NewTodoHandler(store todo.Repository, logger *zap.Logger) *TodoHandler {
	return &TodoHandler{store: store, logger: logger}
}

func (h *TodoHandler) ListTodos(ctx context.Context, _ *struct{}) (*TodoListResponse, error) {
	items, err := h.store.List(ctx)
	if err != nil {
		return nil, h.internal("failed to list todos", err)
	}

	return &TodoListResponse{Body: toDTOs(items)}, nil
}

func (h *TodoHandler) ListCompleteTodos(ctx context.Context, _ *struct{}) (*TodoListResponse, error) {
	items, err := h.store.ListComplete(ctx)
	if err != nil {
		return nil, h.internal("failed to list todos", err)
	}

	return &TodoListResponse{Body: toDTOs(items)}, nil
}

func (h *TodoHandler) GetTodo(ctx context.Context, req *TodoIDRequest) (*TodoItemResponse, error) {
	item, err := h.store.Get(ctx, req.ID)
	if err != nil {
		return nil, h.storeError("failed to get todo", err)
	}

	return &TodoItemResponse{Body: toDTO(*item)}, nil
}

func (h *TodoHandler) CreateTodo(ctx context.Context, req *CreateTodoRequest) (*CreateTodoResponse, error) {
	item := &todo.Item{
		Name:       req.Body.Name,
		IsComplete: req.Body.IsComplete,
	}

	if err := h.store.Create(ctx, item); err != nil {
		return nil, h.internal("failed to create todo", err)
	}

	return &CreateTodoResponse{
		Location: fmt.Sprintf("/todoitems/%d", item.ID),
		Body:     toDTO(*item),
	}, nil
}

func (h *TodoHandler) UpdateTodo(ctx context.Context, req *UpdateTodoRequest) (*struct{}, error) {
	err := h.store.Update(ctx, &todo.Item{
		ID:         req.ID,
		Name:       req.Body.Name,
		IsComplete: req.Body.IsComplete,
	})
	if err != nil {
		return nil, h.storeError("failed to update todo", err)
	}

	return &struct{}{}, nil
}

func (h *TodoHandler) DeleteTodo(ctx context.Context, req *TodoIDRequest) (*TodoItemResponse, error) {
	item, err := h.store.Delete(ctx, req.ID)
	if err != nil {
		return nil, h.storeError("failed to delete todo", err)
	}

	return &TodoItemResponse{Body: toDTO(*item)}, nil
}

func (h *TodoHandler) storeError(msg string, err error) error {
	if errors.Is(err, todo.ErrNotFound) {
		return huma.Error404NotFound("todo item not found")
	}

	return h.internal(msg, err)
}

func (h *TodoHandler) internal(msg string, err error) error {
	h.logger.Error(msg, zap.Error(err))

	return huma.Error500InternalServerError(msg)
}

func toDTO(item todo.Item) TodoItemDTO {
	return TodoItemDTO{
		ID:         item.ID,
		Name:       item.Name,
		IsComplete: item.IsComplete,
	}
}

func toDTOs(items []todo.Item) []TodoItemDTO {
	out := make([]TodoItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toDTO(item))
	}

	return out
}
