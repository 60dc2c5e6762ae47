package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/catalog"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/favorites"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/provider"
)

// ErrUnknownTool marks a call naming a tool that is not registered. The
// orchestrator turns it into an error payload on the tool turn so the
// reasoning step can recover conversationally.
var ErrUnknownTool = fmt.Errorf("unknown tool")

var validate = validator.New()

// Result statuses shared by every tool payload. Expected outcomes like a
// duplicate favorite are warnings, never failures.
const (
	StatusSuccess = "success"
	StatusWarning = "warning"
	StatusError   = "error"
)

// Tool is one callable capability: a declared contract plus an executor
// over validated input.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
	run         func(ctx context.Context, args json.RawMessage) (any, error)
}

// Deps wires the domain collaborators the tool set needs.
type Deps struct {
	Catalog       *catalog.Catalog
	Favorites     favorites.Store
	DefaultUserID string
}

// Registry holds the fixed tool set exposed to the reasoning step.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
	order []string
}

// NewRegistry builds the registry with the full domain tool set.
func NewRegistry(deps Deps) *Registry {
	if deps.DefaultUserID == "" {
		deps.DefaultUserID = "1"
	}

	r := &Registry{tools: make(map[string]Tool)}
	r.register(classifyIntentTool())
	r.register(searchPropertiesTool(deps.Catalog))
	r.register(presentPropertiesTool())
	r.register(refineCriteriaTool())
	r.register(saveFavoriteTool(deps))
	r.register(listFavoritesTool(deps))
	r.register(removeFavoriteTool(deps))
	r.register(favoritesSummaryTool(deps))
	r.register(savePreferencesTool(deps))
	return r
}

func (r *Registry) register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[t.Name]; exists {
		panic(fmt.Sprintf("tool %q already registered", t.Name))
	}
	r.tools[t.Name] = t
	r.order = append(r.order, t.Name)
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tools[name]
	return t, ok
}

// HasTool checks if a tool is registered.
func (r *Registry) HasTool(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tools)
}

// Declarations returns the tool contracts in registration order, in the
// shape providers advertise to the model.
func (r *Registry) Declarations() []provider.ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]provider.ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		defs = append(defs, provider.ToolDefinition{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		})
	}
	return defs
}

// Execute resolves the call, validates its arguments against the tool's
// contract and runs it. The returned string is the JSON payload for the
// tool turn. Argument problems come back as error payloads, not Go errors,
// so the model can retry with corrected arguments; only an unregistered
// name yields ErrUnknownTool.
func (r *Registry) Execute(ctx context.Context, call provider.ToolCall) (string, error) {
	t, ok := r.Get(call.Name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, call.Name)
	}

	out, err := t.run(ctx, json.RawMessage(call.Args))
	if err != nil {
		return errorPayload(err), nil
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return errorPayload(fmt.Errorf("failed to encode result: %w", err)), nil
	}
	return string(raw), nil
}

func errorPayload(err error) string {
	raw, _ := json.Marshal(map[string]string{
		"status":  StatusError,
		"message": err.Error(),
	})
	return string(raw)
}

// decodeArgs unmarshals and validates a tool's input value. Validation
// happens before any side effect; a failure here never touches a store.
func decodeArgs[T any](raw json.RawMessage) (T, error) {
	var in T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &in); err != nil {
			return in, fmt.Errorf("invalid arguments: %w", err)
		}
	}
	if err := validate.Struct(&in); err != nil {
		return in, fmt.Errorf("invalid arguments: %w", err)
	}
	return in, nil
}
