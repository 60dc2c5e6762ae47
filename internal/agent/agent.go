package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/config"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/observe"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/provider"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/store"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/tools"
)

// ErrSessionUnavailable wraps session store failures. Conversational
// problems (provider hiccups, bad tool calls) degrade to fallback replies;
// losing the session log does not.
var ErrSessionUnavailable = errors.New("session store unavailable")

const defaultMaxToolRounds = 8

const providerFailureReply = "I'm sorry, I'm having trouble responding right now. Please try again in a moment."

const roundsExhaustedReply = "I wasn't able to finish working through that request. Could you rephrase it, or break it into smaller steps?"

// Reply is one completed assistant turn.
type Reply struct {
	Text  string
	Stage domain.Stage
}

// Orchestrator drives the turn loop: reason with the model, dispatch any
// tool calls it makes, feed the results back, and repeat until the model
// answers in plain text or the round budget runs out. Every message lands
// in the session log before the next step runs.
type Orchestrator struct {
	provider  provider.Provider
	registry  *tools.Registry
	store     store.Storage
	obs       *observe.Observer
	persona   config.AgentConfig
	maxRounds int
}

// New builds an orchestrator over the given collaborators.
func New(p provider.Provider, reg *tools.Registry, st store.Storage, obs *observe.Observer, persona config.AgentConfig) *Orchestrator {
	maxRounds := persona.MaxToolRounds
	if maxRounds <= 0 {
		maxRounds = defaultMaxToolRounds
	}
	return &Orchestrator{
		provider:  p,
		registry:  reg,
		store:     st,
		obs:       obs,
		persona:   persona,
		maxRounds: maxRounds,
	}
}

// StartOrResumeSession returns the session for id, creating it at the
// greeting stage with the persona instruction as its first turn if it does
// not exist yet. Safe to call repeatedly; the instruction is never added
// twice.
func (o *Orchestrator) StartOrResumeSession(ctx context.Context, id string) (*store.Session, error) {
	session, err := o.store.GetSession(id)
	if err == nil {
		return session, nil
	}

	var notFound *store.NotFoundError
	if !errors.As(err, &notFound) {
		return nil, fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
	}

	now := time.Now()
	session = &store.Session{
		ID:        id,
		Stage:     domain.StageGreeting,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := o.store.CreateSession(session); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
	}
	if err := o.store.AppendTurns(id, []store.Turn{{
		Role:    provider.RoleSystem,
		Content: systemPrompt(o.persona),
	}}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
	}

	o.obs.Log().Info().Str("session", id).Msg("session created")
	return session, nil
}

// HandleUserMessage appends the user's message to the session and runs the
// turn loop until a terminal assistant reply.
func (o *Orchestrator) HandleUserMessage(ctx context.Context, sessionID, text string) (*Reply, error) {
	ctx, span := o.obs.StartSpan(ctx, "agent.turn")
	defer span.End()

	session, err := o.StartOrResumeSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := o.store.AppendTurns(sessionID, []store.Turn{{
		Role:    provider.RoleUser,
		Content: text,
	}}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
	}

	turns, err := o.store.ListTurns(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
	}
	messages := make([]provider.Message, 0, len(turns))
	for _, t := range turns {
		messages = append(messages, t.Message())
	}

	declarations := o.registry.Declarations()

	for round := 0; round < o.maxRounds; round++ {
		resp, err := o.provider.Chat(ctx, messages, declarations)
		if err != nil {
			o.obs.Log().Error().
				Str("session", sessionID).
				Str("provider", o.provider.Name()).
				Str("error", err.Error()).
				Msg("provider call failed")
			return o.finish(sessionID, session, providerFailureReply, session.Stage, true)
		}

		assistant := store.Turn{
			Role:      provider.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		}
		if err := o.store.AppendTurns(sessionID, []store.Turn{assistant}); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
		}
		messages = append(messages, assistant.Message())

		if len(resp.ToolCalls) == 0 {
			return o.finish(sessionID, session, resp.Content, stageAfterReply(session.Stage, resp.Content), false)
		}

		o.obs.Log().Info().
			Str("session", sessionID).
			Int("round", round).
			Int("calls", len(resp.ToolCalls)).
			Msg("dispatching tool calls")

		toolTurns := o.dispatch(ctx, resp.ToolCalls)
		if err := o.store.AppendTurns(sessionID, toolTurns); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
		}
		for _, t := range toolTurns {
			messages = append(messages, t.Message())
		}

		session.Stage = stageAfterCalls(session.Stage, resp.ToolCalls)
	}

	o.obs.Log().Warn().
		Str("session", sessionID).
		Int("max_rounds", o.maxRounds).
		Msg("tool round budget exhausted")
	return o.finish(sessionID, session, roundsExhaustedReply, session.Stage, true)
}

// finish persists the stage transition and, for fallback replies that never
// went through the log as an assistant turn, the reply text too — the log
// always matches what the user saw.
func (o *Orchestrator) finish(sessionID string, session *store.Session, text string, stage domain.Stage, appendReply bool) (*Reply, error) {
	if appendReply {
		if err := o.store.AppendTurns(sessionID, []store.Turn{{
			Role:    provider.RoleAssistant,
			Content: text,
		}}); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
		}
	}

	session.Stage = stage
	session.UpdatedAt = time.Now()
	if err := o.store.UpdateSession(session); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
	}

	return &Reply{Text: text, Stage: stage}, nil
}

// dispatch runs a batch of tool calls concurrently and returns one tool
// turn per call, in the order the model issued them. Tool failures become
// error payloads on the turn; dispatch itself never fails.
func (o *Orchestrator) dispatch(ctx context.Context, calls []provider.ToolCall) []store.Turn {
	payloads := make([]string, len(calls))

	g, gctx := errgroup.WithContext(ctx)
	for i, call := range calls {
		g.Go(func() error {
			tctx, span := o.obs.StartSpan(gctx, "tool."+call.Name)
			defer span.End()

			payload, err := o.registry.Execute(tctx, call)
			if err != nil {
				if errors.Is(err, tools.ErrUnknownTool) {
					o.obs.Log().Warn().Str("tool", call.Name).Msg("model requested unknown tool")
					payload = unknownToolPayload(call.Name)
				} else {
					payload = dispatchErrorPayload(err)
				}
			}
			payloads[i] = payload
			return nil
		})
	}
	// Workers report through payloads; the group never carries an error.
	_ = g.Wait()

	turns := make([]store.Turn, len(calls))
	for i, call := range calls {
		turns[i] = store.Turn{
			Role:       provider.RoleTool,
			Content:    payloads[i],
			ToolCallID: call.ID,
		}
	}
	return turns
}

func unknownToolPayload(name string) string {
	raw, _ := json.Marshal(map[string]string{
		"status":  tools.StatusError,
		"error":   "UnknownTool",
		"message": fmt.Sprintf("unknown tool: %s", name),
	})
	return string(raw)
}

func dispatchErrorPayload(err error) string {
	raw, _ := json.Marshal(map[string]string{
		"status":  tools.StatusError,
		"message": err.Error(),
	})
	return string(raw)
}
