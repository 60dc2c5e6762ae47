package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/agent"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/favorites"
)

var (
	agentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func runChat(ctx context.Context) error {
	a, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	id := sessionID
	if id == "" {
		id = uuid.NewString()
	}

	session, err := a.orch.StartOrResumeSession(ctx, id)
	if err != nil {
		return err
	}

	fmt.Println(agentStyle.Render(fmt.Sprintf("%s — %s", a.cfg.Agent.Name, a.cfg.Agent.Company)))
	fmt.Println(infoStyle.Render(fmt.Sprintf("session %s (stage: %s) — type /help for commands", id, session.Stage)))
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(promptStyle.Render("you> "))
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if quit := a.handleCommand(ctx, line); quit {
				return nil
			}
			continue
		}

		reply, err := a.orch.HandleUserMessage(ctx, id, line)
		if err != nil {
			if errors.Is(err, agent.ErrSessionUnavailable) {
				return err
			}
			fmt.Println(errorStyle.Render(err.Error()))
			continue
		}

		fmt.Println(agentStyle.Render(a.cfg.Agent.Name+"> ") + reply.Text)
		fmt.Println(infoStyle.Render("stage: " + string(reply.Stage)))
		fmt.Println()
	}
}

// handleCommand services slash commands against the favorites store
// directly, without a model round trip. Returns true when the REPL should
// exit.
func (a *app) handleCommand(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "/exit", "/quit":
		fmt.Println(infoStyle.Render("goodbye"))
		return true

	case "/help":
		fmt.Println(`Commands:
  /list            show your saved favorites
  /add <id> [note] save a property to favorites
  /remove <id>     remove a property from favorites
  /exit            leave the chat`)

	case "/list":
		records, err := a.favorites.ListFavorites(ctx, a.userID)
		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			break
		}
		fmt.Println(favorites.FormatSummary(records))

	case "/add":
		if len(args) == 0 {
			fmt.Println(errorStyle.Render("usage: /add <property-id> [note]"))
			break
		}
		a.addFavorite(ctx, args[0], strings.Join(args[1:], " "))

	case "/remove":
		if len(args) == 0 {
			fmt.Println(errorStyle.Render("usage: /remove <property-id>"))
			break
		}
		deleted, err := a.favorites.DeleteFavorite(ctx, args[0], a.userID)
		switch {
		case err != nil:
			fmt.Println(errorStyle.Render(err.Error()))
		case !deleted:
			fmt.Println(infoStyle.Render(args[0] + " was not in your favorites"))
		default:
			fmt.Println(infoStyle.Render(args[0] + " removed from favorites"))
		}

	default:
		fmt.Println(errorStyle.Render("unknown command " + cmd + " (try /help)"))
	}
	return false
}

func (a *app) addFavorite(ctx context.Context, propertyID, notes string) {
	_, err := a.favorites.FindFavorite(ctx, propertyID, a.userID)
	switch {
	case err == nil:
		fmt.Println(infoStyle.Render(propertyID + " is already in your favorites"))
		return
	case !errors.Is(err, favorites.ErrNotFound):
		fmt.Println(errorStyle.Render(err.Error()))
		return
	}

	rec := domain.FavoriteRecord{
		PropertyID: propertyID,
		UserID:     a.userID,
		SavedAt:    time.Now(),
		Notes:      notes,
		Priority:   domain.PriorityMedium,
	}
	if err := a.favorites.InsertFavorite(ctx, rec); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return
	}
	fmt.Println(infoStyle.Render(propertyID + " saved to favorites"))
}
