/* bot.go
 * Contains the Bot struct and the StatsAPI interface the bot consumes. The blocking runtime
 * lives in bot_runtime.go; the testable command handlers live in handlers.go
 */

package bot

import (
	"context"
	"fmt"
	"strings"

	"cf-faceoff/api/api"
	"cf-faceoff/api/shared"
	"cf-faceoff/api/store"
)

// StatsAPI defines the API methods the bot uses.
// This allows for mocking in tests.
type StatsAPI interface {
	GetUserStats(ctx context.Context, handle string) (*shared.UserStats, error)
	CompareProfiles(ctx context.Context, handle1 string, handle2 string) (*shared.Comparison, error)
	VisitorStats() (store.VisitorStats, error)
	LogVisit(action string, handles []string, path string, ipAddress string, userAgent string)
}

// Ensure *api.API implements StatsAPI
var _ StatsAPI = (*api.API)(nil)

type Bot struct {
	BotToken string
	API      StatsAPI
}

func NewBot(botToken string, statsAPI StatsAPI) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		API:      statsAPI,
	}, nil
}

// startsWith checks if a message begins with a command keyword
func startsWith(content string, command string) bool {
	return strings.HasPrefix(content, command)
}
