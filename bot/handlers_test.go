/* handlers_test.go
 * Contains unit tests for the command handlers using the mock Discord session and the
 * shared API mocks
 */

package bot

import (
	"testing"
	"time"

	"cf-faceoff/api/api"
	"cf-faceoff/api/shared"
	"cf-faceoff/api/store"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func newTestBot() (*Bot, *api.MockStore) {
	recent := time.Now().Add(-5 * 24 * time.Hour).Unix()
	fetcher := &api.MockFetcher{
		Users: map[string]shared.User{
			"alice": {Handle: "alice", Rating: 1500, MaxRating: 1600, Rank: "specialist"},
			"bob":   {Handle: "bob", Rating: 2800, MaxRating: 2900, Rank: "grandmaster"},
		},
		Submissions: map[string][]shared.Submission{
			"alice": {
				{Verdict: shared.VerdictAccepted, CreationTimeSeconds: recent,
					Problem: shared.Problem{ContestId: 1, Index: "A", Rating: 800, Tags: []string{"binary search", "dp"}}},
			},
			"bob": {
				{Verdict: shared.VerdictAccepted, CreationTimeSeconds: recent,
					Problem: shared.Problem{ContestId: 2, Index: "C", Rating: 2400, Tags: []string{"graphs"}}},
			},
		},
		RatingHistories: map[string][]shared.RatingChange{
			"alice": {{ContestId: 1, ContestName: "Round 1", RatingUpdateTimeSeconds: 1000, NewRating: 1500}},
			"bob":   {{ContestId: 2, ContestName: "Round 2", RatingUpdateTimeSeconds: 2000, NewRating: 2800}},
		},
	}
	mockStore := &api.MockStore{Stats: store.VisitorStats{
		TotalVisits:        10,
		DailyVisits:        1,
		WeeklyVisits:       4,
		MonthlyVisits:      8,
		UniqueVisitors:     6,
		TopSearchedHandles: []store.HandleCount{{Handle: "tourist", Count: 5}},
	}}
	return &Bot{BotToken: "test-token", API: &api.API{CF: fetcher, Store: mockStore}}, mockStore
}

func newTestMessage(content string, authorID string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ChannelID: "test-channel",
			Content:   content,
			Author:    &discordgo.User{ID: authorID},
		},
	}
}

// TestNewMessageHandler_IgnoresOwnMessages tests that the bot never replies to itself
func TestNewMessageHandler_IgnoresOwnMessages(t *testing.T) {
	b, _ := newTestBot()
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("$help", "bot-id"), "bot-id")

	assert.Empty(t, session.SentMessages)
}

// TestNewMessageHandler_IgnoresUnknownCommands tests that unrecognised messages are dropped
func TestNewMessageHandler_IgnoresUnknownCommands(t *testing.T) {
	b, _ := newTestBot()
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("hello there", "user-id"), "bot-id")

	assert.Empty(t, session.SentMessages)
}

// TestHelpHandler tests the $help reply
func TestHelpHandler(t *testing.T) {
	b, _ := newTestBot()
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("$help", "user-id"), "bot-id")

	assert.Len(t, session.SentMessages, 1)
	assert.Contains(t, session.GetLastMessage().Content, "$stats")
	assert.Contains(t, session.GetLastMessage().Content, "$compare")
}

// TestStatsHandler tests the $stats command happy path and the logged visit
func TestStatsHandler(t *testing.T) {
	b, mockStore := newTestBot()
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("$stats alice", "user-id"), "bot-id")

	assert.Len(t, session.SentMessages, 1)
	reply := session.GetLastMessage().Content
	assert.Contains(t, reply, "alice")
	assert.Contains(t, reply, "Rating: 1500")
	assert.Contains(t, reply, "Problems solved: 1 of 1 submissions (100% acceptance)")

	assert.Len(t, mockStore.Visits, 1)
	assert.Equal(t, store.ActionSearch, mockStore.Visits[0].Action)
	assert.Equal(t, []string{"alice"}, mockStore.Visits[0].Handles)
}

// TestStatsHandler_Usage tests the argument count check
func TestStatsHandler_Usage(t *testing.T) {
	b, _ := newTestBot()
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("$stats", "user-id"), "bot-id")

	assert.Contains(t, session.GetLastMessage().Content, "Usage")
}

// TestStatsHandler_UserNotFound tests the unknown handle reply
func TestStatsHandler_UserNotFound(t *testing.T) {
	b, _ := newTestBot()
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("$stats nobody", "user-id"), "bot-id")

	assert.Equal(t, "User 'nobody' not found on Codeforces", session.GetLastMessage().Content)
}

// TestCompareHandler tests the $compare command happy path
func TestCompareHandler(t *testing.T) {
	b, mockStore := newTestBot()
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("$compare alice bob", "user-id"), "bot-id")

	assert.Len(t, session.SentMessages, 1)
	reply := session.GetLastMessage().Content
	assert.Contains(t, reply, "**alice** vs **bob**")
	// the gap is 1300 points, over the mismatch threshold
	assert.Contains(t, reply, "Extreme mismatch")

	assert.Len(t, mockStore.Visits, 1)
	assert.Equal(t, store.ActionCompare, mockStore.Visits[0].Action)
}

// TestCompareHandler_Usage tests the argument checks
func TestCompareHandler_Usage(t *testing.T) {
	b, _ := newTestBot()
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("$compare alice", "user-id"), "bot-id")
	assert.Contains(t, session.GetLastMessage().Content, "Usage")

	session.ClearMessages()
	b.newMessageHandler(session, newTestMessage("$compare alice alice", "user-id"), "bot-id")
	assert.Contains(t, session.GetLastMessage().Content, "different handles")
}

// TestTagsHandler tests the $tags command with a fuzzy query
func TestTagsHandler(t *testing.T) {
	b, _ := newTestBot()
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("$tags alice binsearch", "user-id"), "bot-id")

	assert.Equal(t, "alice has solved 1 problems tagged 'binary search'", session.GetLastMessage().Content)
}

// TestTagsHandler_NoMatch tests a query with no matching tag
func TestTagsHandler_NoMatch(t *testing.T) {
	b, _ := newTestBot()
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("$tags alice geometry", "user-id"), "bot-id")

	assert.Contains(t, session.GetLastMessage().Content, "no solved problems matching tag 'geometry'")
}

// TestTagsHandler_QuotedQuery tests that a quoted multi word query survives splitting
func TestTagsHandler_QuotedQuery(t *testing.T) {
	b, _ := newTestBot()
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("$tags alice \"binary search\"", "user-id"), "bot-id")

	assert.Contains(t, session.GetLastMessage().Content, "tagged 'binary search'")
}

// TestVisitsHandler tests the $visits command
func TestVisitsHandler(t *testing.T) {
	b, _ := newTestBot()
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newTestMessage("$visits", "user-id"), "bot-id")

	reply := session.GetLastMessage().Content
	assert.Contains(t, reply, "10 total")
	assert.Contains(t, reply, "Unique visitors: 6")
	assert.Contains(t, reply, "tourist (5)")
}

// TestCommandArgs tests the argument splitting rules
func TestCommandArgs(t *testing.T) {
	assert.Equal(t, []string{"alice"}, commandArgs("$stats alice"))
	assert.Equal(t, []string{"alice", "bob"}, commandArgs("$compare alice bob"))
	assert.Equal(t, []string{"alice", "binary search"}, commandArgs("$tags alice \"binary search\""))
	assert.Empty(t, commandArgs("$visits"))
}
