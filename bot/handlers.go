/* handlers.go
 * Contains testable command handler methods that accept the DiscordSession interface
 */

package bot

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cf-faceoff/api/api"
	"cf-faceoff/api/logic"
	"cf-faceoff/api/store"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"
)

// newMessageHandler routes messages to the appropriate handlers.
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author.ID == botUserID {
		return
	}

	switch {
	case startsWith(message.Content, "$help"):
		b.helpHandler(session, message)

	case startsWith(message.Content, "$stats"):
		b.statsHandler(session, message)

	case startsWith(message.Content, "$compare"):
		b.compareHandler(session, message)

	case startsWith(message.Content, "$tags"):
		b.tagsHandler(session, message)

	case startsWith(message.Content, "$visits"):
		b.visitsHandler(session, message)
	}
}

// helpHandler handles the $help command
func (b *Bot) helpHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("CF FaceOff Bot\n")
	res.WriteString("`$stats handle`: shows a Codeforces profile summary: rating, unique problems solved, acceptance rate, difficulty spread and 45 day solve velocity\n")
	res.WriteString("`$compare handle1 handle2`: compares two profiles side by side, including their merged contest rating timeline\n")
	res.WriteString("`$tags handle query`: shows how many problems the user has solved under a tag. There is fuzzy matching on tag names, so `binsearch` will find `binary search`\n")
	res.WriteString("`$visits`: shows usage statistics for the dashboard\n")
	res.WriteString("Data comes from the public Codeforces API. Requests are spaced two seconds apart, so commands that fetch two profiles take a few seconds\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// statsHandler handles the $stats command: fetches one profile and replies
// with the aggregated summary
func (b *Bot) statsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	args := commandArgs(message.Content)
	if len(args) != 1 {
		session.ChannelMessageSend(message.ChannelID, "Usage: `$stats handle`")
		return
	}
	handle := args[0]

	b.API.LogVisit(store.ActionSearch, []string{handle}, "/bot/stats", "", "discord")

	stats, err := b.API.GetUserStats(context.Background(), handle)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fetchErrorMessage(handle, err))
		return
	}

	session.ChannelMessageSend(message.ChannelID, formatUserStats(stats))
}

// compareHandler handles the $compare command: fetches two profiles and
// replies with the side by side summary
func (b *Bot) compareHandler(session DiscordSession, message *discordgo.MessageCreate) {
	args := commandArgs(message.Content)
	if len(args) != 2 {
		session.ChannelMessageSend(message.ChannelID, "Usage: `$compare handle1 handle2`")
		return
	}
	if args[0] == args[1] {
		session.ChannelMessageSend(message.ChannelID, "Enter two different handles to compare")
		return
	}

	b.API.LogVisit(store.ActionCompare, args, "/bot/compare", "", "discord")

	comparison, err := b.API.CompareProfiles(context.Background(), args[0], args[1])
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fetchErrorMessage(strings.Join(args, ", "), err))
		return
	}

	session.ChannelMessageSend(message.ChannelID, formatComparison(comparison))
}

// tagsHandler handles the $tags command: fuzzy matches a tag query against
// the tags the user has actually solved
func (b *Bot) tagsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	args := commandArgs(message.Content)
	if len(args) < 2 {
		session.ChannelMessageSend(message.ChannelID, "Usage: `$tags handle query`")
		return
	}
	handle := args[0]
	query := strings.Join(args[1:], " ")

	stats, err := b.API.GetUserStats(context.Background(), handle)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fetchErrorMessage(handle, err))
		return
	}

	tags := make([]string, 0, len(stats.Stats.ProblemsByTags))
	for tag := range stats.Stats.ProblemsByTags {
		tags = append(tags, tag)
	}

	tag, ok := logic.MatchTag(query, tags)
	if !ok {
		session.ChannelMessageSend(message.ChannelID,
			fmt.Sprintf("%s has no solved problems matching tag '%s'", stats.User.Handle, query))
		return
	}

	session.ChannelMessageSend(message.ChannelID,
		fmt.Sprintf("%s has solved %d problems tagged '%s'", stats.User.Handle, stats.Stats.ProblemsByTags[tag], tag))
}

// visitsHandler handles the $visits command
func (b *Bot) visitsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	stats, err := b.API.VisitorStats()
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An error occured getting visitor statistics")
		return
	}
	session.ChannelMessageSend(message.ChannelID, formatVisitorStats(stats))
}

// commandArgs splits a command message into its arguments, dropping the
// command word itself. splitter is used instead of strings.Fields so quoted
// arguments survive as a single token.
func commandArgs(content string) []string {
	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	parts, _ := spaceSplitter.Split(content)

	args := make([]string, 0, len(parts))
	for i, part := range parts {
		if i == 0 {
			continue
		}
		part = strings.TrimSpace(strings.Trim(part, "\""))
		if part != "" {
			args = append(args, part)
		}
	}
	return args
}

// fetchErrorMessage maps an upstream error onto a user facing reply
func fetchErrorMessage(subject string, err error) string {
	if api.IsNotFound(err) {
		return fmt.Sprintf("User '%s' not found on Codeforces", subject)
	}
	log.Println(err)
	return fmt.Sprintf("An error occured fetching data for %s", subject)
}
