package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/bluesky-social/skycord/lookup"
	"github.com/bluesky-social/skycord/reply"

	"github.com/bwmarrin/discordgo"
	"github.com/rivo/uniseg"
)

// Discord rejects embed field values longer than this
const maxFieldValue = 1024

// Slash command definitions. Option names match what interactionRequest expects.
var commandDefinitions = []*discordgo.ApplicationCommand{
	{
		Name:        string(lookup.CommandProfile),
		Description: "Profile of a Bluesky user",
		Options: []*discordgo.ApplicationCommandOption{
			stringOption("actor", "Handle or DID"),
		},
	},
	{
		Name:        string(lookup.CommandDID),
		Description: "Resolve a handle to its DID",
		Options: []*discordgo.ApplicationCommandOption{
			stringOption("handle", "Handle of the user (without the @)"),
		},
	},
	{
		Name:        string(lookup.CommandHandle),
		Description: "Resolve a DID to its handle",
		Options: []*discordgo.ApplicationCommandOption{
			stringOption("did", "DID of the user (did:plc or did:web)"),
		},
	},
	{
		Name:        string(lookup.CommandFeed),
		Description: "Feed from a Bluesky user",
		Options: []*discordgo.ApplicationCommandOption{
			stringOption("actor", "Handle or DID"),
			stringOption("feed", "Display name or record key of the feed"),
		},
	},
}

func stringOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    true,
	}
}

// name of the option carrying lookup.Request.Input, per command
var inputOption = map[lookup.Command]string{
	lookup.CommandProfile: "actor",
	lookup.CommandDID:     "handle",
	lookup.CommandHandle:  "did",
	lookup.CommandFeed:    "actor",
}

var errNotACommand = errors.New("not a known slash command")

// Converts slash command data to a lookup request.
func interactionRequest(data discordgo.ApplicationCommandInteractionData) (lookup.Request, error) {
	cmd := lookup.Command(data.Name)
	inputName, ok := inputOption[cmd]
	if !ok {
		return lookup.Request{}, fmt.Errorf("%w: %q", errNotACommand, data.Name)
	}

	req := lookup.Request{Command: cmd}
	for _, opt := range data.Options {
		if opt == nil || opt.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		switch opt.Name {
		case inputName:
			req.Input = opt.StringValue()
		case "feed":
			if cmd == lookup.CommandFeed {
				req.FeedName = opt.StringValue()
			}
		}
	}
	if req.Input == "" {
		return lookup.Request{}, fmt.Errorf("missing required option %q for /%s", inputName, cmd)
	}
	if cmd == lookup.CommandFeed && req.FeedName == "" {
		return lookup.Request{}, fmt.Errorf("missing required option %q for /%s", "feed", cmd)
	}
	return req, nil
}

// Acknowledges an interaction. Discord shows "thinking..." until the response is edited; the edit may come up to 15 minutes later, while the acknowledgement itself must arrive within 3 seconds.
var deferredResponse = &discordgo.InteractionResponse{
	Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
}

// Converts a formatted reply to an edit of the deferred interaction response.
func responseEdit(msg *reply.Message) *discordgo.WebhookEdit {
	content := msg.Content
	embeds := []*discordgo.MessageEmbed{}
	if msg.Embed != nil {
		embeds = append(embeds, messageEmbed(msg.Embed))
	}
	return &discordgo.WebhookEdit{
		Content: &content,
		Embeds:  &embeds,
	}
}

func messageEmbed(e *reply.Embed) *discordgo.MessageEmbed {
	me := &discordgo.MessageEmbed{
		Type:  discordgo.EmbedTypeRich,
		Title: e.Title,
		URL:   e.URL,
		Color: e.Color,
	}
	if e.Author != nil {
		me.Author = &discordgo.MessageEmbedAuthor{
			Name:    e.Author.Name,
			URL:     e.Author.URL,
			IconURL: e.Author.IconURL,
		}
	}
	if e.Thumbnail != "" {
		me.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: e.Thumbnail}
	}
	if e.Image != "" {
		me.Image = &discordgo.MessageEmbedImage{URL: e.Image}
	}
	for _, f := range e.Fields {
		me.Fields = append(me.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  truncate(f.Value, maxFieldValue),
			Inline: f.Inline,
		})
	}
	return me
}

// shortens s to at most n runes, marking the cut with an ellipsis. Cuts only fall between grapheme clusters, so emoji sequences and flags stay whole.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	var b strings.Builder
	used := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		size := len(gr.Runes())
		if used+size > n-1 {
			break
		}
		b.WriteString(gr.Str())
		used += size
	}
	return b.String() + "…"
}

// Subset of *discordgo.Session used to answer interactions.
type responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type BotConfig struct {
	Token string
	// application ID for command registration; defaults to the bot user ID once connected
	AppID string
	// if set, commands are registered for this guild only
	GuildID      string
	SkipRegister bool
	Logger       *slog.Logger
}

type Bot struct {
	session   *discordgo.Session
	svc       *lookup.Service
	formatter *reply.Formatter
	config    BotConfig
	logger    *slog.Logger

	// base context for lookups; set by Run
	ctx context.Context
}

func NewBot(svc *lookup.Service, formatter *reply.Formatter, config BotConfig) (*Bot, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	session, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("creating discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	b := &Bot{
		session:   session,
		svc:       svc,
		formatter: formatter,
		config:    config,
		logger:    logger.With("component", "discord"),
		ctx:       context.Background(),
	}
	session.AddHandler(b.onReady)
	session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		b.handleInteraction(s, i)
	})
	return b, nil
}

// Connects to the gateway, registers slash commands, and serves interactions until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	b.ctx = ctx

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening discord gateway connection: %w", err)
	}
	defer func() {
		if err := b.session.Close(); err != nil {
			b.logger.Warn("closing discord session", "err", err)
		}
	}()

	if !b.config.SkipRegister {
		if err := b.registerCommands(); err != nil {
			return err
		}
	}

	<-ctx.Done()
	b.logger.Info("disconnecting from discord")
	return nil
}

func (b *Bot) registerCommands() error {
	appID := b.config.AppID
	if appID == "" && b.session.State != nil && b.session.State.User != nil {
		appID = b.session.State.User.ID
	}
	if appID == "" {
		return errors.New("discord application ID unknown; set --discord-app-id")
	}

	b.logger.Info("registering slash commands", "appID", appID, "guildID", b.config.GuildID, "count", len(commandDefinitions))
	registered, err := b.session.ApplicationCommandBulkOverwrite(appID, b.config.GuildID, commandDefinitions)
	if err != nil {
		return fmt.Errorf("registering slash commands: %w", err)
	}
	b.logger.Info("registered slash commands", "count", len(registered))
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("ready", "user", r.User.String(), "guilds", len(r.Guilds))
}

// Answers one slash command: acknowledge right away, run the lookup, then edit the acknowledgement into the reply. discordgo runs each handler call on its own goroutine, so slow lookups do not block other interactions.
func (b *Bot) handleInteraction(r responder, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	req, err := interactionRequest(i.ApplicationCommandData())
	if err != nil {
		b.logger.Warn("ignoring interaction", "err", err)
		return
	}

	if err := r.InteractionRespond(i.Interaction, deferredResponse); err != nil {
		// interaction token expired or already answered; an edit would fail too
		b.logger.Error("failed to acknowledge interaction", "command", req.Command, "input", req.Input, "err", err)
		return
	}

	res := b.svc.Run(b.ctx, req)
	msg := b.formatter.Format(res)
	if _, err := r.InteractionResponseEdit(i.Interaction, responseEdit(msg)); err != nil {
		b.logger.Error("failed to send interaction response", "command", req.Command, "input", req.Input, "err", err)
	}
}
