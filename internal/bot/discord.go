package bot

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Discord connects the command processor to a discord bot account.
type Discord struct {
	session   *discordgo.Session
	processor *Processor
}

func NewDiscord(botToken string, processor *Processor) (*Discord, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("new discord session: %w", err)
	}

	d := &Discord{
		session:   session,
		processor: processor,
	}

	session.AddHandler(d.onMessageCreate)
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages

	return d, nil
}

func (d *Discord) Start() error {
	if err := d.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	log.Infof(" > discord bot connected as: %s", d.session.State.User.Username)
	return nil
}

func (d *Discord) Stop() {
	if err := d.session.Close(); err != nil {
		log.Errorf("failed to close discord session: %s", err)
	}
}

func (d *Discord) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// ignore own messages and other bots
	if m.Author.ID == s.State.User.ID || m.Author.Bot {
		return
	}

	ownerID, err := strconv.ParseInt(m.Author.ID, 10, 64)
	if err != nil {
		log.Errorf("discord: parse author id %q: %s", m.Author.ID, err)
		return
	}

	reply, handled := d.processor.Process(
		context.Background(),
		ownerID,
		m.Author.Username,
		m.Content,
	)
	if !handled || reply == "" {
		return
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		log.Errorf("discord: send reply to channel %s: %s", m.ChannelID, err)
	}
}
