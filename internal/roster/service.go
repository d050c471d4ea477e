package roster

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"chanpick/internal/domain"
	"chanpick/internal/eventbus"
)

// Service supplies the team/channel roster. Load replaces the previous
// roster wholesale; partial merges never happen.
type Service interface {
	Load(ctx context.Context) ([]domain.Team, error)
	Authenticated() bool
}

// rosterFile is the on-disk roster document
type rosterFile struct {
	Teams []teamEntry `toml:"teams"`
}

type teamEntry struct {
	ID       string         `toml:"id"`
	Name     string         `toml:"name"`
	Channels []channelEntry `toml:"channels"`
}

type channelEntry struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// fileService reads the roster from a TOML file
type fileService struct {
	bus   eventbus.EventBus
	path  string
	token string
}

// NewFileService creates a roster service backed by a TOML file. An empty
// token means the caller has no session; loads then become silent no-ops.
func NewFileService(bus eventbus.EventBus, path, token string) Service {
	return &fileService{bus: bus, path: path, token: token}
}

// Authenticated reports whether a session token is present
func (s *fileService) Authenticated() bool {
	return s.token != ""
}

// Load reads and parses the roster file. Without a session it returns an
// empty roster and no error; the list simply stays empty.
func (s *fileService) Load(ctx context.Context) ([]domain.Team, error) {
	if !s.Authenticated() {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.LoadStartedEvent{})
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("roster file %s does not exist", s.path)
		}
		if s.bus != nil {
			s.bus.Publish(eventbus.LoadFailedEvent{Err: err})
		}
		return nil, err
	}

	var doc rosterFile
	if err := toml.Unmarshal(data, &doc); err != nil {
		err = fmt.Errorf("failed to parse roster: %w", err)
		if s.bus != nil {
			s.bus.Publish(eventbus.LoadFailedEvent{Err: err})
		}
		return nil, err
	}

	teams := make([]domain.Team, 0, len(doc.Teams))
	for _, te := range doc.Teams {
		team := domain.Team{
			ID:       te.ID,
			Name:     te.Name,
			Channels: make([]domain.Channel, 0, len(te.Channels)),
		}
		for _, ce := range te.Channels {
			team.Channels = append(team.Channels, domain.Channel{ID: ce.ID, Name: ce.Name})
		}
		teams = append(teams, team)
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.TeamsLoadedEvent{Teams: teams})
	}
	return teams, nil
}
