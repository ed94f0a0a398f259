package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/df-mc/dragonfly/server"
	"github.com/df-mc/dragonfly/server/entity"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/player/chat"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/ocmd"
	"github.com/oomph-ac/ocmd/df"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	log.Level = logrus.DebugLevel

	chat.Global.Subscribe(chat.StdoutSubscriber{})

	cfg, err := readConfig()
	if err != nil {
		log.Fatalln(err)
	}

	perms := func(p *player.Player, permission string) bool {
		return slices.Contains(cfg.Ocmd.Admins, p.Name())
	}

	h := ocmd.New(log, ocmd.WithPrefix(cfg.Ocmd.Prefix))
	h.Register(
		&ocmd.Subcommand{
			Name:        "heal",
			Aliases:     []string{"h"},
			Description: "Heals you back to full health",
			PlayerOnly:  true,
			Permission:  "example.command.heal",
			Run: func(ctx *ocmd.Context) error {
				src, _ := ctx.Player()
				src.(*df.PlayerSource).Player().Heal(20, entity.FoodHealingSource{})
				ctx.Reply("&aYou have been healed.")
				return nil
			},
		},
		&ocmd.Subcommand{
			Name:        "gamemode",
			Aliases:     []string{"gm"},
			Description: "Changes your game mode",
			Parameters:  "<survival|creative>",
			MinArgs:     1,
			PlayerOnly:  true,
			Permission:  "example.command.gamemode",
			TabComplete: []string{"survival", "creative"},
			Run: func(ctx *ocmd.Context) error {
				src, _ := ctx.Player()
				p := src.(*df.PlayerSource).Player()
				switch strings.ToLower(ctx.Args[0]) {
				case "survival":
					p.SetGameMode(world.GameModeSurvival)
				case "creative":
					p.SetGameMode(world.GameModeCreative)
				default:
					return ocmd.Failf("&cUnknown game mode &e%s&c.", ctx.Args[0])
				}
				ctx.Reply("&aGame mode set to &e%s&a.", strings.ToLower(ctx.Args[0]))
				return nil
			},
		},
		&ocmd.Subcommand{
			Name:        "broadcast",
			Aliases:     []string{"bc", "say"},
			Description: "Broadcasts a message to the whole server",
			Parameters:  "<message...>",
			MinArgs:     1,
			Permission:  "example.command.broadcast",
			Run: func(ctx *ocmd.Context) error {
				_, _ = chat.Global.WriteString(ocmd.Colourize("&7[&6Broadcast&7] &f" + strings.Join(ctx.Args, " ")))
				return nil
			},
		},
	)
	h.Register(ocmd.HelpCommand(h))

	df.Hook(h, "example", "Example sub-commands", []string{"ex"}, perms)

	conf, err := cfg.Server.Config(slog.Default())
	if err != nil {
		log.Fatalln(err)
	}
	srv := conf.New()
	srv.CloseOnProgramEnd()
	srv.Listen()
	for range srv.Accept() {
	}
}

// config wraps dragonfly's server config with the settings of this example.
type config struct {
	Server server.UserConfig
	Ocmd   struct {
		Prefix string
		Admins []string
	}
}

// readConfig reads the configuration from the config.toml file, or creates
// the file with defaults if it does not yet exist.
func readConfig() (config, error) {
	c := config{Server: server.DefaultConfig()}
	c.Ocmd.Prefix = "&8[&6Example&8]&r "
	if _, err := os.Stat("config.toml"); os.IsNotExist(err) {
		data, err := toml.Marshal(c)
		if err != nil {
			return c, fmt.Errorf("encode default config: %v", err)
		}
		if err := os.WriteFile("config.toml", data, 0644); err != nil {
			return c, fmt.Errorf("create default config: %v", err)
		}
		return c, nil
	}
	data, err := os.ReadFile("config.toml")
	if err != nil {
		return c, fmt.Errorf("read config: %v", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode config: %v", err)
	}
	return c, nil
}
