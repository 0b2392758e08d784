// Command yahtzee plays a game of human against computer in the terminal.
// The human seat can also be handed to the computer or to a random player
// to run unattended games.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/AustinJGreen/goyahtzee/internal/config"
	"github.com/AustinJGreen/goyahtzee/internal/dice"
	"github.com/AustinJGreen/goyahtzee/internal/game"
	"github.com/AustinJGreen/goyahtzee/internal/help"
	"github.com/AustinJGreen/goyahtzee/internal/player"
	"github.com/AustinJGreen/goyahtzee/internal/storage"
	"github.com/AustinJGreen/goyahtzee/internal/storage/file"
	redisstore "github.com/AustinJGreen/goyahtzee/internal/storage/redis"
	"github.com/AustinJGreen/goyahtzee/internal/storage/sqlite"
)

var log = logrus.New()

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("yahtzee", pflag.ExitOnError)
	config.RegisterFlags(fs)
	load := fs.String("load", "", "resume the named save")
	saveAs := fs.String("save-as", "autosave", "save slot used when quitting")
	list := fs.Bool("list", false, "list saves and recent results, then exit")
	fs.Parse(args)

	cfgPath, _ := fs.GetString("config")
	cfg, err := config.Load(cfgPath, fs)
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.Storage.Driver, err)
	}
	if store != nil {
		defer store.Close()
	}

	if *list {
		if err := printSaves(ctx, os.Stdout, store); err != nil {
			return fmt.Errorf("list saves: %w", err)
		}
		return nil
	}

	roller := dice.NewRoller(cfg.Game.Seed)
	opts := game.Options{Roller: roller, Logger: log.WithField("app", cfg.App.Name)}
	switch cfg.Game.Human {
	case "computer":
		opts.Deciders = map[string]game.Decider{player.Human.Name: help.NewComputer(roller)}
	case "random":
		opts.Deciders = map[string]game.Decider{player.Human.Name: game.NewRandomDecider(roller)}
	}

	g, err := startGame(ctx, store, *load, opts)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	if cfg.Game.Human == "console" {
		err = playConsole(ctx, g, store, *saveAs)
	} else {
		err = g.Play(ctx)
	}
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	} else if err != nil {
		return fmt.Errorf("play: %w", err)
	}

	fmt.Println(g.Card().Render(g.Players()))
	C.Header.Println(g.Result())
	if store != nil {
		if err := store.RecordResult(ctx, resultOf(g)); err != nil {
			log.Errorf("Failed to record result: %v", err)
		}
	}
	return nil
}

func openStore(ctx context.Context, cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Driver {
	case "file":
		return file.NewFS(cfg.Dir), nil
	case "sqlite":
		return sqlite.Open(cfg.SQLitePath)
	case "redis":
		return redisstore.Open(ctx, redisstore.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
	default:
		return nil, nil
	}
}

func startGame(ctx context.Context, store storage.Store, name string, opts game.Options) (*game.Game, error) {
	if name == "" {
		return game.New(opts)
	}
	if store == nil {
		return nil, fmt.Errorf("cannot load %q without storage", name)
	}
	text, err := store.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return game.Load(text, opts)
}

// playConsole alternates between typed turns for the human and automatic
// turns for everyone else. Quitting saves the game to slot; quitting in the
// middle of a round asks for confirmation first.
func playConsole(ctx context.Context, g *game.Game, store storage.Store, slot string) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	c := &console{g: g, out: os.Stdout}
	var warned bool
	C.Header.Println("Welcome to Yahtzee. Type ? for commands.")
	for !g.IsOver() {
		c.flushJournal()
		p, err := g.CurrentPlayer()
		if err != nil {
			return err
		}
		if _, ok := g.Decider(p); ok {
			if _, err := g.PlayTurn(); err != nil {
				return err
			}
			continue
		}

		c.printDice()
		input, err := line.Prompt(fmt.Sprintf("(%s) ", p.Name))
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return save(ctx, g, store, slot)
		} else if err != nil {
			return fmt.Errorf("read line: %w", err)
		}
		line.AppendHistory(input)

		_, err = c.exec(input)
		switch {
		case errors.Is(err, errQuit) && g.RoundInProgress() && !warned:
			warned = true
			C.Warn.Printf("Round %d is under way. The save keeps the scores from its start, so its turns will be played again. Type quit again to leave.\n", g.Round())
		case errors.Is(err, errQuit):
			return save(ctx, g, store, slot)
		case err != nil:
			C.Warn.Println(err)
		}
	}
	c.flushJournal()
	return nil
}

func save(ctx context.Context, g *game.Game, store storage.Store, slot string) error {
	if store == nil {
		return errQuit
	}
	if err := store.Save(ctx, slot, g.Serialize()); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	C.Info.Printf("Saved as %q. Resume with --load %s\n", slot, slot)
	return errQuit
}

func resultOf(g *game.Game) storage.Result {
	r := storage.Result{
		GameID:     g.ID(),
		Draw:       g.IsDraw(),
		Rounds:     g.Round(),
		FinishedAt: time.Now().UTC(),
	}
	if w, ok := g.Winner(); ok {
		r.Winner = w.Name
	}
	players := g.Players()
	for i, score := range g.Card().PlayerScores(players) {
		r.Scores = append(r.Scores, storage.PlayerScore{Player: players[i].Name, Score: score})
	}
	return r
}

func printSaves(ctx context.Context, w io.Writer, store storage.Store) error {
	if store == nil {
		fmt.Fprintln(w, "Storage is disabled.")
		return nil
	}
	names, err := store.List(ctx)
	if err != nil {
		return err
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Save"})
	for _, n := range names {
		t.AppendRow(table.Row{n})
	}
	t.SetStyle(table.StyleLight)
	t.Render()

	results, err := store.Results(ctx, 10)
	if err != nil {
		return err
	}
	t = table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Finished", "Winner", "Rounds", "Scores"})
	for _, r := range results {
		winner := r.Winner
		if r.Draw {
			winner = "draw"
		}
		var scores string
		for i, s := range r.Scores {
			if i > 0 {
				scores += ", "
			}
			scores += fmt.Sprintf("%s %d", s.Player, s.Score)
		}
		t.AppendRow(table.Row{r.FinishedAt.Format(time.DateTime), winner, r.Rounds, scores})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}
