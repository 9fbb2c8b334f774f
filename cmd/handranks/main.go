// Command handranks builds, inspects and exercises the 2+2-style hand
// rank tables.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	handranks "github.com/CrazyPandaLimited/TwoPlusTwoHandEvaluator"
)

var cli struct {
	Debug bool   `help:"enable debug logging"`
	Dir   string `help:"directory holding (or to hold) the table files" default:"."`

	Build BuildCmd `cmd:"" help:"build and persist the lookup table(s)"`
	Find  FindCmd  `cmd:"" help:"resolve a card string to its canonical partial-hand id"`
	Eval  EvalCmd  `cmd:"" help:"classify a card string, printing its category and rank code"`
}

// BuildCmd builds and persists both table files (standard, then
// joker) through handranks.Init, reusing any already on disk.
type BuildCmd struct {
	Joker bool `help:"report the 56-card joker table file (both tables are built either way)"`
}

func (cmd *BuildCmd) Run() error {
	if cmd.Joker {
		if _, err := handranks.WithJokers(cli.Dir); err != nil {
			return err
		}
		log.Info().Str("file", cli.Dir+"/"+handranks.JokerTableFile).Msg("joker table built")
		return nil
	}
	if _, err := handranks.Standard(cli.Dir); err != nil {
		return err
	}
	log.Info().Str("file", cli.Dir+"/"+handranks.StandardTableFile).Msg("standard table built")
	return nil
}

// FindCmd prints the canonical id a card string resolves to.
type FindCmd struct {
	Cards string `arg:"" help:"card string, e.g. 6h7hXc9hTh"`
}

func (cmd *FindCmd) Run() error {
	cards, err := handranks.StrToCards(cmd.Cards)
	if err != nil {
		return err
	}
	id, n := handranks.CanonicalID(cards)
	fmt.Printf("id=%d cards=%d hand=%s\n", id, n, handranks.DumpHand(cards))
	return nil
}

// EvalCmd classifies a card string and prints its category and code.
type EvalCmd struct {
	Cards string `arg:"" help:"card string, 5, 6 or 7 cards, e.g. Xc7s8s9cTd2d9h"`
}

func (cmd *EvalCmd) Run() error {
	cards, err := handranks.StrToCards(cmd.Cards)
	if err != nil {
		return err
	}
	if err := handranks.Init(cli.Dir); err != nil {
		return err
	}
	code, err := handranks.Lookup(cards)
	if err != nil {
		return err
	}
	fmt.Printf("%s -> category=%d (%s) code=%d\n", handranks.DumpHand(cards), handranks.ToHand(code), handranks.CategoryName(code), code)
	return nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("handranks"),
		kong.Description("2+2-style 7-card hand rank table builder and inspector"),
		kong.UsageOnError(),
	)

	level := zerolog.InfoLevel
	if cli.Debug {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	if err := ctx.Run(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
