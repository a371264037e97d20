package main

import (
	"PongArcade/audio"
	"PongArcade/core"
	"PongArcade/logger"
	"PongArcade/terminal"
	"PongArcade/window"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultEnv = "local"

type frontend interface {
	core.Host
	Run(update, draw func()) error
}

func main() {
	envErr := godotenv.Load()

	env := os.Getenv("PONG_ENV")
	if env == "" {
		env = defaultEnv
	}

	if err := logger.Log.Init("./"); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if envErr != nil {
		logger.Log.Debug(fmt.Sprintf(".env not loaded: %v", envErr))
	}

	props, err := core.ReadProperties("./", env)
	if err != nil {
		logger.Log.Fatal(err.Error())
	}

	bank, err := audio.LoadBank(props.SoundBank)
	if err != nil {
		logger.Log.Fatal(err.Error())
	}
	player := audio.NewPlayer(bank)
	if err := player.Start(); err != nil {
		logger.Log.Warn(fmt.Sprintf(logger.AudioUnavailableMsg, err))
	}
	defer player.Close()

	screen, err := newFrontend(props)
	if err != nil {
		player.Close()
		logger.Log.Fatal(err.Error())
	}

	logger.Log.Info(fmt.Sprintf(logger.FrontendStartMsg, props.Frontend, env))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	match := core.NewMatch(props.Field, screen, player, rng)

	if err := screen.Run(match.Update, match.Draw); err != nil {
		player.Close()
		logger.Log.Fatal(err.Error())
	}
}

func newFrontend(props core.Properties) (frontend, error) {
	switch props.Frontend {
	case core.FrontendWindow:
		return window.New(props), nil
	default:
		return terminal.NewScreen(props)
	}
}
