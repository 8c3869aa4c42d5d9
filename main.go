package main

import (
	"flag"
	"os"

	"github.com/milk9111/wildlife/logger"
)

func main() {
	sceneName := flag.String("scene", "meadow", "scene prefab name in prefabs/ (basename, .yaml optional)")
	ticks := flag.Int("ticks", 3600, "number of simulation ticks to run")
	dt := flag.Float64("dt", 0.0166, "seconds per tick")
	seed := flag.Uint64("seed", 1, "random seed for animal behavior")
	watch := flag.Bool("watch", false, "reload edited prefabs while running")
	logLevel := flag.String("log-level", "", "log level (default LOG_LEVEL or info)")
	logFormat := flag.String("log-format", "", "log format: text or json (default LOG_FORMAT or text)")
	flag.Parse()

	logger.Init(*logLevel, *logFormat)
	log := logger.Log

	game, err := NewGame(Options{Scene: *sceneName, Seed: *seed, Watch: *watch, Log: log})
	if err != nil {
		log.WithError(err).Error("failed to start")
		os.Exit(1)
	}
	defer game.Close()

	if err := game.Run(*ticks, *dt); err != nil {
		log.WithError(err).Error("run failed")
		os.Exit(1)
	}
	game.report()
}
