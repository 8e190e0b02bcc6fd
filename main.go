package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"
)

var (
	baseDir   string
	debugMode bool
)

func main() {
	flag.BoolVar(&debugMode, "debug", false, "verbose/debug logging")
	scaleFlag := flag.Int("scale", 0, "drawing scale (1-4), overrides settings")
	seed := flag.Int64("seed", 0, "map seed, 0 picks one from the clock")
	flag.Parse()

	baseDir = os.Getenv("PWD")
	if baseDir == "" {
		var err error
		if baseDir, err = os.Getwd(); err != nil {
			log.Fatalf("get working directory: %v", err)
		}
	}

	setupLogging(debugMode)
	loadSettings()
	if *scaleFlag != 0 {
		gs.Scale = clampScale(*scaleFlag)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	initSoundContext()
	applySettings()
	defer func() {
		if r := recover(); r != nil {
			logError("panic: %v\n%s", r, debug.Stack())
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	initDiscordRPC(ctx, gs.DiscordAppID)
	logDebug("starting with seed %d at scale %d", *seed, gs.Scale)
	runGame(ctx, *seed)
}
