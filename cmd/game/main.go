package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/duskhall/duskhall/internal/audio"
	"github.com/duskhall/duskhall/internal/game"
)

func main() {
	var mute bool
	var seed int64
	flag.BoolVar(&mute, "mute", false, "disable all audio")
	flag.Int64Var(&seed, "seed", 0, "world RNG seed (0 = time-based)")
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var sink game.AudioSink = game.NopAudio{}
	if !mute {
		engine := audio.NewEngine()
		if err := engine.Init(); err != nil {
			// No audio device is not fatal; play silent.
			log.Printf("audio disabled: %v", err)
		} else {
			sink = engine
			defer engine.Close()
		}
	}

	ebiten.SetWindowTitle("Duskhall")
	ebiten.SetWindowSize(1280, 800)
	if err := ebiten.RunGame(game.New(sink, seed)); err != nil {
		log.Fatal(err)
	}
}
