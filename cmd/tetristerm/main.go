package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/qnkhuat/tetristerm/pkg"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

func main() {
	var cl *pkg.Client
	defer func() {
		if r := recover(); r != nil {
			if cl != nil {
				cl.App.Stop()
			}
			time.Sleep(100 * time.Millisecond)

			log.Println()
			debug.PrintStack()
			log.Fatalf("panic: %+v", r)
		}
	}()

	logPath := flag.String("log", "./log", "path to log file")
	configPath := flag.String("config", "", "path to config file, created with defaults if missing")
	seed := flag.Int64("seed", 0, "randomizer seed (default: current time)")
	randomizer := flag.String("randomizer", "", "piece randomizer: uniform or bag")
	sequence := flag.String("sequence", "", "cycle a fixed piece sequence, e.g. I,O,T")
	gravity := flag.Duration("gravity", 0, "gravity interval (default 500ms)")
	matrix := flag.String("matrix", "", "pre-fill matrix with garbage cells x,y,x,y...")
	nick := flag.String("nick", "", "nickname")
	theme := flag.String("theme", "", "color theme")
	logDebug := flag.Bool("debug", false, "enable debug logging")
	logVerbose := flag.Bool("verbose", false, "enable verbose logging")
	flag.Parse()

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !tty {
		log.Fatal("failed to start tetristerm: non-interactive terminals are not supported")
	}

	pkg.InitLog(*logPath, "CLIENT: ")

	conf := pkg.DefaultConfig()
	if *configPath != "" {
		var err error
		conf, err = pkg.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %s", err)
		}
	}
	if *randomizer != "" {
		conf.Randomizer = *randomizer
	}
	if *gravity > 0 {
		conf.GravityMs = int(*gravity / time.Millisecond)
	}
	if *theme != "" {
		conf.Theme = *theme
	}

	opts := pkg.ClientOptions{
		Config:   conf,
		Seed:     *seed,
		Matrix:   *matrix,
		Nick:     *nick,
		LogLevel: pkg.LogLevel(*logDebug, *logVerbose),
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if *sequence != "" {
		shapes, err := mino.ParseShapes(*sequence)
		if err != nil {
			log.Fatalf("invalid sequence: %s", err)
		}
		opts.Sequence = shapes
	}

	log.Printf("New client seed=%d randomizer=%s gravity=%s", opts.Seed, conf.Randomizer, conf.Gravity())

	var err error
	cl, err = pkg.NewClient(opts)
	if err != nil {
		log.Fatalf("failed to initialize client: %s", err)
	}

	minW, minH := cl.MinSize()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < minW || h < minH) {
		fmt.Fprintf(os.Stderr, "terminal too small: need %dx%d, have %dx%d\n", minW, minH, w, h)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cl.Run(ctx); err != nil {
		log.Fatalf("failed to run application: %s", err)
	}

	printSummary(cl)
}

func printSummary(cl *pkg.Client) {
	p := cl.Player
	if !cl.Engine.GameOver() {
		p.Finish(cl.Engine.Score(), cl.Engine.LinesCleared())
	}

	title := color.New(color.FgCyan, color.Bold)
	value := color.New(color.FgYellow)

	title.Printf("%s ", p.Name)
	fmt.Printf("played %d game(s)\n", p.Games)
	title.Print("Best score: ")
	value.Println(p.Best)
	title.Print("Lines cleared: ")
	value.Println(p.Lines)
}
