// cmd/factweave/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	var (
		claimText = flag.String("claim", "", "verify a single claim")
		link      = flag.String("link", "", "supporting link for -claim")
		imagePath = flag.String("image", "", "image file attached to -claim")
		category  = flag.String("category", "", "scan a news category and score each claim")
		chatMsg   = flag.String("chat", "", "ask the platform assistant a question")
		monitor   = flag.Bool("monitor", false, "run the scheduled crisis monitor")
	)
	flag.Parse()

	godotenv.Load()
	cfg := LoadConfig()

	if err := InitLogger(cfg.LogPath, cfg.LogLevel); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer GetLogger().Close()

	sources, err := LoadSources(cfg.SourcesPath)
	if err != nil {
		GetLogger().Error("Failed to load sources config: %v", err)
		sources = &SourcesConfig{}
	}

	news := NewNewsDataClient(cfg.NewsDataAPIKey, cfg.UserAgent)
	feeds := NewFeedScanner(sources.Feeds, cfg.UserAgent)
	scan := NewScanAgent(news, feeds)
	verify := NewVerifyAgent(NewPageFetcher(cfg.UserAgent), NewDuckDuckGoClient(cfg.UserAgent))
	score := NewScoreAgent(cfg)
	explain := NewExplainAgent(cfg)
	crisis := NewCrisisAgent(sources.Keywords)
	pipeline := NewPipeline(scan, verify, score, explain, cfg.Workers)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	switch {
	case *monitor:
		runMonitor(cfg, scan, crisis)

	case *claimText != "" || *link != "" || *imagePath != "":
		var image []byte
		if *imagePath != "" {
			image, err = os.ReadFile(*imagePath)
			if err != nil {
				GetLogger().Error("Failed to read image file: %v", err)
				os.Exit(1)
			}
		}
		result := pipeline.VerifyClaim(ctx, *claimText, *link, image)
		printJSON(result)

	case *category != "":
		results := pipeline.RunCategory(ctx, *category)
		printJSON(results)

	case *chatMsg != "":
		chat := NewChatAgent(cfg)
		reply, err := chat.Chat(ctx, *chatMsg, nil)
		if err != nil {
			GetLogger().Error("Chat failed: %v", err)
			os.Exit(1)
		}
		fmt.Println(reply)

	default:
		// One crisis pass over the latest news.
		claims := scan.Scan(ctx)
		claims = append(claims, scan.ScanFeeds(ctx)...)
		printJSON(crisis.DetectCrisis(claims))
	}
}

// runMonitor runs the cron loop until interrupted.
func runMonitor(cfg *Config, scan *ScanAgent, crisis *CrisisAgent) {
	var notifier *Notifier
	if cfg.DiscordToken != "" && cfg.AlertChannelID != "" {
		n, err := NewNotifier(cfg.DiscordToken, cfg.AlertChannelID)
		if err != nil {
			GetLogger().Error("Failed to create notifier: %v", err)
		} else {
			notifier = n
		}
	}

	m := NewMonitor(scan, crisis, notifier, cfg.MonitorCron)
	if err := m.Start(); err != nil {
		GetLogger().Error("Failed to start monitor: %v", err)
		os.Exit(1)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	GetLogger().Info("Shutting down monitor")
	m.Stop()
}

// printJSON writes a value to stdout as indented JSON.
func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		GetLogger().Error("Failed to encode output: %v", err)
		return
	}
	fmt.Println(string(data))
}
