package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/longsangsabo/sabo-pool-v12-sub010/config"
	"github.com/longsangsabo/sabo-pool-v12-sub010/domain"
	"github.com/longsangsabo/sabo-pool-v12-sub010/logger"
	"github.com/longsangsabo/sabo-pool-v12-sub010/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var historyPath string
	flag.StringVar(&configPath, "config", "configs/rating.toml", "rating engine config")
	flag.StringVar(&historyPath, "history", "", "JSON match history to replay")
	flag.Parse()

	cfg := config.Default()
	if _, err := os.Stat(configPath); err == nil {
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}

	log := logger.New(cfg.Server.Debug)
	svc, err := service.New(cfg, log)
	if err != nil {
		return err
	}

	if historyPath == "" {
		printCatalog(svc)
		return nil
	}

	data, err := os.ReadFile(historyPath)
	if err != nil {
		return err
	}
	var events []domain.MatchEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return err
	}

	players, err := svc.Ratings(events)
	if err != nil {
		return err
	}
	log.WithField("matches", len(events)).Info("history replayed")
	for i, p := range players {
		tier := svc.Ranks().TierForRating(p.EloRating)
		fmt.Printf("%3d. %-36s %4d  %-2s  %d pts\n",
			i+1, p.ID, p.EloRating, tier.Code, p.SpaPoints)
	}
	return nil
}

func printCatalog(svc *service.Service) {
	for _, tier := range svc.Ranks().Tiers() {
		fmt.Printf("%-2s  %4d-%-4d  K=%-2d  %s\n",
			tier.Code, tier.MinRating, tier.MaxRating, tier.KFactor, tier.Description)
	}
}
