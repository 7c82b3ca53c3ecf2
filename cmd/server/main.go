package main

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"nomadsim/internal/config"
	"nomadsim/internal/leaderboard"
	"nomadsim/internal/server"
	"nomadsim/internal/session"
)

func main() {
	// A missing .env is fine; real env always wins.
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.FromEnv("nomadsim_config.yml")
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	if err := os.MkdirAll(cfg.Server.DataDir, 0o755); err != nil {
		log.WithError(err).Fatal("create data dir")
	}

	db, err := leaderboard.Open(filepath.Join(cfg.Server.DataDir, "leaderboard.db"))
	if err != nil {
		log.WithError(err).Fatal("open leaderboard db")
	}
	defer db.Close()
	board, err := leaderboard.NewSQLiteRepo(db)
	if err != nil {
		log.WithError(err).Fatal("migrate leaderboard db")
	}

	sess := session.New(session.Options{
		Balance: cfg.Balance,
		Board:   board,
	})

	app := &server.App{
		Session: sess,
		Log:     log,
		BootNow: time.Now(),
	}
	handler := server.NewRouter(app, cfg.Server.AllowedOrigins)

	log.WithFields(logrus.Fields{
		"addr":       cfg.Server.Addr,
		"difficulty": cfg.Difficulty,
	}).Info("listening")
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
