package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/englishlearning/internal/config"
	"github.com/2beens/englishlearning/internal/db"
	"github.com/2beens/englishlearning/internal/logging"
	"github.com/2beens/englishlearning/internal/word"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev ]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	wordsFile := flag.String("file", "", "word list file, one '<word> <definition>' per line")
	category := flag.String("category", word.DefaultCategory, "library category of the imported words")
	flag.Parse()

	if err := run(*env, *configPath, *wordsFile, *category); err != nil {
		log.Errorf("import words: %s", err)
		os.Exit(1)
	}
}

func run(env, configPath, wordsFile, category string) error {
	if wordsFile == "" {
		return fmt.Errorf("word list file not specified, use -file")
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	secrets, err := config.LoadSecrets(ctx)
	if err != nil {
		return err
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	dbParams := db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBUser:     cfg.PostgresUser,
		DBPassword: secrets.DBPassword,
		DBName:     cfg.PostgresDBName,
	}
	if cfg.RunMigrations {
		if err := db.MigrationsUp(dbParams); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	dbPool, err := db.NewDBPool(ctx, dbParams)
	if err != nil {
		return fmt.Errorf("new db pool: %w", err)
	}
	defer dbPool.Close()

	f, err := os.Open(wordsFile)
	if err != nil {
		return fmt.Errorf("open word list: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warnf("close word list file: %s", err)
		}
	}()

	log.Infof("importing [%s] into category [%s] ...", wordsFile, category)
	result, err := word.Import(ctx, word.NewRepo(dbPool), f, category)
	if err != nil {
		return err
	}

	log.Infof("parsed %d lines, inserted %d new words", result.Parsed, result.Inserted)
	return nil
}
