package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// initLogger sends logs to file, rotated, or to stderr when file is empty.
func initLogger(level, file string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if file == "" {
		log.SetOutput(os.Stderr)
		return nil
	}
	w := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    32, // MB
		MaxBackups: 3,
		MaxAge:     28,
	}
	if lvl >= log.DebugLevel {
		w.MaxSize = 256
	}
	log.SetOutput(w)
	return nil
}
