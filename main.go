package main

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/pp-parser/cmd/batch"
	"fjacquet/pp-parser/cmd/load"
	"fjacquet/pp-parser/cmd/parse"
	"fjacquet/pp-parser/cmd/root"
	"fjacquet/pp-parser/internal/config"

	"github.com/sirupsen/logrus"
)

func init() {
	// .env must be loaded before LOG_LEVEL is read
	_, _ = config.LoadEnv()

	configureLogLevel()

	root.Init()

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(load.Cmd)
}

// configureLogLevel sets the global logrus level from LOG_LEVEL so that
// libraries logging through the standard logger honour it too.
func configureLogLevel() {
	level, err := logrus.ParseLevel(strings.ToLower(config.GetEnv("LOG_LEVEL", "info")))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
