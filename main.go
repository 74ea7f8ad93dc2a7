package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/assassin/internal/assassin/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := assassin(); err != nil {
		logrus.Fatal(err)
	}
}

func assassin() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
