//go:build gen
// +build gen

package main

import (
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"

	"github.com/charlievieth/pystr/internal/gen/util"
)

func realMain(args []string) int {
	root, err := util.ProjectRoot()
	if err != nil {
		log.WithError(err).Error("gen: locating project root")
		return 1
	}
	gendir, err := util.GenTablesRoot()
	if err != nil {
		log.WithError(err).Error("gen: locating gentables")
		return 1
	}

	cmd := exec.Command("go", append([]string{"run", gendir}, args...)...)
	cmd.Dir = root
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		log.WithField("command", cmd.Args).WithError(err).Error("gen: error running command")
		return 1
	}
	return 0
}

func main() {
	log.SetOutput(os.Stdout)
	if code := realMain(os.Args[1:]); code != 0 {
		os.Exit(code)
	}
}
