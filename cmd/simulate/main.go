// Command simulate runs the dispatcher over a network file and prints the event log.
package main

import (
	"errors"
	"flag"
	"freight-dispatch-service/internal/adapters/loader"
	"freight-dispatch-service/internal/adapters/render"
	"freight-dispatch-service/internal/domain"
	"freight-dispatch-service/internal/services"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/joho/godotenv"
)

func main() {
	networkPath := flag.String("network", "", "JSON network description")
	csvDir := flag.String("csv-dir", "", "directory with routes.csv, carriers.csv, packages.csv and an optional locations.csv")
	flag.Parse()
	defer glog.Flush()

	_ = godotenv.Load()

	if err := run(os.Stdout, *networkPath, *csvDir); err != nil {
		glog.Error(err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(w io.Writer, networkPath, csvDir string) error {
	var (
		desc domain.NetworkDescription
		err  error
	)
	switch {
	case networkPath != "" && csvDir != "":
		return errors.New("simulate: use either -network or -csv-dir, not both")
	case networkPath != "":
		desc, err = loader.LoadJSON(networkPath)
	case csvDir != "":
		desc, err = loader.LoadCSVDir(csvDir)
	default:
		return errors.New("simulate: one of -network or -csv-dir is required")
	}
	if err != nil {
		return err
	}

	state, err := services.BuildState(desc)
	if err != nil {
		return err
	}
	result := services.Schedule(state)

	if err := render.WriteEvents(w, result.Events); err != nil {
		return err
	}
	return render.WriteStranded(w, result.Stranded)
}
