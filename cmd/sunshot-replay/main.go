package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/sunshot/config"
	"github.com/lixenwraith/sunshot/replay"
	"gopkg.in/yaml.v3"
)

var (
	tuningFlag  = flag.String("tuning", "", "Path to a YAML tuning file for every script")
	profileFlag = flag.String("profile", "", "Built-in profile for every script (default: each script's own)")
	quietFlag   = flag.Bool("quiet", false, "Print only failing reports")
	metricsFlag = flag.Bool("metrics", false, "Include the status registry snapshot in reports")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] script.yaml...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	log.SetFlags(0)
	log.SetPrefix("sunshot-replay: ")

	var tuning *config.Tuning
	if *tuningFlag != "" || *profileFlag != "" {
		t, err := config.Resolve(*tuningFlag, *profileFlag)
		if err != nil {
			log.Fatalf("tuning: %v", err)
		}
		tuning = t
	}

	failed := 0
	for _, path := range flag.Args() {
		ok, err := runOne(path, tuning)
		if err != nil {
			log.Printf("%s: %v", path, err)
			failed++
			continue
		}
		if !ok {
			failed++
		}
	}

	if failed > 0 {
		log.Printf("%d of %d scripts failed", failed, flag.NArg())
		os.Exit(1)
	}
}

func runOne(path string, tuning *config.Tuning) (bool, error) {
	s, err := replay.Load(path)
	if err != nil {
		return false, err
	}

	var t *config.Tuning
	if tuning != nil {
		t = tuning.Clone()
	}
	report, err := replay.Run(s, t)
	if err != nil {
		return false, err
	}

	if *quietFlag && report.Passed {
		return true, nil
	}
	if !*metricsFlag {
		report.Metrics = nil
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		return false, fmt.Errorf("encode report: %w", err)
	}
	fmt.Printf("# %s\n%s---\n", path, out)
	return report.Passed, nil
}
