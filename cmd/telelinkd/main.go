package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/telelink/pkg/config"
	fx "github.com/robotalks/telelink/pkg/framework"
	"github.com/robotalks/telelink/pkg/link"
	"github.com/robotalks/telelink/pkg/monitor"
	"github.com/robotalks/telelink/pkg/sim"
	"github.com/robotalks/telelink/pkg/telemetry/mqtt"
)

var (
	configFile string
	awaitFirst bool
	stopGrace  = 5 * time.Second
)

func init() {
	flag.StringVar(&configFile, "config", configFile, "YAML configuration file.")
	flag.BoolVar(&awaitFirst, "await-first", awaitFirst, "Block startup until the first orientation sample arrives.")
	flag.DurationVar(&stopGrace, "stop-grace", stopGrace, "Time allowed for shutdown before forcing exit.")
	link.SetupFlags()
	mqtt.SetupFlags()
	monitor.SetupFlags()
	sim.SetupFlags()
}

func loadConfig() (*link.Config, *mqtt.Config) {
	linkConf, busConf := link.NewConfig(), mqtt.NewConfig()
	doc := config.Empty()
	if configFile != "" {
		var err error
		if doc, err = config.Load(configFile); err != nil {
			glog.Fatalf("load %s: %v", configFile, err)
		}
	}
	if err := linkConf.ApplyFile(doc); err != nil {
		glog.Fatalf("%s: %v", configFile, err)
	}
	if err := busConf.ApplyFile(doc); err != nil {
		glog.Fatalf("%s: %v", configFile, err)
	}
	if val, ok, err := doc.Bool("await_first"); err != nil {
		glog.Fatalf("%s: %v", configFile, err)
	} else if ok {
		awaitFirst = awaitFirst || val
	}
	return linkConf, busConf
}

func main() {
	flag.Parse()
	defer glog.Flush()

	linkConf, busConf := loadConfig()
	runner := fx.NewRunner().HandleSignals()
	runner.Grace = stopGrace

	if simConf := sim.NewConfig(); simConf.Enabled {
		board, err := simConf.Attach(linkConf)
		if err != nil {
			glog.Fatalln(err)
		}
		runner.Go(board)
	}

	drv := linkConf.MustOpen()
	glog.Infof("%s: opened, layout %s", drv.Name(), drv.Layout().Name)
	if awaitFirst {
		if _, err := drv.AwaitFirstSample(runner.Context); err != nil {
			drv.Close()
			glog.Fatalf("%s: no orientation: %v", drv.Name(), err)
		}
		glog.Infof("%s: first orientation received", drv.Name())
	}
	runner.Go(drv)

	if busConf.Enabled() {
		q, err := busConf.NewQueue()
		if err != nil {
			glog.Fatalln(err)
		}
		loop := fx.NewLoop()
		loop.Name = "publisher"
		loop.Interval = busConf.Interval
		loop.Add(mqtt.NewPublisher(q, busConf.Device, drv))
		runner.Go(q, fx.NamedRun("publisher", loop), mqtt.NewCommandBridge(q, busConf.Device, drv))
	}

	if monitor.Addr() != "" {
		runner.Go(monitor.NewServer(drv))
	}

	if err := runner.Wait(); err != nil {
		glog.Errorf("exit: %v", err)
	}
}
