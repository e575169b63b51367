package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"

	"github.com/golang/glog"

	"github.com/robotalks/telelink/pkg/cli/sh"
	"github.com/robotalks/telelink/pkg/link"
	"github.com/robotalks/telelink/pkg/sim"

	_ "github.com/robotalks/telelink/pkg/cli/cmds/link"
)

func init() {
	link.SetupFlags()
	sim.SetupFlags()
}

func main() {
	flag.Parse()
	defer glog.Flush()

	conf := link.NewConfig()
	if simConf := sim.NewConfig(); simConf.Enabled {
		board, err := simConf.Attach(conf)
		if err != nil {
			glog.Fatalln(err)
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go board.Run(ctx)
	}
	sh.Main(conf)
}
