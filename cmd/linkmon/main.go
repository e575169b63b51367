package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/golang/protobuf/proto"

	"github.com/robotalks/telelink/pkg/frame"
	"github.com/robotalks/telelink/pkg/telemetry/mqtt"
)

var (
	mqttURL = "mqtt://localhost:1883/telelink/"
	filter  = "#"
	send    string
	device  string
)

func init() {
	if val := os.Getenv("TELELINK_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&filter, "filter", filter, "Topic filter to dump.")
	flag.StringVar(&device, "device", device, "Device ID to send command to.")
	flag.StringVar(&send, "send", send, "Publish \"ENGAGE FIRE YAW PITCH\" to the device and exit.")
}

func main() {
	flag.Parse()
	defer glog.Flush()

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		glog.Fatalln(err)
	}
	if tok := q.Client.Connect(); tok.Wait() && tok.Error() != nil {
		glog.Fatalln(tok.Error())
	}

	if send != "" {
		if device == "" {
			glog.Fatalln("-device is required with -send")
		}
		cmd, err := frame.ParseCommand(strings.Fields(send))
		if err != nil {
			glog.Fatalln(err)
		}
		payload, err := proto.Marshal(mqtt.CommandMsg(cmd))
		if err != nil {
			glog.Fatalln(err)
		}
		if tok := q.Pub(mqtt.DeviceTopic(device, mqtt.TopicCommand), payload); tok.Wait() && tok.Error() != nil {
			glog.Fatalln(tok.Error())
		}
		q.Client.Disconnect(250)
		return
	}

	q.Sub(filter, mqtt.Handler(func(topic string, payload []byte) {
		msg, err := mqtt.DecodeMessage(topic, payload)
		if err != nil {
			glog.Warningf("%s: %v", topic, err)
			return
		}
		glog.Infof("%s %s: [%s] %s", time.Now().Format("15:04:05.000000"), topic,
			reflect.Indirect(reflect.ValueOf(msg)).Type().Name(), msg.String())
	}))
	<-(chan struct{})(nil)
}
