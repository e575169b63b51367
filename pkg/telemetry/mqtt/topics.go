package mqtt

import "strings"

// Topic suffixes under a device.
const (
	TopicStatus  = "status"
	TopicImu     = "imu"
	TopicCommand = "cmd"
)

// DeviceTopic joins a device id and a topic suffix.
func DeviceTopic(device, suffix string) string {
	return device + "/" + suffix
}

// MatchTopic matches topic with pattern, supporting "+" for one level and
// a trailing "#" for any remaining levels.
func MatchTopic(topic, pattern string) bool {
	tokensT, tokensP := strings.Split(topic, "/"), strings.Split(pattern, "/")
	for i, token := range tokensP {
		if token == "#" && i+1 == len(tokensP) {
			return true
		}
		if i >= len(tokensT) {
			return false
		}
		if token != "+" && token != tokensT[i] {
			return false
		}
	}
	return len(tokensP) == len(tokensT)
}
