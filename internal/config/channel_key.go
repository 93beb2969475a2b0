package config

import "fmt"

// ChannelKeyStruct names the Redis pub/sub channels used by the service.
type ChannelKeyStruct struct{}

func NewChannelKeyStruct() *ChannelKeyStruct {
	return &ChannelKeyStruct{}
}

// AllChanges is the pattern matching every entity's change channel.
func (r *ChannelKeyStruct) AllChanges() string {
	return r.EntityChanges("*")
}

// EntityChanges is the channel carrying admin writes for a single entity kind.
func (r *ChannelKeyStruct) EntityChanges(kind string) string {
	return fmt.Sprintf("courseinfo:admin:changes:%s", kind)
}

var ChannelKey = NewChannelKeyStruct()
