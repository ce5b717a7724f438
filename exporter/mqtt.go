package exporter

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
)

// MQTTConfig carries the broker settings of the state publisher.
type MQTTConfig struct {
	Broker      string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
}

// Publisher mirrors polled property values to retained MQTT state topics,
// one topic per property under the configured prefix. The availability topic
// flips to "offline" via the broker's last will when the connection drops.
type Publisher struct {
	client mqtt.Client
	prefix string
}

// NewPublisher connects to the broker and announces availability.
func NewPublisher(cfg MQTTConfig) (*Publisher, error) {
	prefix := cfg.TopicPrefix
	if prefix == "" {
		prefix = "ecotouch"
	}
	p := &Publisher{prefix: prefix}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(10 * time.Second)
	opts.SetWill(p.availabilityTopic(), "offline", 0, true)
	opts.OnConnect = func(c mqtt.Client) {
		log.Infof("mqtt connected to %v", cfg.Broker)
		c.Publish(p.availabilityTopic(), 0, true, "online")
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Warnf("mqtt connection lost: %v", err)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	p.client = client
	return p, nil
}

func (p *Publisher) availabilityTopic() string {
	return p.prefix + "/availability"
}

// PublishState publishes one property value, retained.
func (p *Publisher) PublishState(name string, value any) {
	topic := fmt.Sprintf("%s/%s", p.prefix, name)
	token := p.client.Publish(topic, 0, true, fmt.Sprint(value))
	go func() {
		if token.Wait() && token.Error() != nil {
			log.Warnf("mqtt publish to %v failed: %v", topic, token.Error())
		}
	}()
}

// Close marks the daemon offline and disconnects.
func (p *Publisher) Close() {
	t := p.client.Publish(p.availabilityTopic(), 0, true, "offline")
	t.WaitTimeout(2 * time.Second)
	p.client.Disconnect(500)
}
