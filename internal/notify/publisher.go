package notify

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReminderMessage is the payload published for a due reminder.
type ReminderMessage struct {
	UserID   int    `json:"user_id"`
	AlarmID  int    `json:"alarm_id"`
	Activity string `json:"activity"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// Publisher delivers reminder messages to whatever frontends listen for
// them. The notifier treats delivery as best effort.
type Publisher interface {
	PublishReminder(msg ReminderMessage) error
	Close()
}

type mqttPublisher struct {
	client mqtt.Client
}

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Warn().Err(err).Msg("MQTT connection lost")
}

// NewMQTTPublisher connects to the broker and returns a Publisher that
// writes to garden/reminders/<user_id>.
func NewMQTTPublisher(brokerURL string) (Publisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(fmt.Sprintf("tendril-notifier-%s", uuid.NewString()[:8]))
	opts.SetConnectTimeout(10 * time.Second)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	return &mqttPublisher{client: client}, nil
}

func (p *mqttPublisher) PublishReminder(msg ReminderMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	topic := fmt.Sprintf("garden/reminders/%d", msg.UserID)
	token := p.client.Publish(topic, 1, false, payload)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("failed to publish reminder to %s: %w", topic, token.Error())
	}
	return nil
}

func (p *mqttPublisher) Close() {
	p.client.Disconnect(250)
}
