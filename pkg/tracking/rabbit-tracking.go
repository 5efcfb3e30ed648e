package tracking

import (
	"log"
	"net/http"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/matst80/slask-vods/pkg/messaging"
	"github.com/matst80/slask-vods/pkg/types"
)

const trackingTopic = "tracking"
const topicPrefix = "vods"

// RabbitTracking publishes browsing events to a tracking topic. Handlers
// treat a nil tracker as tracking disabled.
type RabbitTracking struct {
	connection *amqp.Connection
}

func NewRabbitTracking(url string) (*RabbitTracking, error) {
	ret := RabbitTracking{}
	if err := ret.connect(url); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (t *RabbitTracking) connect(url string) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return err
	}
	t.connection = conn
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	return messaging.DefineTopic(ch, topicPrefix, trackingTopic)
}

func (t *RabbitTracking) Close() error {
	return t.connection.Close()
}

func (t *RabbitTracking) send(data any) error {
	return messaging.Send(t.connection, topicPrefix, trackingTopic, data)
}

type BaseEvent struct {
	SessionId string `json:"session_id"`
	Event     uint16 `json:"event"`
}

type Session struct {
	*BaseEvent
	UserAgent string `json:"user_agent,omitempty"`
	Ip        string `json:"ip,omitempty"`
	Language  string `json:"language,omitempty"`
}

func (t *RabbitTracking) TrackSession(sessionId string, r *http.Request) {
	ip := r.Header.Get("X-Real-Ip")
	if ip == "" {
		ip = r.Header.Get("X-Forwarded-For")
	}
	if ip == "" {
		ip = r.RemoteAddr
	}

	err := t.send(Session{
		BaseEvent: &BaseEvent{Event: 0, SessionId: sessionId},
		Language:  r.Header.Get("Accept-Language"),
		UserAgent: r.UserAgent(),
		Ip:        ip,
	})
	if err != nil {
		log.Println("Error sending session event: ", err)
	}
}

type FilterEvent struct {
	*BaseEvent
	Team   string `json:"team,omitempty"`
	Player string `json:"player,omitempty"`
	Map    string `json:"map,omitempty"`
	Page   int    `json:"page"`
	Hits   int    `json:"hits"`
}

func (t *RabbitTracking) TrackFilter(sessionId string, query types.FilterQuery, page int, hits int) {
	err := t.send(FilterEvent{
		BaseEvent: &BaseEvent{Event: 1, SessionId: sessionId},
		Team:      query.Team,
		Player:    query.Player,
		Map:       query.Map,
		Page:      page,
		Hits:      hits,
	})
	if err != nil {
		log.Println("Error sending filter event: ", err)
	}
}
