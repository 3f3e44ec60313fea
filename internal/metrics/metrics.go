// Package metrics exposes Prometheus instruments for the game lifecycle.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "squadup"

// Platform operations reported through PlatformFailure
const (
	OpCreateRoom   = "create_room"
	OpDeleteRoom   = "delete_room"
	OpMoveMember   = "move_member"
	OpListChannels = "list_channels"
	OpSendMessage  = "send_message"
	OpAssignRole   = "assign_role"
	OpListMembers  = "list_members"
)

// Metrics holds the bot's collectors
type Metrics struct {
	gamesStarted     prometheus.Counter
	gameStartFailed  prometheus.Counter
	gamesEnded       *prometheus.CounterVec
	activeGames      prometheus.Gauge
	notifications    *prometheus.CounterVec
	platformFailures *prometheus.CounterVec
	persistFailures  *prometheus.CounterVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, fmt.Errorf("registerer cannot be nil")
	}

	m := &Metrics{
		gamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_started_total",
			Help:      "Games registered after their rooms were provisioned.",
		}),
		gameStartFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "game_start_failures_total",
			Help:      "Game starts aborted before registration.",
		}),
		gamesEnded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_ended_total",
			Help:      "Games finalized, by outcome.",
		}, []string{"outcome"}),
		activeGames: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_games",
			Help:      "Games currently registered.",
		}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matchmaking_notifications_total",
			Help:      "Matchmaking direct messages, by result.",
		}, []string{"result"}),
		platformFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "platform_failures_total",
			Help:      "Failed Discord calls that did not abort the operation, by operation.",
		}, []string{"operation"}),
		persistFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persistence_failures_total",
			Help:      "Failed store writes that were logged and skipped, by store.",
		}, []string{"store"}),
	}

	for _, c := range []prometheus.Collector{
		m.gamesStarted,
		m.gameStartFailed,
		m.gamesEnded,
		m.activeGames,
		m.notifications,
		m.platformFailures,
		m.persistFailures,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}

	return m, nil
}

// GameStarted counts a registered game
func (m *Metrics) GameStarted() {
	if m == nil {
		return
	}
	m.gamesStarted.Inc()
}

// GameStartFailed counts an aborted start
func (m *Metrics) GameStartFailed() {
	if m == nil {
		return
	}
	m.gameStartFailed.Inc()
}

// GameEnded counts a finalized game
func (m *Metrics) GameEnded(outcome string) {
	if m == nil {
		return
	}
	m.gamesEnded.WithLabelValues(outcome).Inc()
}

// SetActiveGames reports the registry size
func (m *Metrics) SetActiveGames(n int) {
	if m == nil {
		return
	}
	m.activeGames.Set(float64(n))
}

// NotificationDelivered counts a delivered matchmaking DM
func (m *Metrics) NotificationDelivered() {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues("delivered").Inc()
}

// NotificationFailed counts an undeliverable matchmaking DM
func (m *Metrics) NotificationFailed() {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues("failed").Inc()
}

// PlatformFailure counts a soft Discord failure
func (m *Metrics) PlatformFailure(operation string) {
	if m == nil {
		return
	}
	m.platformFailures.WithLabelValues(operation).Inc()
}

// PersistFailure counts a store write that was logged and skipped
func (m *Metrics) PersistFailure(store string) {
	if m == nil {
		return
	}
	m.persistFailures.WithLabelValues(store).Inc()
}
