package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"travel-compare-service/internal/platform/obs"
	"travel-compare-service/internal/ports"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

// PublisherMetrics receives one call per publish attempt.
type PublisherMetrics interface {
	EventPublished(ok bool, d time.Duration)
}

// conn is the part of *nats.Conn the publisher needs.
type conn interface {
	Publish(subject string, data []byte) error
}

// NATSPublisher emits a SearchEvent for every completed route search on
// "{subject}.{originToken}".
type NATSPublisher struct {
	nc      conn
	closer  func()
	subject string
	log     logrus.FieldLogger
	metrics PublisherMetrics
}

func NewNATSPublisher(url, subject string, log logrus.FieldLogger, m PublisherMetrics) (*NATSPublisher, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, errors.New("nats publisher: subject is empty")
	}
	if log == nil {
		log = obs.Discard()
	}

	nc, err := nats.Connect(url,
		nats.Name("travel-compare-service"),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.WithError(err).Warn("nats disconnected")
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.WithField("url", c.ConnectedUrl()).Info("nats reconnected")
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			log.Info("nats closed")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}

	p := newPublisher(nc, subject, log, m)
	p.closer = func() {
		_ = nc.Drain()
		nc.Close()
	}
	return p, nil
}

func newPublisher(nc conn, subject string, log logrus.FieldLogger, m PublisherMetrics) *NATSPublisher {
	return &NATSPublisher{nc: nc, subject: subject, log: log, metrics: m}
}

func (p *NATSPublisher) Close() {
	if p.closer != nil {
		p.closer()
	}
}

func (p *NATSPublisher) PublishSearch(ctx context.Context, ev ports.SearchEvent) (err error) {
	defer obs.Time(ctx, p.log, "events.PublishSearch")(&err)

	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode search event: %w", err)
	}

	subject := p.subject + "." + subjectToken(ev.Origin)

	start := time.Now()
	err = p.nc.Publish(subject, b)
	if p.metrics != nil {
		p.metrics.EventPublished(err == nil, time.Since(start))
	}
	if err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

func subjectToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	// NATS tokens cannot contain whitespace, '.', '>' or '*'.
	s = strings.Map(func(r rune) rune {
		switch {
		case r == ',':
			return -1
		case unicode.IsSpace(r), r == '.', r == '>', r == '*', r == '/':
			return '_'
		}
		return r
	}, s)
	if s == "" {
		s = "_"
	}
	return s
}
