package telemetry

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/tui-bomber/internal/bomber"
)

// Session traces one played level: a "game.session" span with one
// "grid.tick" child span per simulation step.
type Session struct {
	ID string

	tracer trace.Tracer
	ctx    context.Context
	span   trace.Span
	ended  bool
}

// StartSession opens the session span for a level.
func StartSession(ctx context.Context, tracer trace.Tracer, levelID string) *Session {
	id := uuid.NewString()
	ctx, span := tracer.Start(ctx, "game.session",
		trace.WithAttributes(
			attribute.String("session.id", id),
			attribute.String("level.id", levelID),
		),
	)
	return &Session{ID: id, tracer: tracer, ctx: ctx, span: span}
}

// Tick records one simulation step.
func (s *Session) Tick(frame uint64, rep bomber.TickReport) {
	if s.ended {
		return
	}
	_, span := s.tracer.Start(s.ctx, "grid.tick")
	span.SetAttributes(TickAttributes(rep)...)
	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.Int64("frame", int64(frame)),
	)
	span.End()
}

// GameOver marks the frame on which the player was caught.
func (s *Session) GameOver(frame uint64) {
	if s.ended {
		return
	}
	s.span.AddEvent("game_over", trace.WithAttributes(attribute.Int64("frame", int64(frame))))
}

// End closes the session span with the final counters. Calling End more
// than once has no effect.
func (s *Session) End(frames, ticks uint64, gameOver bool) {
	if s.ended {
		return
	}
	s.ended = true
	s.span.SetAttributes(
		attribute.Int64("session.frames", int64(frames)),
		attribute.Int64("session.ticks", int64(ticks)),
		attribute.Bool("session.game_over", gameOver),
	)
	s.span.End()
}

// TickAttributes converts a tick report to span attributes.
func TickAttributes(rep bomber.TickReport) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int64("tick", int64(rep.Tick)),
		attribute.Int("bombs.detonated", rep.Detonations),
		attribute.Int("bombs.disarmed", rep.Disarmed),
		attribute.Int("stones.broken", rep.StonesBroken),
		attribute.Int("pickups.spawned", rep.PickupsSpawned),
		attribute.Int("monsters.moved", rep.MonstersMoved),
		attribute.Int("monsters.destroyed", rep.MonstersDestroyed),
	}
}
