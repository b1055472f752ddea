package main

import (
	"fmt"
	"os"

	"github.com/BronyUraj/ss14/blocking"
	"github.com/BronyUraj/ss14/bus"
	"github.com/BronyUraj/ss14/mobstate"
	"github.com/BronyUraj/ss14/sim"
	"github.com/BronyUraj/ss14/tuning"
	"github.com/caarlos0/env/v11"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type config struct {
	LogLevel string `env:"SS14_LOG_LEVEL" envDefault:"info"`
	// Tuning is the path of a tuning file. The embedded defaults are used when empty.
	Tuning string `env:"SS14_TUNING"`
}

func main() {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}

	var conf config
	if err := env.Parse(&conf); err != nil {
		log.Fatalf("parse env: %v", err)
	}
	lvl, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		log.Fatalf("parse log level: %v", err)
	}
	log.Level = lvl

	tn, err := tuning.Load(conf.Tuning)
	if err != nil {
		log.Fatalf("load tuning: %v", err)
	}
	srv, err := newServer(log, tn)
	if err != nil {
		log.Fatalf("create server: %v", err)
	}
	if err := srv.scenario(); err != nil {
		log.Errorf("scenario: %v", err)
		os.Exit(1)
	}
}

// server wires both systems to an in-memory world.
type server struct {
	log      logrus.FieldLogger
	bus      *bus.Bus
	world    *sim.World
	mobs     *mobstate.Machine
	blocking *blocking.System
}

func newServer(log logrus.FieldLogger, tn tuning.Tuning) (*server, error) {
	div, err := tn.Divisors()
	if err != nil {
		return nil, err
	}
	b := bus.New(log)
	w := sim.NewWorld(b)
	h := handler{log: log}

	mobs := mobstate.Config{
		Log:           log,
		Bus:           b,
		Handler:       h,
		Posture:       w,
		Appearance:    w,
		Body:          w,
		Mover:         w,
		StripDivisors: div,
	}.New()
	blk := blocking.Config{
		Log:        log,
		Bus:        b,
		Handler:    h,
		Physics:    w,
		Spatial:    w,
		Hands:      w,
		Mobs:       mobs,
		Popups:     w,
		Actions:    w,
		Names:      w,
		Text:       tn.Messages,
		Prototypes: tn.Prototype,
	}.New()
	return &server{log: log, bus: b, world: w, mobs: mobs, blocking: blk}, nil
}

// spawnShield spawns a riot shield at pos and returns its handle.
func (s *server) spawnShield(pos mgl64.Vec3) uuid.UUID {
	id := s.world.SpawnItem("riot shield", pos)
	s.blocking.Add(blocking.NewItem(id, "riot shield", cube.Box(-0.5, 0, -0.5, 0.5, 1, 0.5), "ActionToggleBlock"))
	return id
}

// scenario has an actor pick up a shield, raise it, die and lose the shield.
func (s *server) scenario() error {
	pos := mgl64.Vec3{4.5, 0, 7.5}
	a := s.world.SpawnMob("urist", pos, blocking.KinematicController)
	s.mobs.Add(a)
	shield := s.spawnShield(pos)

	if !s.world.Pickup(a, shield) {
		return fmt.Errorf("pickup refused")
	}
	actions := s.world.ItemActions(a, shield)
	if len(actions) == 0 {
		return fmt.Errorf("shield provides no action")
	}
	if !s.world.Toggle(a, actions[0]) {
		return fmt.Errorf("toggle not handled")
	}
	it, _ := s.blocking.Item(shield)
	if !it.Blocking() {
		return fmt.Errorf("shield not raised: %v", s.world.PopupsFor(a))
	}

	if _, err := s.mobs.Transition(a, mobstate.Dead); err != nil {
		return err
	}
	if s.world.Drop(a, shield) {
		return fmt.Errorf("dead actor dropped its shield")
	}
	s.world.ForceDrop(a, shield)

	ent, _ := s.world.Entity(a)
	if _, ok := s.blocking.User(a); ok || it.Blocking() || ent.Body.Type != blocking.KinematicController {
		return fmt.Errorf("shield teardown incomplete")
	}
	for _, p := range s.world.Popups() {
		s.log.WithField("text", p.Text).Debug("popup")
	}
	return nil
}
