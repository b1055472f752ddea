package main

import (
	"github.com/BronyUraj/ss14/blocking"
	"github.com/BronyUraj/ss14/mobstate"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type handler struct {
	mobstate.NopHandler
	blocking.NopHandler
	log logrus.FieldLogger
}

func (h handler) HandleStateChanged(actor uuid.UUID, from, to mobstate.State) {
	h.log.Infof("%v: %v -> %v", actor, from, to)
}

func (h handler) HandleStopBlocking(it *blocking.Item, user uuid.UUID) {
	h.log.Infof("%v lowered %v", user, it.Name())
}
